package entity

import (
	catalogentity "calorie_backend/internal/feature/catalog/domain/entity"
)

// EntryWithFood is a log entry enriched with its referenced food item,
// as displayed in the daily summary.
type EntryWithFood struct {
	FoodLogEntry
	FoodItem catalogentity.FoodItem
}

// DailyLog is the per-day consumption summary for one user.
// It is a view recomputed on every read and never persisted or cached.
type DailyLog struct {
	Date          string
	TotalCalories float64
	Entries       []EntryWithFood
}
