// Package entity defines the domain models for the foodlog feature.
package entity

import "time"

// DateLayout is the calendar-date format used for logged dates across the API
// and the store. Dates are opaque calendar strings with no time component.
const DateLayout = "2006-01-02"

// FoodLogEntry represents one consumption record: a quantity of one catalog
// food eaten by one user on one calendar date.
//
// TotalCalories is derived from the referenced food's calorie rate and the
// quantity at every write. It is never settable by callers.
type FoodLogEntry struct {
	ID            uint    `gorm:"primaryKey"`
	UserID        uint    `gorm:"not null;index"`
	FoodItemID    uint    `gorm:"not null;index"`
	QuantityGrams float64 `gorm:"type:numeric(8,2);not null"`
	TotalCalories float64 `gorm:"type:numeric(8,2);not null"`
	LoggedDate    string  `gorm:"size:10;not null;index"`
	CreatedAt     time.Time
}
