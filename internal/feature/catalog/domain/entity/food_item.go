// Package entity defines the domain models for the catalog feature.
package entity

import "time"

// FoodItem represents a named food in a user's personal catalog.
// The calorie rate is expressed per 100 grams and is the input for the
// derived total on every log entry that references this item.
type FoodItem struct {
	ID              uint      `gorm:"primaryKey"`
	UserID          uint      `gorm:"not null;index"`
	Name            string    `gorm:"size:255;not null"`
	CaloriesPer100g float64   `gorm:"type:numeric(8,2);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}
