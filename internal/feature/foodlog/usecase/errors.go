// Package usecase implements the business logic for the foodlog feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when the acting user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrFoodItemNotFound is returned when the referenced food item does not
	// exist or belongs to a different user. The two cases are deliberately
	// indistinguishable.
	ErrFoodItemNotFound = errors.New("food item not found or does not belong to user")

	// ErrEntryNotFound is returned when a log entry does not exist or is owned
	// by another user.
	ErrEntryNotFound = errors.New("food log entry not found or access denied")

	// ErrInvalidQuantity is returned when quantity in grams is not strictly positive.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrInvalidDate is returned when a logged date is not a YYYY-MM-DD calendar date.
	ErrInvalidDate = errors.New("logged date must be a YYYY-MM-DD calendar date")
)
