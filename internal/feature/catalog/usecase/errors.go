// Package usecase implements the business logic for the catalog feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when the acting user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrFoodItemNotFound is returned when a food item does not exist or is
	// owned by another user. The two cases are deliberately indistinguishable
	// so that callers cannot probe for other users' data.
	ErrFoodItemNotFound = errors.New("food item not found or access denied")

	// ErrFoodItemInUse is returned when deleting a food item that is still
	// referenced by one or more food log entries.
	ErrFoodItemInUse = errors.New("cannot delete food item that has logged entries")

	// ErrNameRequired is returned when a food item name is empty.
	ErrNameRequired = errors.New("food item name is required")

	// ErrInvalidCalories is returned when calories per 100g is not strictly positive.
	ErrInvalidCalories = errors.New("calories per 100g must be positive")
)
