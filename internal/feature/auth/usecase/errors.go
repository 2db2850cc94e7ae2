// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrPasswordTooShort is returned when a registration password does not
	// meet the minimum length requirement.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")

	// ErrNameRequired is returned when a registration display name is empty.
	ErrNameRequired = errors.New("name is required")

	// ErrInvalidCredentials is returned when email or password does not verify.
	// The same error is used for both unknown email and wrong password so that
	// callers cannot enumerate registered accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSessionNotFound is returned when a session cannot be found by ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionRevoked is returned when attempting to use a revoked session.
	ErrSessionRevoked = errors.New("session has been revoked")

	// ErrSessionExpired is returned when attempting to use an expired session.
	ErrSessionExpired = errors.New("session has expired")
)
