package domain

import "errors"

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	// Repositories translate sql.ErrNoRows into this error.
	ErrNotFound = errors.New("not found")

	// ErrValidation is returned for malformed input before any mutation.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidState is returned when an operation is attempted against an
	// entity whose current status forbids it.
	ErrInvalidState = errors.New("invalid state for operation")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
)
