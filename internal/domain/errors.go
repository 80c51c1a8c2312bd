package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when input fails the validation gate.
	// It is usually wrapped in a ValidationError carrying the aggregated
	// per-field messages.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized is returned when a request carries no resolvable
	// identity (missing or unknown session token).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials is returned on login when the username is
	// unknown or the password does not match. The two cases are
	// deliberately indistinguishable to prevent username enumeration.
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
)

// ValidationError carries the aggregated, human-readable description of
// every failing field from a single validation pass.
type ValidationError struct {
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrValidation
}

// NewValidationError creates a ValidationError with the given aggregated
// message, wrapping ErrValidation so callers can match with errors.Is.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message, Err: ErrValidation}
}
