package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in
	// the store. This is the generic version of the entity-specific not
	// found errors below.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same username).
	ErrDuplicate = errors.New("entity already exists")

	// Entity-specific "not found" errors. The ownership chain collapses
	// every broken link into one of these, regardless of whether the row
	// exists under a different owner.

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrContactNotFound indicates that the requested contact does not
	// exist under the caller's identity.
	ErrContactNotFound = fmt.Errorf("%w: contact", ErrNotFound)

	// ErrAddressNotFound indicates that the requested address does not
	// exist under the caller's contact.
	ErrAddressNotFound = fmt.Errorf("%w: address", ErrNotFound)

	// ErrUsernameExists indicates that a user with the given username
	// already exists. Returned when registering a taken username.
	ErrUsernameExists = fmt.Errorf("%w: username", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
