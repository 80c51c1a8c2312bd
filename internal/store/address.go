package store

import (
	"context"

	"github.com/rayzor/contacts-api/internal/domain"
)

// AddressStore defines the interface for address data persistence.
// Lookups are scoped by the parent contact id; the service layer is
// responsible for proving that contact belongs to the caller first.
type AddressStore interface {
	// Create inserts a new address and fills in its generated ID.
	Create(ctx context.Context, address *domain.Address) error

	// GetByIDAndContact retrieves the unique address matching both id
	// and contact_id. Returns ErrAddressNotFound if absent.
	GetByIDAndContact(ctx context.Context, id, contactID int64) (*domain.Address, error)

	// CountByIDAndContact returns the number of addresses matching both
	// id and contact_id (0 or 1).
	CountByIDAndContact(ctx context.Context, id, contactID int64) (int64, error)

	// Update applies a full replace of all mutable fields.
	// The caller must have verified the ownership chain first.
	Update(ctx context.Context, address *domain.Address) error

	// Delete removes the address by id. The caller must have verified
	// the ownership chain first.
	Delete(ctx context.Context, id int64) error
}
