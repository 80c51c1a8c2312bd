package store

import (
	"context"

	"github.com/rayzor/contacts-api/internal/domain"
)

// ContactFilter describes the optional substring filters and paging
// parameters for a contact search. Name matches first_name OR
// last_name; Email and Phone are independent filters. All present
// filters are ANDed together with the owner scope.
type ContactFilter struct {
	Name  string
	Email string
	Phone string
	Page  int
	Size  int
}

// Offset returns the number of rows to skip for the requested page.
func (f ContactFilter) Offset() int {
	return (f.Page - 1) * f.Size
}

// ContactStore defines the interface for contact data persistence.
// Every lookup is scoped by the owning username: a contact belonging
// to a different owner behaves exactly like a missing row.
type ContactStore interface {
	// Create inserts a new contact and fills in its generated ID.
	Create(ctx context.Context, contact *domain.Contact) error

	// GetByIDAndOwner retrieves the unique contact matching both id and
	// owner. Returns ErrContactNotFound if absent.
	GetByIDAndOwner(ctx context.Context, id int64, owner string) (*domain.Contact, error)

	// CountByIDAndOwner returns the number of contacts matching both id
	// and owner (0 or 1). Used as the ownership existence check before
	// mutations.
	CountByIDAndOwner(ctx context.Context, id int64, owner string) (int64, error)

	// Update applies a full replace of all mutable fields.
	// The caller must have verified ownership first.
	Update(ctx context.Context, contact *domain.Contact) error

	// Delete removes the contact by id. The caller must have verified
	// ownership first.
	Delete(ctx context.Context, id int64) error

	// Search returns the page of contacts matching the filter under the
	// owner scope, plus the total number of matching rows.
	Search(ctx context.Context, owner string, filter ContactFilter) ([]*domain.Contact, int64, error)
}
