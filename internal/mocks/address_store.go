package mocks

import (
	"context"

	"github.com/rayzor/contacts-api/internal/domain"
	"github.com/rayzor/contacts-api/internal/store"
)

// MockAddressStore implements store.AddressStore for testing.
type MockAddressStore struct {
	// Function fields for customizable behavior
	CreateFn              func(ctx context.Context, address *domain.Address) error
	GetByIDAndContactFn   func(ctx context.Context, id, contactID int64) (*domain.Address, error)
	CountByIDAndContactFn func(ctx context.Context, id, contactID int64) (int64, error)
	UpdateFn              func(ctx context.Context, address *domain.Address) error
	DeleteFn              func(ctx context.Context, id int64) error

	// Data for the default implementation, keyed by address ID.
	Addresses map[int64]*domain.Address
	nextID    int64
}

// NewMockAddressStore creates a new mock store with initialized defaults.
func NewMockAddressStore() *MockAddressStore {
	return &MockAddressStore{
		Addresses: make(map[int64]*domain.Address),
	}
}

// Ensure MockAddressStore implements store.AddressStore interface
var _ store.AddressStore = (*MockAddressStore)(nil)

// Create implements the AddressStore interface.
func (m *MockAddressStore) Create(ctx context.Context, address *domain.Address) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, address)
	}

	m.nextID++
	address.ID = m.nextID
	copied := *address
	m.Addresses[address.ID] = &copied
	return nil
}

// GetByIDAndContact implements the AddressStore interface.
func (m *MockAddressStore) GetByIDAndContact(ctx context.Context, id, contactID int64) (*domain.Address, error) {
	if m.GetByIDAndContactFn != nil {
		return m.GetByIDAndContactFn(ctx, id, contactID)
	}

	address, exists := m.Addresses[id]
	if !exists || address.ContactID != contactID {
		return nil, store.ErrAddressNotFound
	}

	copied := *address
	return &copied, nil
}

// CountByIDAndContact implements the AddressStore interface.
func (m *MockAddressStore) CountByIDAndContact(ctx context.Context, id, contactID int64) (int64, error) {
	if m.CountByIDAndContactFn != nil {
		return m.CountByIDAndContactFn(ctx, id, contactID)
	}

	address, exists := m.Addresses[id]
	if !exists || address.ContactID != contactID {
		return 0, nil
	}
	return 1, nil
}

// Update implements the AddressStore interface.
func (m *MockAddressStore) Update(ctx context.Context, address *domain.Address) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, address)
	}

	existing, exists := m.Addresses[address.ID]
	if !exists {
		return store.ErrAddressNotFound
	}

	existing.Street = address.Street
	existing.City = address.City
	existing.Province = address.Province
	existing.Country = address.Country
	existing.PostalCode = address.PostalCode
	return nil
}

// Delete implements the AddressStore interface.
func (m *MockAddressStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Addresses[id]; !exists {
		return store.ErrAddressNotFound
	}

	delete(m.Addresses, id)
	return nil
}
