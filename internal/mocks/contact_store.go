package mocks

import (
	"context"
	"sort"
	"strings"

	"github.com/rayzor/contacts-api/internal/domain"
	"github.com/rayzor/contacts-api/internal/store"
)

// MockContactStore implements store.ContactStore for testing.
type MockContactStore struct {
	// Function fields for customizable behavior
	CreateFn            func(ctx context.Context, contact *domain.Contact) error
	GetByIDAndOwnerFn   func(ctx context.Context, id int64, owner string) (*domain.Contact, error)
	CountByIDAndOwnerFn func(ctx context.Context, id int64, owner string) (int64, error)
	UpdateFn            func(ctx context.Context, contact *domain.Contact) error
	DeleteFn            func(ctx context.Context, id int64) error
	SearchFn            func(ctx context.Context, owner string, filter store.ContactFilter) ([]*domain.Contact, int64, error)

	// Data for the default implementation, keyed by contact ID.
	Contacts map[int64]*domain.Contact
	nextID   int64
}

// NewMockContactStore creates a new mock store with initialized defaults.
func NewMockContactStore() *MockContactStore {
	return &MockContactStore{
		Contacts: make(map[int64]*domain.Contact),
	}
}

// Ensure MockContactStore implements store.ContactStore interface
var _ store.ContactStore = (*MockContactStore)(nil)

// Create implements the ContactStore interface.
func (m *MockContactStore) Create(ctx context.Context, contact *domain.Contact) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, contact)
	}

	m.nextID++
	contact.ID = m.nextID
	copied := *contact
	m.Contacts[contact.ID] = &copied
	return nil
}

// GetByIDAndOwner implements the ContactStore interface.
func (m *MockContactStore) GetByIDAndOwner(ctx context.Context, id int64, owner string) (*domain.Contact, error) {
	if m.GetByIDAndOwnerFn != nil {
		return m.GetByIDAndOwnerFn(ctx, id, owner)
	}

	contact, exists := m.Contacts[id]
	if !exists || contact.Username != owner {
		return nil, store.ErrContactNotFound
	}

	copied := *contact
	return &copied, nil
}

// CountByIDAndOwner implements the ContactStore interface.
func (m *MockContactStore) CountByIDAndOwner(ctx context.Context, id int64, owner string) (int64, error) {
	if m.CountByIDAndOwnerFn != nil {
		return m.CountByIDAndOwnerFn(ctx, id, owner)
	}

	contact, exists := m.Contacts[id]
	if !exists || contact.Username != owner {
		return 0, nil
	}
	return 1, nil
}

// Update implements the ContactStore interface.
func (m *MockContactStore) Update(ctx context.Context, contact *domain.Contact) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, contact)
	}

	existing, exists := m.Contacts[contact.ID]
	if !exists {
		return store.ErrContactNotFound
	}

	existing.FirstName = contact.FirstName
	existing.LastName = contact.LastName
	existing.Email = contact.Email
	existing.Phone = contact.Phone
	return nil
}

// Delete implements the ContactStore interface.
func (m *MockContactStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Contacts[id]; !exists {
		return store.ErrContactNotFound
	}

	delete(m.Contacts, id)
	return nil
}

// Search implements the ContactStore interface. The default
// implementation mirrors the SQL semantics: substring containment,
// name matching first_name OR last_name, all filters ANDed with the
// owner scope, results ordered by id.
func (m *MockContactStore) Search(ctx context.Context, owner string, filter store.ContactFilter) ([]*domain.Contact, int64, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, owner, filter)
	}

	matched := []*domain.Contact{}
	for _, contact := range m.Contacts {
		if contact.Username != owner {
			continue
		}
		if filter.Name != "" &&
			!strings.Contains(contact.FirstName, filter.Name) &&
			!strings.Contains(contact.LastName, filter.Name) {
			continue
		}
		if filter.Email != "" && !strings.Contains(contact.Email, filter.Email) {
			continue
		}
		if filter.Phone != "" && !strings.Contains(contact.Phone, filter.Phone) {
			continue
		}
		copied := *contact
		matched = append(matched, &copied)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))

	start := filter.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.Size
	if end > len(matched) {
		end = len(matched)
	}

	return matched[start:end], total, nil
}
