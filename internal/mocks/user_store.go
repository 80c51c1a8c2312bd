package mocks

import (
	"context"
	"database/sql"

	"github.com/rayzor/contacts-api/internal/domain"
	"github.com/rayzor/contacts-api/internal/store"
)

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	// Function fields for customizable behavior
	CountByUsernameFn func(ctx context.Context, username string) (int64, error)
	CreateFn          func(ctx context.Context, user *domain.User) error
	GetByUsernameFn   func(ctx context.Context, username string) (*domain.User, error)
	GetByTokenFn      func(ctx context.Context, token string) (*domain.User, error)
	UpdateProfileFn   func(ctx context.Context, username, name, hashedPassword string) (*domain.User, error)
	SetTokenFn        func(ctx context.Context, username, token string) error
	ClearTokenFn      func(ctx context.Context, username string) error

	// Data for the default implementation, keyed by username.
	Users map[string]*domain.User
}

// NewMockUserStore creates a new mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Ensure MockUserStore implements store.UserStore interface
var _ store.UserStore = (*MockUserStore)(nil)

// CountByUsername implements the UserStore interface.
func (m *MockUserStore) CountByUsername(ctx context.Context, username string) (int64, error) {
	if m.CountByUsernameFn != nil {
		return m.CountByUsernameFn(ctx, username)
	}

	if _, exists := m.Users[username]; exists {
		return 1, nil
	}
	return 0, nil
}

// Create implements the UserStore interface.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if _, exists := m.Users[user.Username]; exists {
		return store.ErrUsernameExists
	}

	copied := *user
	m.Users[user.Username] = &copied
	return nil
}

// GetByUsername implements the UserStore interface.
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}

	user, exists := m.Users[username]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	copied := *user
	return &copied, nil
}

// GetByToken implements the UserStore interface.
func (m *MockUserStore) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	if m.GetByTokenFn != nil {
		return m.GetByTokenFn(ctx, token)
	}

	for _, user := range m.Users {
		if user.Token != "" && user.Token == token {
			copied := *user
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// UpdateProfile implements the UserStore interface.
func (m *MockUserStore) UpdateProfile(ctx context.Context, username, name, hashedPassword string) (*domain.User, error) {
	if m.UpdateProfileFn != nil {
		return m.UpdateProfileFn(ctx, username, name, hashedPassword)
	}

	user, exists := m.Users[username]
	if !exists {
		return nil, store.ErrUserNotFound
	}

	if name != "" {
		user.Name = name
	}
	if hashedPassword != "" {
		user.HashedPassword = hashedPassword
	}

	copied := *user
	return &copied, nil
}

// SetToken implements the UserStore interface.
func (m *MockUserStore) SetToken(ctx context.Context, username, token string) error {
	if m.SetTokenFn != nil {
		return m.SetTokenFn(ctx, username, token)
	}

	user, exists := m.Users[username]
	if !exists {
		return store.ErrUserNotFound
	}

	user.Token = token
	return nil
}

// ClearToken implements the UserStore interface.
func (m *MockUserStore) ClearToken(ctx context.Context, username string) error {
	if m.ClearTokenFn != nil {
		return m.ClearTokenFn(ctx, username)
	}

	user, exists := m.Users[username]
	if !exists {
		return store.ErrUserNotFound
	}

	user.Token = ""
	return nil
}

// WithTx implements the UserStore interface. The mock has no real
// transactions, so it returns itself.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
