package store

import (
	"context"
	"database/sql"

	"github.com/rayzor/contacts-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// CountByUsername returns the number of users with the given
	// username (0 or 1, username is the primary key).
	CountByUsername(ctx context.Context, username string) (int64, error)

	// Create saves a new user to the store. The caller must have hashed
	// the password already. Returns ErrUsernameExists if the username is
	// already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByUsername retrieves a user by username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetByToken retrieves the user holding the given session token.
	// Returns ErrUserNotFound if no user holds the token.
	GetByToken(ctx context.Context, token string) (*domain.User, error)

	// UpdateProfile applies a partial merge of name and/or hashed
	// password: empty fields are left untouched.
	// Returns ErrUserNotFound if the user does not exist.
	UpdateProfile(ctx context.Context, username, name, hashedPassword string) (*domain.User, error)

	// SetToken stores the session token on the user row.
	// Returns ErrUserNotFound if the user does not exist.
	SetToken(ctx context.Context, username, token string) error

	// ClearToken removes the session token from the user row.
	// Returns ErrUserNotFound if the user does not exist.
	ClearToken(ctx context.Context, username string) error

	// WithTx returns a new UserStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller
	// (typically a service).
	WithTx(tx *sql.Tx) UserStore
}
