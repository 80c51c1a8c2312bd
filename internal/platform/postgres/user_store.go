package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/rayzor/contacts-api/internal/domain"
	"github.com/rayzor/contacts-api/internal/platform/logger"
	"github.com/rayzor/contacts-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// WithTx implements store.UserStore.WithTx
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{
		db:     tx,
		logger: s.logger,
	}
}

// CountByUsername implements store.UserStore.CountByUsername
func (s *PostgresUserStore) CountByUsername(ctx context.Context, username string) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT COUNT(*)
		FROM users
		WHERE username = $1
	`

	var count int64
	if err := s.db.QueryRowContext(ctx, query, username).Scan(&count); err != nil {
		log.Error("failed to count users",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return 0, err
	}

	return count, nil
}

// Create implements store.UserStore.Create
// The password must already be hashed by the caller.
// Returns store.ErrUsernameExists on a duplicate username.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO users (username, name, password)
		VALUES ($1, $2, $3)
	`

	_, err := s.db.ExecContext(ctx, query, user.Username, user.Name, user.HashedPassword)
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug("duplicate username on user creation",
				slog.String("username", user.Username))
			return store.ErrUsernameExists
		}

		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		return err
	}

	log.Info("user created", slog.String("username", user.Username))
	return nil
}

// GetByUsername implements store.UserStore.GetByUsername
func (s *PostgresUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT username, name, password, token
		FROM users
		WHERE username = $1
	`

	var user domain.User
	var token sql.NullString

	err := s.db.QueryRowContext(ctx, query, username).Scan(
		&user.Username,
		&user.Name,
		&user.HashedPassword,
		&token,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("username", username))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by username",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, err
	}

	user.Token = token.String
	return &user, nil
}

// GetByToken implements store.UserStore.GetByToken
func (s *PostgresUserStore) GetByToken(ctx context.Context, token string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT username, name, password, token
		FROM users
		WHERE token = $1
	`

	var user domain.User
	var storedToken sql.NullString

	err := s.db.QueryRowContext(ctx, query, token).Scan(
		&user.Username,
		&user.Name,
		&user.HashedPassword,
		&storedToken,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("no user holds token")
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by token",
			slog.String("error", err.Error()))
		return nil, err
	}

	user.Token = storedToken.String
	return &user, nil
}

// UpdateProfile implements store.UserStore.UpdateProfile
// Empty name or hashedPassword leaves the respective column untouched.
func (s *PostgresUserStore) UpdateProfile(ctx context.Context, username, name, hashedPassword string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE users
		SET name = CASE WHEN $2 <> '' THEN $2 ELSE name END,
		    password = CASE WHEN $3 <> '' THEN $3 ELSE password END
		WHERE username = $1
		RETURNING username, name
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, username, name, hashedPassword).Scan(
		&user.Username,
		&user.Name,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found for update", slog.String("username", username))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return nil, err
	}

	log.Info("user updated", slog.String("username", user.Username))
	return &user, nil
}

// SetToken implements store.UserStore.SetToken
func (s *PostgresUserStore) SetToken(ctx context.Context, username, token string) error {
	return s.updateToken(ctx, username, sql.NullString{String: token, Valid: true})
}

// ClearToken implements store.UserStore.ClearToken
// The column is set back to NULL, returning the user to the no-token state.
func (s *PostgresUserStore) ClearToken(ctx context.Context, username string) error {
	return s.updateToken(ctx, username, sql.NullString{})
}

func (s *PostgresUserStore) updateToken(ctx context.Context, username string, token sql.NullString) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE users
		SET token = $1
		WHERE username = $2
	`

	result, err := s.db.ExecContext(ctx, query, token, username)
	if err != nil {
		log.Error("failed to update session token",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("username", username))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("user not found for token update",
			slog.String("username", username))
		return store.ErrUserNotFound
	}

	return nil
}
