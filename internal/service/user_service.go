package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rayzor/contacts-api/internal/domain"
	"github.com/rayzor/contacts-api/internal/service/auth"
	"github.com/rayzor/contacts-api/internal/store"
	"github.com/rayzor/contacts-api/internal/validation"
)

// UserService provides registration, login, and profile operations.
type UserService interface {
	// Register creates a new user with a hashed password.
	// Returns store.ErrUsernameExists if the username is taken.
	Register(ctx context.Context, req RegisterUserRequest) (*domain.User, error)

	// Login checks the credentials and, on success, mints a fresh opaque
	// session token and persists it against the user row.
	// Returns domain.ErrInvalidCredentials on any credential failure;
	// unknown username and wrong password are indistinguishable.
	Login(ctx context.Context, req LoginUserRequest) (string, error)

	// GetCurrent returns the public projection of the given user.
	GetCurrent(ctx context.Context, username string) (*domain.User, error)

	// Update applies a partial merge of name and/or password. Only the
	// fields present in the request are applied; a supplied password is
	// re-hashed. Returns store.ErrUserNotFound if the user is absent.
	Update(ctx context.Context, req UpdateUserRequest) (*domain.User, error)

	// Logout clears the stored session token.
	// Returns store.ErrUserNotFound if the user is absent.
	Logout(ctx context.Context, username string) error
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	tokens    auth.TokenGenerator
	db        *sql.DB
	logger    *slog.Logger
}

// NewUserService creates a new UserService. db may be nil in tests that
// exercise the service against an in-memory store; registration then
// runs without a wrapping transaction.
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	tokens auth.TokenGenerator,
	db *sql.DB,
	logger *slog.Logger,
) UserService {
	return &UserServiceImpl{
		userStore: userStore,
		hasher:    hasher,
		verifier:  verifier,
		tokens:    tokens,
		db:        db,
		logger:    logger.With("component", "user_service"),
	}
}

// Register creates a new user with the given credentials.
func (s *UserServiceImpl) Register(ctx context.Context, req RegisterUserRequest) (*domain.User, error) {
	if err := validation.Validate(&req); err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("failed to hash password",
			"error", err,
			"username", req.Username)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:       req.Username,
		Name:           req.Name,
		HashedPassword: hashed,
	}

	register := func(ctx context.Context, userStore store.UserStore) error {
		count, err := userStore.CountByUsername(ctx, req.Username)
		if err != nil {
			return err
		}
		if count > 0 {
			return store.ErrUsernameExists
		}
		return userStore.Create(ctx, user)
	}

	// The count+insert pair runs inside one transaction; the unique
	// constraint on username still backstops a concurrent register.
	if s.db != nil {
		err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
			return register(ctx, s.userStore.WithTx(tx))
		})
	} else {
		err = register(ctx, s.userStore)
	}

	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			s.logger.Debug("attempted to register existing username",
				"username", req.Username)
		} else {
			s.logger.Error("failed to create user",
				"error", err,
				"username", req.Username)
		}
		return nil, err
	}

	s.logger.Info("user registered", "username", user.Username)
	return user, nil
}

// Login verifies the credentials and issues a session token.
func (s *UserServiceImpl) Login(ctx context.Context, req LoginUserRequest) (string, error) {
	if err := validation.Validate(&req); err != nil {
		return "", err
	}

	user, err := s.userStore.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login attempt for unknown username",
				"username", req.Username)
			return "", domain.ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user for login",
			"error", err,
			"username", req.Username)
		return "", err
	}

	if err := s.verifier.Compare(user.HashedPassword, req.Password); err != nil {
		s.logger.Debug("login attempt with wrong password",
			"username", req.Username)
		return "", domain.ErrInvalidCredentials
	}

	token := s.tokens.Generate()
	if err := s.userStore.SetToken(ctx, user.Username, token); err != nil {
		s.logger.Error("failed to persist session token",
			"error", err,
			"username", user.Username)
		return "", err
	}

	s.logger.Info("user logged in", "username", user.Username)
	return token, nil
}

// GetCurrent returns the user identified by username.
func (s *UserServiceImpl) GetCurrent(ctx context.Context, username string) (*domain.User, error) {
	if err := validation.Validate(&principal{Username: username}); err != nil {
		return nil, err
	}

	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			s.logger.Error("failed to retrieve user",
				"error", err,
				"username", username)
		}
		return nil, err
	}

	return user, nil
}

// Update applies the fields present in the request to the user row.
func (s *UserServiceImpl) Update(ctx context.Context, req UpdateUserRequest) (*domain.User, error) {
	if err := validation.Validate(&req); err != nil {
		return nil, err
	}

	count, err := s.userStore.CountByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Error("failed to count user for update",
			"error", err,
			"username", req.Username)
		return nil, err
	}
	if count == 0 {
		return nil, store.ErrUserNotFound
	}

	var hashed string
	if req.Password != "" {
		hashed, err = s.hasher.Hash(req.Password)
		if err != nil {
			s.logger.Error("failed to hash password for update",
				"error", err,
				"username", req.Username)
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	user, err := s.userStore.UpdateProfile(ctx, req.Username, req.Name, hashed)
	if err != nil {
		s.logger.Error("failed to update user",
			"error", err,
			"username", req.Username)
		return nil, err
	}

	s.logger.Info("user updated", "username", user.Username)
	return user, nil
}

// Logout clears the user's session token.
func (s *UserServiceImpl) Logout(ctx context.Context, username string) error {
	if err := validation.Validate(&principal{Username: username}); err != nil {
		return err
	}

	if _, err := s.userStore.GetByUsername(ctx, username); err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			s.logger.Error("failed to look up user for logout",
				"error", err,
				"username", username)
		}
		return err
	}

	if err := s.userStore.ClearToken(ctx, username); err != nil {
		s.logger.Error("failed to clear session token",
			"error", err,
			"username", username)
		return err
	}

	s.logger.Info("user logged out", "username", username)
	return nil
}
