package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rayzor/contacts-api/internal/api/shared"
	"github.com/rayzor/contacts-api/internal/domain"
	"github.com/rayzor/contacts-api/internal/store"
)

// AuthMiddleware resolves opaque session tokens to user identities.
type AuthMiddleware struct {
	userStore store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		userStore: userStore,
	}
}

// Authenticate reads the opaque token from the Authorization header,
// resolves it to the user holding it, and adds that user to the request
// context for downstream handlers. The header carries the bare token,
// no "Bearer " prefix. Any failure yields 401 "Unauthorized" without
// distinguishing a missing token from an unknown one.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := m.userStore.GetByToken(r.Context(), token)
		if err != nil {
			if !errors.Is(err, store.ErrUserNotFound) {
				slog.Error("failed to resolve session token", "error", err)
			}
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUser extracts the authenticated user from the request context.
// Returns the user and a boolean indicating if it was found.
func GetUser(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(shared.UserContextKey).(*domain.User)
	return user, ok
}
