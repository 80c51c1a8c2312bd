package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rayzor/contacts-api/internal/domain"
	"github.com/rayzor/contacts-api/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "validation error uses its own message",
			err:         domain.NewValidationError(`"username" is required`),
			wantStatus:  http.StatusBadRequest,
			wantMessage: `"username" is required`,
		},
		{
			name:        "duplicate username",
			err:         store.ErrUsernameExists,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "username already exist",
		},
		{
			name:        "invalid credentials",
			err:         domain.ErrInvalidCredentials,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Username or password wrong",
		},
		{
			name:        "unauthorized",
			err:         domain.ErrUnauthorized,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthorized",
		},
		{
			name:        "address not found",
			err:         store.ErrAddressNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Address is not found",
		},
		{
			name:        "contact not found",
			err:         store.ErrContactNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Contact is not found",
		},
		{
			name:        "user not found",
			err:         store.ErrUserNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "User is not found",
		},
		{
			name:        "unknown error is internal",
			err:         errors.New("connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := mapError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestMapErrorUnwrapsChains(t *testing.T) {
	t.Parallel()

	// Wrapped sentinels still map to their taxonomy entry.
	status, message := mapError(fmt.Errorf("looking up contact: %w", store.ErrContactNotFound))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Contact is not found", message)

	// ErrInvalidCredentials wraps ErrUnauthorized but must take the
	// more specific branch.
	status, message = mapError(domain.ErrInvalidCredentials)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Username or password wrong", message)
}
