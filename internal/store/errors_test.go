package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrorFamily(t *testing.T) {
	t.Parallel()

	for _, err := range []error{ErrUserNotFound, ErrContactNotFound, ErrAddressNotFound} {
		assert.ErrorIs(t, err, ErrNotFound)
		assert.True(t, IsNotFoundError(err))
		assert.True(t, IsNotFoundError(fmt.Errorf("store: %w", err)))
	}

	// The entity-specific errors stay distinct from each other.
	assert.NotErrorIs(t, ErrContactNotFound, ErrAddressNotFound)
	assert.NotErrorIs(t, ErrAddressNotFound, ErrContactNotFound)

	assert.False(t, IsNotFoundError(errors.New("connection refused")))
	assert.False(t, IsNotFoundError(nil))
}

func TestDuplicateErrorFamily(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, ErrUsernameExists, ErrDuplicate)
	assert.True(t, IsDuplicateError(ErrUsernameExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("store: %w", ErrUsernameExists)))
	assert.False(t, IsDuplicateError(ErrNotFound))
}

func TestContactFilterOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		page, size, want int
	}{
		{page: 1, size: 10, want: 0},
		{page: 2, size: 10, want: 10},
		{page: 3, size: 5, want: 10},
	}

	for _, tt := range tests {
		filter := ContactFilter{Page: tt.page, Size: tt.size}
		assert.Equal(t, tt.want, filter.Offset())
	}
}
