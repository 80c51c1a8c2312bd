package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayzor/contacts-api/internal/domain"
	"github.com/rayzor/contacts-api/internal/service"
	"github.com/rayzor/contacts-api/internal/validation"
)

func TestValidateCollectsAllViolations(t *testing.T) {
	t.Parallel()

	// Both username and password are missing; the gate must report both
	// in a single error rather than stopping at the first.
	req := service.RegisterUserRequest{Name: "Rayzor"}

	err := validation.Validate(&req)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, `"username" is required`)
	assert.Contains(t, verr.Message, `"password" is required`)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestValidateUsesJSONFieldNames(t *testing.T) {
	t.Parallel()

	req := service.CreateContactRequest{}

	err := validation.Validate(&req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"first_name"`)
	assert.NotContains(t, err.Error(), "FirstName")
}

func TestValidateEmailFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid email", email: "example@example.com", wantErr: false},
		{name: "empty email is optional", email: "", wantErr: false},
		{name: "missing domain", email: "example@", wantErr: true},
		{name: "not an email", email: "not-an-email", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := service.CreateContactRequest{
				FirstName: "rayzor",
				Email:     tc.email,
			}

			err := validation.Validate(&req)
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), `"email" must be a valid email`)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateAppliesSearchDefaults(t *testing.T) {
	t.Parallel()

	req := service.SearchContactRequest{}

	require.NoError(t, validation.Validate(&req))
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 10, req.Size)
}

func TestValidateKeepsExplicitPaging(t *testing.T) {
	t.Parallel()

	req := service.SearchContactRequest{Page: 3, Size: 25}

	require.NoError(t, validation.Validate(&req))
	assert.Equal(t, 3, req.Page)
	assert.Equal(t, 25, req.Size)
}

func TestValidateRejectsNegativePaging(t *testing.T) {
	t.Parallel()

	req := service.SearchContactRequest{Page: -1, Size: 10}

	err := validation.Validate(&req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"page"`)
}

func TestValidateRejectsNonPositiveIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   int64
	}{
		{name: "zero", id: 0},
		{name: "negative", id: -7},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := service.UpdateContactRequest{ID: tc.id, FirstName: "rayzor"}

			err := validation.Validate(&req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), `"id"`)
		})
	}
}

func TestValidateMaxLengths(t *testing.T) {
	t.Parallel()

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}

	req := service.RegisterUserRequest{
		Username: string(long),
		Password: "secret",
		Name:     "Rayzor",
	}

	err := validation.Validate(&req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"username" must be at most 100 characters`)
}

func TestValidateAddressRequiredFields(t *testing.T) {
	t.Parallel()

	req := service.CreateAddressRequest{Street: "Main St"}

	err := validation.Validate(&req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"country" is required`)
	assert.Contains(t, err.Error(), `"postal_code" is required`)
}
