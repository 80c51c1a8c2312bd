package shared

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rayzor/contacts-api/internal/domain"
)

type decodeTarget struct {
	Username string `json:"username"`
	Count    int    `json:"count"`
}

func decodeBody(t *testing.T, body string) (decodeTarget, error) {
	t.Helper()
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	var target decodeTarget
	err := DecodeJSON(req, &target)
	return target, err
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	target, err := decodeBody(t, `{"username":"rayzor","count":3}`)
	require.NoError(t, err)
	assert.Equal(t, "rayzor", target.Username)
	assert.Equal(t, 3, target.Count)
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := decodeBody(t, `{"username":"rayzor","role":"admin"}`)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "role")
}

func TestDecodeJSONRejectsWrongTypes(t *testing.T) {
	t.Parallel()

	_, err := decodeBody(t, `{"count":"three"}`)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "count")
}

func TestDecodeJSONRejectsTrailingContent(t *testing.T) {
	t.Parallel()

	_, err := decodeBody(t, `{"username":"rayzor"}{"username":"again"}`)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDecodeJSONRejectsMalformedBody(t *testing.T) {
	t.Parallel()

	_, err := decodeBody(t, `{"username":`)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
