package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/users", "",
		`{"username":"rayzor","password":"secret","name":"Rayzor Dev"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeEnvelope(t, rec)
	var user UserResponse
	require.NoError(t, json.Unmarshal(resp.Data, &user))
	assert.Equal(t, "rayzor", user.Username)
	assert.Equal(t, "Rayzor Dev", user.Name)

	// The raw body must never leak the password or a token field.
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestRegisterEndpointDuplicate(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/users", "",
		`{"username":"rayzor","password":"secret","name":"Rayzor Dev"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/users", "",
		`{"username":"rayzor","password":"other","name":"Somebody"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "username already exist", decodeEnvelope(t, rec).Errors)
}

func TestRegisterEndpointValidation(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/users", "", `{"username":"","password":"","name":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, decodeEnvelope(t, rec).Errors)
}

func TestRegisterEndpointRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/users", "",
		`{"username":"rayzor","password":"secret","name":"Rayzor","role":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeEnvelope(t, rec).Errors, "role")
}

func TestLoginEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/users", "",
		`{"username":"rayzor","password":"secret","name":"Rayzor Dev"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/users/login", "",
		`{"username":"rayzor","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var token TokenResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &token))
	assert.NotEmpty(t, token.Token)

	// The issued token authenticates subsequent requests.
	rec = env.do(t, http.MethodGet, "/api/users/current", token.Token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginEndpointWrongCredentials(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/users", "",
		`{"username":"rayzor","password":"secret","name":"Rayzor Dev"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// Wrong password and unknown username produce identical responses.
	wrongPass := env.do(t, http.MethodPost, "/api/users/login", "",
		`{"username":"rayzor","password":"nope"}`)
	unknownUser := env.do(t, http.MethodPost, "/api/users/login", "",
		`{"username":"ghost","password":"secret"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, "Username or password wrong", decodeEnvelope(t, wrongPass).Errors)
	assert.Equal(t, wrongPass.Body.String(), unknownUser.Body.String())
}

func TestCurrentEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.seedUser(t, "rayzor", "tok-1")

	rec := env.do(t, http.MethodGet, "/api/users/current", "tok-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var user UserResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &user))
	assert.Equal(t, "rayzor", user.Username)
}

func TestUpdateCurrentEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.seedUser(t, "rayzor", "tok-1")

	// A body-supplied username is ignored; the change lands on the
	// authenticated user.
	rec := env.do(t, http.MethodPatch, "/api/users/current", "tok-1",
		`{"username":"someone-else","name":"Renamed"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var user UserResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &user))
	assert.Equal(t, "rayzor", user.Username)
	assert.Equal(t, "Renamed", user.Name)
	assert.Equal(t, "Renamed", env.users.Users["rayzor"].Name)
}

func TestLogoutEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.seedUser(t, "rayzor", "tok-1")

	rec := env.do(t, http.MethodDelete, "/api/users/logout", "tok-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":"OK"}`, rec.Body.String())

	// The token is now dead.
	rec = env.do(t, http.MethodGet, "/api/users/current", "tok-1", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
