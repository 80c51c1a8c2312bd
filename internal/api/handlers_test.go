package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	apimiddleware "github.com/rayzor/contacts-api/internal/api/middleware"
	"github.com/rayzor/contacts-api/internal/domain"
	"github.com/rayzor/contacts-api/internal/mocks"
	"github.com/rayzor/contacts-api/internal/service"
	"github.com/rayzor/contacts-api/internal/service/auth"
)

// testEnv assembles the full API surface over mock stores: real
// services, real middleware, real routing. Requests go through the
// same path they would in production, minus the database.
type testEnv struct {
	router    http.Handler
	users     *mocks.MockUserStore
	contacts  *mocks.MockContactStore
	addresses *mocks.MockAddressStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	users := mocks.NewMockUserStore()
	contacts := mocks.NewMockContactStore()
	addresses := mocks.NewMockAddressStore()

	hasher := auth.NewBcryptHasher()
	userService := service.NewUserService(users, hasher, hasher, auth.NewUUIDTokenGenerator(), nil, logger)
	contactService := service.NewContactService(contacts, logger)
	addressService := service.NewAddressService(contacts, addresses, logger)

	userHandler := NewUserHandler(userService)
	contactHandler := NewContactHandler(contactService)
	addressHandler := NewAddressHandler(addressService)
	authMiddleware := apimiddleware.NewAuthMiddleware(users)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/users", userHandler.Register)
		r.Post("/users/login", userHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/users/current", userHandler.Current)
			r.Patch("/users/current", userHandler.Update)
			r.Delete("/users/logout", userHandler.Logout)

			r.Post("/contacts", contactHandler.Create)
			r.Get("/contacts", contactHandler.Search)
			r.Get("/contacts/{contactId}", contactHandler.Get)
			r.Put("/contacts/{contactId}", contactHandler.Update)
			r.Delete("/contacts/{contactId}", contactHandler.Remove)

			r.Post("/contacts/{contactId}/addresses", addressHandler.Create)
			r.Get("/contacts/{contactId}/addresses/{addressId}", addressHandler.Get)
			r.Put("/contacts/{contactId}/addresses/{addressId}", addressHandler.Update)
			r.Delete("/contacts/{contactId}/addresses/{addressId}", addressHandler.Remove)
		})
	})

	return &testEnv{
		router:    r,
		users:     users,
		contacts:  contacts,
		addresses: addresses,
	}
}

// seedUser puts a user with an active session token straight into the
// store, bypassing the register/login round trip.
func (e *testEnv) seedUser(t *testing.T, username, token string) {
	t.Helper()
	e.users.Users[username] = &domain.User{
		Username:       username,
		Name:           "Test " + username,
		HashedPassword: "$2a$10$unused",
		Token:          token,
	}
}

// seedContact inserts a contact owned by username and returns its id.
func (e *testEnv) seedContact(t *testing.T, username, firstName string) int64 {
	t.Helper()
	contact := &domain.Contact{Username: username, FirstName: firstName}
	require.NoError(t, e.contacts.Create(context.Background(), contact))
	return contact.ID
}

// do performs a request against the router. token == "" sends no
// Authorization header.
func (e *testEnv) do(t *testing.T, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// decodeEnvelope unmarshals the response body into the generic
// success/failure envelope shape.
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Paging json.RawMessage `json:"paging"`
	Errors string          `json:"errors"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}
