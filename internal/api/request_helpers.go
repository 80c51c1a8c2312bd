package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rayzor/contacts-api/internal/api/middleware"
	"github.com/rayzor/contacts-api/internal/api/shared"
	"github.com/rayzor/contacts-api/internal/domain"
)

// requireUser extracts the authenticated user placed in the context by
// the auth middleware, writing a 401 response if it is absent.
func requireUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := middleware.GetUser(r)
	if !ok || user == nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	return user, true
}

// getPathID extracts a numeric ID from the URL path parameters. A
// non-numeric segment fails the same way a non-positive one does: as a
// validation error, so the response is a 400 rather than a routing 404.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(fmt.Sprintf("%q is required", paramName))
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(fmt.Sprintf("%q must be a positive number", paramName))
	}

	return id, nil
}
