package api

import (
	"errors"
	"net/http"

	"github.com/rayzor/contacts-api/internal/api/shared"
	"github.com/rayzor/contacts-api/internal/domain"
	"github.com/rayzor/contacts-api/internal/store"
)

// HandleServiceError is the single centralized responder: it maps the
// error taxonomy to an HTTP status and serializes the failure envelope.
// Every handler boundary forwards errors here.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := mapError(err)
	shared.RespondWithError(w, r, status, message)
}

// mapError maps internal errors to status codes and client messages.
// An unrecognized error is an internal failure; its message passes
// through verbatim.
func mapError(err error) (int, string) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, verr.Message
	}

	switch {
	// Duplicate username on registration. 400, not 409.
	case errors.Is(err, store.ErrUsernameExists):
		return http.StatusBadRequest, "username already exist"

	// Credential failures: unknown username and wrong password are
	// deliberately indistinguishable.
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Username or password wrong"

	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"

	// Ownership-chain failures, from most to least nested.
	case errors.Is(err, store.ErrAddressNotFound):
		return http.StatusNotFound, "Address is not found"

	case errors.Is(err, store.ErrContactNotFound):
		return http.StatusNotFound, "Contact is not found"

	case errors.Is(err, store.ErrUserNotFound):
		return http.StatusNotFound, "User is not found"

	default:
		return http.StatusInternalServerError, err.Error()
	}
}
