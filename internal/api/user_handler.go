package api

import (
	"net/http"

	"github.com/rayzor/contacts-api/internal/api/shared"
	"github.com/rayzor/contacts-api/internal/service"
)

// UserHandler handles user and session API requests.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register handles POST /api/users.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	user, err := h.userService.Register(r.Context(), req)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, toUserResponse(user))
}

// Login handles POST /api/users/login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	token, err := h.userService.Login(r.Context(), req)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, TokenResponse{Token: token})
}

// Current handles GET /api/users/current.
func (h *UserHandler) Current(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	current, err := h.userService.GetCurrent(r.Context(), user.Username)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, toUserResponse(current))
}

// Update handles PATCH /api/users/current.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	// The target is always the authenticated identity, never a
	// body-supplied username.
	req.Username = user.Username

	updated, err := h.userService.Update(r.Context(), req)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, toUserResponse(updated))
}

// Logout handles DELETE /api/users/logout.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.userService.Logout(r.Context(), user.Username); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "OK")
}
