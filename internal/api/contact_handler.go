package api

import (
	"net/http"
	"strconv"

	"github.com/rayzor/contacts-api/internal/api/shared"
	"github.com/rayzor/contacts-api/internal/domain"
	"github.com/rayzor/contacts-api/internal/service"
)

// ContactHandler handles contact API requests.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new ContactHandler with the given dependencies.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Create handles POST /api/contacts.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req service.CreateContactRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	contact, err := h.contactService.Create(r.Context(), user.Username, req)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, toContactResponse(contact))
}

// Get handles GET /api/contacts/{contactId}.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	contactID, err := getPathID(r, "contactId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	contact, err := h.contactService.Get(r.Context(), user.Username, contactID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, toContactResponse(contact))
}

// Update handles PUT /api/contacts/{contactId}.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	contactID, err := getPathID(r, "contactId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	var req service.UpdateContactRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	// The path parameter is authoritative over any body-supplied id.
	req.ID = contactID

	contact, err := h.contactService.Update(r.Context(), user.Username, req)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, toContactResponse(contact))
}

// Remove handles DELETE /api/contacts/{contactId}.
func (h *ContactHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	contactID, err := getPathID(r, "contactId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	if err := h.contactService.Remove(r.Context(), user.Username, contactID); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "OK")
}

// Search handles GET /api/contacts.
func (h *ContactHandler) Search(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	req, err := searchRequestFromQuery(r)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	contacts, paging, err := h.contactService.Search(r.Context(), user.Username, req)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithPage(w, r, http.StatusOK, toContactResponses(contacts), paging)
}

// searchRequestFromQuery builds a search request from the URL query
// parameters. Missing page/size fall back to the schema defaults;
// non-numeric values are validation errors.
func searchRequestFromQuery(r *http.Request) (service.SearchContactRequest, error) {
	query := r.URL.Query()

	req := service.SearchContactRequest{
		Name:  query.Get("name"),
		Email: query.Get("email"),
		Phone: query.Get("phone"),
	}

	var err error
	if req.Page, err = queryInt(query.Get("page"), "page"); err != nil {
		return service.SearchContactRequest{}, err
	}
	if req.Size, err = queryInt(query.Get("size"), "size"); err != nil {
		return service.SearchContactRequest{}, err
	}

	return req, nil
}

func queryInt(value, name string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, domain.NewValidationError("\"" + name + "\" must be a number")
	}
	return n, nil
}
