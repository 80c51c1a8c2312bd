package api

import (
	"net/http"

	"github.com/rayzor/contacts-api/internal/api/shared"
	"github.com/rayzor/contacts-api/internal/service"
)

// AddressHandler handles address API requests nested under contacts.
type AddressHandler struct {
	addressService service.AddressService
}

// NewAddressHandler creates a new AddressHandler with the given dependencies.
func NewAddressHandler(addressService service.AddressService) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
	}
}

// Create handles POST /api/contacts/{contactId}/addresses.
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	contactID, err := getPathID(r, "contactId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	var req service.CreateAddressRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	address, err := h.addressService.Create(r.Context(), user.Username, contactID, req)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, toAddressResponse(address))
}

// Get handles GET /api/contacts/{contactId}/addresses/{addressId}.
func (h *AddressHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	contactID, err := getPathID(r, "contactId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	addressID, err := getPathID(r, "addressId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	address, err := h.addressService.Get(r.Context(), user.Username, contactID, addressID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, toAddressResponse(address))
}

// Update handles PUT /api/contacts/{contactId}/addresses/{addressId}.
func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	contactID, err := getPathID(r, "contactId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	addressID, err := getPathID(r, "addressId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	var req service.UpdateAddressRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	// The path parameter is authoritative over any body-supplied id.
	req.ID = addressID

	address, err := h.addressService.Update(r.Context(), user.Username, contactID, req)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, toAddressResponse(address))
}

// Remove handles DELETE /api/contacts/{contactId}/addresses/{addressId}.
func (h *AddressHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	contactID, err := getPathID(r, "contactId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	addressID, err := getPathID(r, "addressId")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	if err := h.addressService.Remove(r.Context(), user.Username, contactID, addressID); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "OK")
}
