package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rayzor/contacts-api/internal/domain"
	"github.com/rayzor/contacts-api/internal/store"
	"github.com/rayzor/contacts-api/internal/validation"
)

// AddressService provides CRUD over addresses nested under contacts.
// Every operation first re-proves the parent contact's ownership; an
// address is never addressed through a bare contact id.
type AddressService interface {
	// Create inserts a new address under the contact, after confirming
	// the contact belongs to the owner.
	Create(ctx context.Context, owner string, contactID int64, req CreateAddressRequest) (*domain.Address, error)

	// Get fetches the unique address matching id and contact.
	// Returns store.ErrAddressNotFound if absent, or
	// store.ErrContactNotFound if the contact check fails.
	Get(ctx context.Context, owner string, contactID, addressID int64) (*domain.Address, error)

	// Update full-replaces all address fields after the contact check
	// and an existence check on the address itself.
	Update(ctx context.Context, owner string, contactID int64, req UpdateAddressRequest) (*domain.Address, error)

	// Remove deletes the address after the same pair of checks.
	Remove(ctx context.Context, owner string, contactID, addressID int64) error
}

// AddressServiceImpl implements the AddressService interface.
type AddressServiceImpl struct {
	contactStore store.ContactStore
	addressStore store.AddressStore
	logger       *slog.Logger
}

// NewAddressService creates a new AddressService.
func NewAddressService(
	contactStore store.ContactStore,
	addressStore store.AddressStore,
	logger *slog.Logger,
) AddressService {
	return &AddressServiceImpl{
		contactStore: contactStore,
		addressStore: addressStore,
		logger:       logger.With("component", "address_service"),
	}
}

// checkContact re-derives the contact's ownership for the caller. It is
// the mandatory prefix of every address operation.
func (s *AddressServiceImpl) checkContact(ctx context.Context, owner string, contactID int64) error {
	if err := validation.Validate(&identifier{ID: contactID}); err != nil {
		return err
	}

	count, err := s.contactStore.CountByIDAndOwner(ctx, contactID, owner)
	if err != nil {
		s.logger.Error("failed to count contact for address operation",
			"error", err,
			"contact_id", contactID,
			"owner", owner)
		return err
	}
	if count == 0 {
		return store.ErrContactNotFound
	}

	return nil
}

// Create inserts a new address under the verified contact.
func (s *AddressServiceImpl) Create(ctx context.Context, owner string, contactID int64, req CreateAddressRequest) (*domain.Address, error) {
	if err := s.checkContact(ctx, owner, contactID); err != nil {
		return nil, err
	}

	if err := validation.Validate(&req); err != nil {
		return nil, err
	}

	address := &domain.Address{
		ContactID:  contactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}

	if err := s.addressStore.Create(ctx, address); err != nil {
		s.logger.Error("failed to create address",
			"error", err,
			"contact_id", contactID,
			"owner", owner)
		return nil, err
	}

	s.logger.Debug("address created",
		"address_id", address.ID,
		"contact_id", contactID,
		"owner", owner)
	return address, nil
}

// Get fetches an address scoped to the verified contact.
func (s *AddressServiceImpl) Get(ctx context.Context, owner string, contactID, addressID int64) (*domain.Address, error) {
	if err := s.checkContact(ctx, owner, contactID); err != nil {
		return nil, err
	}

	if err := validation.Validate(&identifier{ID: addressID}); err != nil {
		return nil, err
	}

	address, err := s.addressStore.GetByIDAndContact(ctx, addressID, contactID)
	if err != nil {
		if !errors.Is(err, store.ErrAddressNotFound) {
			s.logger.Error("failed to get address",
				"error", err,
				"address_id", addressID,
				"contact_id", contactID,
				"owner", owner)
		}
		return nil, err
	}

	return address, nil
}

// Update full-replaces the address's fields.
func (s *AddressServiceImpl) Update(ctx context.Context, owner string, contactID int64, req UpdateAddressRequest) (*domain.Address, error) {
	if err := s.checkContact(ctx, owner, contactID); err != nil {
		return nil, err
	}

	if err := validation.Validate(&req); err != nil {
		return nil, err
	}

	count, err := s.addressStore.CountByIDAndContact(ctx, req.ID, contactID)
	if err != nil {
		s.logger.Error("failed to count address for update",
			"error", err,
			"address_id", req.ID,
			"contact_id", contactID,
			"owner", owner)
		return nil, err
	}
	if count == 0 {
		return nil, store.ErrAddressNotFound
	}

	address := &domain.Address{
		ID:         req.ID,
		ContactID:  contactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}

	if err := s.addressStore.Update(ctx, address); err != nil {
		s.logger.Error("failed to update address",
			"error", err,
			"address_id", req.ID,
			"contact_id", contactID,
			"owner", owner)
		return nil, err
	}

	s.logger.Debug("address updated",
		"address_id", address.ID,
		"contact_id", contactID,
		"owner", owner)
	return address, nil
}

// Remove deletes the address after the ownership-chain checks.
func (s *AddressServiceImpl) Remove(ctx context.Context, owner string, contactID, addressID int64) error {
	if err := s.checkContact(ctx, owner, contactID); err != nil {
		return err
	}

	if err := validation.Validate(&identifier{ID: addressID}); err != nil {
		return err
	}

	count, err := s.addressStore.CountByIDAndContact(ctx, addressID, contactID)
	if err != nil {
		s.logger.Error("failed to count address for delete",
			"error", err,
			"address_id", addressID,
			"contact_id", contactID,
			"owner", owner)
		return err
	}
	if count == 0 {
		return store.ErrAddressNotFound
	}

	if err := s.addressStore.Delete(ctx, addressID); err != nil {
		s.logger.Error("failed to delete address",
			"error", err,
			"address_id", addressID,
			"contact_id", contactID,
			"owner", owner)
		return err
	}

	s.logger.Debug("address deleted",
		"address_id", addressID,
		"contact_id", contactID,
		"owner", owner)
	return nil
}
