package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rayzor/contacts-api/internal/domain"
	"github.com/rayzor/contacts-api/internal/store"
	"github.com/rayzor/contacts-api/internal/validation"
)

// ContactService provides ownership-scoped CRUD over contacts. Every
// operation takes the caller's identity and refuses to act unless the
// target contact belongs to it; a contact under a different owner is
// reported as not found, never as forbidden.
type ContactService interface {
	// Create inserts a new contact under the owner's identity.
	Create(ctx context.Context, owner string, req CreateContactRequest) (*domain.Contact, error)

	// Get fetches the unique contact matching id and owner.
	// Returns store.ErrContactNotFound if absent.
	Get(ctx context.Context, owner string, contactID int64) (*domain.Contact, error)

	// Update full-replaces all contact fields after confirming the row
	// exists under the owner. Returns store.ErrContactNotFound otherwise.
	Update(ctx context.Context, owner string, req UpdateContactRequest) (*domain.Contact, error)

	// Remove deletes the contact after the same existence check.
	Remove(ctx context.Context, owner string, contactID int64) error

	// Search returns the owner's contacts matching the filter, plus
	// paging metadata. No filters means an unfiltered owner listing.
	Search(ctx context.Context, owner string, req SearchContactRequest) ([]*domain.Contact, Paging, error)
}

// ContactServiceImpl implements the ContactService interface.
type ContactServiceImpl struct {
	contactStore store.ContactStore
	logger       *slog.Logger
}

// NewContactService creates a new ContactService.
func NewContactService(contactStore store.ContactStore, logger *slog.Logger) ContactService {
	return &ContactServiceImpl{
		contactStore: contactStore,
		logger:       logger.With("component", "contact_service"),
	}
}

// Create inserts a new contact owned by owner.
func (s *ContactServiceImpl) Create(ctx context.Context, owner string, req CreateContactRequest) (*domain.Contact, error) {
	if err := validation.Validate(&req); err != nil {
		return nil, err
	}

	contact := &domain.Contact{
		Username:  owner,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	if err := s.contactStore.Create(ctx, contact); err != nil {
		s.logger.Error("failed to create contact",
			"error", err,
			"owner", owner)
		return nil, err
	}

	s.logger.Debug("contact created",
		"contact_id", contact.ID,
		"owner", owner)
	return contact, nil
}

// Get fetches a contact scoped to the owner.
func (s *ContactServiceImpl) Get(ctx context.Context, owner string, contactID int64) (*domain.Contact, error) {
	if err := validation.Validate(&identifier{ID: contactID}); err != nil {
		return nil, err
	}

	contact, err := s.contactStore.GetByIDAndOwner(ctx, contactID, owner)
	if err != nil {
		if !errors.Is(err, store.ErrContactNotFound) {
			s.logger.Error("failed to get contact",
				"error", err,
				"contact_id", contactID,
				"owner", owner)
		}
		return nil, err
	}

	return contact, nil
}

// Update full-replaces the contact's fields.
func (s *ContactServiceImpl) Update(ctx context.Context, owner string, req UpdateContactRequest) (*domain.Contact, error) {
	if err := validation.Validate(&req); err != nil {
		return nil, err
	}

	count, err := s.contactStore.CountByIDAndOwner(ctx, req.ID, owner)
	if err != nil {
		s.logger.Error("failed to count contact for update",
			"error", err,
			"contact_id", req.ID,
			"owner", owner)
		return nil, err
	}
	if count == 0 {
		return nil, store.ErrContactNotFound
	}

	contact := &domain.Contact{
		ID:        req.ID,
		Username:  owner,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}

	if err := s.contactStore.Update(ctx, contact); err != nil {
		s.logger.Error("failed to update contact",
			"error", err,
			"contact_id", req.ID,
			"owner", owner)
		return nil, err
	}

	s.logger.Debug("contact updated",
		"contact_id", contact.ID,
		"owner", owner)
	return contact, nil
}

// Remove deletes the contact after confirming ownership.
func (s *ContactServiceImpl) Remove(ctx context.Context, owner string, contactID int64) error {
	if err := validation.Validate(&identifier{ID: contactID}); err != nil {
		return err
	}

	count, err := s.contactStore.CountByIDAndOwner(ctx, contactID, owner)
	if err != nil {
		s.logger.Error("failed to count contact for delete",
			"error", err,
			"contact_id", contactID,
			"owner", owner)
		return err
	}
	if count == 0 {
		return store.ErrContactNotFound
	}

	if err := s.contactStore.Delete(ctx, contactID); err != nil {
		s.logger.Error("failed to delete contact",
			"error", err,
			"contact_id", contactID,
			"owner", owner)
		return err
	}

	s.logger.Debug("contact deleted",
		"contact_id", contactID,
		"owner", owner)
	return nil
}

// Search returns a page of the owner's contacts matching the filter.
func (s *ContactServiceImpl) Search(ctx context.Context, owner string, req SearchContactRequest) ([]*domain.Contact, Paging, error) {
	if err := validation.Validate(&req); err != nil {
		return nil, Paging{}, err
	}

	filter := store.ContactFilter{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Page:  req.Page,
		Size:  req.Size,
	}

	contacts, total, err := s.contactStore.Search(ctx, owner, filter)
	if err != nil {
		s.logger.Error("failed to search contacts",
			"error", err,
			"owner", owner)
		return nil, Paging{}, err
	}

	paging := Paging{
		Page:      req.Page,
		TotalItem: total,
		TotalPage: (total + int64(req.Size) - 1) / int64(req.Size),
	}

	return contacts, paging, nil
}
