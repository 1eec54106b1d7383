package service

import (
	"context"

	"contactbook/internal/apperrors"
	"contactbook/internal/model"
	"contactbook/internal/repository"
)

// ContactService handles contact CRUD. Every operation takes the caller's
// verified user id and never reaches across tenant boundaries.
type ContactService interface {
	Create(ctx context.Context, ownerID uint64, name, phone, email string) (*model.Contact, error)
	List(ctx context.Context, ownerID uint64) ([]model.Contact, error)
	Update(ctx context.Context, ownerID, contactID uint64, upd model.ContactUpdate) (*model.Contact, error)
	Delete(ctx context.Context, ownerID, contactID uint64) error
}

type contactService struct {
	contactRepo repository.ContactRepository
}

// NewContactService creates a new contact service.
func NewContactService(contactRepo repository.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

// Create validates the name and stores a new contact owned by ownerID.
func (s *contactService) Create(ctx context.Context, ownerID uint64, name, phone, email string) (*model.Contact, error) {
	if name == "" {
		return nil, apperrors.ErrNameRequired
	}

	contact := &model.Contact{
		OwnerID: ownerID,
		Name:    name,
		Phone:   phone,
		Email:   email,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	return contact, nil
}

// List returns the owner's contacts in creation order.
func (s *contactService) List(ctx context.Context, ownerID uint64) ([]model.Contact, error) {
	return s.contactRepo.ListByOwner(ctx, ownerID)
}

// Update applies a partial update. A supplied-but-empty name is rejected;
// contacts always keep a non-empty name.
func (s *contactService) Update(ctx context.Context, ownerID, contactID uint64, upd model.ContactUpdate) (*model.Contact, error) {
	if upd.Name != nil && *upd.Name == "" {
		return nil, apperrors.ErrNameRequired
	}
	return s.contactRepo.Update(ctx, ownerID, contactID, upd)
}

// Delete removes the contact if the caller owns it.
func (s *contactService) Delete(ctx context.Context, ownerID, contactID uint64) error {
	return s.contactRepo.Delete(ctx, ownerID, contactID)
}
