package repository

import (
	"context"
	"sync"

	"contactbook/internal/apperrors"
	"contactbook/internal/model"
)

// ContactRepository defines persistence operations for contacts. Every
// operation is scoped to an owning user; a contact owned by someone else is
// reported exactly like a contact that does not exist.
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	ListByOwner(ctx context.Context, ownerID uint64) ([]model.Contact, error)
	Update(ctx context.Context, ownerID, id uint64, upd model.ContactUpdate) (*model.Contact, error)
	Delete(ctx context.Context, ownerID, id uint64) error
}

type contactRepository struct {
	mu       sync.RWMutex
	contacts map[uint64]*model.Contact
	// order preserves insertion order for listing; ids are assigned
	// sequentially across all owners.
	order  []uint64
	nextID uint64
}

// NewContactRepository builds an in-memory repository.
func NewContactRepository() ContactRepository {
	return &contactRepository{
		contacts: make(map[uint64]*model.Contact),
	}
}

// Create assigns the next sequential id and inserts the contact.
func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	contact.ID = r.nextID
	stored := *contact
	r.contacts[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return nil
}

// ListByOwner returns the owner's contacts in creation order.
func (r *contactRepository) ListByOwner(ctx context.Context, ownerID uint64) ([]model.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Contact, 0)
	for _, id := range r.order {
		if c := r.contacts[id]; c.OwnerID == ownerID {
			result = append(result, *c)
		}
	}
	return result, nil
}

// Update merges the supplied fields into the contact. Id and owner are not
// touchable through upd; unsupplied fields keep their prior values.
func (r *contactRepository) Update(ctx context.Context, ownerID, id uint64, upd model.ContactUpdate) (*model.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contact, ok := r.contacts[id]
	if !ok || contact.OwnerID != ownerID {
		return nil, apperrors.ErrContactNotFound
	}

	if upd.Name != nil {
		contact.Name = *upd.Name
	}
	if upd.Phone != nil {
		contact.Phone = *upd.Phone
	}
	if upd.Email != nil {
		contact.Email = *upd.Email
	}

	updated := *contact
	return &updated, nil
}

// Delete removes the contact and its position in the listing order.
func (r *contactRepository) Delete(ctx context.Context, ownerID, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	contact, ok := r.contacts[id]
	if !ok || contact.OwnerID != ownerID {
		return apperrors.ErrContactNotFound
	}

	delete(r.contacts, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
