package repository

import (
	"context"
	"errors"
	"sync"

	"contactbook/internal/apperrors"
	"contactbook/internal/model"
)

// ErrUserNotFound is returned by lookups that miss. The auth service maps it
// to the credential error; it never reaches the HTTP surface directly.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines persistence operations for users. The backing
// store lives for the process lifetime only.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

type userRepository struct {
	mu      sync.RWMutex
	users   map[uint64]*model.User
	byEmail map[string]uint64
	nextID  uint64
}

// NewUserRepository builds an in-memory repository.
func NewUserRepository() UserRepository {
	return &userRepository{
		users:   make(map[uint64]*model.User),
		byEmail: make(map[string]uint64),
	}
}

// Create assigns the next sequential id and inserts the user. The email
// uniqueness check (case-sensitive exact match) and the insert happen
// atomically under the collection lock; callers hash passwords before
// calling so the lock is never held across a bcrypt computation.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return apperrors.ErrUserAlreadyExists
	}

	r.nextID++
	user.ID = r.nextID
	stored := *user
	r.users[stored.ID] = &stored
	r.byEmail[stored.Email] = stored.ID
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint64) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	found := *user
	return &found, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	found := *r.users[id]
	return &found, nil
}
