package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/tutorbook/internal/common"
	"github.com/google/uuid"
)

// InMemoryRepository keeps users in a map guarded by a mutex. It mirrors the
// uniqueness guarantees of the postgres schema (unique email) and is used in
// tests and for running the server without a database.
type InMemoryRepository struct {
	mu    sync.Mutex
	items map[string]User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[string]User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.items {
		if u.Email == user.Email {
			return nil, common.ErrorAlreadyExists
		}
	}

	now := time.Now()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.items[user.ID] = *user

	created := *user
	return &created, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.items {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) Update(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[user.ID]
	if !ok {
		return nil, common.ErrorNotFound
	}

	for id, u := range r.items {
		if id != user.ID && u.Email == user.Email {
			return nil, common.ErrorAlreadyExists
		}
	}

	user.CreatedAt = stored.CreatedAt
	user.UpdatedAt = time.Now()
	r.items[user.ID] = *user

	updated := *user
	return &updated, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(r.items, id)
	return &u, nil
}
