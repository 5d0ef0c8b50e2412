package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/tutorbook/internal/common"
	"github.com/google/uuid"
)

// InMemoryRepository keeps sessions in a map guarded by a mutex. It mirrors
// the uniqueness guarantee of the postgres schema (unique subject).
type InMemoryRepository struct {
	mu    sync.Mutex
	items map[string]Session
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[string]Session)}
}

func (r *InMemoryRepository) Create(ctx context.Context, session *Session) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.items {
		if s.Subject == session.Subject {
			return nil, common.ErrorAlreadyExists
		}
	}

	now := time.Now()
	session.ID = uuid.NewString()
	session.CreatedAt = now
	session.UpdatedAt = now
	r.items[session.ID] = *session

	created := *session
	return &created, nil
}
