package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/tutorbook/internal/server/sessions"
	"github.com/dmitrijs2005/tutorbook/internal/server/users"
)

// InMemoryRepositoryManager backs the repositories with in-memory maps.
// Used in tests.
type InMemoryRepositoryManager struct {
	users    users.Repository
	sessions sessions.Repository
}

func (m InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m InMemoryRepositoryManager) Close() error {
	return nil
}

func (m InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m InMemoryRepositoryManager) Sessions() sessions.Repository {
	return m.sessions
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return InMemoryRepositoryManager{
		users:    users.NewInMemoryRepository(),
		sessions: sessions.NewInMemoryRepository(),
	}
}
