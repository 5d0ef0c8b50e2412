// Package db wires the persistence layer: it owns the database handle and
// hands out the per-entity repositories.
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/tutorbook/internal/server/sessions"
	"github.com/dmitrijs2005/tutorbook/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Sessions() sessions.Repository
	Close() error
}
