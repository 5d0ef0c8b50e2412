// Package dbx provides the minimal database handle interface shared by
// repositories. Both *sql.DB and *sql.Tx satisfy it, so repositories stay
// independent of how the caller manages connections.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by the repositories.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
