package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the database handle so stores can run against either a
// *sql.DB or a *sql.Tx without caring which one they were given.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
