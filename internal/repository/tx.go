package repository

import (
	"context"
	"database/sql"
)

// Tx is the statement executor threaded through every storage call that must
// share one unit of work. Both *sql.Tx and *sql.DB satisfy it; callers that
// need atomicity pass the former.
type Tx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxHandle is an open transaction. Exactly one of Commit or Rollback must be
// called before the handle is dropped.
type TxHandle interface {
	Tx
	Commit() error
	Rollback() error
}

// TxBeginner is implemented by Repository and mocked in service tests.
type TxBeginner interface {
	BeginTx(ctx context.Context) (TxHandle, error)
}
