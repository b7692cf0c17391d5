package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrTxFailed wraps begin, commit and rollback failures, errors returned by the
// transaction body are passed through as they are.
var ErrTxFailed = errors.New("transaction failed")

// Conn is satisfied by *pgxpool.Pool and pgx.Tx, so repos can run the same
// queries inside and outside of a transaction.
type Conn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// WithTx runs fn in a transaction, committed if fn succeeds and rolled back otherwise.
// Called with a pgx.Tx it opens a savepoint.
func WithTx(ctx context.Context, conn Conn, fn func(tx pgx.Tx) error) (err error) {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", ErrTxFailed, err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("%w: rollback: %w: %w", ErrTxFailed, rollbackErr, err)
			}
		} else if commitErr := tx.Commit(ctx); commitErr != nil {
			err = fmt.Errorf("%w: commit: %w", ErrTxFailed, commitErr)
		}
	}()

	return fn(tx)
}
