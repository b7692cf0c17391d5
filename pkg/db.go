package pkg

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolationError checks if the error is a unique violation error
func IsUniqueViolationError(err error) bool {
	return pgErrorCode(err) == pgUniqueViolation
}

// IsForeignKeyViolationError checks if the error is a foreign key violation error
func IsForeignKeyViolationError(err error) bool {
	return pgErrorCode(err) == pgForeignKeyViolation
}

// IsCheckViolationError checks if the error is a check constraint violation,
// e.g. a set logged with non-positive reps
func IsCheckViolationError(err error) bool {
	return pgErrorCode(err) == pgCheckViolation
}

// ErrStoreUnavailable matches every StoreError.
var ErrStoreUnavailable = errors.New("store unavailable")

// StoreError is a failed data access. It is never used for "no rows",
// which repos report as nil/empty results or a not found sentinel.
type StoreError struct {
	Op  string
	Err error
}

func StoreFailure(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrStoreUnavailable, e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}
