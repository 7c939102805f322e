package httperr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrStorageUnavailable marks persistence failures (database or file) so
// callers can choose between retrying and aborting.
var ErrStorageUnavailable = errors.New("storage unavailable")

type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", ErrStorageUnavailable, e.Err)
}

func (e *StorageError) Unwrap() []error {
	return []error{ErrStorageUnavailable, e.Err}
}

// Storage wraps err as a storage failure. Nil stays nil and business
// errors pass through untouched.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := BusinessCode(err); ok {
		return err
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Err: err}
}

func IsStorage(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}

// --------------------------------------------------
// Postgres error classes
// --------------------------------------------------

const (
	pgForeignKeyViolation = "23503"
	pgExclusionViolation  = "23P01"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func IsForeignKeyViolation(err error) bool {
	return pgCode(err) == pgForeignKeyViolation
}

func IsExclusionConflict(err error) bool {
	return pgCode(err) == pgExclusionViolation
}

// IsConnectionFailure reports SQLSTATE class 08 or a dial failure
// surfaced by pgconn before any SQLSTATE exists.
func IsConnectionFailure(err error) bool {
	if strings.HasPrefix(pgCode(err), "08") {
		return true
	}
	var connErr *pgconn.ConnectError
	return errors.As(err, &connErr)
}
