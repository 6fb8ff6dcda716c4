package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/jobboard-api/internal/store"
)

// PostgreSQL error codes
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
	notNullViolationCode    = "23502"
	adminShutdownCode       = "57P01"
	cannotConnectNowCode    = "57P03"

	// Classes whose every code means the server cannot serve the request.
	connectionExceptionClass  = "08"
	insufficientResourceClass = "53"
)

// Unique constraints that carry a more specific error than store.ErrDuplicate.
var uniqueConstraintErrors = map[string]error{
	"users_email_key":                store.ErrEmailExists,
	"companies_email_key":            store.ErrEmailExists,
	"resume_job_maps_resume_job_key": store.ErrAlreadyApplied,
}

// MapError translates a database/sql or pgx error into a store error kind.
// The original error stays in the chain for logging.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == uniqueViolationCode:
			if specific, ok := uniqueConstraintErrors[pgErr.ConstraintName]; ok {
				return fmt.Errorf("%w: %v", specific, err)
			}
			return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
		case pgErr.Code == foreignKeyViolationCode:
			return fmt.Errorf("%w: foreign key violation (%s): %v",
				store.ErrInvalidEntity, pgErr.ConstraintName, err)
		case pgErr.Code == checkViolationCode:
			return fmt.Errorf("%w: check constraint violation (%s): %v",
				store.ErrInvalidEntity, pgErr.ConstraintName, err)
		case pgErr.Code == notNullViolationCode:
			return fmt.Errorf("%w: not null violation (%s): %v",
				store.ErrInvalidEntity, pgErr.ColumnName, err)
		case pgErr.Code == adminShutdownCode,
			pgErr.Code == cannotConnectNowCode,
			strings.HasPrefix(pgErr.Code, connectionExceptionClass),
			strings.HasPrefix(pgErr.Code, insufficientResourceClass):
			return fmt.Errorf("%w: %w", store.ErrStoreUnavailable, err)
		}
		return fmt.Errorf("%w: %w", store.ErrQueryFailed, err)
	}

	if isUnavailable(err) {
		return fmt.Errorf("%w: %w", store.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%w: %w", store.ErrQueryFailed, err)
}

func isUnavailable(err error) bool {
	if errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsForeignKeyViolation reports whether err is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// mapNotFound replaces a "no rows" result with the entity-specific error and
// maps everything else.
func mapNotFound(err error, notFound error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	return MapError(err)
}

// CheckRowsAffected returns notFound when an UPDATE or DELETE matched no rows.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return fmt.Errorf("%w: nil result", store.ErrQueryFailed)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected: %w", store.ErrQueryFailed, err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

// MapTxError classifies an error returned by store.RunInTransaction. Errors
// produced inside the transaction body are already mapped and pass through.
func MapTxError(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range []error{
		store.ErrNotFound,
		store.ErrDuplicate,
		store.ErrInvalidEntity,
		store.ErrJobClosed,
		store.ErrStoreUnavailable,
		store.ErrQueryFailed,
	} {
		if errors.Is(err, kind) {
			return err
		}
	}
	return MapError(err)
}
