package store

import (
	"errors"
	"fmt"
)

// Error kinds shared by every backend. Callers classify failures with
// errors.Is; backends wrap these with operation context.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a write would violate a uniqueness rule.
	ErrDuplicate = errors.New("already exists")

	// ErrInvalidEntity is returned when a record is rejected by validation or
	// by a referential constraint.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrInvalidPage is returned for negative limits or offsets.
	ErrInvalidPage = errors.New("invalid pagination window")

	// ErrStoreUnavailable is returned when the backing database cannot be
	// reached or the query deadline was exceeded.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrQueryFailed wraps any other backend failure.
	ErrQueryFailed = errors.New("query failed")

	// ErrTransactionFailed is returned when a transaction cannot begin or commit.
	ErrTransactionFailed = errors.New("transaction failed")

	ErrUserNotFound        = fmt.Errorf("user %w", ErrNotFound)
	ErrCompanyNotFound     = fmt.Errorf("company %w", ErrNotFound)
	ErrJobNotFound         = fmt.Errorf("job %w", ErrNotFound)
	ErrResumeNotFound      = fmt.Errorf("resume %w", ErrNotFound)
	ErrApplicationNotFound = fmt.Errorf("application %w", ErrNotFound)

	// ErrEmailExists is returned when a user or company email is taken.
	// Soft-deleted records keep their email reserved.
	ErrEmailExists = fmt.Errorf("email %w", ErrDuplicate)

	// ErrAlreadyApplied is returned when a resume has already been submitted
	// to the same job.
	ErrAlreadyApplied = fmt.Errorf("application %w", ErrDuplicate)

	// ErrJobClosed is returned when applying to a soft-deleted job.
	ErrJobClosed = errors.New("job is closed")
)

// IsNotFoundError reports whether err is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether err is any kind of uniqueness conflict.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// IsUnavailableError reports whether err means the backend could not be reached.
func IsUnavailableError(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

// StoreError adds entity and operation context to a store failure.
type StoreError struct {
	Entity    string // e.g. "user", "job"
	Operation string // e.g. "create", "list"
	Message   string
	Err       error
}

func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %s: %v", e.Operation, e.Entity, e.Message, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Operation, e.Entity, e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a StoreError wrapping err.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
