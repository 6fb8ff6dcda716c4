package domain

import (
	"fmt"
	"strconv"
)

// UserID identifies a User. Identifiers are positive and assigned by the store.
type UserID int64

// CompanyID identifies a Company. The zero value means "no company".
type CompanyID int64

// JobID identifies a Job.
type JobID int64

// ResumeID identifies a Resume.
type ResumeID int64

// ApplicationID identifies a single resume-to-job application.
type ApplicationID int64

// ParseID parses a decimal identifier and rejects anything that is not a
// positive integer.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: %d is not positive", ErrInvalidID, id)
	}
	return id, nil
}
