package service

import "errors"

var (
	// ErrNotOwned indicates the resource belongs to someone other than the
	// caller. API layer maps this to 403 Forbidden.
	ErrNotOwned = errors.New("resource is owned by another user")

	// ErrNoCompany is returned when an HR user who is not attached to any
	// company tries to manage jobs. API layer maps this to 403 Forbidden.
	ErrNoCompany = errors.New("user is not attached to a company")
)
