package auth

import (
	"errors"
	"fmt"
)

// Base kinds. Every rejection by the Filter wraps one of these.
var (
	// ErrUnauthorized means the request did not carry acceptable credentials
	// for the endpoint.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnauthenticated means the credential was genuine but is no longer
	// usable.
	ErrUnauthenticated = errors.New("unauthenticated")
)

var (
	// ErrInvalidHeaderEncoding is returned when the Authorization header is
	// not valid UTF-8.
	ErrInvalidHeaderEncoding = fmt.Errorf("%w: authorization header is not valid UTF-8", ErrUnauthorized)

	// ErrMissingBearerAuthType is returned when the header lacks the Bearer prefix.
	ErrMissingBearerAuthType = fmt.Errorf("%w: missing bearer auth type", ErrUnauthorized)

	// ErrCannotDecryptToken is returned when a token fails signature, format
	// or algorithm checks.
	ErrCannotDecryptToken = fmt.Errorf("%w: cannot decrypt token", ErrUnauthorized)

	// ErrRoleNotPermitted is returned when the token's role is not allowed.
	ErrRoleNotPermitted = fmt.Errorf("%w: role not permitted", ErrUnauthorized)

	ErrTokenExpired   = fmt.Errorf("%w: token expired", ErrUnauthenticated)
	ErrAccountRevoked = fmt.Errorf("%w: account deleted", ErrUnauthenticated)

	// ErrCannotEncryptToken is returned when a token cannot be signed.
	ErrCannotEncryptToken = errors.New("cannot encrypt token")

	// ErrWrongPassword is returned for a failed login, whether the email is
	// unknown or the password does not match.
	ErrWrongPassword = errors.New("wrong e-mail/password combination")
)

// IsRejection reports whether err is any authorization filter rejection.
func IsRejection(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrUnauthenticated)
}

// Reason returns a stable label for a rejection, for logs and metrics.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidHeaderEncoding):
		return "invalid_encoding"
	case errors.Is(err, ErrMissingBearerAuthType):
		return "missing_bearer"
	case errors.Is(err, ErrCannotDecryptToken):
		return "invalid_token"
	case errors.Is(err, ErrRoleNotPermitted):
		return "role_not_permitted"
	case errors.Is(err, ErrTokenExpired):
		return "expired"
	case errors.Is(err, ErrAccountRevoked):
		return "revoked"
	case errors.Is(err, ErrUnauthorized):
		return "missing_header"
	case errors.Is(err, ErrUnauthenticated):
		return "unauthenticated"
	default:
		return "other"
	}
}
