package auth

import (
	"log/slog"
	"time"
)

// NewTestTokenService creates a TokenService with an injectable clock for
// tests in this and other packages.
func NewTestTokenService(
	secret string,
	lifetime time.Duration,
	timeFunc func() time.Time,
	previous ...string,
) (TokenService, error) {
	return newHMACTokenService(secret, previous, lifetime, timeFunc, slog.Default())
}
