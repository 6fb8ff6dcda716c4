package auth

import (
	"context"
	"time"

	"github.com/phrazzld/jobboard-api/internal/domain"
)

// TokenService issues and verifies signed access tokens.
type TokenService interface {
	// Issue signs a token carrying the user's id, email, role and delete flag,
	// valid from now for the configured lifetime.
	// Returns ErrCannotEncryptToken on failure.
	Issue(ctx context.Context, user *domain.User) (string, error)

	// Verify checks the signature and the time window of token and returns
	// its claims. Returns ErrTokenExpired for an expired but genuine token
	// and ErrCannotDecryptToken for anything else.
	Verify(ctx context.Context, token string) (*Claims, error)
}

// Claims is the verified content of an access token.
type Claims struct {
	UserID    domain.UserID
	Email     string
	Role      domain.Role
	IsDeleted bool
	IssuedAt  time.Time
	ExpiresAt time.Time
}
