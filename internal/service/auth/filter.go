package auth

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/platform/logger"
)

// BearerPrefix is the required start of the Authorization header.
const BearerPrefix = "Bearer"

// Filter decides whether a request may reach a role-restricted endpoint.
// It relies only on the token; it never consults the store, so a role change
// or deletion takes effect when the user's current token expires.
type Filter struct {
	tokens TokenService
	now    func() time.Time
	logger *slog.Logger
}

// NewFilter creates a Filter that verifies tokens with tokens.
func NewFilter(tokens TokenService, log *slog.Logger) *Filter {
	if log == nil {
		log = slog.Default()
	}
	return &Filter{
		tokens: tokens,
		now:    time.Now,
		logger: log.With(slog.String("component", "auth_filter")),
	}
}

// WithClock returns a copy of f that reads the time from now.
func (f *Filter) WithClock(now func() time.Time) *Filter {
	c := *f
	c.now = now
	return &c
}

// Authorize runs extract, verify, freshness and role checks in that order
// and returns the claims of an accepted request.
func (f *Filter) Authorize(ctx context.Context, header http.Header, allowed ...domain.Role) (*Claims, error) {
	log := logger.FromContextOrDefault(ctx, f.logger)

	token, err := extractBearer(header)
	if err != nil {
		log.Debug("request rejected", slog.String("reason", Reason(err)))
		return nil, err
	}

	claims, err := f.tokens.Verify(ctx, token)
	if err != nil {
		log.Debug("request rejected", slog.String("reason", Reason(err)))
		return nil, err
	}

	if claims.IsDeleted {
		log.Debug("request rejected", slog.String("reason", "revoked"),
			slog.Int64("user_id", int64(claims.UserID)))
		return nil, ErrAccountRevoked
	}
	if !f.now().Before(claims.ExpiresAt) {
		return nil, ErrTokenExpired
	}

	if !slices.Contains(allowed, claims.Role) {
		log.Debug("request rejected", slog.String("reason", "role_not_permitted"),
			slog.Int64("user_id", int64(claims.UserID)),
			slog.String("role", claims.Role.String()))
		return nil, ErrRoleNotPermitted
	}
	return claims, nil
}

func extractBearer(header http.Header) (string, error) {
	values := header.Values("Authorization")
	if len(values) == 0 {
		return "", ErrUnauthorized
	}
	value := values[0]
	if !utf8.ValidString(value) {
		return "", ErrInvalidHeaderEncoding
	}
	if !strings.HasPrefix(value, BearerPrefix) {
		return "", ErrMissingBearerAuthType
	}
	return strings.TrimSpace(strings.TrimPrefix(value, BearerPrefix)), nil
}
