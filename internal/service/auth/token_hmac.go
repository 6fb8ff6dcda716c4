package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/phrazzld/jobboard-api/internal/config"
	"github.com/phrazzld/jobboard-api/internal/domain"
	"github.com/phrazzld/jobboard-api/internal/platform/logger"
)

const minSecretLength = 32

// hmacTokenService signs with HS512 using the current secret and verifies
// against the current secret followed by any previous ones.
type hmacTokenService struct {
	signingKey    []byte
	verifyKeys    []jwt.VerificationKey
	tokenLifetime time.Duration
	timeFunc      func() time.Time
	logger        *slog.Logger
}

// tokenClaims is the wire form: exactly id, email, role_id, is_delete, iat
// and exp. RegisteredClaims omits every unset field.
type tokenClaims struct {
	ID        domain.UserID `json:"id"`
	Email     string        `json:"email"`
	RoleID    domain.Role   `json:"role_id"`
	IsDeleted bool          `json:"is_delete"`
	jwt.RegisteredClaims
}

var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates the HS512 token service from configuration.
func NewTokenService(cfg config.AuthConfig, log *slog.Logger) (TokenService, error) {
	return newHMACTokenService(cfg.JWTSecret, cfg.PreviousJWTSecrets, cfg.TokenLifetime(), time.Now, log)
}

func newHMACTokenService(
	secret string,
	previous []string,
	lifetime time.Duration,
	timeFunc func() time.Time,
	log *slog.Logger,
) (*hmacTokenService, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("jwt secret must be at least %d characters", minSecretLength)
	}
	if lifetime <= 0 {
		return nil, fmt.Errorf("token lifetime must be positive, got %s", lifetime)
	}
	keys := []jwt.VerificationKey{[]byte(secret)}
	for _, p := range previous {
		if len(p) < minSecretLength {
			return nil, fmt.Errorf("previous jwt secret must be at least %d characters", minSecretLength)
		}
		keys = append(keys, []byte(p))
	}
	if log == nil {
		log = slog.Default()
	}
	return &hmacTokenService{
		signingKey:    []byte(secret),
		verifyKeys:    keys,
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
		logger:        log.With(slog.String("component", "token_service")),
	}, nil
}

// Issue implements TokenService.
func (s *hmacTokenService) Issue(ctx context.Context, user *domain.User) (string, error) {
	if user == nil {
		return "", fmt.Errorf("%w: nil user", ErrCannotEncryptToken)
	}
	now := s.timeFunc()

	claims := tokenClaims{
		ID:        user.ID,
		Email:     user.Email,
		RoleID:    user.Role,
		IsDeleted: user.IsDeleted,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifetime)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(s.signingKey)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to sign access token",
			slog.String("error", err.Error()),
			slog.Int64("user_id", int64(user.ID)))
		return "", fmt.Errorf("%w: %v", ErrCannotEncryptToken, err)
	}
	return signed, nil
}

// Verify implements TokenService.
func (s *hmacTokenService) Verify(ctx context.Context, token string) (*Claims, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{},
		func(*jwt.Token) (any, error) {
			return jwt.VerificationKeySet{Keys: s.verifyKeys}, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.timeFunc),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug("token verification failed: expired")
			return nil, ErrTokenExpired
		}
		log.Debug("token verification failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrCannotDecryptToken, err)
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return nil, ErrCannotDecryptToken
	}
	return &Claims{
		UserID:    claims.ID,
		Email:     claims.Email,
		Role:      claims.RoleID,
		IsDeleted: claims.IsDeleted,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
