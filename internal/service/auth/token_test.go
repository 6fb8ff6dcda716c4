package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/jobboard-api/internal/config"
	"github.com/phrazzld/jobboard-api/internal/domain"
)

const (
	testSecret     = "test-secret-that-is-at-least-32-characters-long"
	previousSecret = "previous-secret-that-is-at-least-32-characters"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testUser() *domain.User {
	return &domain.User{
		ID:           42,
		Email:        "u1@x.com",
		PasswordHash: "hash",
		Role:         domain.RoleHR,
		CompanyID:    7,
	}
}

func TestNewTokenService(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.AuthConfig
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 60},
		},
		{
			name:    "short secret",
			cfg:     config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 60},
			wantErr: true,
		},
		{
			name:    "short previous secret",
			cfg:     config.AuthConfig{JWTSecret: testSecret, PreviousJWTSecrets: []string{"short"}, TokenLifetimeMinutes: 60},
			wantErr: true,
		},
		{
			name:    "zero lifetime",
			cfg:     config.AuthConfig{JWTSecret: testSecret},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, err := NewTokenService(tt.cfg, nil)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, svc)
		})
	}
}

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, err := NewTestTokenService(testSecret, time.Hour, fixedClock(testNow))
	require.NoError(t, err)

	token, err := svc.Issue(ctx, testUser())
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := svc.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, domain.UserID(42), claims.UserID)
	assert.Equal(t, "u1@x.com", claims.Email)
	assert.Equal(t, domain.RoleHR, claims.Role)
	assert.False(t, claims.IsDeleted)
	assert.True(t, claims.IssuedAt.Equal(testNow))
	assert.True(t, claims.ExpiresAt.Equal(testNow.Add(time.Hour)))
}

func TestIssueWireFormat(t *testing.T) {
	t.Parallel()

	svc, err := NewTestTokenService(testSecret, time.Hour, fixedClock(testNow))
	require.NoError(t, err)

	token, err := svc.Issue(context.Background(), testUser())
	require.NoError(t, err)
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	rawHeader, err := base64.RawURLEncoding.DecodeString(parts[0])
	require.NoError(t, err)
	var header map[string]any
	require.NoError(t, json.Unmarshal(rawHeader, &header))
	assert.Equal(t, "HS512", header["alg"])

	rawPayload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rawPayload, &payload))

	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"id", "email", "role_id", "is_delete", "iat", "exp"}, keys)
	assert.EqualValues(t, 42, payload["id"])
	assert.EqualValues(t, 3, payload["role_id"])
	assert.EqualValues(t, testNow.Unix(), payload["iat"])
	assert.EqualValues(t, testNow.Add(time.Hour).Unix(), payload["exp"])
}

func TestIssueNilUser(t *testing.T) {
	t.Parallel()

	svc, err := NewTestTokenService(testSecret, time.Hour, fixedClock(testNow))
	require.NoError(t, err)

	_, err = svc.Issue(context.Background(), nil)
	assert.ErrorIs(t, err, ErrCannotEncryptToken)
}

func TestVerifyFailures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	issuer, err := NewTestTokenService(testSecret, time.Hour, fixedClock(testNow))
	require.NoError(t, err)
	valid, err := issuer.Issue(ctx, testUser())
	require.NoError(t, err)

	otherKey, err := NewTestTokenService("another-secret-that-is-at-least-32-chars", time.Hour, fixedClock(testNow))
	require.NoError(t, err)
	foreign, err := otherKey.Issue(ctx, testUser())
	require.NoError(t, err)

	hs256, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id": 42, "email": "u1@x.com", "role_id": 1, "is_delete": false,
		"iat": testNow.Unix(), "exp": testNow.Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"id": 42, "email": "u1@x.com", "role_id": 1, "is_delete": false,
		"iat": testNow.Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	tests := []struct {
		name    string
		token   string
		now     time.Time
		wantErr error
	}{
		{name: "expired", token: valid, now: testNow.Add(2 * time.Hour), wantErr: ErrTokenExpired},
		{name: "expiry instant", token: valid, now: testNow.Add(time.Hour), wantErr: ErrTokenExpired},
		{name: "issued in the future", token: valid, now: testNow.Add(-time.Minute), wantErr: ErrCannotDecryptToken},
		{name: "wrong key", token: foreign, now: testNow, wantErr: ErrCannotDecryptToken},
		{name: "wrong algorithm", token: hs256, now: testNow, wantErr: ErrCannotDecryptToken},
		{name: "missing exp", token: noExp, now: testNow, wantErr: ErrCannotDecryptToken},
		{name: "tampered signature", token: tampered, now: testNow, wantErr: ErrCannotDecryptToken},
		{name: "garbage", token: "not-a-token", now: testNow, wantErr: ErrCannotDecryptToken},
		{name: "empty", token: "", now: testNow, wantErr: ErrCannotDecryptToken},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, err := NewTestTokenService(testSecret, time.Hour, fixedClock(tt.now))
			require.NoError(t, err)

			claims, err := svc.Verify(ctx, tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, claims)
		})
	}
}

func TestVerifyPreviousSecret(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	old, err := NewTestTokenService(previousSecret, time.Hour, fixedClock(testNow))
	require.NoError(t, err)
	token, err := old.Issue(ctx, testUser())
	require.NoError(t, err)

	rotated, err := NewTestTokenService(testSecret, time.Hour, fixedClock(testNow), previousSecret)
	require.NoError(t, err)
	claims, err := rotated.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, domain.UserID(42), claims.UserID)

	// New tokens are signed with the current secret only.
	fresh, err := rotated.Issue(ctx, testUser())
	require.NoError(t, err)
	_, err = old.Verify(ctx, fresh)
	assert.ErrorIs(t, err, ErrCannotDecryptToken)

	withoutPrevious, err := NewTestTokenService(testSecret, time.Hour, fixedClock(testNow))
	require.NoError(t, err)
	_, err = withoutPrevious.Verify(ctx, token)
	assert.ErrorIs(t, err, ErrCannotDecryptToken)
}
