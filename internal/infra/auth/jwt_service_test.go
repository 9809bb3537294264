package auth

import (
	"testing"
	"time"

	"kusina/config"
	"kusina/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) service.TokenService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"
	cfg.SecretKey.AccessTTL = 15 * time.Minute
	cfg.SecretKey.RefreshTTL = 7 * 24 * time.Hour

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "only-access"

	svc, err := NewJWTService(cfg)

	require.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	accessToken, refreshToken, err := svc.GenerateTokens(userID)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := svc.ValidateRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_RejectsCrossTypeTokens(t *testing.T) {
	svc := newTestJWTService(t)

	accessToken, refreshToken, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	// Each token only passes the validator matching its type and secret.
	_, err = svc.ValidateRefreshToken(accessToken)
	assert.Error(t, err)

	_, err = svc.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestJWTService(t)

	accessToken, _, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	tampered := accessToken[:len(accessToken)-2] + "xx"

	_, err = svc.ValidateAccessToken(tampered)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	// Negative TTL produces an already-expired token.
	svc := &jwtService{
		accessSecret:  "test-access-secret",
		refreshSecret: "test-refresh-secret",
		accessTTL:     -time.Minute,
		refreshTTL:    -time.Minute,
	}

	accessToken, _, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(accessToken)
	assert.Error(t, err)
}

func TestJWTService_HashToken(t *testing.T) {
	svc := newTestJWTService(t)

	first := svc.HashToken("some-refresh-token")
	second := svc.HashToken("some-refresh-token")

	// SHA-256 hex digest, stable across calls.
	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
	assert.NotEqual(t, first, svc.HashToken("another-token"))
}

func TestJWTService_RefreshTokenDuration(t *testing.T) {
	svc := newTestJWTService(t)

	assert.Equal(t, 7*24*time.Hour, svc.RefreshTokenDuration())
}
