package auth

import (
	"testing"
	"time"

	"gymtrack/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.SecretKey.AccessTTL = ttl

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateAccessToken(userID, []string{"user"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"user"}, claims.Roles)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig("", time.Hour))
	require.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret", time.Hour))
	require.NoError(t, err)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsOtherSecret(t *testing.T) {
	issuing, err := NewJWTService(newTestConfig("secret-a", time.Hour))
	require.NoError(t, err)
	verifying, err := NewJWTService(newTestConfig("secret-b", time.Hour))
	require.NoError(t, err)

	token, err := issuing.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	_, err = verifying.ValidateToken(token)
	require.Error(t, err)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret", time.Minute))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := svc.GenerateAccessToken(uuid.New(), nil)
	require.NoError(t, err)

	impl.now = time.Now
	_, err = svc.ValidateToken(token)
	require.Error(t, err)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret", 0))
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, svc.(*jwtService).accessTTL)
}
