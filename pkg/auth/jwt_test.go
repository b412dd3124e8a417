package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHMACService(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret",
		Issuer:     "onboarding",
		Expiration: time.Hour,
	})
	require.NoError(t, err)
	return svc
}

func TestNewJWTService_RequiresKeyMaterial(t *testing.T) {
	_, err := NewJWTService(JWTConfig{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newHMACService(t)

	token, err := svc.GenerateToken("user-1", "Priya Sharma", "priya@example.com", "tenant-1", []string{RoleReviewer})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "Priya Sharma", claims.Name)
	assert.Equal(t, "priya@example.com", claims.Email)
	assert.Equal(t, "tenant-1", claims.TenantID)
	assert.True(t, claims.HasRole(RoleReviewer))
	assert.False(t, claims.HasRole(RoleAdmin))
	assert.Equal(t, "onboarding", claims.Issuer)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newHMACService(t)

	token, err := svc.GenerateToken("user-1", "n", "e", "t", nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	svc := newHMACService(t)
	other, err := NewJWTService(JWTConfig{Secret: "other-secret"})
	require.NoError(t, err)

	token, err := svc.GenerateToken("user-1", "n", "e", "t", nil)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{Secret: "s", Expiration: -time.Minute})
	require.NoError(t, err)

	token, err := svc.GenerateToken("user-1", "n", "e", "t", nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
