package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/onboarding/internal/domain/port"
	"github.com/bibbank/onboarding/pkg/auth"
)

var (
	_ port.IdentityProvider = (*ClaimsIdentityProvider)(nil)
	_ port.IdentityProvider = (*StubIdentityProvider)(nil)
)

func TestClaimsIdentityProvider_CurrentUser(t *testing.T) {
	provider := NewClaimsIdentityProvider()

	t.Run("resolves from context claims", func(t *testing.T) {
		ctx := auth.ContextWithClaims(context.Background(), &auth.Claims{
			UserID:   "user-1",
			Name:     "Priya Sharma",
			Email:    "priya@example.com",
			TenantID: "tenant-1",
			Roles:    []string{auth.RoleReviewer},
		})

		identity, err := provider.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, "user-1", identity.ID)
		assert.Equal(t, "Priya Sharma", identity.Name)
		assert.Equal(t, auth.RoleReviewer, identity.Role)
	})

	t.Run("errors without claims", func(t *testing.T) {
		_, err := provider.CurrentUser(context.Background())
		assert.ErrorIs(t, err, ErrNoIdentity)
	})
}

func TestStubIdentityProvider_CurrentUser(t *testing.T) {
	identity, err := NewStubIdentityProvider().CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "demo-user", identity.ID)
	assert.Equal(t, auth.RoleCustomer, identity.Role)
}
