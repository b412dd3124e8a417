package adapter

import (
	"context"
	"errors"

	"github.com/bibbank/onboarding/internal/domain/port"
	"github.com/bibbank/onboarding/pkg/auth"
)

// ErrNoIdentity is returned when the context carries no authenticated caller.
var ErrNoIdentity = errors.New("no authenticated identity in context")

// ClaimsIdentityProvider resolves the caller from JWT claims placed on the
// context by the auth interceptor.
type ClaimsIdentityProvider struct{}

// NewClaimsIdentityProvider creates the claims-backed provider.
func NewClaimsIdentityProvider() *ClaimsIdentityProvider {
	return &ClaimsIdentityProvider{}
}

// CurrentUser extracts the identity from the request context.
func (p *ClaimsIdentityProvider) CurrentUser(ctx context.Context) (port.Identity, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return port.Identity{}, ErrNoIdentity
	}

	role := auth.RoleCustomer
	if len(claims.Roles) > 0 {
		role = claims.Roles[0]
	}
	return port.Identity{
		ID:    claims.UserID,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  role,
	}, nil
}

// StubIdentityProvider returns a fixed identity. Used in development mode
// when the auth interceptor is disabled.
type StubIdentityProvider struct {
	Identity port.Identity
}

// NewStubIdentityProvider creates a provider with a default demo identity.
func NewStubIdentityProvider() *StubIdentityProvider {
	return &StubIdentityProvider{
		Identity: port.Identity{
			ID:    "demo-user",
			Name:  "Demo User",
			Email: "demo@example.com",
			Role:  auth.RoleCustomer,
		},
	}
}

// CurrentUser returns the fixed identity.
func (p *StubIdentityProvider) CurrentUser(_ context.Context) (port.Identity, error) {
	return p.Identity, nil
}
