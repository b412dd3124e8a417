package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT claims carried by onboarding tokens.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string   `json:"user_id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	TenantID string   `json:"tenant_id"`
	Roles    []string `json:"roles"`
}

// HasRole checks whether the claims include the given role.
func (c Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Role constants.
const (
	RoleAdmin    = "admin"
	RoleReviewer = "reviewer"
	RoleAuditor  = "auditor"
	RoleCustomer = "customer"
)
