package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bibbank/onboarding/internal/domain/port"
)

var (
	_ port.ApplicationRepository = (*ApplicationRepo)(nil)
	_ port.AuditLogRepository    = (*AuditLogRepo)(nil)
)

func TestNewApplicationRepo(t *testing.T) {
	repo := NewApplicationRepo(nil)
	assert.NotNil(t, repo)
	assert.Nil(t, repo.pool)
}

func TestNewAuditLogRepo(t *testing.T) {
	repo := NewAuditLogRepo(nil)
	assert.NotNil(t, repo)
	assert.Nil(t, repo.pool)
}

func TestNullableHelpers(t *testing.T) {
	assert.Nil(t, nullable(""))
	v := nullable("reviewer-1")
	assert.NotNil(t, v)
	assert.Equal(t, "reviewer-1", *v)

	assert.Empty(t, deref(nil))
	assert.Equal(t, "reviewer-1", deref(v))
}
