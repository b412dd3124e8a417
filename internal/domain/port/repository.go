package port

import (
	"context"

	"github.com/bibbank/onboarding/internal/domain/event"
	"github.com/bibbank/onboarding/internal/domain/model"
	"github.com/bibbank/onboarding/internal/domain/valueobject"
	"github.com/bibbank/onboarding/internal/domain/wizard"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// ApplicationFilter narrows an application listing.
type ApplicationFilter struct {
	Status  *valueobject.ApplicationStatus
	Product *valueobject.Product
}

// ApplicationRepository persists and retrieves submitted applications.
type ApplicationRepository interface {
	Save(ctx context.Context, app model.Application) error
	FindByID(ctx context.Context, tenantID, id string) (model.Application, error)
	List(ctx context.Context, tenantID string, filter ApplicationFilter) ([]model.Application, error)
	Delete(ctx context.Context, tenantID, id string) error
}

// AuditLogRepository appends and lists audit entries. There is deliberately
// no update or delete: the log is append-only.
type AuditLogRepository interface {
	Append(ctx context.Context, entry model.AuditLogEntry) error
	List(ctx context.Context, tenantID string) ([]model.AuditLogEntry, error)
}

// SessionStore keeps in-flight wizard sessions.
type SessionStore interface {
	Put(session *wizard.Session)
	Get(id string) (*wizard.Session, bool)
	Delete(id string)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to the message bus.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// Identity provider port
// ---------------------------------------------------------------------------

// Identity is the resolved caller identity stamped on submissions and
// reviews.
type Identity struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// IdentityProvider resolves the current caller.
type IdentityProvider interface {
	CurrentUser(ctx context.Context) (Identity, error)
}
