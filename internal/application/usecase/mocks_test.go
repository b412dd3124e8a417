package usecase_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/bibbank/onboarding/internal/domain/event"
	"github.com/bibbank/onboarding/internal/domain/model"
	"github.com/bibbank/onboarding/internal/domain/port"
	"github.com/bibbank/onboarding/internal/domain/wizard"
)

// --- Mock implementations shared by the usecase tests ---

type mockApplicationRepository struct {
	saveFunc     func(ctx context.Context, app model.Application) error
	findByIDFunc func(ctx context.Context, tenantID, id string) (model.Application, error)
	listFunc     func(ctx context.Context, tenantID string, filter port.ApplicationFilter) ([]model.Application, error)
	deleteFunc   func(ctx context.Context, tenantID, id string) error
	savedApps    []model.Application
}

func (m *mockApplicationRepository) Save(ctx context.Context, app model.Application) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, app)
	}
	m.savedApps = append(m.savedApps, app)
	return nil
}

func (m *mockApplicationRepository) FindByID(ctx context.Context, tenantID, id string) (model.Application, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, tenantID, id)
	}
	return model.Application{}, fmt.Errorf("application not found")
}

func (m *mockApplicationRepository) List(ctx context.Context, tenantID string, filter port.ApplicationFilter) ([]model.Application, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, tenantID, filter)
	}
	return nil, nil
}

func (m *mockApplicationRepository) Delete(ctx context.Context, tenantID, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, tenantID, id)
	}
	return nil
}

type mockAuditLogRepository struct {
	appendFunc func(ctx context.Context, entry model.AuditLogEntry) error
	entries    []model.AuditLogEntry
}

func (m *mockAuditLogRepository) Append(ctx context.Context, entry model.AuditLogEntry) error {
	if m.appendFunc != nil {
		return m.appendFunc(ctx, entry)
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockAuditLogRepository) List(_ context.Context, tenantID string) ([]model.AuditLogEntry, error) {
	var out []model.AuditLogEntry
	for _, e := range m.entries {
		if e.TenantID == tenantID {
			out = append(out, e)
		}
	}
	return out, nil
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

type mockIdentityProvider struct {
	currentUserFunc func(ctx context.Context) (port.Identity, error)
}

func (m *mockIdentityProvider) CurrentUser(ctx context.Context) (port.Identity, error) {
	if m.currentUserFunc != nil {
		return m.currentUserFunc(ctx)
	}
	return port.Identity{ID: "user-001", Name: "Priya Sharma", Email: "priya@example.com", Role: "CUSTOMER"}, nil
}

type mockSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*wizard.Session
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{sessions: make(map[string]*wizard.Session)}
}

func (m *mockSessionStore) Put(s *wizard.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID()] = s
}

func (m *mockSessionStore) Get(id string) (*wizard.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *mockSessionStore) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}
