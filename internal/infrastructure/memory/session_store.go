package memory

import (
	"sync"

	"github.com/bibbank/onboarding/internal/domain/wizard"
)

// SessionStore implements port.SessionStore with a mutex-guarded map. Wizard
// sessions are single-owner and in-flight only, so in-memory storage matches
// their lifetime; submitted sessions are removed by the submit usecase.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*wizard.Session
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*wizard.Session)}
}

// Put stores a session keyed by its ID.
func (s *SessionStore) Put(session *wizard.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID()] = session
}

// Get retrieves a session by ID.
func (s *SessionStore) Get(id string) (*wizard.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

// Delete removes a session by ID.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
