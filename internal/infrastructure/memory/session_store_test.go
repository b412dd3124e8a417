package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/onboarding/internal/domain/port"
	"github.com/bibbank/onboarding/internal/domain/valueobject"
	"github.com/bibbank/onboarding/internal/domain/wizard"
)

var _ port.SessionStore = (*SessionStore)(nil)

func TestSessionStore(t *testing.T) {
	store := NewSessionStore()

	session, err := wizard.NewSession(valueobject.ProductLoan)
	require.NoError(t, err)

	_, ok := store.Get(session.ID())
	assert.False(t, ok)

	store.Put(session)
	got, ok := store.Get(session.ID())
	require.True(t, ok)
	assert.Same(t, session, got)
	assert.Equal(t, 1, store.Len())

	store.Delete(session.ID())
	_, ok = store.Get(session.ID())
	assert.False(t, ok)
	assert.Zero(t, store.Len())
}

func TestSessionStore_ConcurrentAccess(t *testing.T) {
	store := NewSessionStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			session, err := wizard.NewSession(valueobject.ProductInvestment)
			if err != nil {
				panic(fmt.Sprintf("new session: %v", err))
			}
			store.Put(session)
			if _, ok := store.Get(session.ID()); !ok {
				panic("stored session not found")
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 16, store.Len())
}
