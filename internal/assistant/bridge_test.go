package assistant

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/onboarding/internal/domain/model"
	"github.com/bibbank/onboarding/internal/domain/valueobject"
)

func TestBridge_QueueThenRegister(t *testing.T) {
	b := NewBridge()

	b.Fill(model.DraftPatch{Personal: &model.PersonalDetails{FirstName: "one"}})
	b.Fill(model.DraftPatch{Personal: &model.PersonalDetails{FirstName: "two"}})
	b.Fill(model.DraftPatch{Personal: &model.PersonalDetails{FirstName: "three"}})
	require.Equal(t, 3, b.Pending())

	var got []string
	b.Register(func(m Message) {
		got = append(got, m.Patch.Personal.FirstName)
	})

	assert.Equal(t, []string{"one", "two", "three"}, got, "drain preserves arrival order")
	assert.Zero(t, b.Pending())
}

func TestBridge_DirectDeliveryWhenRegistered(t *testing.T) {
	b := NewBridge()

	var got []Message
	b.Register(func(m Message) { got = append(got, m) })

	b.Navigate(valueobject.ProductLoan)
	b.Fill(model.DraftPatch{Consented: boolPtr(true)})

	require.Len(t, got, 2)
	assert.Equal(t, KindNavigate, got[0].Kind)
	assert.True(t, got[0].Product.Equal(valueobject.ProductLoan))
	assert.Equal(t, KindFill, got[1].Kind)
	assert.Zero(t, b.Pending())
}

func TestBridge_UnregisterResumesQueueing(t *testing.T) {
	b := NewBridge()

	var first []Message
	b.Register(func(m Message) { first = append(first, m) })
	b.Navigate(valueobject.ProductInsurance)
	require.Len(t, first, 1)

	b.Unregister()
	b.Navigate(valueobject.ProductInvestment)
	assert.Equal(t, 1, b.Pending())
	assert.Len(t, first, 1, "nothing delivered while unregistered")

	var second []Message
	b.Register(func(m Message) { second = append(second, m) })
	require.Len(t, second, 1)
	assert.True(t, second[0].Product.Equal(valueobject.ProductInvestment))
}

func TestBridge_ConcurrentProducers(t *testing.T) {
	b := NewBridge()

	const producers = 8
	const perProducer = 50

	var wg sync.WaitGroup
	for i := 0; i < producers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				b.Fill(model.DraftPatch{})
			}
		}()
	}
	wg.Wait()
	require.Equal(t, producers*perProducer, b.Pending())

	var mu sync.Mutex
	count := 0
	b.Register(func(Message) {
		mu.Lock()
		count++
		mu.Unlock()
	})
	assert.Equal(t, producers*perProducer, count)
}

func boolPtr(v bool) *bool { return &v }
