package assistant

import (
	"sync"

	"github.com/bibbank/onboarding/internal/domain/model"
	"github.com/bibbank/onboarding/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Bridge – the assistant-to-wizard mailbox
//
// Producers (the conversational assistant) may send fill and navigate
// messages before any wizard has registered a handler. Messages are buffered
// in FIFO order and drained the moment a handler registers; after an
// unregister, new messages queue again. The bridge is passed by reference to
// both sides, never held as a package global.
// ---------------------------------------------------------------------------

// Kind discriminates bridge messages.
type Kind string

const (
	// KindFill carries a typed draft patch for the active wizard.
	KindFill Kind = "fill"
	// KindNavigate asks the UI to open a product wizard.
	KindNavigate Kind = "navigate"
)

// Message is one queued assistant action.
type Message struct {
	Kind    Kind
	Patch   model.DraftPatch
	Product valueobject.Product
}

// Handler consumes bridge messages.
type Handler func(Message)

// Bridge is a single-slot handler reference plus an ordered pending queue.
type Bridge struct {
	mu      sync.Mutex
	handler Handler
	pending []Message
}

// NewBridge creates an empty bridge.
func NewBridge() *Bridge {
	return &Bridge{}
}

// Fill delivers a draft patch, buffering when no handler is registered.
func (b *Bridge) Fill(patch model.DraftPatch) {
	b.dispatch(Message{Kind: KindFill, Patch: patch})
}

// Navigate delivers a wizard-navigation request, buffering when no handler
// is registered.
func (b *Bridge) Navigate(product valueobject.Product) {
	b.dispatch(Message{Kind: KindNavigate, Product: product})
}

// Register installs the handler and drains any pending messages in their
// original order.
func (b *Bridge) Register(h Handler) {
	b.mu.Lock()
	b.handler = h
	queued := b.pending
	b.pending = nil
	b.mu.Unlock()

	for _, msg := range queued {
		h(msg)
	}
}

// Unregister clears the handler; subsequent messages queue until the next
// Register call.
func (b *Bridge) Unregister() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handler = nil
}

// Pending returns the number of buffered messages.
func (b *Bridge) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

func (b *Bridge) dispatch(msg Message) {
	b.mu.Lock()
	h := b.handler
	if h == nil {
		b.pending = append(b.pending, msg)
		b.mu.Unlock()
		return
	}
	b.mu.Unlock()

	h(msg)
}
