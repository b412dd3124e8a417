package wizard

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/bibbank/onboarding/internal/domain/model"
	"github.com/bibbank/onboarding/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Session – the wizard state machine
//
// A session owns one mutable draft and drives it through the product's
// ordered step list. Forward progress is gated on the active step's
// validation; going back never re-validates; jumping is only permitted to
// already-completed steps. Submission freezes the draft; the session itself
// does not persist anything, so a failed save leaves the draft intact for
// retry.
// ---------------------------------------------------------------------------

var (
	// ErrForwardJump is returned when a jump targets the current or a
	// future step.
	ErrForwardJump = errors.New("cannot jump forward to an uncompleted step")

	// ErrNotLastStep is returned when submission is attempted before the
	// final step.
	ErrNotLastStep = errors.New("submit is only allowed from the final step")

	// ErrAlreadySubmitted is returned when a terminal session is mutated.
	ErrAlreadySubmitted = errors.New("wizard session already submitted")

	// ErrValidationFailed is returned when freezing a draft whose final
	// step still reports errors.
	ErrValidationFailed = errors.New("step validation failed")
)

// Session drives one draft through its product's step sequence.
type Session struct {
	mu         sync.Mutex
	id         string
	draft      model.Draft
	steps      []Step
	current    int // 1-based
	stepErrors []FieldError
	submitted  bool
}

// NewSession starts a wizard session on step 1 with an empty draft.
func NewSession(product valueobject.Product) (*Session, error) {
	steps, err := StepsFor(product)
	if err != nil {
		return nil, err
	}
	return &Session{
		id:      uuid.New().String(),
		draft:   model.NewDraft(product),
		steps:   steps,
		current: 1,
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Product returns the product line this session is collecting.
func (s *Session) Product() valueobject.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Product
}

// Draft returns a copy of the current draft.
func (s *Session) Draft() model.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// CurrentStep returns the 1-based active step number.
func (s *Session) CurrentStep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// TotalSteps returns the fixed step count for the product.
func (s *Session) TotalSteps() int { return len(s.steps) }

// Step returns the active step descriptor.
func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.steps[s.current-1]
}

// Errors returns the field errors recorded by the last failed advance.
func (s *Session) Errors() []FieldError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stepErrors
}

// Submitted reports whether the session has reached its terminal state.
func (s *Session) Submitted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitted
}

// ApplyPatch merges a typed field patch into the draft.
func (s *Session) ApplyPatch(p model.DraftPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted {
		return ErrAlreadySubmitted
	}
	s.draft.Apply(p)
	return nil
}

// Next validates the active step. With no errors it advances (clamped to
// the last step) and returns nil; otherwise it records and returns the
// field errors and stays put.
func (s *Session) Next() ([]FieldError, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted {
		return nil, ErrAlreadySubmitted
	}

	errs := s.steps[s.current-1].Validate(s.draft)
	if len(errs) > 0 {
		s.stepErrors = errs
		return errs, nil
	}

	s.stepErrors = nil
	if s.current < len(s.steps) {
		s.current++
	}
	return nil, nil
}

// Back moves to the previous step without re-validating the step being
// left. It is a no-op on step 1.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted {
		return ErrAlreadySubmitted
	}
	if s.current > 1 {
		s.current--
	}
	s.stepErrors = nil
	return nil
}

// JumpTo revisits an already-completed step. Jumping to the current step or
// forward is rejected.
func (s *Session) JumpTo(step int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted {
		return ErrAlreadySubmitted
	}
	if step < 1 || step >= s.current {
		return ErrForwardJump
	}
	s.current = step
	s.stepErrors = nil
	return nil
}

// Freeze re-validates the final step and returns a copy of the draft ready
// to become an application. The session stays alive: callers mark it
// submitted only after the application has been durably saved.
func (s *Session) Freeze() (model.Draft, []FieldError, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted {
		return model.Draft{}, nil, ErrAlreadySubmitted
	}
	if s.current != len(s.steps) {
		return model.Draft{}, nil, ErrNotLastStep
	}

	errs := s.steps[s.current-1].Validate(s.draft)
	if len(errs) > 0 {
		s.stepErrors = errs
		return model.Draft{}, errs, ErrValidationFailed
	}

	s.stepErrors = nil
	return s.draft, nil, nil
}

// MarkSubmitted transitions the session to its terminal state.
func (s *Session) MarkSubmitted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitted = true
}
