package usecase

import (
	"context"
	"fmt"

	"github.com/bibbank/onboarding/internal/application/dto"
	"github.com/bibbank/onboarding/internal/domain/port"
)

// StepBackUseCase moves the wizard to the previous step.
type StepBackUseCase struct {
	sessions port.SessionStore
}

// NewStepBackUseCase wires dependencies.
func NewStepBackUseCase(sessions port.SessionStore) *StepBackUseCase {
	return &StepBackUseCase{sessions: sessions}
}

// Execute steps back without re-validating the step being left.
func (uc *StepBackUseCase) Execute(
	_ context.Context,
	req dto.StepRequest,
) (dto.WizardStateResponse, error) {
	session, ok := uc.sessions.Get(req.SessionID)
	if !ok {
		return dto.WizardStateResponse{}, ErrSessionNotFound
	}

	if err := session.Back(); err != nil {
		return dto.WizardStateResponse{}, fmt.Errorf("step back: %w", err)
	}
	return toWizardState(session, nil), nil
}
