package usecase

import (
	"context"
	"fmt"

	"github.com/bibbank/onboarding/internal/application/dto"
	"github.com/bibbank/onboarding/internal/domain/port"
)

// AdvanceStepUseCase validates the active step and moves the wizard forward.
type AdvanceStepUseCase struct {
	sessions port.SessionStore
}

// NewAdvanceStepUseCase wires dependencies.
func NewAdvanceStepUseCase(sessions port.SessionStore) *AdvanceStepUseCase {
	return &AdvanceStepUseCase{sessions: sessions}
}

// Execute runs the active step's validation. On failure the wizard stays on
// the step and the response carries the field errors.
func (uc *AdvanceStepUseCase) Execute(
	_ context.Context,
	req dto.StepRequest,
) (dto.WizardStateResponse, error) {
	session, ok := uc.sessions.Get(req.SessionID)
	if !ok {
		return dto.WizardStateResponse{}, ErrSessionNotFound
	}

	fieldErrs, err := session.Next()
	if err != nil {
		return dto.WizardStateResponse{}, fmt.Errorf("advance step: %w", err)
	}
	return toWizardState(session, fieldErrs), nil
}
