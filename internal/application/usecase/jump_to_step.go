package usecase

import (
	"context"
	"fmt"

	"github.com/bibbank/onboarding/internal/application/dto"
	"github.com/bibbank/onboarding/internal/domain/port"
)

// JumpToStepUseCase revisits an already-completed wizard step.
type JumpToStepUseCase struct {
	sessions port.SessionStore
}

// NewJumpToStepUseCase wires dependencies.
func NewJumpToStepUseCase(sessions port.SessionStore) *JumpToStepUseCase {
	return &JumpToStepUseCase{sessions: sessions}
}

// Execute moves the wizard to a completed step; forward jumps are refused.
func (uc *JumpToStepUseCase) Execute(
	_ context.Context,
	req dto.JumpToStepRequest,
) (dto.WizardStateResponse, error) {
	session, ok := uc.sessions.Get(req.SessionID)
	if !ok {
		return dto.WizardStateResponse{}, ErrSessionNotFound
	}

	if err := session.JumpTo(req.Step); err != nil {
		return dto.WizardStateResponse{}, fmt.Errorf("jump to step: %w", err)
	}
	return toWizardState(session, nil), nil
}
