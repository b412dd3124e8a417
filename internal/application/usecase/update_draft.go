package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bibbank/onboarding/internal/application/dto"
	"github.com/bibbank/onboarding/internal/domain/port"
)

// ErrSessionNotFound is returned when a wizard session ID is unknown.
var ErrSessionNotFound = errors.New("wizard session not found")

// ErrEmptyPatch is returned when an update carries no sections.
var ErrEmptyPatch = errors.New("draft patch carries no sections")

// UpdateDraftUseCase merges a typed field patch into a session's draft.
type UpdateDraftUseCase struct {
	sessions port.SessionStore
}

// NewUpdateDraftUseCase wires dependencies.
func NewUpdateDraftUseCase(sessions port.SessionStore) *UpdateDraftUseCase {
	return &UpdateDraftUseCase{sessions: sessions}
}

// Execute applies the patch without moving the wizard.
func (uc *UpdateDraftUseCase) Execute(
	_ context.Context,
	req dto.UpdateDraftRequest,
) (dto.WizardStateResponse, error) {
	if req.Patch.IsEmpty() {
		return dto.WizardStateResponse{}, ErrEmptyPatch
	}

	session, ok := uc.sessions.Get(req.SessionID)
	if !ok {
		return dto.WizardStateResponse{}, ErrSessionNotFound
	}

	if err := session.ApplyPatch(req.Patch); err != nil {
		return dto.WizardStateResponse{}, fmt.Errorf("apply patch: %w", err)
	}
	return toWizardState(session, nil), nil
}
