package usecase

import (
	"context"
	"fmt"

	"github.com/bibbank/onboarding/internal/application/dto"
	"github.com/bibbank/onboarding/internal/domain/port"
	"github.com/bibbank/onboarding/internal/domain/valueobject"
	"github.com/bibbank/onboarding/internal/domain/wizard"
)

// StartWizardUseCase opens a new wizard session for a product line.
type StartWizardUseCase struct {
	sessions port.SessionStore
}

// NewStartWizardUseCase wires dependencies.
func NewStartWizardUseCase(sessions port.SessionStore) *StartWizardUseCase {
	return &StartWizardUseCase{sessions: sessions}
}

// Execute creates a session positioned on step 1 with an empty draft.
func (uc *StartWizardUseCase) Execute(
	_ context.Context,
	req dto.StartWizardRequest,
) (dto.WizardStateResponse, error) {
	product, err := valueobject.NewProduct(req.Product)
	if err != nil {
		return dto.WizardStateResponse{}, fmt.Errorf("parse product: %w", err)
	}

	session, err := wizard.NewSession(product)
	if err != nil {
		return dto.WizardStateResponse{}, fmt.Errorf("create session: %w", err)
	}

	uc.sessions.Put(session)
	return toWizardState(session, nil), nil
}
