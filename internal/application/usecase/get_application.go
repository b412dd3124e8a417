package usecase

import (
	"context"
	"fmt"

	"github.com/bibbank/onboarding/internal/application/dto"
	"github.com/bibbank/onboarding/internal/domain/port"
)

// GetApplicationUseCase retrieves a single application.
type GetApplicationUseCase struct {
	appRepo port.ApplicationRepository
}

// NewGetApplicationUseCase wires dependencies.
func NewGetApplicationUseCase(appRepo port.ApplicationRepository) *GetApplicationUseCase {
	return &GetApplicationUseCase{appRepo: appRepo}
}

// Execute looks up the application by tenant and ID.
func (uc *GetApplicationUseCase) Execute(
	ctx context.Context,
	req dto.GetApplicationRequest,
) (dto.ApplicationResponse, error) {
	app, err := uc.appRepo.FindByID(ctx, req.TenantID, req.ApplicationID)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("find application: %w", err)
	}
	return toApplicationResponse(app), nil
}
