package usecase

import (
	"context"
	"fmt"

	"github.com/bibbank/onboarding/internal/application/dto"
	"github.com/bibbank/onboarding/internal/domain/port"
	"github.com/bibbank/onboarding/internal/domain/valueobject"
)

// ListApplicationsUseCase lists a tenant's applications with optional
// status and product filters.
type ListApplicationsUseCase struct {
	appRepo port.ApplicationRepository
}

// NewListApplicationsUseCase wires dependencies.
func NewListApplicationsUseCase(appRepo port.ApplicationRepository) *ListApplicationsUseCase {
	return &ListApplicationsUseCase{appRepo: appRepo}
}

// Execute lists applications matching the filter. Empty filter fields match
// everything.
func (uc *ListApplicationsUseCase) Execute(
	ctx context.Context,
	req dto.ListApplicationsRequest,
) ([]dto.ApplicationResponse, error) {
	var filter port.ApplicationFilter

	if req.Status != "" {
		status, err := valueobject.NewApplicationStatus(req.Status)
		if err != nil {
			return nil, fmt.Errorf("parse status filter: %w", err)
		}
		filter.Status = &status
	}
	if req.Product != "" {
		product, err := valueobject.NewProduct(req.Product)
		if err != nil {
			return nil, fmt.Errorf("parse product filter: %w", err)
		}
		filter.Product = &product
	}

	apps, err := uc.appRepo.List(ctx, req.TenantID, filter)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	out := make([]dto.ApplicationResponse, len(apps))
	for i, app := range apps {
		out[i] = toApplicationResponse(app)
	}
	return out, nil
}
