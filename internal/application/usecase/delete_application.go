package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bibbank/onboarding/internal/application/dto"
	"github.com/bibbank/onboarding/internal/domain/model"
	"github.com/bibbank/onboarding/internal/domain/port"
)

// DeleteApplicationUseCase removes an application while keeping its audit
// trail intact.
type DeleteApplicationUseCase struct {
	appRepo   port.ApplicationRepository
	auditRepo port.AuditLogRepository
	identity  port.IdentityProvider
}

// NewDeleteApplicationUseCase wires dependencies.
func NewDeleteApplicationUseCase(
	appRepo port.ApplicationRepository,
	auditRepo port.AuditLogRepository,
	identity port.IdentityProvider,
) *DeleteApplicationUseCase {
	return &DeleteApplicationUseCase{
		appRepo:   appRepo,
		auditRepo: auditRepo,
		identity:  identity,
	}
}

// Execute deletes the application and records who did it. Audit entries
// referencing the application are never removed.
func (uc *DeleteApplicationUseCase) Execute(
	ctx context.Context,
	req dto.DeleteApplicationRequest,
) error {
	now := time.Now().UTC()

	actor, err := uc.identity.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("resolve identity: %w", err)
	}

	app, err := uc.appRepo.FindByID(ctx, req.TenantID, req.ApplicationID)
	if err != nil {
		return fmt.Errorf("find application: %w", err)
	}

	if err := uc.appRepo.Delete(ctx, req.TenantID, app.ID()); err != nil {
		return fmt.Errorf("delete application: %w", err)
	}

	entry, err := model.NewAuditLogEntry(
		req.TenantID, model.AuditActionApplicationDeleted,
		actor.ID, actor.Name,
		fmt.Sprintf("Deleted %s application %s", app.Product().String(), app.ID()),
		app.ID(), now,
	)
	if err != nil {
		return fmt.Errorf("create audit entry: %w", err)
	}
	if err := uc.auditRepo.Append(ctx, entry); err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}
