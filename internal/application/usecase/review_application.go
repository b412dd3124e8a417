package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bibbank/onboarding/internal/application/dto"
	"github.com/bibbank/onboarding/internal/domain/model"
	"github.com/bibbank/onboarding/internal/domain/port"
	"github.com/bibbank/onboarding/internal/domain/valueobject"
)

// ReviewApplicationUseCase applies a reviewer decision to a pending
// application.
type ReviewApplicationUseCase struct {
	appRepo   port.ApplicationRepository
	auditRepo port.AuditLogRepository
	publisher port.EventPublisher
	identity  port.IdentityProvider
}

// NewReviewApplicationUseCase wires dependencies.
func NewReviewApplicationUseCase(
	appRepo port.ApplicationRepository,
	auditRepo port.AuditLogRepository,
	publisher port.EventPublisher,
	identity port.IdentityProvider,
) *ReviewApplicationUseCase {
	return &ReviewApplicationUseCase{
		appRepo:   appRepo,
		auditRepo: auditRepo,
		publisher: publisher,
		identity:  identity,
	}
}

// Execute transitions PENDING to APPROVED or REJECTED. Terminal
// applications refuse further decisions.
func (uc *ReviewApplicationUseCase) Execute(
	ctx context.Context,
	req dto.ReviewApplicationRequest,
) (dto.ApplicationResponse, error) {
	now := time.Now().UTC()

	decision, err := valueobject.NewApplicationStatus(req.Decision)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("parse decision: %w", err)
	}

	reviewer, err := uc.identity.CurrentUser(ctx)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("resolve identity: %w", err)
	}

	app, err := uc.appRepo.FindByID(ctx, req.TenantID, req.ApplicationID)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("find application: %w", err)
	}

	app, err = app.Review(decision, reviewer.ID, now)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("review application: %w", err)
	}

	if err := uc.appRepo.Save(ctx, app); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("save application: %w", err)
	}

	action := model.AuditActionApplicationApproved
	if decision.Equal(valueobject.ApplicationStatusRejected) {
		action = model.AuditActionApplicationRejected
	}
	entry, err := model.NewAuditLogEntry(
		req.TenantID, action, reviewer.ID, reviewer.Name,
		fmt.Sprintf("Application %s %s", app.ID(), decision.String()),
		app.ID(), now,
	)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("create audit entry: %w", err)
	}
	if err := uc.auditRepo.Append(ctx, entry); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("append audit entry: %w", err)
	}

	if err := uc.publisher.Publish(ctx, app.DomainEvents()...); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toApplicationResponse(app), nil
}
