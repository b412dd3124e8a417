package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bibbank/onboarding/internal/application/dto"
	"github.com/bibbank/onboarding/internal/domain/model"
	"github.com/bibbank/onboarding/internal/domain/port"
	"github.com/bibbank/onboarding/internal/domain/service"
)

// SubmitApplicationUseCase freezes a wizard draft, scores it, and persists
// the resulting application with its audit trail.
type SubmitApplicationUseCase struct {
	sessions  port.SessionStore
	appRepo   port.ApplicationRepository
	auditRepo port.AuditLogRepository
	publisher port.EventPublisher
	identity  port.IdentityProvider
	assessor  *service.Assessor
}

// NewSubmitApplicationUseCase wires dependencies.
func NewSubmitApplicationUseCase(
	sessions port.SessionStore,
	appRepo port.ApplicationRepository,
	auditRepo port.AuditLogRepository,
	publisher port.EventPublisher,
	identity port.IdentityProvider,
	assessor *service.Assessor,
) *SubmitApplicationUseCase {
	return &SubmitApplicationUseCase{
		sessions:  sessions,
		appRepo:   appRepo,
		auditRepo: auditRepo,
		publisher: publisher,
		identity:  identity,
		assessor:  assessor,
	}
}

// Execute drives the submission pipeline. The session is marked submitted
// only after the application has been durably saved, so a storage failure
// leaves the draft editable for retry.
func (uc *SubmitApplicationUseCase) Execute(
	ctx context.Context,
	req dto.SubmitApplicationRequest,
) (dto.SubmitApplicationResponse, error) {
	now := time.Now().UTC()

	session, ok := uc.sessions.Get(req.SessionID)
	if !ok {
		return dto.SubmitApplicationResponse{}, ErrSessionNotFound
	}

	// 1. Freeze the draft (re-validates the final step).
	draft, fieldErrs, err := session.Freeze()
	if err != nil {
		if len(fieldErrs) > 0 {
			return dto.SubmitApplicationResponse{FieldErrors: toFieldErrors(fieldErrs)}, fmt.Errorf("freeze draft: %w", err)
		}
		return dto.SubmitApplicationResponse{}, fmt.Errorf("freeze draft: %w", err)
	}

	// 2. Resolve the submitting user.
	user, err := uc.identity.CurrentUser(ctx)
	if err != nil {
		return dto.SubmitApplicationResponse{}, fmt.Errorf("resolve identity: %w", err)
	}

	// 3. Score the frozen draft.
	assessment, err := uc.assessor.Assess(draft)
	if err != nil {
		return dto.SubmitApplicationResponse{}, fmt.Errorf("assess draft: %w", err)
	}

	// 4. Create the aggregate.
	app, err := model.NewApplication(
		req.TenantID, user.ID, user.Name, user.Email,
		draft, assessment, now,
	)
	if err != nil {
		return dto.SubmitApplicationResponse{}, fmt.Errorf("create application: %w", err)
	}

	// 5. Persist; the draft survives a failed save.
	if err := uc.appRepo.Save(ctx, app); err != nil {
		return dto.SubmitApplicationResponse{}, fmt.Errorf("save application: %w", err)
	}

	// 6. Record the audit entry.
	entry, err := model.NewAuditLogEntry(
		req.TenantID, model.AuditActionApplicationSubmitted,
		user.ID, user.Name,
		fmt.Sprintf("Submitted %s application, assessment %s (%d)",
			app.Product().String(), assessment.Category, assessment.Score),
		app.ID(), now,
	)
	if err != nil {
		return dto.SubmitApplicationResponse{}, fmt.Errorf("create audit entry: %w", err)
	}
	if err := uc.auditRepo.Append(ctx, entry); err != nil {
		return dto.SubmitApplicationResponse{}, fmt.Errorf("append audit entry: %w", err)
	}

	// 7. Publish domain events.
	if err := uc.publisher.Publish(ctx, app.DomainEvents()...); err != nil {
		return dto.SubmitApplicationResponse{}, fmt.Errorf("publish events: %w", err)
	}

	// 8. Seal the session and drop it from the store.
	session.MarkSubmitted()
	uc.sessions.Delete(session.ID())

	return dto.SubmitApplicationResponse{Application: toApplicationResponse(app)}, nil
}
