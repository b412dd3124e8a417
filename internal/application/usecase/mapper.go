package usecase

import (
	"github.com/bibbank/onboarding/internal/application/dto"
	"github.com/bibbank/onboarding/internal/domain/model"
	"github.com/bibbank/onboarding/internal/domain/wizard"
)

func toWizardState(s *wizard.Session, fieldErrs []wizard.FieldError) dto.WizardStateResponse {
	step := s.Step()
	return dto.WizardStateResponse{
		SessionID:   s.ID(),
		Product:     s.Product().String(),
		CurrentStep: s.CurrentStep(),
		TotalSteps:  s.TotalSteps(),
		StepID:      step.ID,
		StepTitle:   step.Title,
		FieldErrors: toFieldErrors(fieldErrs),
		Submitted:   s.Submitted(),
	}
}

func toFieldErrors(src []wizard.FieldError) []dto.FieldErrorResponse {
	if len(src) == 0 {
		return nil
	}
	out := make([]dto.FieldErrorResponse, len(src))
	for i, fe := range src {
		out[i] = dto.FieldErrorResponse{Field: fe.Field, Message: fe.Message}
	}
	return out
}

func toApplicationResponse(app model.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:             app.ID(),
		TenantID:       app.TenantID(),
		ApplicantID:    app.ApplicantID(),
		ApplicantName:  app.ApplicantName(),
		ApplicantEmail: app.ApplicantEmail(),
		Product:        app.Product().String(),
		Fields:         app.Fields(),
		Assessment: dto.AssessmentResponse{
			Score:    app.Assessment().Score,
			Category: app.Assessment().Category,
			Reasons:  app.Assessment().Reasons,
		},
		Status:     app.Status().String(),
		ReviewedBy: app.ReviewedBy(),
		ReviewedAt: app.ReviewedAt(),
		Version:    app.Version(),
		CreatedAt:  app.CreatedAt(),
		UpdatedAt:  app.UpdatedAt(),
	}
}

func toAuditLogResponse(e model.AuditLogEntry) dto.AuditLogEntryResponse {
	return dto.AuditLogEntryResponse{
		ID:                   e.ID,
		TenantID:             e.TenantID,
		Action:               e.Action,
		ActorID:              e.ActorID,
		ActorName:            e.ActorName,
		Details:              e.Details,
		RelatedApplicationID: e.RelatedApplicationID,
		OccurredAt:           e.OccurredAt,
	}
}
