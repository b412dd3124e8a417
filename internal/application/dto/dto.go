package dto

import (
	"time"

	"github.com/bibbank/onboarding/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// StartWizardRequest opens a new wizard session for a product.
type StartWizardRequest struct {
	Product string `json:"product"`
}

// UpdateDraftRequest merges a typed section patch into a session's draft.
type UpdateDraftRequest struct {
	SessionID string           `json:"session_id"`
	Patch     model.DraftPatch `json:"patch"`
}

// StepRequest identifies a session for a navigation action.
type StepRequest struct {
	SessionID string `json:"session_id"`
}

// JumpToStepRequest targets an already-completed step.
type JumpToStepRequest struct {
	SessionID string `json:"session_id"`
	Step      int    `json:"step"`
}

// SubmitApplicationRequest freezes a session's draft into an application.
type SubmitApplicationRequest struct {
	TenantID  string `json:"tenant_id"`
	SessionID string `json:"session_id"`
}

// ReviewApplicationRequest applies a reviewer decision.
type ReviewApplicationRequest struct {
	TenantID      string `json:"tenant_id"`
	ApplicationID string `json:"application_id"`
	Decision      string `json:"decision"`
}

// GetApplicationRequest identifies an application to retrieve.
type GetApplicationRequest struct {
	TenantID      string `json:"tenant_id"`
	ApplicationID string `json:"application_id"`
}

// ListApplicationsRequest filters the application listing. Empty filter
// fields match everything.
type ListApplicationsRequest struct {
	TenantID string `json:"tenant_id"`
	Status   string `json:"status,omitempty"`
	Product  string `json:"product,omitempty"`
}

// DeleteApplicationRequest identifies an application to remove.
type DeleteApplicationRequest struct {
	TenantID      string `json:"tenant_id"`
	ApplicationID string `json:"application_id"`
}

// ListAuditLogRequest identifies the tenant whose trail to list.
type ListAuditLogRequest struct {
	TenantID string `json:"tenant_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// FieldErrorResponse is a single field-level validation failure.
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// WizardStateResponse is the external view of a wizard session after any
// navigation or mutation.
type WizardStateResponse struct {
	SessionID   string               `json:"session_id"`
	Product     string               `json:"product"`
	CurrentStep int                  `json:"current_step"`
	TotalSteps  int                  `json:"total_steps"`
	StepID      string               `json:"step_id"`
	StepTitle   string               `json:"step_title"`
	FieldErrors []FieldErrorResponse `json:"field_errors,omitempty"`
	Submitted   bool                 `json:"submitted"`
}

// AssessmentResponse is the external view of a computed assessment.
type AssessmentResponse struct {
	Score    int      `json:"score"`
	Category string   `json:"category"`
	Reasons  []string `json:"reasons"`
}

// ApplicationResponse is the external representation of an application.
type ApplicationResponse struct {
	ID             string             `json:"id"`
	TenantID       string             `json:"tenant_id"`
	ApplicantID    string             `json:"applicant_id"`
	ApplicantName  string             `json:"applicant_name"`
	ApplicantEmail string             `json:"applicant_email"`
	Product        string             `json:"product"`
	Fields         model.Draft        `json:"fields"`
	Assessment     AssessmentResponse `json:"assessment"`
	Status         string             `json:"status"`
	ReviewedBy     string             `json:"reviewed_by,omitempty"`
	ReviewedAt     *time.Time         `json:"reviewed_at,omitempty"`
	Version        int                `json:"version"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// SubmitApplicationResponse couples the created application with the
// terminal wizard state.
type SubmitApplicationResponse struct {
	Application ApplicationResponse  `json:"application"`
	FieldErrors []FieldErrorResponse `json:"field_errors,omitempty"`
}

// AuditLogEntryResponse is the external representation of one audit entry.
type AuditLogEntryResponse struct {
	ID                   string    `json:"id"`
	TenantID             string    `json:"tenant_id"`
	Action               string    `json:"action"`
	ActorID              string    `json:"actor_id"`
	ActorName            string    `json:"actor_name"`
	Details              string    `json:"details"`
	RelatedApplicationID string    `json:"related_application_id,omitempty"`
	OccurredAt           time.Time `json:"occurred_at"`
}
