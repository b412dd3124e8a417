package grpc

import (
	"time"

	"github.com/bibbank/onboarding/internal/domain/model"
)

// Proto-aligned request/response message types for bib.onboarding.v1.

// FieldErrorMsg represents the proto FieldError message.
type FieldErrorMsg struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// WizardStateMsg represents the proto WizardState message.
type WizardStateMsg struct {
	SessionID   string          `json:"session_id"`
	Product     string          `json:"product"`
	CurrentStep int             `json:"current_step"`
	TotalSteps  int             `json:"total_steps"`
	StepID      string          `json:"step_id"`
	StepTitle   string          `json:"step_title"`
	FieldErrors []FieldErrorMsg `json:"field_errors,omitempty"`
	Submitted   bool            `json:"submitted"`
}

// AssessmentMsg represents the proto Assessment message.
type AssessmentMsg struct {
	Score    int      `json:"score"`
	Category string   `json:"category"`
	Reasons  []string `json:"reasons"`
}

// ApplicationMsg represents the proto Application message. The collected
// fields travel as the draft's JSON shape, matching the JSONB column.
type ApplicationMsg struct {
	ID             string         `json:"id"`
	TenantID       string         `json:"tenant_id"`
	ApplicantID    string         `json:"applicant_id"`
	ApplicantName  string         `json:"applicant_name"`
	ApplicantEmail string         `json:"applicant_email"`
	Product        string         `json:"product"`
	Fields         model.Draft    `json:"fields"`
	Assessment     *AssessmentMsg `json:"assessment"`
	Status         string         `json:"status"`
	ReviewedBy     string         `json:"reviewed_by,omitempty"`
	ReviewedAt     *time.Time     `json:"reviewed_at,omitempty"`
	Version        int            `json:"version"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// AuditLogEntryMsg represents the proto AuditLogEntry message.
type AuditLogEntryMsg struct {
	ID                   string    `json:"id"`
	TenantID             string    `json:"tenant_id"`
	Action               string    `json:"action"`
	ActorID              string    `json:"actor_id"`
	ActorName            string    `json:"actor_name"`
	Details              string    `json:"details"`
	RelatedApplicationID string    `json:"related_application_id,omitempty"`
	OccurredAt           time.Time `json:"occurred_at"`
}

// StartWizardRequest represents the proto StartWizardRequest message.
type StartWizardRequest struct {
	Product string `json:"product"`
}

// StartWizardResponse represents the proto StartWizardResponse message.
type StartWizardResponse struct {
	State *WizardStateMsg `json:"state"`
}

// UpdateDraftRequest represents the proto UpdateDraftRequest message.
type UpdateDraftRequest struct {
	SessionID string           `json:"session_id"`
	Patch     model.DraftPatch `json:"patch"`
}

// UpdateDraftResponse represents the proto UpdateDraftResponse message.
type UpdateDraftResponse struct {
	State *WizardStateMsg `json:"state"`
}

// NextStepRequest represents the proto NextStepRequest message.
type NextStepRequest struct {
	SessionID string `json:"session_id"`
}

// NextStepResponse represents the proto NextStepResponse message.
type NextStepResponse struct {
	State *WizardStateMsg `json:"state"`
}

// PreviousStepRequest represents the proto PreviousStepRequest message.
type PreviousStepRequest struct {
	SessionID string `json:"session_id"`
}

// PreviousStepResponse represents the proto PreviousStepResponse message.
type PreviousStepResponse struct {
	State *WizardStateMsg `json:"state"`
}

// JumpToStepRequest represents the proto JumpToStepRequest message.
type JumpToStepRequest struct {
	SessionID string `json:"session_id"`
	Step      int    `json:"step"`
}

// JumpToStepResponse represents the proto JumpToStepResponse message.
type JumpToStepResponse struct {
	State *WizardStateMsg `json:"state"`
}

// SubmitApplicationRequest represents the proto SubmitApplicationRequest message.
type SubmitApplicationRequest struct {
	SessionID string `json:"session_id"`
}

// SubmitApplicationResponse represents the proto SubmitApplicationResponse message.
type SubmitApplicationResponse struct {
	Application *ApplicationMsg `json:"application,omitempty"`
	FieldErrors []FieldErrorMsg `json:"field_errors,omitempty"`
}

// ReviewApplicationRequest represents the proto ReviewApplicationRequest message.
type ReviewApplicationRequest struct {
	ApplicationID string `json:"application_id"`
	Decision      string `json:"decision"`
}

// ReviewApplicationResponse represents the proto ReviewApplicationResponse message.
type ReviewApplicationResponse struct {
	Application *ApplicationMsg `json:"application"`
}

// GetApplicationRequest represents the proto GetApplicationRequest message.
type GetApplicationRequest struct {
	ApplicationID string `json:"application_id"`
}

// GetApplicationResponse represents the proto GetApplicationResponse message.
type GetApplicationResponse struct {
	Application *ApplicationMsg `json:"application"`
}

// ListApplicationsRequest represents the proto ListApplicationsRequest message.
type ListApplicationsRequest struct {
	Status  string `json:"status,omitempty"`
	Product string `json:"product,omitempty"`
}

// ListApplicationsResponse represents the proto ListApplicationsResponse message.
type ListApplicationsResponse struct {
	Applications []*ApplicationMsg `json:"applications"`
}

// DeleteApplicationRequest represents the proto DeleteApplicationRequest message.
type DeleteApplicationRequest struct {
	ApplicationID string `json:"application_id"`
}

// DeleteApplicationResponse represents the proto DeleteApplicationResponse message.
type DeleteApplicationResponse struct{}

// ListAuditLogRequest represents the proto ListAuditLogRequest message.
type ListAuditLogRequest struct{}

// ListAuditLogResponse represents the proto ListAuditLogResponse message.
type ListAuditLogResponse struct {
	Entries []*AuditLogEntryMsg `json:"entries"`
}

// AssistantFillRequest represents the proto AssistantFillRequest message.
type AssistantFillRequest struct {
	Patch model.DraftPatch `json:"patch"`
}

// AssistantFillResponse represents the proto AssistantFillResponse message.
type AssistantFillResponse struct {
	Pending int `json:"pending"`
}

// AssistantNavigateRequest represents the proto AssistantNavigateRequest message.
type AssistantNavigateRequest struct {
	Product string `json:"product"`
}

// AssistantNavigateResponse represents the proto AssistantNavigateResponse message.
type AssistantNavigateResponse struct {
	Pending int `json:"pending"`
}
