package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bibbank/onboarding/internal/application/dto"
	"github.com/bibbank/onboarding/internal/application/usecase"
	"github.com/bibbank/onboarding/internal/assistant"
	"github.com/bibbank/onboarding/internal/domain/valueobject"
	"github.com/bibbank/onboarding/internal/domain/wizard"
	"github.com/bibbank/onboarding/internal/infrastructure/persistence/postgres"
	"github.com/bibbank/onboarding/pkg/auth"
)

// requireRole checks that the caller has at least one of the given roles.
func requireRole(ctx context.Context, roles ...string) error {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "authentication required")
	}
	for _, role := range roles {
		if claims.HasRole(role) {
			return nil
		}
	}
	return status.Error(codes.PermissionDenied, "insufficient permissions")
}

// tenantIDFromContext extracts the tenant ID from JWT claims in the context.
func tenantIDFromContext(ctx context.Context) (string, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "authentication required")
	}
	if claims.TenantID == "" {
		return "", status.Error(codes.PermissionDenied, "tenant claim missing")
	}
	return claims.TenantID, nil
}

// Compile-time assertion that OnboardingHandler implements OnboardingServiceServer.
var _ OnboardingServiceServer = (*OnboardingHandler)(nil)

// OnboardingHandler implements the gRPC OnboardingServiceServer interface.
type OnboardingHandler struct {
	UnimplementedOnboardingServiceServer
	startWizardUC *usecase.StartWizardUseCase
	updateDraftUC *usecase.UpdateDraftUseCase
	nextStepUC    *usecase.AdvanceStepUseCase
	stepBackUC    *usecase.StepBackUseCase
	jumpToStepUC  *usecase.JumpToStepUseCase
	submitUC      *usecase.SubmitApplicationUseCase
	reviewUC      *usecase.ReviewApplicationUseCase
	getAppUC      *usecase.GetApplicationUseCase
	listAppsUC    *usecase.ListApplicationsUseCase
	deleteAppUC   *usecase.DeleteApplicationUseCase
	listAuditUC   *usecase.ListAuditLogUseCase
	bridge        *assistant.Bridge
}

// NewOnboardingHandler creates a new OnboardingHandler.
func NewOnboardingHandler(
	startWizardUC *usecase.StartWizardUseCase,
	updateDraftUC *usecase.UpdateDraftUseCase,
	nextStepUC *usecase.AdvanceStepUseCase,
	stepBackUC *usecase.StepBackUseCase,
	jumpToStepUC *usecase.JumpToStepUseCase,
	submitUC *usecase.SubmitApplicationUseCase,
	reviewUC *usecase.ReviewApplicationUseCase,
	getAppUC *usecase.GetApplicationUseCase,
	listAppsUC *usecase.ListApplicationsUseCase,
	deleteAppUC *usecase.DeleteApplicationUseCase,
	listAuditUC *usecase.ListAuditLogUseCase,
	bridge *assistant.Bridge,
) *OnboardingHandler {
	return &OnboardingHandler{
		startWizardUC: startWizardUC,
		updateDraftUC: updateDraftUC,
		nextStepUC:    nextStepUC,
		stepBackUC:    stepBackUC,
		jumpToStepUC:  jumpToStepUC,
		submitUC:      submitUC,
		reviewUC:      reviewUC,
		getAppUC:      getAppUC,
		listAppsUC:    listAppsUC,
		deleteAppUC:   deleteAppUC,
		listAuditUC:   listAuditUC,
		bridge:        bridge,
	}
}

// toStatusError maps use case errors onto gRPC status codes.
func toStatusError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound),
		errors.Is(err, postgres.ErrApplicationNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, usecase.ErrEmptyPatch):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, wizard.ErrForwardJump),
		errors.Is(err, wizard.ErrNotLastStep),
		errors.Is(err, wizard.ErrAlreadySubmitted),
		errors.Is(err, valueobject.ErrInvalidStatusTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func toFieldErrorMsgs(src []dto.FieldErrorResponse) []FieldErrorMsg {
	if len(src) == 0 {
		return nil
	}
	out := make([]FieldErrorMsg, len(src))
	for i, fe := range src {
		out[i] = FieldErrorMsg{Field: fe.Field, Message: fe.Message}
	}
	return out
}

func toWizardStateMsg(state dto.WizardStateResponse) *WizardStateMsg {
	return &WizardStateMsg{
		SessionID:   state.SessionID,
		Product:     state.Product,
		CurrentStep: state.CurrentStep,
		TotalSteps:  state.TotalSteps,
		StepID:      state.StepID,
		StepTitle:   state.StepTitle,
		FieldErrors: toFieldErrorMsgs(state.FieldErrors),
		Submitted:   state.Submitted,
	}
}

func toApplicationMsg(app dto.ApplicationResponse) *ApplicationMsg {
	return &ApplicationMsg{
		ID:             app.ID,
		TenantID:       app.TenantID,
		ApplicantID:    app.ApplicantID,
		ApplicantName:  app.ApplicantName,
		ApplicantEmail: app.ApplicantEmail,
		Product:        app.Product,
		Fields:         app.Fields,
		Assessment: &AssessmentMsg{
			Score:    app.Assessment.Score,
			Category: app.Assessment.Category,
			Reasons:  app.Assessment.Reasons,
		},
		Status:     app.Status,
		ReviewedBy: app.ReviewedBy,
		ReviewedAt: app.ReviewedAt,
		Version:    app.Version,
		CreatedAt:  app.CreatedAt,
		UpdatedAt:  app.UpdatedAt,
	}
}

// StartWizard handles the gRPC request to open a new wizard session.
func (h *OnboardingHandler) StartWizard(ctx context.Context, req *StartWizardRequest) (*StartWizardResponse, error) {
	if err := requireRole(ctx, auth.RoleCustomer, auth.RoleAdmin); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.Product == "" {
		return nil, status.Error(codes.InvalidArgument, "product is required")
	}

	state, err := h.startWizardUC.Execute(ctx, dto.StartWizardRequest{Product: req.Product})
	if err != nil {
		if _, perr := valueobject.NewProduct(req.Product); perr != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid product: %v", perr)
		}
		return nil, toStatusError(err)
	}
	return &StartWizardResponse{State: toWizardStateMsg(state)}, nil
}

// UpdateDraft handles the gRPC request to merge a section patch into a draft.
func (h *OnboardingHandler) UpdateDraft(ctx context.Context, req *UpdateDraftRequest) (*UpdateDraftResponse, error) {
	if err := requireRole(ctx, auth.RoleCustomer, auth.RoleAdmin); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.SessionID == "" {
		return nil, status.Error(codes.InvalidArgument, "session_id is required")
	}

	state, err := h.updateDraftUC.Execute(ctx, dto.UpdateDraftRequest{
		SessionID: req.SessionID,
		Patch:     req.Patch,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &UpdateDraftResponse{State: toWizardStateMsg(state)}, nil
}

// NextStep handles the gRPC request to advance a wizard session.
func (h *OnboardingHandler) NextStep(ctx context.Context, req *NextStepRequest) (*NextStepResponse, error) {
	if err := requireRole(ctx, auth.RoleCustomer, auth.RoleAdmin); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.SessionID == "" {
		return nil, status.Error(codes.InvalidArgument, "session_id is required")
	}

	state, err := h.nextStepUC.Execute(ctx, dto.StepRequest{SessionID: req.SessionID})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &NextStepResponse{State: toWizardStateMsg(state)}, nil
}

// PreviousStep handles the gRPC request to step a wizard session back.
func (h *OnboardingHandler) PreviousStep(ctx context.Context, req *PreviousStepRequest) (*PreviousStepResponse, error) {
	if err := requireRole(ctx, auth.RoleCustomer, auth.RoleAdmin); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.SessionID == "" {
		return nil, status.Error(codes.InvalidArgument, "session_id is required")
	}

	state, err := h.stepBackUC.Execute(ctx, dto.StepRequest{SessionID: req.SessionID})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &PreviousStepResponse{State: toWizardStateMsg(state)}, nil
}

// JumpToStep handles the gRPC request to revisit a completed step.
func (h *OnboardingHandler) JumpToStep(ctx context.Context, req *JumpToStepRequest) (*JumpToStepResponse, error) {
	if err := requireRole(ctx, auth.RoleCustomer, auth.RoleAdmin); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.SessionID == "" {
		return nil, status.Error(codes.InvalidArgument, "session_id is required")
	}

	state, err := h.jumpToStepUC.Execute(ctx, dto.JumpToStepRequest{
		SessionID: req.SessionID,
		Step:      req.Step,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &JumpToStepResponse{State: toWizardStateMsg(state)}, nil
}

// SubmitApplication handles the gRPC request to freeze a draft into an
// application. Validation failures on the final step come back as field
// errors, not a transport error.
func (h *OnboardingHandler) SubmitApplication(ctx context.Context, req *SubmitApplicationRequest) (*SubmitApplicationResponse, error) {
	if err := requireRole(ctx, auth.RoleCustomer, auth.RoleAdmin); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.SessionID == "" {
		return nil, status.Error(codes.InvalidArgument, "session_id is required")
	}

	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := h.submitUC.Execute(ctx, dto.SubmitApplicationRequest{
		TenantID:  tenantID,
		SessionID: req.SessionID,
	})
	if err != nil {
		if errors.Is(err, wizard.ErrValidationFailed) {
			return &SubmitApplicationResponse{FieldErrors: toFieldErrorMsgs(resp.FieldErrors)}, nil
		}
		return nil, toStatusError(err)
	}
	return &SubmitApplicationResponse{Application: toApplicationMsg(resp.Application)}, nil
}

// ReviewApplication handles the gRPC request to approve or reject a
// pending application.
func (h *OnboardingHandler) ReviewApplication(ctx context.Context, req *ReviewApplicationRequest) (*ReviewApplicationResponse, error) {
	if err := requireRole(ctx, auth.RoleReviewer, auth.RoleAdmin); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.ApplicationID == "" {
		return nil, status.Error(codes.InvalidArgument, "application_id is required")
	}

	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, serr := valueobject.NewApplicationStatus(req.Decision); serr != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid decision: %v", serr)
	}

	app, err := h.reviewUC.Execute(ctx, dto.ReviewApplicationRequest{
		TenantID:      tenantID,
		ApplicationID: req.ApplicationID,
		Decision:      req.Decision,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ReviewApplicationResponse{Application: toApplicationMsg(app)}, nil
}

// GetApplication handles the gRPC request to retrieve one application.
func (h *OnboardingHandler) GetApplication(ctx context.Context, req *GetApplicationRequest) (*GetApplicationResponse, error) {
	if err := requireRole(ctx, auth.RoleCustomer, auth.RoleReviewer, auth.RoleAuditor, auth.RoleAdmin); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.ApplicationID == "" {
		return nil, status.Error(codes.InvalidArgument, "application_id is required")
	}

	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	app, err := h.getAppUC.Execute(ctx, dto.GetApplicationRequest{
		TenantID:      tenantID,
		ApplicationID: req.ApplicationID,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &GetApplicationResponse{Application: toApplicationMsg(app)}, nil
}

// ListApplications handles the gRPC request to list applications with
// optional status and product filters.
func (h *OnboardingHandler) ListApplications(ctx context.Context, req *ListApplicationsRequest) (*ListApplicationsResponse, error) {
	if err := requireRole(ctx, auth.RoleCustomer, auth.RoleReviewer, auth.RoleAuditor, auth.RoleAdmin); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	apps, err := h.listAppsUC.Execute(ctx, dto.ListApplicationsRequest{
		TenantID: tenantID,
		Status:   req.Status,
		Product:  req.Product,
	})
	if err != nil {
		if req.Status != "" {
			if _, serr := valueobject.NewApplicationStatus(req.Status); serr != nil {
				return nil, status.Errorf(codes.InvalidArgument, "invalid status filter: %v", serr)
			}
		}
		if req.Product != "" {
			if _, perr := valueobject.NewProduct(req.Product); perr != nil {
				return nil, status.Errorf(codes.InvalidArgument, "invalid product filter: %v", perr)
			}
		}
		return nil, toStatusError(err)
	}

	out := make([]*ApplicationMsg, len(apps))
	for i := range apps {
		out[i] = toApplicationMsg(apps[i])
	}
	return &ListApplicationsResponse{Applications: out}, nil
}

// DeleteApplication handles the gRPC request to remove an application.
func (h *OnboardingHandler) DeleteApplication(ctx context.Context, req *DeleteApplicationRequest) (*DeleteApplicationResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.ApplicationID == "" {
		return nil, status.Error(codes.InvalidArgument, "application_id is required")
	}

	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.deleteAppUC.Execute(ctx, dto.DeleteApplicationRequest{
		TenantID:      tenantID,
		ApplicationID: req.ApplicationID,
	}); err != nil {
		return nil, toStatusError(err)
	}
	return &DeleteApplicationResponse{}, nil
}

// ListAuditLog handles the gRPC request to read the tenant audit trail.
func (h *OnboardingHandler) ListAuditLog(ctx context.Context, req *ListAuditLogRequest) (*ListAuditLogResponse, error) {
	if err := requireRole(ctx, auth.RoleAuditor, auth.RoleAdmin); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := h.listAuditUC.Execute(ctx, dto.ListAuditLogRequest{TenantID: tenantID})
	if err != nil {
		return nil, toStatusError(err)
	}

	out := make([]*AuditLogEntryMsg, len(entries))
	for i, e := range entries {
		out[i] = &AuditLogEntryMsg{
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
	return &ListAuditLogResponse{Entries: out}, nil
}

// AssistantFill handles the gRPC request to queue a draft patch for the
// active wizard session.
func (h *OnboardingHandler) AssistantFill(ctx context.Context, req *AssistantFillRequest) (*AssistantFillResponse, error) {
	if err := requireRole(ctx, auth.RoleCustomer, auth.RoleAdmin); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.Patch.IsEmpty() {
		return nil, status.Error(codes.InvalidArgument, "patch carries no sections")
	}

	h.bridge.Fill(req.Patch)
	return &AssistantFillResponse{Pending: h.bridge.Pending()}, nil
}

// AssistantNavigate handles the gRPC request to steer the wizard toward a
// product flow.
func (h *OnboardingHandler) AssistantNavigate(ctx context.Context, req *AssistantNavigateRequest) (*AssistantNavigateResponse, error) {
	if err := requireRole(ctx, auth.RoleCustomer, auth.RoleAdmin); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	product, err := valueobject.NewProduct(req.Product)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid product: %v", err)
	}

	h.bridge.Navigate(product)
	return &AssistantNavigateResponse{Pending: h.bridge.Pending()}, nil
}
