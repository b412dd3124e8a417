package usecase

import (
	"context"
	"fmt"

	"github.com/bibbank/onboarding/internal/application/dto"
	"github.com/bibbank/onboarding/internal/domain/port"
)

// ListAuditLogUseCase lists a tenant's audit trail in insertion order.
type ListAuditLogUseCase struct {
	auditRepo port.AuditLogRepository
}

// NewListAuditLogUseCase wires dependencies.
func NewListAuditLogUseCase(auditRepo port.AuditLogRepository) *ListAuditLogUseCase {
	return &ListAuditLogUseCase{auditRepo: auditRepo}
}

// Execute returns the full ordered trail for the tenant.
func (uc *ListAuditLogUseCase) Execute(
	ctx context.Context,
	req dto.ListAuditLogRequest,
) ([]dto.AuditLogEntryResponse, error) {
	entries, err := uc.auditRepo.List(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("list audit log: %w", err)
	}

	out := make([]dto.AuditLogEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = toAuditLogResponse(e)
	}
	return out, nil
}
