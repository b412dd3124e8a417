package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// AuditLogEntry – append-only record
// ---------------------------------------------------------------------------

// Audit actions recorded by the onboarding service.
const (
	AuditActionApplicationSubmitted = "APPLICATION_SUBMITTED"
	AuditActionApplicationApproved  = "APPLICATION_APPROVED"
	AuditActionApplicationRejected  = "APPLICATION_REJECTED"
	AuditActionApplicationDeleted   = "APPLICATION_DELETED"
)

// AuditLogEntry records a single system or user action. Entries are never
// mutated or deleted once written; the repository exposes append and ordered
// list only.
type AuditLogEntry struct {
	ID                   string
	TenantID             string
	Action               string
	ActorID              string
	ActorName            string
	Details              string
	RelatedApplicationID string
	OccurredAt           time.Time
}

// NewAuditLogEntry creates an audit entry stamped with the given time.
func NewAuditLogEntry(
	tenantID, action, actorID, actorName, details, relatedApplicationID string,
	now time.Time,
) (AuditLogEntry, error) {
	if tenantID == "" {
		return AuditLogEntry{}, errors.New("tenant ID is required")
	}
	if action == "" {
		return AuditLogEntry{}, errors.New("action is required")
	}
	if actorID == "" {
		return AuditLogEntry{}, errors.New("actor ID is required")
	}

	return AuditLogEntry{
		ID:                   uuid.New().String(),
		TenantID:             tenantID,
		Action:               action,
		ActorID:              actorID,
		ActorName:            actorName,
		Details:              details,
		RelatedApplicationID: relatedApplicationID,
		OccurredAt:           now,
	}, nil
}
