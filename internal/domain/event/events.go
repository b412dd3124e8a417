package event

import (
	"github.com/bibbank/onboarding/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Application events
// ---------------------------------------------------------------------------

// ApplicationSubmitted is raised when a wizard draft is frozen into a
// persisted application.
type ApplicationSubmitted struct {
	events.BaseEvent
	ApplicantID  string   `json:"applicant_id"`
	Product      string   `json:"product"`
	RiskScore    int      `json:"risk_score"`
	RiskCategory string   `json:"risk_category"`
	RiskReasons  []string `json:"risk_reasons"`
}

func NewApplicationSubmitted(
	applicationID, tenantID, applicantID, product string,
	riskScore int, riskCategory string, riskReasons []string,
) ApplicationSubmitted {
	return ApplicationSubmitted{
		BaseEvent:    events.NewBaseEvent("onboarding.application.submitted", applicationID, "Application", tenantID),
		ApplicantID:  applicantID,
		Product:      product,
		RiskScore:    riskScore,
		RiskCategory: riskCategory,
		RiskReasons:  riskReasons,
	}
}

// ApplicationReviewed is raised when a reviewer applies a terminal decision.
type ApplicationReviewed struct {
	events.BaseEvent
	ApplicantID string `json:"applicant_id"`
	Decision    string `json:"decision"`
	ReviewedBy  string `json:"reviewed_by"`
}

func NewApplicationReviewed(
	applicationID, tenantID, applicantID, decision, reviewedBy string,
) ApplicationReviewed {
	return ApplicationReviewed{
		BaseEvent:   events.NewBaseEvent("onboarding.application.reviewed", applicationID, "Application", tenantID),
		ApplicantID: applicantID,
		Decision:    decision,
		ReviewedBy:  reviewedBy,
	}
}
