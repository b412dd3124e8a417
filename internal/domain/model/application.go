package model

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/bibbank/onboarding/internal/domain/event"
	"github.com/bibbank/onboarding/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Application aggregate root
// ---------------------------------------------------------------------------

// Application is an immutable-after-creation snapshot of a submitted draft
// plus its computed risk assessment. Every mutation returns a new copy. The
// only permitted mutation is the one-way reviewer transition from PENDING
// to a terminal status.
type Application struct {
	id             string
	tenantID       string
	applicantID    string
	applicantName  string
	applicantEmail string
	product        valueobject.Product
	fields         Draft
	assessment     Assessment
	status         valueobject.ApplicationStatus
	reviewedBy     string
	reviewedAt     *time.Time
	version        int
	createdAt      time.Time
	updatedAt      time.Time
	domainEvents   []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewApplication freezes a completed draft into a PENDING application and
// records the submission event.
func NewApplication(
	tenantID, applicantID, applicantName, applicantEmail string,
	draft Draft,
	assessment Assessment,
	now time.Time,
) (Application, error) {
	if tenantID == "" {
		return Application{}, errors.New("tenant ID is required")
	}
	if applicantID == "" {
		return Application{}, errors.New("applicant ID is required")
	}
	if draft.Product.IsZero() {
		return Application{}, errors.New("draft product is required")
	}

	id := uuid.New().String()
	app := Application{
		id:             id,
		tenantID:       tenantID,
		applicantID:    applicantID,
		applicantName:  applicantName,
		applicantEmail: applicantEmail,
		product:        draft.Product,
		fields:         draft,
		assessment:     assessment,
		status:         valueobject.ApplicationStatusPending,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}

	app.domainEvents = append(app.domainEvents, event.NewApplicationSubmitted(
		id, tenantID, applicantID, draft.Product.String(),
		assessment.Score, assessment.Category, assessment.Reasons,
	))
	return app, nil
}

// ReconstructApplication rebuilds an aggregate from persistence without
// side-effects.
func ReconstructApplication(
	id, tenantID, applicantID, applicantName, applicantEmail string,
	product valueobject.Product,
	fields Draft,
	assessment Assessment,
	status valueobject.ApplicationStatus,
	reviewedBy string,
	reviewedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) Application {
	return Application{
		id:             id,
		tenantID:       tenantID,
		applicantID:    applicantID,
		applicantName:  applicantName,
		applicantEmail: applicantEmail,
		product:        product,
		fields:         fields,
		assessment:     assessment,
		status:         status,
		reviewedBy:     reviewedBy,
		reviewedAt:     reviewedAt,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// Review applies a reviewer decision, transitioning PENDING -> APPROVED or
// PENDING -> REJECTED. Terminal applications refuse further review.
func (a Application) Review(
	decision valueobject.ApplicationStatus,
	reviewerID string,
	now time.Time,
) (Application, error) {
	if !a.status.Equal(valueobject.ApplicationStatusPending) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	if !decision.IsTerminal() {
		return a, valueobject.ErrInvalidStatusTransition
	}

	next := a
	next.status = decision
	next.reviewedBy = reviewerID
	next.reviewedAt = &now
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationReviewed(
		a.id, a.tenantID, a.applicantID, decision.String(), reviewerID,
	))
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (a Application) ID() string                             { return a.id }
func (a Application) TenantID() string                       { return a.tenantID }
func (a Application) ApplicantID() string                    { return a.applicantID }
func (a Application) ApplicantName() string                  { return a.applicantName }
func (a Application) ApplicantEmail() string                 { return a.applicantEmail }
func (a Application) Product() valueobject.Product           { return a.product }
func (a Application) Fields() Draft                          { return a.fields }
func (a Application) Assessment() Assessment                 { return a.assessment }
func (a Application) Status() valueobject.ApplicationStatus  { return a.status }
func (a Application) ReviewedBy() string                     { return a.reviewedBy }
func (a Application) ReviewedAt() *time.Time                 { return a.reviewedAt }
func (a Application) Version() int                           { return a.version }
func (a Application) CreatedAt() time.Time                   { return a.createdAt }
func (a Application) UpdatedAt() time.Time                   { return a.updatedAt }
func (a Application) DomainEvents() []event.DomainEvent      { return a.domainEvents }

// ClearEvents returns a copy with an empty event list (call after publishing).
func (a Application) ClearEvents() Application {
	next := a
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]event.DomainEvent, len(src))
	copy(dst, src)
	return dst
}
