package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// ApplicationStatus – immutable value object
// ---------------------------------------------------------------------------

// ApplicationStatus represents the lifecycle stage of a submitted application.
type ApplicationStatus struct {
	value string
}

const (
	applicationStatusPending  = "PENDING"
	applicationStatusApproved = "APPROVED"
	applicationStatusRejected = "REJECTED"
)

var (
	ApplicationStatusPending  = ApplicationStatus{value: applicationStatusPending}
	ApplicationStatusApproved = ApplicationStatus{value: applicationStatusApproved}
	ApplicationStatusRejected = ApplicationStatus{value: applicationStatusRejected}
)

var validApplicationStatuses = map[string]ApplicationStatus{
	applicationStatusPending:  ApplicationStatusPending,
	applicationStatusApproved: ApplicationStatusApproved,
	applicationStatusRejected: ApplicationStatusRejected,
}

// NewApplicationStatus creates an ApplicationStatus from a raw string.
func NewApplicationStatus(s string) (ApplicationStatus, error) {
	v, ok := validApplicationStatuses[s]
	if !ok {
		return ApplicationStatus{}, fmt.Errorf("invalid application status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s ApplicationStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s ApplicationStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s ApplicationStatus) Equal(other ApplicationStatus) bool { return s.value == other.value }

// IsTerminal returns true once a reviewer decision has been applied.
func (s ApplicationStatus) IsTerminal() bool {
	return s.value == applicationStatusApproved || s.value == applicationStatusRejected
}

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
