package wizard

import (
	"fmt"
	"strings"

	"github.com/bibbank/onboarding/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Step descriptors
//
// A step is a static descriptor: an identifier, a display title and a
// validation predicate over the shared draft. Conditional sub-fields (joint
// holder, collateral, employer name) are expressed inside the predicate by
// inspecting already-collected draft fields; the step count per product is
// fixed regardless of which branch is active.
// ---------------------------------------------------------------------------

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Step describes one wizard step.
type Step struct {
	ID       string
	Title    string
	Validate func(d model.Draft) []FieldError
}

func required(errs []FieldError, field, value string) []FieldError {
	if strings.TrimSpace(value) == "" {
		errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf("%s is required", field)})
	}
	return errs
}

func validatePersonal(d model.Draft) []FieldError {
	var errs []FieldError
	errs = required(errs, "personal.first_name", d.Personal.FirstName)
	errs = required(errs, "personal.last_name", d.Personal.LastName)
	errs = required(errs, "personal.email", d.Personal.Email)
	if d.Personal.Email != "" && !strings.Contains(d.Personal.Email, "@") {
		errs = append(errs, FieldError{Field: "personal.email", Message: "personal.email must be a valid email address"})
	}
	errs = required(errs, "personal.phone", d.Personal.Phone)
	return errs
}

func validateAddress(d model.Draft) []FieldError {
	var errs []FieldError
	errs = required(errs, "address.line1", d.Address.Line1)
	errs = required(errs, "address.city", d.Address.City)
	errs = required(errs, "address.state", d.Address.State)
	errs = required(errs, "address.postal_code", d.Address.PostalCode)
	return errs
}

// validateEmployment requires an employer name only for salaried applicants:
// the employment-type choice selects which sub-fields are active.
func validateEmployment(d model.Draft) []FieldError {
	var errs []FieldError
	errs = required(errs, "employment.type", d.Employment.Type)
	if d.Employment.Type == model.EmploymentSalaried {
		errs = required(errs, "employment.employer_name", d.Employment.EmployerName)
	}
	if !d.Employment.MonthlyIncome.IsPositive() {
		errs = append(errs, FieldError{Field: "employment.monthly_income", Message: "employment.monthly_income must be positive"})
	}
	return errs
}

// validateKYC requires the identifiers to be present. Format validity is
// deliberately not gated here: malformed numbers pass through and are
// penalised by the risk engine instead.
func validateKYC(d model.Draft) []FieldError {
	var errs []FieldError
	errs = required(errs, "kyc.pan_number", d.KYC.PANNumber)
	errs = required(errs, "kyc.aadhaar_number", d.KYC.AadhaarNumber)
	return errs
}

// validateAccountOptions requires the joint-holder block only in JOINT mode.
func validateAccountOptions(d model.Draft) []FieldError {
	var errs []FieldError
	errs = required(errs, "account.mode", d.Account.Mode)
	if d.Account.Mode == model.AccountModeJoint {
		errs = required(errs, "account.joint_holder_name", d.Account.JointHolderName)
		errs = required(errs, "account.joint_holder_pan", d.Account.JointHolderPAN)
	}
	return errs
}

func validateCardOptions(d model.Draft) []FieldError {
	var errs []FieldError
	errs = required(errs, "card.residence_type", d.Card.ResidenceType)
	return errs
}

// validateLoanDetails requires collateral only for secured loans.
func validateLoanDetails(d model.Draft) []FieldError {
	var errs []FieldError
	if !d.Loan.RequestedAmount.IsPositive() {
		errs = append(errs, FieldError{Field: "loan.requested_amount", Message: "loan.requested_amount must be positive"})
	}
	if d.Loan.TermMonths <= 0 {
		errs = append(errs, FieldError{Field: "loan.term_months", Message: "loan.term_months must be positive"})
	}
	if d.Loan.Secured && !d.Loan.CollateralValue.IsPositive() {
		errs = append(errs, FieldError{Field: "loan.collateral_value", Message: "loan.collateral_value is required for secured loans"})
	}
	return errs
}

func validateHealth(d model.Draft) []FieldError {
	var errs []FieldError
	if d.Insurance.Age <= 0 {
		errs = append(errs, FieldError{Field: "insurance.age", Message: "insurance.age must be positive"})
	}
	if d.Insurance.HeightCM <= 0 {
		errs = append(errs, FieldError{Field: "insurance.height_cm", Message: "insurance.height_cm must be positive"})
	}
	if d.Insurance.WeightKG <= 0 {
		errs = append(errs, FieldError{Field: "insurance.weight_kg", Message: "insurance.weight_kg must be positive"})
	}
	return errs
}

func validateCoverage(d model.Draft) []FieldError {
	var errs []FieldError
	if !d.Insurance.CoverageAmount.IsPositive() {
		errs = append(errs, FieldError{Field: "insurance.coverage_amount", Message: "insurance.coverage_amount must be positive"})
	}
	return errs
}

func validateQuestionnaire(d model.Draft) []FieldError {
	var errs []FieldError
	errs = required(errs, "investment.time_horizon", d.Investment.TimeHorizon)
	errs = required(errs, "investment.risk_tolerance", d.Investment.RiskTolerance)
	errs = required(errs, "investment.experience_level", d.Investment.ExperienceLevel)
	return errs
}

func validateReview(d model.Draft) []FieldError {
	if !d.Consented {
		return []FieldError{{Field: "consented", Message: "terms must be accepted before submitting"}}
	}
	return nil
}
