package model

import (
	"github.com/shopspring/decimal"

	"github.com/bibbank/onboarding/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Draft – the mutable, in-progress record for one wizard session.
//
// A Draft is owned exclusively by its wizard session for the lifetime of one
// fill-out session. Fields belonging to future steps may be empty; the step
// validators decide which subset must be populated before advancing. On
// submit the draft is frozen into an immutable Application.
// ---------------------------------------------------------------------------

// Employment type values collected by the employment step.
const (
	EmploymentSalaried     = "SALARIED"
	EmploymentSelfEmployed = "SELF_EMPLOYED"
	EmploymentRetired      = "RETIRED"
	EmploymentStudent      = "STUDENT"
)

// Residence type values collected by the card options step.
const (
	ResidenceOwned  = "OWNED"
	ResidenceRented = "RENTED"
)

// Account holding mode values.
const (
	AccountModeSingle = "SINGLE"
	AccountModeJoint  = "JOINT"
)

// Investment questionnaire answer values.
const (
	HorizonShort  = "SHORT"
	HorizonMedium = "MEDIUM"
	HorizonLong   = "LONG"

	ToleranceLow    = "LOW"
	ToleranceMedium = "MEDIUM"
	ToleranceHigh   = "HIGH"

	ExperienceNone         = "NONE"
	ExperienceIntermediate = "INTERMEDIATE"
	ExperienceExperienced  = "EXPERIENCED"
)

// PersonalDetails holds applicant identity fields.
type PersonalDetails struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

// AddressDetails holds the applicant's residential address.
type AddressDetails struct {
	Line1      string `json:"line1"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

// EmploymentDetails holds occupation and income fields.
type EmploymentDetails struct {
	Type                string          `json:"type"`
	EmployerName        string          `json:"employer_name"`
	WorkExperienceYears int             `json:"work_experience_years"`
	MonthlyIncome       decimal.Decimal `json:"monthly_income"`
}

// KYCDetails holds identity document numbers. Format validity is scored,
// not gated: a draft may carry a malformed PAN all the way to submission,
// where the risk engine penalises it.
type KYCDetails struct {
	PANNumber     string `json:"pan_number"`
	AadhaarNumber string `json:"aadhaar_number"`
}

// AccountOptions holds bank-account-opening specifics. The joint-holder
// block is required only when Mode is JOINT.
type AccountOptions struct {
	Mode                     string          `json:"mode"`
	JointHolderName          string          `json:"joint_holder_name"`
	JointHolderPAN           string          `json:"joint_holder_pan"`
	MonthlyTransactionVolume decimal.Decimal `json:"monthly_transaction_volume"`
}

// CardOptions holds credit-card specifics.
type CardOptions struct {
	ExistingCreditCards bool   `json:"existing_credit_cards"`
	ResidenceType       string `json:"residence_type"`
}

// LoanOptions holds loan specifics. Collateral fields are required only
// when Secured is true.
type LoanOptions struct {
	CreditScore         int             `json:"credit_score"`
	RequestedAmount     decimal.Decimal `json:"requested_amount"`
	TermMonths          int             `json:"term_months"`
	Secured             bool            `json:"secured"`
	CollateralValue     decimal.Decimal `json:"collateral_value"`
	ExistingMonthlyDebt decimal.Decimal `json:"existing_monthly_debt"`
}

// InsuranceOptions holds health and coverage fields.
type InsuranceOptions struct {
	Age                int             `json:"age"`
	HeightCM           float64         `json:"height_cm"`
	WeightKG           float64         `json:"weight_kg"`
	Smoker             bool            `json:"smoker"`
	RegularAlcohol     bool            `json:"regular_alcohol"`
	MedicalConditions  []string        `json:"medical_conditions"`
	FamilyHistory      []string        `json:"family_history"`
	CoverageAmount     decimal.Decimal `json:"coverage_amount"`
	AnnualIncome       decimal.Decimal `json:"annual_income"`
}

// InvestmentOptions holds the investor questionnaire answers.
type InvestmentOptions struct {
	TimeHorizon     string `json:"time_horizon"`
	RiskTolerance   string `json:"risk_tolerance"`
	ExperienceLevel string `json:"experience_level"`
}

// Draft accumulates all fields collected across wizard steps for one
// product application.
type Draft struct {
	Product    valueobject.Product `json:"product"`
	Personal   PersonalDetails     `json:"personal"`
	Address    AddressDetails      `json:"address"`
	Employment EmploymentDetails   `json:"employment"`
	KYC        KYCDetails          `json:"kyc"`
	Account    AccountOptions      `json:"account"`
	Card       CardOptions         `json:"card"`
	Loan       LoanOptions         `json:"loan"`
	Insurance  InsuranceOptions    `json:"insurance"`
	Investment InvestmentOptions   `json:"investment"`
	Consented  bool                `json:"consented"`
}

// NewDraft creates an empty draft for the given product.
func NewDraft(product valueobject.Product) Draft {
	return Draft{Product: product}
}

// BMI derives body-mass index from the collected height and weight.
// Returns 0 when either measurement is missing.
func (d Draft) BMI() float64 {
	if d.Insurance.HeightCM <= 0 || d.Insurance.WeightKG <= 0 {
		return 0
	}
	m := d.Insurance.HeightCM / 100
	return d.Insurance.WeightKG / (m * m)
}

// DebtToIncomeRatio is the existing monthly debt divided by monthly income,
// as a percentage. Returns 0 when income is unknown.
func (d Draft) DebtToIncomeRatio() float64 {
	if d.Employment.MonthlyIncome.IsZero() {
		return 0
	}
	ratio := d.Loan.ExistingMonthlyDebt.Div(d.Employment.MonthlyIncome)
	f, _ := ratio.Float64()
	return f * 100
}

// LoanToValueRatio is the requested loan amount divided by the collateral
// value, as a percentage. Returns 0 for unsecured loans or unknown collateral.
func (d Draft) LoanToValueRatio() float64 {
	if !d.Loan.Secured || d.Loan.CollateralValue.IsZero() {
		return 0
	}
	ratio := d.Loan.RequestedAmount.Div(d.Loan.CollateralValue)
	f, _ := ratio.Float64()
	return f * 100
}

// CoverageToIncomeRatio is the requested coverage divided by annual income.
// Returns 0 when income is unknown.
func (d Draft) CoverageToIncomeRatio() float64 {
	if d.Insurance.AnnualIncome.IsZero() {
		return 0
	}
	ratio := d.Insurance.CoverageAmount.Div(d.Insurance.AnnualIncome)
	f, _ := ratio.Float64()
	return f
}

// ---------------------------------------------------------------------------
// DraftPatch – typed partial update
//
// Each non-nil section replaces the corresponding draft section wholesale.
// This is the typed replacement for string-keyed path mutation: callers can
// only address whole, named field groups.
// ---------------------------------------------------------------------------

// DraftPatch carries the sections a caller wants to update.
type DraftPatch struct {
	Personal   *PersonalDetails   `json:"personal,omitempty"`
	Address    *AddressDetails    `json:"address,omitempty"`
	Employment *EmploymentDetails `json:"employment,omitempty"`
	KYC        *KYCDetails        `json:"kyc,omitempty"`
	Account    *AccountOptions    `json:"account,omitempty"`
	Card       *CardOptions       `json:"card,omitempty"`
	Loan       *LoanOptions       `json:"loan,omitempty"`
	Insurance  *InsuranceOptions  `json:"insurance,omitempty"`
	Investment *InvestmentOptions `json:"investment,omitempty"`
	Consented  *bool              `json:"consented,omitempty"`
}

// IsEmpty reports whether the patch carries no sections.
func (p DraftPatch) IsEmpty() bool {
	return p.Personal == nil && p.Address == nil && p.Employment == nil &&
		p.KYC == nil && p.Account == nil && p.Card == nil && p.Loan == nil &&
		p.Insurance == nil && p.Investment == nil && p.Consented == nil
}

// Apply merges the patch into the draft.
func (d *Draft) Apply(p DraftPatch) {
	if p.Personal != nil {
		d.Personal = *p.Personal
	}
	if p.Address != nil {
		d.Address = *p.Address
	}
	if p.Employment != nil {
		d.Employment = *p.Employment
	}
	if p.KYC != nil {
		d.KYC = *p.KYC
	}
	if p.Account != nil {
		d.Account = *p.Account
	}
	if p.Card != nil {
		d.Card = *p.Card
	}
	if p.Loan != nil {
		d.Loan = *p.Loan
	}
	if p.Insurance != nil {
		d.Insurance = *p.Insurance
	}
	if p.Investment != nil {
		d.Investment = *p.Investment
	}
	if p.Consented != nil {
		d.Consented = *p.Consented
	}
}
