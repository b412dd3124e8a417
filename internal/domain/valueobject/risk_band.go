package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// RiskBand – immutable value object
//
// Used by product lines where a higher score means higher risk (bank account
// opening, insurance underwriting) and for the loan risk grade. The polarity
// of the underlying score is product-specific and documented on each engine.
// ---------------------------------------------------------------------------

// RiskBand is the discrete risk label derived from a numeric score.
type RiskBand struct {
	value string
}

const (
	riskBandLow    = "LOW"
	riskBandMedium = "MEDIUM"
	riskBandHigh   = "HIGH"
)

var (
	RiskBandLow    = RiskBand{value: riskBandLow}
	RiskBandMedium = RiskBand{value: riskBandMedium}
	RiskBandHigh   = RiskBand{value: riskBandHigh}
)

var validRiskBands = map[string]RiskBand{
	riskBandLow:    RiskBandLow,
	riskBandMedium: RiskBandMedium,
	riskBandHigh:   RiskBandHigh,
}

// NewRiskBand creates a RiskBand from a raw string.
func NewRiskBand(s string) (RiskBand, error) {
	v, ok := validRiskBands[s]
	if !ok {
		return RiskBand{}, fmt.Errorf("invalid risk band: %q", s)
	}
	return v, nil
}

// String returns the string representation of the band.
func (b RiskBand) String() string { return b.value }

// IsZero returns true if the band has not been initialised.
func (b RiskBand) IsZero() bool { return b.value == "" }

// Equal returns true when both bands carry the same value.
func (b RiskBand) Equal(other RiskBand) bool { return b.value == other.value }

// ---------------------------------------------------------------------------
// ApprovalBand – immutable value object
//
// Used by the credit-card engine, where a higher score means a better
// approval chance.
// ---------------------------------------------------------------------------

// ApprovalBand is the discrete approval-chance label for credit cards.
type ApprovalBand struct {
	value string
}

const (
	approvalBandExcellent = "EXCELLENT"
	approvalBandGood      = "GOOD"
	approvalBandFair      = "FAIR"
)

var (
	ApprovalBandExcellent = ApprovalBand{value: approvalBandExcellent}
	ApprovalBandGood      = ApprovalBand{value: approvalBandGood}
	ApprovalBandFair      = ApprovalBand{value: approvalBandFair}
)

var validApprovalBands = map[string]ApprovalBand{
	approvalBandExcellent: ApprovalBandExcellent,
	approvalBandGood:      ApprovalBandGood,
	approvalBandFair:      ApprovalBandFair,
}

// NewApprovalBand creates an ApprovalBand from a raw string.
func NewApprovalBand(s string) (ApprovalBand, error) {
	v, ok := validApprovalBands[s]
	if !ok {
		return ApprovalBand{}, fmt.Errorf("invalid approval band: %q", s)
	}
	return v, nil
}

// String returns the string representation of the band.
func (b ApprovalBand) String() string { return b.value }

// IsZero returns true if the band has not been initialised.
func (b ApprovalBand) IsZero() bool { return b.value == "" }

// Equal returns true when both bands carry the same value.
func (b ApprovalBand) Equal(other ApprovalBand) bool { return b.value == other.value }

// ---------------------------------------------------------------------------
// InvestorProfile – immutable value object
// ---------------------------------------------------------------------------

// InvestorProfile is the categorical investor classification derived from
// the investment questionnaire.
type InvestorProfile struct {
	value string
}

const (
	investorProfileConservative = "CONSERVATIVE"
	investorProfileModerate     = "MODERATE"
	investorProfileAggressive   = "AGGRESSIVE"
)

var (
	InvestorProfileConservative = InvestorProfile{value: investorProfileConservative}
	InvestorProfileModerate     = InvestorProfile{value: investorProfileModerate}
	InvestorProfileAggressive   = InvestorProfile{value: investorProfileAggressive}
)

var validInvestorProfiles = map[string]InvestorProfile{
	investorProfileConservative: InvestorProfileConservative,
	investorProfileModerate:     InvestorProfileModerate,
	investorProfileAggressive:   InvestorProfileAggressive,
}

// NewInvestorProfile creates an InvestorProfile from a raw string.
func NewInvestorProfile(s string) (InvestorProfile, error) {
	v, ok := validInvestorProfiles[s]
	if !ok {
		return InvestorProfile{}, fmt.Errorf("invalid investor profile: %q", s)
	}
	return v, nil
}

// String returns the string representation of the profile.
func (p InvestorProfile) String() string { return p.value }

// IsZero returns true if the profile has not been initialised.
func (p InvestorProfile) IsZero() bool { return p.value == "" }

// Equal returns true when both profiles carry the same value.
func (p InvestorProfile) Equal(other InvestorProfile) bool { return p.value == other.value }
