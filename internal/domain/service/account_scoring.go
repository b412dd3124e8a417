package service

import (
	"github.com/shopspring/decimal"

	"github.com/bibbank/onboarding/internal/domain/model"
	"github.com/bibbank/onboarding/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// AccountRiskEngine – bank account opening
//
// Polarity: higher score = riskier applicant. Scores are clamped to [0,100]
// and banded <30 LOW, 30-60 MEDIUM, >60 HIGH.
// ---------------------------------------------------------------------------

var accountVolumeThreshold = decimal.NewFromInt(200_000)

// AccountRiskResult holds the outcome of the account-opening risk evaluation.
type AccountRiskResult struct {
	RiskScore int
	Band      valueobject.RiskBand
	Reasons   []string
}

// AccountRiskEngine scores account-opening drafts.
type AccountRiskEngine struct {
	rules RuleSet
}

// NewAccountRiskEngine returns an engine with the fixed account rule table.
func NewAccountRiskEngine() *AccountRiskEngine {
	return &AccountRiskEngine{
		rules: RuleSet{
			Base: 0,
			Min:  0,
			Max:  100,
			Rules: []Rule{
				{
					Name:   "high_transaction_volume",
					Delta:  30,
					Reason: "Monthly transaction volume exceeds 200,000 (+30)",
					Applies: func(d model.Draft) bool {
						return d.Account.MonthlyTransactionVolume.GreaterThan(accountVolumeThreshold)
					},
				},
				{
					Name:   "self_employed",
					Delta:  15,
					Reason: "Self-employed applicant (+15)",
					Applies: func(d model.Draft) bool {
						return d.Employment.Type == model.EmploymentSelfEmployed
					},
				},
				{
					Name:   "invalid_pan",
					Delta:  25,
					Reason: "PAN number fails format validation (+25)",
					Applies: func(d model.Draft) bool {
						return !valueobject.IsValidPAN(d.KYC.PANNumber)
					},
				},
				{
					Name:   "invalid_aadhaar",
					Delta:  20,
					Reason: "Aadhaar number fails format validation (+20)",
					Applies: func(d model.Draft) bool {
						return !valueobject.IsValidAadhaar(d.KYC.AadhaarNumber)
					},
				},
			},
		},
	}
}

// Evaluate computes the deterministic account-opening risk assessment.
func (e *AccountRiskEngine) Evaluate(d model.Draft) AccountRiskResult {
	score, reasons := e.rules.Evaluate(d)

	var band valueobject.RiskBand
	switch {
	case score < 30:
		band = valueobject.RiskBandLow
	case score <= 60:
		band = valueobject.RiskBandMedium
	default:
		band = valueobject.RiskBandHigh
	}

	return AccountRiskResult{RiskScore: score, Band: band, Reasons: reasons}
}
