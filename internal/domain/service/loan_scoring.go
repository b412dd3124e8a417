package service

import (
	"github.com/bibbank/onboarding/internal/domain/model"
	"github.com/bibbank/onboarding/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// LoanApprovalEngine – loan origination
//
// Polarity: higher score = better approval probability. Scores start at 50
// and are clamped to [1,99]; 0 and 100 are reserved so no applicant is ever
// graded "never" or "always" approve. The risk grade reads >80 LOW risk,
// >50 MEDIUM, else HIGH.
//
// A missing credit score takes the conservative interpretation and fires
// the sub-550 penalty. The loan-to-value rules apply to secured loans only.
// ---------------------------------------------------------------------------

// LoanApprovalResult holds the outcome of the loan evaluation.
type LoanApprovalResult struct {
	ApprovalScore int
	RiskGrade     valueobject.RiskBand
	Reasons       []string
}

// LoanApprovalEngine scores loan drafts.
type LoanApprovalEngine struct {
	rules RuleSet
}

// NewLoanApprovalEngine returns an engine with the fixed loan rule table.
func NewLoanApprovalEngine() *LoanApprovalEngine {
	return &LoanApprovalEngine{
		rules: RuleSet{
			Base: 50,
			Min:  1,
			Max:  99,
			Rules: []Rule{
				{
					Name:   "excellent_credit",
					Delta:  30,
					Reason: "Credit score 750 or above (+30)",
					Applies: func(d model.Draft) bool {
						return d.Loan.CreditScore >= 750
					},
				},
				{
					Name:   "good_credit",
					Delta:  10,
					Reason: "Credit score between 650 and 749 (+10)",
					Applies: func(d model.Draft) bool {
						return d.Loan.CreditScore >= 650 && d.Loan.CreditScore < 750
					},
				},
				{
					Name:   "poor_credit",
					Delta:  -20,
					Reason: "Credit score below 550 (-20)",
					Applies: func(d model.Draft) bool {
						return d.Loan.CreditScore < 550
					},
				},
				{
					Name:   "low_dti",
					Delta:  20,
					Reason: "Debt-to-income ratio below 30% (+20)",
					Applies: func(d model.Draft) bool {
						return d.Employment.MonthlyIncome.IsPositive() && d.DebtToIncomeRatio() < 30
					},
				},
				{
					Name:   "high_dti",
					Delta:  -20,
					Reason: "Debt-to-income ratio above 50% (-20)",
					Applies: func(d model.Draft) bool {
						return d.Employment.MonthlyIncome.IsPositive() && d.DebtToIncomeRatio() > 50
					},
				},
				{
					Name:   "low_ltv",
					Delta:  10,
					Reason: "Loan-to-value ratio below 80% (+10)",
					Applies: func(d model.Draft) bool {
						return d.Loan.Secured && d.Loan.CollateralValue.IsPositive() && d.LoanToValueRatio() < 80
					},
				},
				{
					Name:   "high_ltv",
					Delta:  -10,
					Reason: "Loan-to-value ratio above 90% (-10)",
					Applies: func(d model.Draft) bool {
						return d.Loan.Secured && d.Loan.CollateralValue.IsPositive() && d.LoanToValueRatio() > 90
					},
				},
				{
					Name:   "work_experience",
					Delta:  10,
					Reason: "More than 3 years of work experience (+10)",
					Applies: func(d model.Draft) bool {
						return d.Employment.WorkExperienceYears > 3
					},
				},
			},
		},
	}
}

// Evaluate computes the deterministic loan approval assessment.
func (e *LoanApprovalEngine) Evaluate(d model.Draft) LoanApprovalResult {
	score, reasons := e.rules.Evaluate(d)

	var grade valueobject.RiskBand
	switch {
	case score > 80:
		grade = valueobject.RiskBandLow
	case score > 50:
		grade = valueobject.RiskBandMedium
	default:
		grade = valueobject.RiskBandHigh
	}

	return LoanApprovalResult{ApprovalScore: score, RiskGrade: grade, Reasons: reasons}
}
