package service

import (
	"github.com/shopspring/decimal"

	"github.com/bibbank/onboarding/internal/domain/model"
	"github.com/bibbank/onboarding/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// CardApprovalEngine – credit card
//
// Polarity: higher score = better approval chance. Scores start at 50, are
// clamped to [0,100] and banded >70 EXCELLENT, >40 GOOD, else FAIR.
// ---------------------------------------------------------------------------

var cardIncomeThreshold = decimal.NewFromInt(50_000)

// CardApprovalResult holds the outcome of the credit-card evaluation.
type CardApprovalResult struct {
	ApprovalScore int
	Band          valueobject.ApprovalBand
	Reasons       []string
}

// CardApprovalEngine scores credit-card drafts.
type CardApprovalEngine struct {
	rules RuleSet
}

// NewCardApprovalEngine returns an engine with the fixed card rule table.
func NewCardApprovalEngine() *CardApprovalEngine {
	return &CardApprovalEngine{
		rules: RuleSet{
			Base: 50,
			Min:  0,
			Max:  100,
			Rules: []Rule{
				{
					Name:   "income_above_threshold",
					Delta:  20,
					Reason: "Monthly income above 50,000 (+20)",
					Applies: func(d model.Draft) bool {
						return d.Employment.MonthlyIncome.GreaterThan(cardIncomeThreshold)
					},
				},
				{
					Name:   "existing_credit_card",
					Delta:  10,
					Reason: "Holds an existing credit card (+10)",
					Applies: func(d model.Draft) bool {
						return d.Card.ExistingCreditCards
					},
				},
				{
					Name:   "salaried",
					Delta:  10,
					Reason: "Salaried employment (+10)",
					Applies: func(d model.Draft) bool {
						return d.Employment.Type == model.EmploymentSalaried
					},
				},
				{
					Name:   "owned_residence",
					Delta:  10,
					Reason: "Owned residence (+10)",
					Applies: func(d model.Draft) bool {
						return d.Card.ResidenceType == model.ResidenceOwned
					},
				},
			},
		},
	}
}

// Evaluate computes the deterministic credit-card approval assessment.
func (e *CardApprovalEngine) Evaluate(d model.Draft) CardApprovalResult {
	score, reasons := e.rules.Evaluate(d)

	var band valueobject.ApprovalBand
	switch {
	case score > 70:
		band = valueobject.ApprovalBandExcellent
	case score > 40:
		band = valueobject.ApprovalBandGood
	default:
		band = valueobject.ApprovalBandFair
	}

	return CardApprovalResult{ApprovalScore: score, Band: band, Reasons: reasons}
}
