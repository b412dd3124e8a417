package service

import (
	"github.com/bibbank/onboarding/internal/domain/model"
	"github.com/bibbank/onboarding/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// InsuranceRiskEngine – insurance underwriting
//
// Polarity: higher score = riskier life. Scores start at 10, are clamped to
// [0,100] and banded <30 LOW, <60 MEDIUM, else HIGH.
//
// Missing health data takes the conservative (riskier) interpretation: an
// unknown BMI fires the out-of-range rule, and a coverage request against
// unknown income fires the coverage-ratio rule.
// ---------------------------------------------------------------------------

// InsuranceRiskResult holds the outcome of the insurance risk evaluation.
type InsuranceRiskResult struct {
	RiskScore int
	Band      valueobject.RiskBand
	Reasons   []string
}

// InsuranceRiskEngine scores insurance drafts.
type InsuranceRiskEngine struct {
	rules RuleSet
}

// NewInsuranceRiskEngine returns an engine with the fixed insurance rule table.
func NewInsuranceRiskEngine() *InsuranceRiskEngine {
	return &InsuranceRiskEngine{
		rules: RuleSet{
			Base: 10,
			Min:  0,
			Max:  100,
			Rules: []Rule{
				{
					Name:   "age_above_45",
					Delta:  15,
					Reason: "Age above 45 (+15)",
					Applies: func(d model.Draft) bool {
						return d.Insurance.Age > 45
					},
				},
				{
					Name:   "age_above_30",
					Delta:  5,
					Reason: "Age above 30 (+5)",
					Applies: func(d model.Draft) bool {
						return d.Insurance.Age > 30 && d.Insurance.Age <= 45
					},
				},
				{
					Name:   "bmi_out_of_range",
					Delta:  10,
					Reason: "BMI outside the healthy range 18.5-30 (+10)",
					Applies: func(d model.Draft) bool {
						bmi := d.BMI()
						return bmi < 18.5 || bmi > 30
					},
				},
				{
					Name:   "smoker",
					Delta:  25,
					Reason: "Smoker (+25)",
					Applies: func(d model.Draft) bool {
						return d.Insurance.Smoker
					},
				},
				{
					Name:   "regular_alcohol",
					Delta:  10,
					Reason: "Regular alcohol consumption (+10)",
					Applies: func(d model.Draft) bool {
						return d.Insurance.RegularAlcohol
					},
				},
				{
					Name:   "medical_history",
					Delta:  20,
					Reason: "Existing medical conditions declared (+20)",
					Applies: func(d model.Draft) bool {
						return len(d.Insurance.MedicalConditions) > 0
					},
				},
				{
					Name:   "family_history",
					Delta:  5,
					Reason: "Extensive family medical history (+5)",
					Applies: func(d model.Draft) bool {
						return len(d.Insurance.FamilyHistory) > 5
					},
				},
				{
					Name:   "coverage_ratio",
					Delta:  15,
					Reason: "Requested coverage exceeds 20x annual income (+15)",
					Applies: func(d model.Draft) bool {
						if d.Insurance.AnnualIncome.IsZero() {
							return d.Insurance.CoverageAmount.IsPositive()
						}
						return d.CoverageToIncomeRatio() > 20
					},
				},
			},
		},
	}
}

// Evaluate computes the deterministic insurance risk assessment.
func (e *InsuranceRiskEngine) Evaluate(d model.Draft) InsuranceRiskResult {
	score, reasons := e.rules.Evaluate(d)

	var band valueobject.RiskBand
	switch {
	case score < 30:
		band = valueobject.RiskBandLow
	case score < 60:
		band = valueobject.RiskBandMedium
	default:
		band = valueobject.RiskBandHigh
	}

	return InsuranceRiskResult{RiskScore: score, Band: band, Reasons: reasons}
}
