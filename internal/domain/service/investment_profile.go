package service

import (
	"github.com/bibbank/onboarding/internal/domain/model"
	"github.com/bibbank/onboarding/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// InvestorProfiler – investment suitability
//
// Not a risk score: a small integer accumulates from the questionnaire
// answers and maps to a categorical profile. Unanswered questions contribute
// nothing, which keeps the default profile CONSERVATIVE.
// ---------------------------------------------------------------------------

// InvestorProfileResult holds the outcome of the suitability classification.
type InvestorProfileResult struct {
	Points  int
	Profile valueobject.InvestorProfile
	Reasons []string
}

// InvestorProfiler classifies investment drafts.
type InvestorProfiler struct {
	rules RuleSet
}

// NewInvestorProfiler returns a profiler with the fixed questionnaire table.
func NewInvestorProfiler() *InvestorProfiler {
	return &InvestorProfiler{
		rules: RuleSet{
			Base: 0,
			Min:  0,
			Max:  6,
			Rules: []Rule{
				{
					Name:   "long_horizon",
					Delta:  2,
					Reason: "Long investment horizon (+2)",
					Applies: func(d model.Draft) bool {
						return d.Investment.TimeHorizon == model.HorizonLong
					},
				},
				{
					Name:   "medium_horizon",
					Delta:  1,
					Reason: "Medium investment horizon (+1)",
					Applies: func(d model.Draft) bool {
						return d.Investment.TimeHorizon == model.HorizonMedium
					},
				},
				{
					Name:   "high_tolerance",
					Delta:  2,
					Reason: "High risk tolerance (+2)",
					Applies: func(d model.Draft) bool {
						return d.Investment.RiskTolerance == model.ToleranceHigh
					},
				},
				{
					Name:   "medium_tolerance",
					Delta:  1,
					Reason: "Medium risk tolerance (+1)",
					Applies: func(d model.Draft) bool {
						return d.Investment.RiskTolerance == model.ToleranceMedium
					},
				},
				{
					Name:   "experienced",
					Delta:  2,
					Reason: "Experienced investor (+2)",
					Applies: func(d model.Draft) bool {
						return d.Investment.ExperienceLevel == model.ExperienceExperienced
					},
				},
				{
					Name:   "intermediate_experience",
					Delta:  1,
					Reason: "Intermediate investing experience (+1)",
					Applies: func(d model.Draft) bool {
						return d.Investment.ExperienceLevel == model.ExperienceIntermediate
					},
				},
			},
		},
	}
}

// Evaluate computes the deterministic investor profile.
func (p *InvestorProfiler) Evaluate(d model.Draft) InvestorProfileResult {
	points, reasons := p.rules.Evaluate(d)

	var profile valueobject.InvestorProfile
	switch {
	case points >= 5:
		profile = valueobject.InvestorProfileAggressive
	case points >= 2:
		profile = valueobject.InvestorProfileModerate
	default:
		profile = valueobject.InvestorProfileConservative
	}

	return InvestorProfileResult{Points: points, Profile: profile, Reasons: reasons}
}
