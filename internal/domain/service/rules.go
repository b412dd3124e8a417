package service

import (
	"github.com/bibbank/onboarding/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Rule machinery shared by the scoring engines
//
// Every engine is an ordered list of rules evaluated over a draft. A rule
// that fires contributes its fixed delta and exactly one reason string, so
// the number of reasons always equals the number of rules that fired.
// Evaluation is pure: no I/O, no randomness, no mutation of the draft.
// ---------------------------------------------------------------------------

// Rule is one (predicate, delta, reason) entry in an engine's rule table.
type Rule struct {
	Name    string
	Delta   int
	Reason  string
	Applies func(d model.Draft) bool
}

// RuleSet is an ordered rule table with a base score and clamp bounds.
type RuleSet struct {
	Base  int
	Min   int
	Max   int
	Rules []Rule
}

// Evaluate runs every rule in order and returns the clamped score together
// with the reasons of the rules that fired.
func (rs RuleSet) Evaluate(d model.Draft) (int, []string) {
	score := rs.Base
	var reasons []string
	for _, r := range rs.Rules {
		if r.Applies(d) {
			score += r.Delta
			reasons = append(reasons, r.Reason)
		}
	}
	return clamp(score, rs.Min, rs.Max), reasons
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
