// Package analytics implements the case filtering and aggregate
// statistics engine. Every function is a pure computation over an
// in-memory case collection: no I/O, no mutation of input records,
// results derived fresh on every call.
package analytics

import (
	"strings"

	"settletrack-backend/models"
)

// FilterCases returns the cases matching every populated criteria
// dimension. The result preserves the original relative order. Absent
// or empty criteria fields impose no constraint, so empty criteria
// return the full collection. Malformed criteria values degrade to
// "no constraint" rather than erroring.
func FilterCases(cases []*models.Case, criteria models.FilterCriteria) []*models.Case {
	filtered := make([]*models.Case, 0, len(cases))
	for _, c := range cases {
		if matchesCriteria(c, criteria) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func matchesCriteria(c *models.Case, criteria models.FilterCriteria) bool {
	if !matchesSearch(c, criteria.Search) {
		return false
	}

	if !valueInSet(c.State, criteria.States) {
		return false
	}
	if !valueInSet(c.Court, criteria.Courts) {
		return false
	}
	if !valueInSet(c.CauseOfBreach, criteria.CausesOfBreach) {
		return false
	}
	if !valueInSet(c.DefenseCounsel, criteria.DefenseCounsel) {
		return false
	}
	if !valueInSet(c.PlaintiffCounsel, criteria.PlaintiffCounsel) {
		return false
	}
	if !valueInSet(c.JudgeName, criteria.Judges) {
		return false
	}
	if !matchesSettlementType(c.SettlementType, criteria.SettlementTypes) {
		return false
	}

	if !setsIntersect(c.PIIAffected, criteria.PIIAffected) {
		return false
	}
	if !setsIntersect(c.ClassType, criteria.ClassTypes) {
		return false
	}

	if !inIntRange(c.Year, criteria.YearRange) {
		return false
	}
	if !inFloatRange(c.SettlementAmount, criteria.SettlementAmountRange) {
		return false
	}
	if !inIntRange(c.ClassSize, criteria.ClassSizeRange) {
		return false
	}

	if !matchesBool(c.IsMultiDistrictLitigation, criteria.IsMultiDistrictLitigation) {
		return false
	}
	if !matchesBool(c.HasMinorSubclass, criteria.HasMinorSubclass) {
		return false
	}
	if !matchesBool(c.CreditMonitoring, criteria.CreditMonitoring) {
		return false
	}

	return true
}

// matchesSearch reports whether the case matches a case-insensitive
// substring search over name, docket ID, court and summary. Any single
// matching field is enough.
func matchesSearch(c *models.Case, term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, field := range []string{c.Name, c.DocketID, c.Court, c.Summary} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// valueInSet reports whether value is in the filter set. An empty set
// is a vacuous constraint.
func valueInSet(value string, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

// setsIntersect reports whether a multi-valued case field overlaps the
// filter set. An empty filter set is a vacuous constraint.
func setsIntersect(values, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, v := range values {
		for _, s := range set {
			if s == v {
				return true
			}
		}
	}
	return false
}

// matchesSettlementType handles the "Both" sentinel: when the filter
// list contains it, the settlement-type dimension imposes no
// constraint even if specific types are also listed.
func matchesSettlementType(value models.SettlementType, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if models.SettlementType(s) == models.SettlementTypeBoth {
			return true
		}
	}
	return valueInSet(string(value), set)
}

// inIntRange checks an inclusive range; nil range or nil bounds are open.
func inIntRange(value int, r *models.IntRange) bool {
	if r == nil {
		return true
	}
	if r.From != nil && value < *r.From {
		return false
	}
	if r.To != nil && value > *r.To {
		return false
	}
	return true
}

// inFloatRange checks an inclusive range; nil range or nil bounds are open.
func inFloatRange(value float64, r *models.FloatRange) bool {
	if r == nil {
		return true
	}
	if r.From != nil && value < *r.From {
		return false
	}
	if r.To != nil && value > *r.To {
		return false
	}
	return true
}

// matchesBool checks a three-state boolean filter: nil means unset.
func matchesBool(value bool, filter *bool) bool {
	return filter == nil || value == *filter
}
