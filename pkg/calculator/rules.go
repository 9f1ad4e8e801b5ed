package calculator

import (
	"math"

	"day-zero/pkg/models"
)

// Rule decides whether a report falls on or after a country's Day 0.
type Rule int

const (
	NewCaseCount Rule = iota + 1
	TotalCaseCount
	NormalizedTotalCaseCount
)

var ruleNames = map[Rule]string{
	NewCaseCount:             "new_case_count",
	TotalCaseCount:           "total_case_count",
	NormalizedTotalCaseCount: "normalized_total_case_count",
}

// Rules returns every known rule in a stable order.
func Rules() []Rule {
	return []Rule{NewCaseCount, TotalCaseCount, NormalizedTotalCaseCount}
}

// ParseRule maps a rule name to its Rule.
func ParseRule(name string) (Rule, error) {
	for r, n := range ruleNames {
		if n == name {
			return r, nil
		}
	}
	return 0, &UnknownRuleError{Name: name}
}

func (r Rule) String() string {
	if n, ok := ruleNames[r]; ok {
		return n
	}
	return "unknown"
}

// DefaultThreshold is used when the caller does not pass one.
func (r Rule) DefaultThreshold() float64 {
	switch r {
	case NewCaseCount:
		return 5
	case TotalCaseCount:
		return 100
	case NormalizedTotalCaseCount:
		return 2
	}
	return math.NaN()
}

// Evaluate reports whether rec qualifies, given the running total of cases
// after rec has been added.
func (r Rule) Evaluate(rec models.CaseReport, total int, threshold float64) bool {
	switch r {
	case NewCaseCount:
		return float64(rec.NewConfCases) >= threshold
	case TotalCaseCount:
		return float64(total) >= threshold
	case NormalizedTotalCaseCount:
		// NaN never compares true, so an unknown population never qualifies.
		return perCapita(total, rec.Population) >= threshold
	}
	return false
}

// perCapita divides n by population, NaN when the population is unknown.
func perCapita(n int, population float64) float64 {
	if population == 0 || math.IsNaN(population) {
		return math.NaN()
	}
	return float64(n) / population
}
