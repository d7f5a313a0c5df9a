package calculation

import (
	"strings"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
)

// CompanyAdjustmentFor matches company against the configured rules by
// case-insensitive substring. The first matching rule wins. Rules marked
// MetroOnly only adjust HRA when the city is a metro.
func CompanyAdjustmentFor(rules domain.SalaryRules, company, city string) domain.CompanyAdjustment {
	one := decimal.NewFromInt(1)
	adj := domain.CompanyAdjustment{SpecialAllowanceMultiplier: one, HRAMultiplier: one}
	if company == "" {
		return adj
	}

	name := strings.ToLower(company)
	for _, rule := range rules.CompanyAdjustments {
		if !matchesAny(name, rule.Match) {
			continue
		}
		adj.Matched = rule.Name
		if !rule.SpecialAllowanceMultiplier.IsZero() {
			adj.SpecialAllowanceMultiplier = rule.SpecialAllowanceMultiplier
		}
		if !rule.HRAMultiplier.IsZero() && (!rule.MetroOnly || rules.HRA.IsMetro(city)) {
			adj.HRAMultiplier = rule.HRAMultiplier
		}
		return adj
	}
	return adj
}

func matchesAny(name string, fragments []string) bool {
	for _, f := range fragments {
		if f != "" && strings.Contains(name, strings.ToLower(f)) {
			return true
		}
	}
	return false
}
