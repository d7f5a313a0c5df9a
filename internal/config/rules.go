package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// RulesParser loads statutory salary rules from YAML.
type RulesParser struct{}

// NewRulesParser creates a new rules parser
func NewRulesParser() *RulesParser {
	return &RulesParser{}
}

// LoadFromFile reads a rules file over the built-in defaults. Sections absent
// from the file keep their default values; fallback cities are merged.
func (rp *RulesParser) LoadFromFile(filename string) (*domain.SalaryRules, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return rp.Parse(data)
}

// Parse decodes rules YAML over the defaults and validates the result.
func (rp *RulesParser) Parse(data []byte) (*domain.SalaryRules, error) {
	rules := domain.DefaultSalaryRules()
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := rp.ValidateRules(&rules); err != nil {
		return nil, fmt.Errorf("rules validation failed: %w", err)
	}
	return &rules, nil
}

// LoadOrDefault returns the defaults when filename is empty.
func (rp *RulesParser) LoadOrDefault(filename string) (*domain.SalaryRules, error) {
	if filename == "" {
		rules := domain.DefaultSalaryRules()
		return &rules, nil
	}
	return rp.LoadFromFile(filename)
}

// ValidateRules checks slab ordering, rate ranges and the salary split.
func (rp *RulesParser) ValidateRules(rules *domain.SalaryRules) error {
	if err := rp.validateSlabs(rules.IncomeTax.Slabs); err != nil {
		return fmt.Errorf("income tax slabs: %w", err)
	}
	if rules.IncomeTax.StandardDeduction.IsNegative() {
		return fmt.Errorf("standard deduction cannot be negative")
	}

	split := rules.Split.BasicPercent.Add(rules.Split.HRAPercent).Add(rules.Split.SpecialPercent)
	if !split.Equal(decimal.NewFromInt(100)) {
		return fmt.Errorf("salary split must total 100%%, got %s%%", split)
	}

	if !isFraction(rules.Provident.EmployeeRate) {
		return fmt.Errorf("provident fund rate must be between 0 and 1, got %s", rules.Provident.EmployeeRate)
	}
	if !isFraction(rules.ESI.EmployeeRate) {
		return fmt.Errorf("ESI rate must be between 0 and 1, got %s", rules.ESI.EmployeeRate)
	}
	if rules.ESI.GrossThreshold.IsNegative() {
		return fmt.Errorf("ESI gross threshold cannot be negative")
	}

	hundred := decimal.NewFromInt(100)
	for name, pct := range map[string]decimal.Decimal{
		"metro":     rules.HRA.MetroPercent,
		"non-metro": rules.HRA.NonMetroPercent,
	} {
		if pct.IsNegative() || pct.GreaterThan(hundred) {
			return fmt.Errorf("%s HRA exemption percent must be between 0 and 100, got %s", name, pct)
		}
	}

	if rules.Gratuity.WorkingDays.IsZero() {
		return fmt.Errorf("gratuity working days cannot be zero")
	}

	if rules.ProfessionalTax.Default.IsNegative() {
		return fmt.Errorf("default professional tax cannot be negative")
	}
	for city, pt := range rules.ProfessionalTax.Cities {
		if pt.IsNegative() {
			return fmt.Errorf("professional tax for %s cannot be negative", city)
		}
	}

	for i, rule := range rules.CompanyAdjustments {
		if len(rule.Match) == 0 {
			return fmt.Errorf("company adjustment %d (%s) has no match fragments", i, rule.Name)
		}
	}
	return nil
}

// validateSlabs requires contiguous slabs starting at zero, an open-ended
// last slab, and continuity: each slab's base equals the tax at its lower bound.
func (rp *RulesParser) validateSlabs(slabs []domain.IncomeTaxSlab) error {
	if len(slabs) == 0 {
		return fmt.Errorf("at least one slab is required")
	}
	if !slabs[0].LowerBound.IsZero() {
		return fmt.Errorf("first slab must start at 0")
	}
	for i, s := range slabs {
		if !isFraction(s.Rate) {
			return fmt.Errorf("slab %d rate must be between 0 and 1, got %s", i, s.Rate)
		}
		last := i == len(slabs)-1
		if last {
			if !s.UpperBound.IsZero() {
				return fmt.Errorf("last slab must be open-ended (upper_bound 0)")
			}
			continue
		}
		if !s.UpperBound.GreaterThan(s.LowerBound) {
			return fmt.Errorf("slab %d upper bound %s must exceed lower bound %s", i, s.UpperBound, s.LowerBound)
		}
		next := slabs[i+1]
		if !next.LowerBound.Equal(s.UpperBound) {
			return fmt.Errorf("slab %d must start at %s, got %s", i+1, s.UpperBound, next.LowerBound)
		}
		expectedBase := s.Base.Add(s.UpperBound.Sub(s.LowerBound).Mul(s.Rate))
		if !next.Base.Equal(expectedBase) {
			return fmt.Errorf("slab %d base %s breaks continuity, expected %s", i+1, next.Base, expectedBase)
		}
	}
	return nil
}

func isFraction(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(1))
}
