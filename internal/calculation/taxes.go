package calculation

import (
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
)

// INCOME TAX ASSUMPTIONS:
//
// 1. New regime slabs (FY2024-25) for every calculation; the old regime and
//    its deductions (80C, 80D, actual rent paid) are not modelled.
// 2. No surcharge, cess or section 87A rebate.
// 3. The standard deduction is applied by the salary engine, not here.

// IncomeTaxCalculator computes annual income tax over a progressive slab table.
type IncomeTaxCalculator struct {
	Regime string
	Slabs  []domain.IncomeTaxSlab
}

// NewIncomeTaxCalculator creates a calculator for the built-in new-regime slabs.
func NewIncomeTaxCalculator() *IncomeTaxCalculator {
	return NewIncomeTaxCalculatorWithConfig(domain.DefaultSalaryRules().IncomeTax)
}

// NewIncomeTaxCalculatorWithConfig creates a calculator from configured slabs.
// An empty slab list falls back to the built-in table.
func NewIncomeTaxCalculatorWithConfig(config domain.IncomeTaxConfig) *IncomeTaxCalculator {
	slabs := config.Slabs
	if len(slabs) == 0 {
		slabs = domain.DefaultSalaryRules().IncomeTax.Slabs
	}
	return &IncomeTaxCalculator{Regime: config.Regime, Slabs: slabs}
}

// CalculateIncomeTax returns the annual liability for annual taxable income.
// Non-positive income owes nothing.
func (tc *IncomeTaxCalculator) CalculateIncomeTax(annualTaxableIncome decimal.Decimal) decimal.Decimal {
	if !annualTaxableIncome.IsPositive() {
		return decimal.Zero
	}
	slab := tc.slabFor(annualTaxableIncome)
	return slab.Base.Add(annualTaxableIncome.Sub(slab.LowerBound).Mul(slab.Rate))
}

// MarginalRate returns the rate applied to the next rupee of income.
func (tc *IncomeTaxCalculator) MarginalRate(annualTaxableIncome decimal.Decimal) decimal.Decimal {
	if !annualTaxableIncome.IsPositive() {
		return tc.Slabs[0].Rate
	}
	return tc.slabFor(annualTaxableIncome).Rate
}

// EffectiveRate returns tax / income, or zero for non-positive income.
func (tc *IncomeTaxCalculator) EffectiveRate(annualTaxableIncome decimal.Decimal) decimal.Decimal {
	if !annualTaxableIncome.IsPositive() {
		return decimal.Zero
	}
	return tc.CalculateIncomeTax(annualTaxableIncome).Div(annualTaxableIncome)
}

// slabFor finds the slab whose upper bound is at or above income. Bounds are
// inclusive on the upper side, so 700000 falls in the 5% slab.
func (tc *IncomeTaxCalculator) slabFor(income decimal.Decimal) domain.IncomeTaxSlab {
	for _, slab := range tc.Slabs {
		if slab.UpperBound.IsZero() || income.LessThanOrEqual(slab.UpperBound) {
			return slab
		}
	}
	return tc.Slabs[len(tc.Slabs)-1]
}
