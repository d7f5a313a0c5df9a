package calculation

import (
	"context"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// SalaryEngine turns a CTC package into a monthly in-hand breakdown.
type SalaryEngine struct {
	Rules   domain.SalaryRules
	TaxCalc *IncomeTaxCalculator
	CityTax *CityTaxLookup
	Logger  Logger
}

// NewSalaryEngine creates an engine with the built-in rules. lookup may be nil,
// in which case a static-table lookup is used.
func NewSalaryEngine(lookup *CityTaxLookup) *SalaryEngine {
	return NewSalaryEngineWithRules(domain.DefaultSalaryRules(), lookup)
}

// NewSalaryEngineWithRules creates an engine with configured statutory rules.
func NewSalaryEngineWithRules(rules domain.SalaryRules, lookup *CityTaxLookup) *SalaryEngine {
	if lookup == nil {
		lookup = NewCityTaxLookupWithConfig(nil, rules.ProfessionalTax)
	}
	return &SalaryEngine{
		Rules:   rules,
		TaxCalc: NewIncomeTaxCalculatorWithConfig(rules.IncomeTax),
		CityTax: lookup,
		Logger:  NopLogger{},
	}
}

// SetLogger sets the engine logger and propagates it to the city tax lookup.
// A nil logger installs NopLogger.
func (se *SalaryEngine) SetLogger(logger Logger) {
	if logger == nil {
		logger = NopLogger{}
	}
	se.Logger = logger
	if se.CityTax != nil {
		se.CityTax.Logger = logger
	}
}

// Calculate resolves professional tax for the input city and computes the breakdown.
func (se *SalaryEngine) Calculate(ctx context.Context, input domain.SalaryInput) domain.SalaryBreakdown {
	pt := se.CityTax.ProfessionalTax(ctx, input.City)
	return se.Compute(input, pt)
}

// CalculateWithTax is Calculate plus the slab position of the annual taxable income.
func (se *SalaryEngine) CalculateWithTax(ctx context.Context, input domain.SalaryInput) (domain.SalaryBreakdown, domain.TaxSummary) {
	pt := se.CityTax.ProfessionalTax(ctx, input.City)
	b, taxable := se.compute(input, pt)
	return b, domain.TaxSummary{
		AnnualTaxable: taxable.Round(2),
		AnnualTax:     se.TaxCalc.CalculateIncomeTax(taxable).Round(2),
		MarginalRate:  se.TaxCalc.MarginalRate(taxable),
		EffectiveRate: se.TaxCalc.EffectiveRate(taxable).Round(4),
	}
}

// Compute is the arithmetic core. It does not validate input: component sums
// above CTC give a negative fixed CTC, which flows through every figure.
func (se *SalaryEngine) Compute(input domain.SalaryInput, professionalTax decimal.Decimal) domain.SalaryBreakdown {
	b, _ := se.compute(input, professionalTax)
	return b
}

func (se *SalaryEngine) compute(input domain.SalaryInput, professionalTax decimal.Decimal) (domain.SalaryBreakdown, decimal.Decimal) {
	r := se.Rules

	fixedCTC := input.CTC.Sub(input.NonMonthlyComponents())
	if fixedCTC.IsNegative() {
		se.Logger.Warnf("fixed CTC is negative (%s): non-monthly components exceed CTC %s", fixedCTC, input.CTC)
	}

	// Annual structure, then monthly.
	basicAnnual := fixedCTC.Mul(r.Split.BasicPercent).Div(hundred)
	hraAnnual := fixedCTC.Mul(r.Split.HRAPercent).Div(hundred)
	specialAnnual := fixedCTC.Mul(r.Split.SpecialPercent).Div(hundred)

	basic := basicAnnual.Div(twelve)
	hra := hraAnnual.Div(twelve)
	special := specialAnnual.Div(twelve)
	gross := basic.Add(hra).Add(special)

	pf := basic.Mul(r.Provident.EmployeeRate)

	esi := decimal.Zero
	if gross.LessThanOrEqual(r.ESI.GrossThreshold) {
		esi = gross.Mul(r.ESI.EmployeeRate)
	}

	taxableHRA := hraAnnual.Sub(se.HRAExemption(input.City, basicAnnual, hraAnnual))

	taxable := basicAnnual.Add(taxableHRA).Add(specialAnnual).
		Sub(r.IncomeTax.StandardDeduction).
		Sub(pf.Mul(twelve)).
		Sub(esi.Mul(twelve)).
		Sub(professionalTax.Mul(twelve))
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}
	annualTax := se.TaxCalc.CalculateIncomeTax(taxable)
	incomeTax := annualTax.Div(twelve)

	gratuity := se.gratuity(basicAnnual)

	inHand := gross.Sub(pf.Add(esi).Add(professionalTax).Add(incomeTax))

	adj := CompanyAdjustmentFor(r, input.Company, input.City)
	if !adj.IsNeutral() {
		// Computed for visibility only; the figures above stay unadjusted.
		se.Logger.Debugf("company adjustment %q matched for %q (special x%s, hra x%s), not applied",
			adj.Matched, input.Company, adj.SpecialAllowanceMultiplier, adj.HRAMultiplier)
	}

	se.Logger.Debugf("ctc=%s city=%s taxable=%s annualTax=%s inHand=%s",
		input.CTC, input.City, taxable.StringFixed(2), annualTax.StringFixed(2), inHand.StringFixed(2))

	// Aggregates are summed from the rounded parts so the breakdown adds up exactly.
	out := domain.SalaryBreakdown{
		CTC:                 input.CTC.Round(2),
		FixedCTC:            fixedCTC.Round(2),
		VariablePay:         input.VariablePay.Round(2),
		Insurance:           input.Insurance.Round(2),
		RelocationAllowance: input.RelocationAllowance.Round(2),
		BasicSalary:         basic.Round(2),
		HRA:                 hra.Round(2),
		SpecialAllowance:    special.Round(2),
		PF:                  pf.Round(2),
		ESI:                 esi.Round(2),
		ProfessionalTax:     professionalTax.Round(2),
		IncomeTax:           incomeTax.Round(2),
		Gratuity:            gratuity.Round(2),
		Company:             input.Company,
		IsRelocation:        input.IsRelocation,
	}
	out.MonthlyDeductions = out.PF.Add(out.ESI).Add(out.ProfessionalTax).Add(out.IncomeTax)
	out.InHandSalary = out.GrossMonthly().Sub(out.MonthlyDeductions)
	out.AnnualDeductions = out.MonthlyDeductions.Mul(twelve)
	return out, taxable
}

// HRAExemption returns the tax-exempt part of annual HRA. It uses the metro
// list, not the stored city profile percentage.
func (se *SalaryEngine) HRAExemption(city string, basicAnnual, hraAnnual decimal.Decimal) decimal.Decimal {
	pct := se.Rules.HRA.NonMetroPercent
	if se.Rules.HRA.IsMetro(city) {
		pct = se.Rules.HRA.MetroPercent
	}
	return decimal.Min(hraAnnual, basicAnnual.Mul(pct).Div(hundred))
}

// CalculateIncomeTax exposes the engine's slab table.
func (se *SalaryEngine) CalculateIncomeTax(annualTaxableIncome decimal.Decimal) decimal.Decimal {
	return se.TaxCalc.CalculateIncomeTax(annualTaxableIncome)
}

// gratuity is the monthly accrual of basic*15/26 per year over the assumed tenure.
func (se *SalaryEngine) gratuity(basicAnnual decimal.Decimal) decimal.Decimal {
	g := se.Rules.Gratuity
	if g.WorkingDays.IsZero() {
		return decimal.Zero
	}
	return basicAnnual.Mul(g.DaysPerYear).Div(g.WorkingDays).Mul(g.YearsOfService).Div(twelve)
}
