package domain

import (
	"github.com/shopspring/decimal"
)

// SalaryInput is the caller-supplied context for a CTC breakdown.
// Validation (positive CTC, component sum within CTC) happens at the boundary;
// the calculation engine trusts whatever it is given.
type SalaryInput struct {
	CTC                 decimal.Decimal `yaml:"ctc" json:"ctc" validate:"gt=0,lte=999999999"`
	City                string          `yaml:"city" json:"city" validate:"required,max=100"`
	Company             string          `yaml:"company,omitempty" json:"company,omitempty" validate:"max=200"`
	Designation         string          `yaml:"designation,omitempty" json:"designation,omitempty" validate:"max=200"`
	IsRelocation        bool            `yaml:"is_relocation,omitempty" json:"isRelocation,omitempty"`
	RelocationAllowance decimal.Decimal `yaml:"relocation_allowance,omitempty" json:"relocationAllowance,omitempty" validate:"gte=0"`
	VariablePay         decimal.Decimal `yaml:"variable_pay,omitempty" json:"variablePay,omitempty" validate:"gte=0"`
	Insurance           decimal.Decimal `yaml:"insurance,omitempty" json:"insurance,omitempty" validate:"gte=0"`

	GithubProfile   string `yaml:"github_profile,omitempty" json:"githubProfile,omitempty" validate:"omitempty,url,max=2048"`
	LinkedinProfile string `yaml:"linkedin_profile,omitempty" json:"linkedinProfile,omitempty" validate:"omitempty,url,max=2048"`

	// OfferInHand is the monthly in-hand figure the candidate was quoted, if any.
	// It is not used by the engine; comparisons report the gap against it.
	OfferInHand decimal.Decimal `yaml:"offer_in_hand,omitempty" json:"offerInHand,omitempty" validate:"gte=0"`
}

// NonMonthlyComponents returns variable pay + insurance + relocation allowance.
func (in SalaryInput) NonMonthlyComponents() decimal.Decimal {
	return in.VariablePay.Add(in.Insurance).Add(in.RelocationAllowance)
}

// SalaryBreakdown is the full derivation from CTC to monthly in-hand pay.
// Monthly figures: BasicSalary through InHandSalary and MonthlyDeductions.
// Annual figures: CTC, FixedCTC, VariablePay, Insurance, RelocationAllowance, AnnualDeductions.
type SalaryBreakdown struct {
	CTC                 decimal.Decimal `yaml:"ctc" json:"ctc"`
	FixedCTC            decimal.Decimal `yaml:"fixed_ctc" json:"fixedCtc"`
	VariablePay         decimal.Decimal `yaml:"variable_pay" json:"variablePay"`
	Insurance           decimal.Decimal `yaml:"insurance" json:"insurance"`
	RelocationAllowance decimal.Decimal `yaml:"relocation_allowance" json:"relocationAllowance"`

	BasicSalary      decimal.Decimal `yaml:"basic_salary" json:"basicSalary"`
	HRA              decimal.Decimal `yaml:"hra" json:"hra"`
	SpecialAllowance decimal.Decimal `yaml:"special_allowance" json:"specialAllowance"`

	PF              decimal.Decimal `yaml:"pf" json:"pf"`
	ESI             decimal.Decimal `yaml:"esi" json:"esi"`
	ProfessionalTax decimal.Decimal `yaml:"professional_tax" json:"professionalTax"`
	IncomeTax       decimal.Decimal `yaml:"income_tax" json:"incomeTax"`
	Gratuity        decimal.Decimal `yaml:"gratuity" json:"gratuity"`

	InHandSalary      decimal.Decimal `yaml:"in_hand_salary" json:"inHandSalary"`
	MonthlyDeductions decimal.Decimal `yaml:"monthly_deductions" json:"monthlyDeductions"`
	AnnualDeductions  decimal.Decimal `yaml:"annual_deductions" json:"annualDeductions"`

	Company      string `yaml:"company,omitempty" json:"company,omitempty"`
	IsRelocation bool   `yaml:"is_relocation" json:"isRelocation"`
}

// TaxSummary places annual taxable income in the slab table. Rates are fractions.
type TaxSummary struct {
	AnnualTaxable decimal.Decimal `yaml:"annual_taxable" json:"annualTaxable"`
	AnnualTax     decimal.Decimal `yaml:"annual_tax" json:"annualTax"`
	MarginalRate  decimal.Decimal `yaml:"marginal_rate" json:"marginalRate"`
	EffectiveRate decimal.Decimal `yaml:"effective_rate" json:"effectiveRate"`
}

// GrossMonthly returns basic + HRA + special allowance.
func (b SalaryBreakdown) GrossMonthly() decimal.Decimal {
	return b.BasicSalary.Add(b.HRA).Add(b.SpecialAllowance)
}

// CompanyAdjustment is the employer-specific multiplier set derived from the
// company name. Multipliers of 1 mean no adjustment.
type CompanyAdjustment struct {
	SpecialAllowanceMultiplier decimal.Decimal `yaml:"special_allowance_multiplier" json:"specialAllowanceMultiplier"`
	HRAMultiplier              decimal.Decimal `yaml:"hra_multiplier" json:"hraMultiplier"`
	Matched                    string          `yaml:"matched,omitempty" json:"matched,omitempty"`
}

// IsNeutral reports whether the adjustment leaves every figure unchanged.
func (a CompanyAdjustment) IsNeutral() bool {
	one := decimal.NewFromInt(1)
	return a.SpecialAllowanceMultiplier.Equal(one) && a.HRAMultiplier.Equal(one)
}
