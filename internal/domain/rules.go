package domain

import "github.com/shopspring/decimal"

// SalaryRules contains the statutory parameters used by the salary engine.
// Rates are fractions (0.12 = 12%) except the HRA exemption percentages and
// the salary split, which are percentages of the whole.
type SalaryRules struct {
	IncomeTax          IncomeTaxConfig      `yaml:"income_tax" json:"income_tax"`
	Provident          ProvidentFundConfig  `yaml:"provident_fund" json:"provident_fund"`
	ESI                ESIConfig            `yaml:"esi" json:"esi"`
	Split              SalarySplitConfig    `yaml:"salary_split" json:"salary_split"`
	HRA                HRAExemptionConfig   `yaml:"hra_exemption" json:"hra_exemption"`
	Gratuity           GratuityConfig       `yaml:"gratuity" json:"gratuity"`
	ProfessionalTax    ProfessionalTaxTable `yaml:"professional_tax" json:"professional_tax"`
	CompanyAdjustments []CompanyRule        `yaml:"company_adjustments" json:"company_adjustments"`
}

// IncomeTaxSlab is one band of the progressive table. Base is the tax owed at
// LowerBound; Rate applies to income above LowerBound up to UpperBound.
// A zero UpperBound marks the open-ended top slab.
type IncomeTaxSlab struct {
	LowerBound decimal.Decimal `yaml:"lower_bound" json:"lower_bound"`
	UpperBound decimal.Decimal `yaml:"upper_bound" json:"upper_bound"`
	Base       decimal.Decimal `yaml:"base" json:"base"`
	Rate       decimal.Decimal `yaml:"rate" json:"rate"`
}

// IncomeTaxConfig holds the new-regime slabs and standard deduction.
type IncomeTaxConfig struct {
	Regime            string          `yaml:"regime" json:"regime"`
	StandardDeduction decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`
	Slabs             []IncomeTaxSlab `yaml:"slabs" json:"slabs"`
}

// ProvidentFundConfig is the employee EPF contribution on monthly basic.
type ProvidentFundConfig struct {
	EmployeeRate decimal.Decimal `yaml:"employee_rate" json:"employee_rate"`
}

// ESIConfig is the employee state insurance contribution. It applies only
// while monthly gross is at or below GrossThreshold.
type ESIConfig struct {
	EmployeeRate   decimal.Decimal `yaml:"employee_rate" json:"employee_rate"`
	GrossThreshold decimal.Decimal `yaml:"gross_threshold" json:"gross_threshold"`
}

// SalarySplitConfig partitions fixed CTC into components. Values are percentages.
type SalarySplitConfig struct {
	BasicPercent   decimal.Decimal `yaml:"basic_percent" json:"basic_percent"`
	HRAPercent     decimal.Decimal `yaml:"hra_percent" json:"hra_percent"`
	SpecialPercent decimal.Decimal `yaml:"special_percent" json:"special_percent"`
}

// HRAExemptionConfig lists metro cities and the basic-salary percentage that
// caps the HRA exemption for metro and non-metro residents.
type HRAExemptionConfig struct {
	MetroCities     []string        `yaml:"metro_cities" json:"metro_cities"`
	MetroPercent    decimal.Decimal `yaml:"metro_percent" json:"metro_percent"`
	NonMetroPercent decimal.Decimal `yaml:"non_metro_percent" json:"non_metro_percent"`
}

// GratuityConfig is the Payment of Gratuity Act formula: basic*15/26 per year of service.
type GratuityConfig struct {
	DaysPerYear    decimal.Decimal `yaml:"days_per_year" json:"days_per_year"`
	WorkingDays    decimal.Decimal `yaml:"working_days" json:"working_days"`
	YearsOfService decimal.Decimal `yaml:"years_of_service" json:"years_of_service"`
}

// ProfessionalTaxTable is the fallback used when a city is not in the store.
type ProfessionalTaxTable struct {
	Default decimal.Decimal            `yaml:"default" json:"default"`
	Cities  map[string]decimal.Decimal `yaml:"cities" json:"cities"`
}

// CompanyRule maps company-name fragments to allowance multipliers.
type CompanyRule struct {
	Name                       string          `yaml:"name" json:"name"`
	Match                      []string        `yaml:"match" json:"match"`
	SpecialAllowanceMultiplier decimal.Decimal `yaml:"special_allowance_multiplier" json:"special_allowance_multiplier"`
	HRAMultiplier              decimal.Decimal `yaml:"hra_multiplier" json:"hra_multiplier"`
	MetroOnly                  bool            `yaml:"metro_only" json:"metro_only"`
}

// IsMetro reports whether city is one of the configured metros. Matching is exact.
func (h HRAExemptionConfig) IsMetro(city string) bool {
	for _, m := range h.MetroCities {
		if m == city {
			return true
		}
	}
	return false
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// DefaultSalaryRules returns the FY2024-25 new-regime parameters.
func DefaultSalaryRules() SalaryRules {
	return SalaryRules{
		IncomeTax: IncomeTaxConfig{
			Regime:            "new",
			StandardDeduction: dec(50000),
			Slabs: []IncomeTaxSlab{
				{LowerBound: dec(0), UpperBound: dec(300000), Base: dec(0), Rate: decimal.Zero},
				{LowerBound: dec(300000), UpperBound: dec(700000), Base: dec(0), Rate: decimal.RequireFromString("0.05")},
				{LowerBound: dec(700000), UpperBound: dec(1000000), Base: dec(20000), Rate: decimal.RequireFromString("0.10")},
				{LowerBound: dec(1000000), UpperBound: dec(1200000), Base: dec(50000), Rate: decimal.RequireFromString("0.15")},
				{LowerBound: dec(1200000), UpperBound: dec(1500000), Base: dec(80000), Rate: decimal.RequireFromString("0.20")},
				{LowerBound: dec(1500000), UpperBound: decimal.Zero, Base: dec(140000), Rate: decimal.RequireFromString("0.30")},
			},
		},
		Provident: ProvidentFundConfig{EmployeeRate: decimal.RequireFromString("0.12")},
		ESI: ESIConfig{
			EmployeeRate:   decimal.RequireFromString("0.0075"),
			GrossThreshold: dec(21000),
		},
		Split: SalarySplitConfig{
			BasicPercent:   dec(50),
			HRAPercent:     dec(40),
			SpecialPercent: dec(10),
		},
		HRA: HRAExemptionConfig{
			MetroCities:     []string{"Mumbai", "Delhi", "Kolkata", "Chennai"},
			MetroPercent:    dec(50),
			NonMetroPercent: dec(40),
		},
		Gratuity: GratuityConfig{
			DaysPerYear:    dec(15),
			WorkingDays:    dec(26),
			YearsOfService: dec(5),
		},
		ProfessionalTax: ProfessionalTaxTable{
			Default: dec(200),
			Cities:  DefaultProfessionalTaxCities(),
		},
		CompanyAdjustments: []CompanyRule{
			{
				Name:                       "big-tech",
				Match:                      []string{"google", "microsoft", "amazon"},
				SpecialAllowanceMultiplier: decimal.RequireFromString("1.1"),
				HRAMultiplier:              dec(1),
			},
			{
				Name:                       "investment-banking",
				Match:                      []string{"goldman", "morgan", "jpmorgan"},
				SpecialAllowanceMultiplier: dec(1),
				HRAMultiplier:              decimal.RequireFromString("1.15"),
				MetroOnly:                  true,
			},
		},
	}
}

// DefaultProfessionalTaxCities returns the built-in monthly professional tax table.
func DefaultProfessionalTaxCities() map[string]decimal.Decimal {
	standard := []string{
		"Mumbai", "Pune", "Bangalore", "Hyderabad", "Chennai", "Ahmedabad", "Jaipur",
		"Surat", "Lucknow", "Kanpur", "Nagpur", "Indore", "Thane", "Bhopal",
		"Visakhapatnam", "Patna", "Vadodara", "Ghaziabad", "Ludhiana", "Agra",
		"Nashik", "Faridabad",
	}
	cities := make(map[string]decimal.Decimal, len(standard)+2)
	for _, c := range standard {
		cities[c] = dec(200)
	}
	cities["Delhi"] = dec(0)
	cities["Kolkata"] = dec(110)
	return cities
}
