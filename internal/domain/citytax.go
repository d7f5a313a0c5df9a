package domain

import "github.com/shopspring/decimal"

// CityTaxProfile is the tax context for a city. ProfessionalTax is a flat
// monthly amount; HRAExemptionPercent is informational (0-100).
type CityTaxProfile struct {
	City                 string                `yaml:"city" json:"city"`
	State                string                `yaml:"state,omitempty" json:"state,omitempty"`
	ProfessionalTax      decimal.Decimal       `yaml:"professional_tax" json:"professionalTax"`
	HRAExemptionPercent  decimal.Decimal       `yaml:"hra_exemption_percent" json:"hraExemptionPercent"`
	DefaultTaxRegime     string                `yaml:"default_tax_regime,omitempty" json:"defaultTaxRegime,omitempty"`
	AdditionalDeductions []AdditionalDeduction `yaml:"additional_deductions,omitempty" json:"additionalDeductions,omitempty"`
}

// AdditionalDeduction is a city-specific deduction kept alongside the profile.
type AdditionalDeduction struct {
	Name   string          `yaml:"name" json:"name" validate:"required"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
	Type   string          `yaml:"type" json:"type" validate:"oneof=fixed percentage"`
}
