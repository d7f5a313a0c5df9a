package domain

import "github.com/shopspring/decimal"

// SalaryStatistics summarises stored salary calculations.
type SalaryStatistics struct {
	Total         int64           `json:"total" yaml:"total"`
	ThisMonth     int64           `json:"thisMonth" yaml:"this_month"`
	ThisWeek      int64           `json:"thisWeek" yaml:"this_week"`
	AverageCTC    decimal.Decimal `json:"averageCtc" yaml:"average_ctc"`
	MinCTC        decimal.Decimal `json:"minCtc" yaml:"min_ctc"`
	MaxCTC        decimal.Decimal `json:"maxCtc" yaml:"max_ctc"`
	AverageInHand decimal.Decimal `json:"averageInHand" yaml:"average_in_hand"`
	CTCRanges     []RangeCount    `json:"ctcRanges" yaml:"ctc_ranges"`
	TopCities     []CityCount     `json:"topCities" yaml:"top_cities"`
}

// RangeCount is one bucket of the CTC histogram, in lakhs.
type RangeCount struct {
	Range string `json:"range" yaml:"range"`
	Count int64  `json:"count" yaml:"count"`
}

// CityCount is the number of calculations for a city.
type CityCount struct {
	City  string `json:"city" yaml:"city"`
	Count int64  `json:"count" yaml:"count"`
}

// AtsStatistics summarises stored ATS checks.
type AtsStatistics struct {
	Total        int64   `json:"total" yaml:"total"`
	ThisMonth    int64   `json:"thisMonth" yaml:"this_month"`
	ThisWeek     int64   `json:"thisWeek" yaml:"this_week"`
	AverageScore float64 `json:"averageScore" yaml:"average_score"`
}

// Statistics is the admin overview.
type Statistics struct {
	Salary SalaryStatistics `json:"salary" yaml:"salary"`
	Ats    AtsStatistics    `json:"ats" yaml:"ats"`
}
