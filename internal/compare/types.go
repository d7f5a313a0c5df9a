package compare

import (
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/pkg/money"
	"github.com/shopspring/decimal"
)

// ComparisonResult is one evaluated offer with its deltas against the base.
type ComparisonResult struct {
	OfferName   string                 `json:"offerName"`
	Description string                 `json:"description,omitempty"`
	Company     string                 `json:"company,omitempty"`
	City        string                 `json:"city"`
	CTC         decimal.Decimal        `json:"ctc"`
	Breakdown   domain.SalaryBreakdown `json:"breakdown"`

	// Key Metrics
	InHandMonthly    decimal.Decimal `json:"inHandMonthly"`
	AnnualTakeHome   decimal.Decimal `json:"annualTakeHome"`
	AnnualDeductions decimal.Decimal `json:"annualDeductions"`
	Gratuity         decimal.Decimal `json:"gratuity"`

	// Comparison to Base
	InHandDiffFromBase    decimal.Decimal `json:"inHandDiffFromBase"`
	InHandPctFromBase     decimal.Decimal `json:"inHandPctFromBase"`
	DeductionDiffFromBase decimal.Decimal `json:"deductionDiffFromBase"`

	// ExpectationGap is InHandMonthly minus the quoted offerInHand, set only
	// when the offer quoted one.
	ExpectationGap *decimal.Decimal `json:"expectationGap,omitempty"`
}

// ComparisonSet is the outcome of comparing an offers file.
type ComparisonSet struct {
	BaseOfferName      string             `json:"baseOfferName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	SourcePath         string             `json:"sourcePath,omitempty"`
}

// All returns the base followed by the alternatives.
func (cs *ComparisonSet) All() []ComparisonResult {
	out := make([]ComparisonResult, 0, len(cs.AlternativeResults)+1)
	if cs.BaseResult != nil {
		out = append(out, *cs.BaseResult)
	}
	return append(out, cs.AlternativeResults...)
}

// MetricsCalculator derives comparison metrics from breakdowns
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics fills the key metrics for offer.
func (mc *MetricsCalculator) CalculateMetrics(offer domain.Offer, b domain.SalaryBreakdown) ComparisonResult {
	result := ComparisonResult{
		OfferName:        offer.Name,
		Description:      offer.Description,
		Company:          offer.Input.Company,
		City:             offer.Input.City,
		CTC:              offer.Input.CTC,
		Breakdown:        b,
		InHandMonthly:    b.InHandSalary,
		AnnualTakeHome:   b.InHandSalary.Mul(decimal.NewFromInt(12)),
		AnnualDeductions: b.AnnualDeductions,
		Gratuity:         b.Gratuity,
	}
	if offer.Input.OfferInHand.IsPositive() {
		gap := b.InHandSalary.Sub(offer.Input.OfferInHand)
		result.ExpectationGap = &gap
	}
	return result
}

// CalculateComparison computes the deltas of offer against base.
func (mc *MetricsCalculator) CalculateComparison(offer, base ComparisonResult) ComparisonResult {
	offer.InHandDiffFromBase = offer.InHandMonthly.Sub(base.InHandMonthly)
	if !base.InHandMonthly.IsZero() {
		offer.InHandPctFromBase = offer.InHandDiffFromBase.
			Div(base.InHandMonthly).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	offer.DeductionDiffFromBase = offer.AnnualDeductions.Sub(base.AnnualDeductions)
	return offer
}

// GenerateRecommendations summarises the best offers by take-home and
// deductions, and flags offers whose quoted in-hand is not reached.
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}
	if compSet.BaseResult == nil {
		return recommendations
	}

	if len(compSet.AlternativeResults) > 0 {
		best := compSet.BaseResult
		for i := range compSet.AlternativeResults {
			if compSet.AlternativeResults[i].InHandMonthly.GreaterThan(best.InHandMonthly) {
				best = &compSet.AlternativeResults[i]
			}
		}
		if best != compSet.BaseResult {
			diff := best.InHandMonthly.Sub(compSet.BaseResult.InHandMonthly)
			recommendations = append(recommendations,
				"Best In-Hand: "+best.OfferName+" pays "+money.FormatINR(diff)+
					" more per month than "+compSet.BaseOfferName)
		}

		lowest := compSet.BaseResult
		for i := range compSet.AlternativeResults {
			if compSet.AlternativeResults[i].AnnualDeductions.LessThan(lowest.AnnualDeductions) {
				lowest = &compSet.AlternativeResults[i]
			}
		}
		if lowest != compSet.BaseResult {
			saving := compSet.BaseResult.AnnualDeductions.Sub(lowest.AnnualDeductions)
			recommendations = append(recommendations,
				"Lowest Deductions: "+lowest.OfferName+" deducts "+money.FormatINR(saving)+" less per year")
		}
	}

	for _, r := range compSet.All() {
		if r.ExpectationGap != nil && r.ExpectationGap.IsNegative() {
			recommendations = append(recommendations,
				"Below Quote: "+r.OfferName+" is "+money.FormatINR(r.ExpectationGap.Abs())+
					" short of the quoted monthly in-hand")
		}
	}
	return recommendations
}
