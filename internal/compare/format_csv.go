package compare

import (
	"encoding/csv"
	"strings"

	"github.com/shopspring/decimal"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Offer",
		"Type",
		"Company",
		"City",
		"CTC",
		"In-Hand Monthly",
		"Annual Take-Home",
		"Annual Deductions",
		"Gratuity",
		"In-Hand Diff from Base",
		"In-Hand % Change",
		"Deduction Diff from Base",
		"Expectation Gap",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}
	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (cf *CSVFormatter) formatRow(result *ComparisonResult, offerType string) []string {
	return []string{
		result.OfferName,
		offerType,
		result.Company,
		result.City,
		result.CTC.StringFixed(2),
		result.InHandMonthly.StringFixed(2),
		result.AnnualTakeHome.StringFixed(2),
		result.AnnualDeductions.StringFixed(2),
		result.Gratuity.StringFixed(2),
		result.InHandDiffFromBase.StringFixed(2),
		result.InHandPctFromBase.StringFixed(2),
		result.DeductionDiffFromBase.StringFixed(2),
		optional(result.ExpectationGap),
	}
}

func optional(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}
