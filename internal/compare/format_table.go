package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/ctcgo/pkg/money"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format renders the offers side by side followed by deltas and recommendations.
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("OFFER COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 88) + "\n")
	sb.WriteString(fmt.Sprintf("Base Offer: %s\n", compSet.BaseOfferName))
	if compSet.SourcePath != "" {
		sb.WriteString(fmt.Sprintf("Offers File: %s\n", compSet.SourcePath))
	}
	sb.WriteString("\n")

	nameWidth := 22
	numWidth := 16

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Offer",
		numWidth, "CTC",
		numWidth, "In-Hand/Month",
		numWidth, "Deductions/Yr",
		numWidth, "Gratuity"))
	sb.WriteString(strings.Repeat("-", 88) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	}
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 88) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}
	sb.WriteString(strings.Repeat("=", 88) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 88) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.OfferName))
			sb.WriteString(fmt.Sprintf("  In-Hand:     %s%s/month (%s%%)\n",
				tf.deltaSymbol(alt.InHandDiffFromBase),
				money.FormatINR(alt.InHandDiffFromBase.Abs()),
				alt.InHandPctFromBase.StringFixed(1)))
			if !alt.DeductionDiffFromBase.IsZero() {
				// fewer deductions read as a gain
				sb.WriteString(fmt.Sprintf("  Deductions:  %s%s/year\n",
					tf.deltaSymbol(alt.DeductionDiffFromBase.Neg()),
					money.FormatINR(alt.DeductionDiffFromBase.Abs())))
			}
		}
		sb.WriteString("\n")
	}

	var gaps []ComparisonResult
	for _, r := range compSet.All() {
		if r.ExpectationGap != nil {
			gaps = append(gaps, r)
		}
	}
	if len(gaps) > 0 {
		sb.WriteString("\nQUOTED IN-HAND CHECK\n")
		sb.WriteString(strings.Repeat("-", 88) + "\n")
		for _, r := range gaps {
			sb.WriteString(fmt.Sprintf("%-*s %s%s\n", nameWidth, tf.truncate(r.OfferName, nameWidth),
				tf.deltaSymbol(*r.ExpectationGap), money.FormatINR(r.ExpectationGap.Abs())))
		}
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 88) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.OfferName
	if isBase {
		name += " (base)"
	}
	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, tf.formatLakhs(result.CTC),
		numWidth, money.FormatINR(result.InHandMonthly),
		numWidth, money.FormatINR(result.AnnualDeductions),
		numWidth, money.FormatINR(result.Gratuity))
}

// formatLakhs renders an annual figure in lakhs or crores
func (tf *TableFormatter) formatLakhs(d decimal.Decimal) string {
	crore := decimal.NewFromInt(10000000)
	if d.Abs().GreaterThanOrEqual(crore) {
		return "₹" + d.Div(crore).StringFixed(2) + " Cr"
	}
	return "₹" + d.Div(decimal.NewFromInt(100000)).StringFixed(2) + " L"
}

func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

func (tf *TableFormatter) truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

// FormatCompact creates a single-line summary of the in-hand deltas
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseOfferName))
	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if !alt.InHandDiffFromBase.IsZero() {
			change = tf.deltaSymbol(alt.InHandDiffFromBase) + money.FormatINR(alt.InHandDiffFromBase.Abs())
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.OfferName, change))
	}
	return sb.String()
}
