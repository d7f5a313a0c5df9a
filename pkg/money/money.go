// Package money formats rupee amounts for reports and terminals.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// en-IN groups digits as 12,34,567.
var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders a decimal as rupees with Indian digit grouping, e.g. ₹12,34,567.00.
// Amounts are rounded to paise half away from zero first.
func FormatINR(d decimal.Decimal) string {
	rounded := d.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign + "₹" + inrPrinter.Sprint(number.Decimal(rounded.InexactFloat64(), number.Scale(2)))
}
