package output

import (
	"github.com/rgehrsitz/ctcgo/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as rupees with Indian digit grouping
func FormatCurrency(amount decimal.Decimal) string {
	return money.FormatINR(amount)
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

// FormatRate renders a fractional rate such as 0.1 as "10.00%".
func FormatRate(rate decimal.Decimal) string {
	return FormatPercentage(rate.Mul(decimal.NewFromInt(100)))
}

// percentOf returns part as a percentage of whole, or zero when whole is zero.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100))
}
