package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders an aligned two-column breakdown.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	b := r.Breakdown
	twelve := decimal.NewFromInt(12)

	fmt.Fprintln(&buf, strings.Repeat("=", 64))
	fmt.Fprintln(&buf, "CTC TO IN-HAND SALARY BREAKDOWN")
	fmt.Fprintln(&buf, strings.Repeat("=", 64))
	fmt.Fprintf(&buf, "City: %s", r.Input.City)
	if r.Input.Company != "" {
		fmt.Fprintf(&buf, "   Company: %s", r.Input.Company)
	}
	if r.Input.Designation != "" {
		fmt.Fprintf(&buf, "   Role: %s", r.Input.Designation)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf)

	row := func(label string, v decimal.Decimal) {
		fmt.Fprintf(&buf, "%-28s %18s\n", label, FormatCurrency(v))
	}
	pair := func(label string, monthly decimal.Decimal) {
		fmt.Fprintf(&buf, "%-28s %18s %16s\n", label, FormatCurrency(monthly), FormatCurrency(monthly.Mul(twelve)))
	}

	fmt.Fprintln(&buf, "ANNUAL PACKAGE")
	fmt.Fprintln(&buf, strings.Repeat("-", 64))
	row("CTC", b.CTC)
	row("Variable Pay", b.VariablePay)
	row("Insurance", b.Insurance)
	row("Relocation Allowance", b.RelocationAllowance)
	row("Fixed CTC", b.FixedCTC)
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%-28s %18s %16s\n", "EARNINGS", "Monthly", "Annual")
	fmt.Fprintln(&buf, strings.Repeat("-", 64))
	pair("Basic Salary", b.BasicSalary)
	pair("HRA", b.HRA)
	pair("Special Allowance", b.SpecialAllowance)
	pair("Gross", b.GrossMonthly())
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%-28s %18s %16s\n", "DEDUCTIONS", "Monthly", "Annual")
	fmt.Fprintln(&buf, strings.Repeat("-", 64))
	pair("Provident Fund", b.PF)
	pair("ESI", b.ESI)
	pair("Professional Tax", b.ProfessionalTax)
	pair("Income Tax", b.IncomeTax)
	fmt.Fprintf(&buf, "%-28s %18s %16s\n", "Total", FormatCurrency(b.MonthlyDeductions), FormatCurrency(b.AnnualDeductions))
	fmt.Fprintln(&buf)

	if t := r.Tax; t != nil {
		fmt.Fprintln(&buf, "INCOME TAX")
		fmt.Fprintln(&buf, strings.Repeat("-", 64))
		row("Annual taxable income", t.AnnualTaxable)
		row("Annual income tax", t.AnnualTax)
		fmt.Fprintf(&buf, "%-28s %18s\n", "Marginal rate", FormatRate(t.MarginalRate))
		fmt.Fprintf(&buf, "%-28s %18s\n", "Effective rate", FormatRate(t.EffectiveRate))
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, strings.Repeat("=", 64))
	fmt.Fprintf(&buf, "%-28s %18s\n", "IN-HAND (MONTHLY)", FormatCurrency(b.InHandSalary))
	fmt.Fprintf(&buf, "%-28s %18s\n", "In-hand share of CTC", FormatPercentage(percentOf(b.InHandSalary.Mul(twelve), b.CTC)))
	fmt.Fprintf(&buf, "%-28s %18s\n", "Gratuity (5 yrs, on exit)", FormatCurrency(b.Gratuity))
	if r.Input.OfferInHand.IsPositive() {
		gap := b.InHandSalary.Sub(r.Input.OfferInHand)
		fmt.Fprintf(&buf, "%-28s %18s\n", "Quoted in-hand", FormatCurrency(r.Input.OfferInHand))
		fmt.Fprintf(&buf, "%-28s %18s\n", "Difference", FormatCurrency(gap))
	}
	fmt.Fprintln(&buf, strings.Repeat("=", 64))

	if len(r.Assumptions) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "ASSUMPTIONS:")
		for _, a := range r.Assumptions {
			fmt.Fprintf(&buf, "• %s\n", a)
		}
	}
	return buf.Bytes(), nil
}
