package output

import (
	"bytes"
	"encoding/csv"

	"github.com/shopspring/decimal"
)

// CSVFormatter writes one row per component with monthly and annual columns.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Extension() string { return "csv" }

func (c CSVFormatter) Format(r *Report) ([]byte, error) {
	b := r.Breakdown
	twelve := decimal.NewFromInt(12)
	rows := [][]string{{"Component", "Monthly", "Annual"}}
	monthly := func(name string, v decimal.Decimal) {
		rows = append(rows, []string{name, v.StringFixed(2), v.Mul(twelve).StringFixed(2)})
	}
	annual := func(name string, v decimal.Decimal) {
		rows = append(rows, []string{name, "", v.StringFixed(2)})
	}

	annual("CTC", b.CTC)
	annual("Variable Pay", b.VariablePay)
	annual("Insurance", b.Insurance)
	annual("Relocation Allowance", b.RelocationAllowance)
	annual("Fixed CTC", b.FixedCTC)
	monthly("Basic Salary", b.BasicSalary)
	monthly("HRA", b.HRA)
	monthly("Special Allowance", b.SpecialAllowance)
	monthly("Provident Fund", b.PF)
	monthly("ESI", b.ESI)
	monthly("Professional Tax", b.ProfessionalTax)
	monthly("Income Tax", b.IncomeTax)
	rows = append(rows, []string{"Total Deductions", b.MonthlyDeductions.StringFixed(2), b.AnnualDeductions.StringFixed(2)})
	monthly("In-Hand Salary", b.InHandSalary)
	annual("Gratuity", b.Gratuity)

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
