package output

import (
	"fmt"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/pkg/money"
	"github.com/shopspring/decimal"
)

// Assumptions lists the statutory parameters a breakdown was computed with.
func Assumptions(rules domain.SalaryRules) []string {
	hundred := decimal.NewFromInt(100)
	return []string{
		fmt.Sprintf("Income tax: %s regime slabs, standard deduction %s",
			rules.IncomeTax.Regime, money.FormatINR(rules.IncomeTax.StandardDeduction)),
		fmt.Sprintf("Fixed CTC split: %s%% basic / %s%% HRA / %s%% special allowance",
			rules.Split.BasicPercent, rules.Split.HRAPercent, rules.Split.SpecialPercent),
		fmt.Sprintf("Provident fund: %s%% of basic, uncapped", rules.Provident.EmployeeRate.Mul(hundred)),
		fmt.Sprintf("ESI: %s%% of gross while monthly gross is at most %s",
			rules.ESI.EmployeeRate.Mul(hundred), money.FormatINR(rules.ESI.GrossThreshold)),
		fmt.Sprintf("HRA exemption: %s%% of basic in metros, %s%% elsewhere",
			rules.HRA.MetroPercent, rules.HRA.NonMetroPercent),
		fmt.Sprintf("Gratuity: basic x %s/%s x %s years, paid on exit and excluded from in-hand",
			rules.Gratuity.DaysPerYear, rules.Gratuity.WorkingDays, rules.Gratuity.YearsOfService),
		"Variable pay, insurance and relocation are excluded from monthly pay",
	}
}
