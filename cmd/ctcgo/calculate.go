package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/config"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/output"
	"github.com/rgehrsitz/ctcgo/internal/validation"
)

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Calculate monthly in-hand salary from CTC",
	Long: `Calculate the salary breakdown for a CTC package.

The input comes from a YAML file or from flags; flags given alongside a file
override the file's values.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := cliLogger(cmd)
		defer func() { _ = log.Sync() }()

		input, err := salaryInputFromCommand(cmd, args)
		if err != nil {
			return err
		}

		rulesFile, _ := cmd.Flags().GetString("rules")
		rules, err := config.NewRulesParser().LoadOrDefault(rulesFile)
		if err != nil {
			return err
		}

		engine := calculation.NewSalaryEngineWithRules(*rules, nil)
		engine.SetLogger(log.Sugar())
		breakdown, tax := engine.CalculateWithTax(context.Background(), input)

		format, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(format)
		if f == nil {
			return fmt.Errorf("unsupported format %q (available: %s; aliases: %s)", format,
				strings.Join(output.AvailableFormatterNames(), ", "),
				strings.Join(output.AvailableFormatAliases(), ", "))
		}
		report := output.NewReport(input, breakdown, *rules)
		report.Tax = &tax

		if dir, _ := cmd.Flags().GetString("output-dir"); dir != "" {
			path, err := output.WriteFormatted(f, report, dir)
			if err != nil {
				return fmt.Errorf("writing report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
			return nil
		}

		data, err := f.Format(report)
		if err != nil {
			return fmt.Errorf("formatting report: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func salaryInputFromCommand(cmd *cobra.Command, args []string) (domain.SalaryInput, error) {
	var input domain.SalaryInput
	if len(args) == 1 {
		loaded, err := config.NewInputParser().LoadSalaryInput(args[0])
		if err != nil {
			return input, err
		}
		input = *loaded
	}

	flags := cmd.Flags()
	amounts := []struct {
		flag string
		dst  *decimal.Decimal
	}{
		{"ctc", &input.CTC},
		{"variable", &input.VariablePay},
		{"insurance", &input.Insurance},
		{"relocation", &input.RelocationAllowance},
		{"quoted", &input.OfferInHand},
	}
	for _, a := range amounts {
		if !flags.Changed(a.flag) {
			continue
		}
		raw, _ := flags.GetString(a.flag)
		d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
		if err != nil {
			return input, fmt.Errorf("--%s: %q is not a number", a.flag, raw)
		}
		*a.dst = d
	}
	if flags.Changed("city") {
		input.City, _ = flags.GetString("city")
	}
	if flags.Changed("company") {
		input.Company, _ = flags.GetString("company")
	}
	if flags.Changed("designation") {
		input.Designation, _ = flags.GetString("designation")
	}
	if flags.Changed("relocation") {
		input.IsRelocation = input.RelocationAllowance.IsPositive()
	}

	return validation.PrepareSalaryInput(input)
}

func init() {
	f := calculateCmd.Flags()
	f.String("ctc", "", "Annual cost to company in rupees")
	f.String("city", "", "City of employment")
	f.String("variable", "", "Annual variable pay")
	f.String("insurance", "", "Annual employer insurance")
	f.String("relocation", "", "One-time relocation allowance")
	f.String("quoted", "", "Monthly in-hand figure quoted by the employer")
	f.String("company", "", "Company name")
	f.String("designation", "", "Designation")
	f.StringP("format", "f", "console", "Output format (console, json, csv, yaml)")
	f.String("rules", "", "Statutory rules YAML (default: built-in rules)")
	f.String("output-dir", "", "Write the report to a timestamped file in this directory")
}
