package main

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/ctcgo/internal/breakeven"
	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/config"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/validation"
)

var requiredCTCCmd = &cobra.Command{
	Use:   "required-ctc",
	Short: "Find the CTC needed for a target monthly in-hand salary",
	Long: `Solve for the smallest CTC that pays at least --in-hand per month in --city.

With --current-ctc and --current-city the target is the in-hand salary of the
current package instead, which answers "what must the new offer pay to match
what I take home today?"`,
	Example: `  ctcgo required-ctc --in-hand 100000 --city Bangalore
  ctcgo required-ctc --current-ctc 1200000 --current-city Delhi --city Mumbai`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := cliLogger(cmd)
		defer func() { _ = log.Sync() }()

		flags := cmd.Flags()
		amount := func(name string) (decimal.Decimal, error) {
			raw, _ := flags.GetString(name)
			if raw == "" {
				return decimal.Zero, nil
			}
			d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
			if err != nil {
				return decimal.Zero, fmt.Errorf("--%s: %q is not a number", name, raw)
			}
			return d, nil
		}

		var template domain.SalaryInput
		template.City, _ = flags.GetString("city")
		template.Company, _ = flags.GetString("company")
		var err error
		if template.VariablePay, err = amount("variable"); err != nil {
			return err
		}
		if template.Insurance, err = amount("insurance"); err != nil {
			return err
		}
		if err := validation.CheckTextLengths(template); err != nil {
			return err
		}
		template = validation.SanitizeSalaryInput(template)

		rulesFile, _ := flags.GetString("rules")
		rules, err := config.NewRulesParser().LoadOrDefault(rulesFile)
		if err != nil {
			return err
		}
		engine := calculation.NewSalaryEngineWithRules(*rules, nil)
		engine.SetLogger(log.Sugar())
		solver := breakeven.NewDefaultSolver(engine)

		var res *breakeven.Result
		currentCTC, err := amount("current-ctc")
		if err != nil {
			return err
		}
		if currentCTC.IsPositive() {
			currentCity, _ := flags.GetString("current-city")
			current, perr := validation.PrepareSalaryInput(domain.SalaryInput{CTC: currentCTC, City: currentCity})
			if perr != nil {
				return perr
			}
			res, err = solver.MatchOffer(cmd.Context(), current, template)
		} else {
			target, aerr := amount("in-hand")
			if aerr != nil {
				return aerr
			}
			res, err = solver.RequiredCTC(cmd.Context(), breakeven.Request{Template: template, TargetInHand: target})
		}
		if err != nil {
			return err
		}

		if format, _ := flags.GetString("format"); format == "json" {
			out, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), (&breakeven.TableFormatter{}).Format(res))
		return nil
	},
}

func init() {
	f := requiredCTCCmd.Flags()
	f.String("in-hand", "", "Target monthly in-hand salary")
	f.String("city", "", "City of the new job")
	f.String("company", "", "Company of the new job")
	f.String("variable", "", "Annual variable pay of the new job")
	f.String("insurance", "", "Annual insurance of the new job")
	f.String("current-ctc", "", "Current CTC to match instead of --in-hand")
	f.String("current-city", "", "City of the current job")
	f.StringP("format", "f", "table", "Output format (table, json)")
	f.String("rules", "", "Statutory rules YAML (default: built-in rules)")
}
