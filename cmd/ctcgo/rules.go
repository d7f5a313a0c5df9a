package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/config"
	"github.com/rgehrsitz/ctcgo/pkg/money"
)

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List cities with a known professional tax",
	RunE: func(cmd *cobra.Command, args []string) error {
		rulesFile, _ := cmd.Flags().GetString("rules")
		rules, err := config.NewRulesParser().LoadOrDefault(rulesFile)
		if err != nil {
			return err
		}

		lookup := calculation.NewCityTaxLookupWithConfig(nil, rules.ProfessionalTax)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CITY\tPROFESSIONAL TAX\tMETRO")
		for _, c := range lookup.KnownCities() {
			metro := ""
			if rules.HRA.IsMetro(c) {
				metro = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", c, money.FormatINR(lookup.ProfessionalTax(cmd.Context(), c)), metro)
		}
		fmt.Fprintf(w, "(other)\t%s\t\n", money.FormatINR(lookup.DefaultTax))
		return w.Flush()
	},
}

var validateRulesCmd = &cobra.Command{
	Use:   "validate-rules [rules-file]",
	Short: "Validate a statutory rules file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.NewRulesParser().LoadFromFile(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Rules file %s is valid\n", args[0])
		return nil
	},
}

func init() {
	citiesCmd.Flags().String("rules", "", "Statutory rules YAML (default: built-in rules)")
}
