package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/compare"
	"github.com/rgehrsitz/ctcgo/internal/config"
	"github.com/rgehrsitz/ctcgo/internal/transform"
)

var compareCmd = &cobra.Command{
	Use:   "compare [offers-file]",
	Short: "Compare salary offers side by side",
	Long:  "Evaluate every offer in a YAML offers file and compare its in-hand pay and deductions against the base offer.",
	Args: func(cmd *cobra.Command, args []string) error {
		if list, _ := cmd.Flags().GetBool("list-templates"); list {
			return nil
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if list, _ := cmd.Flags().GetBool("list-templates"); list {
			templates := transform.CreateBuiltInTemplates()
			for _, name := range templates.List() {
				t, _ := templates.Get(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", name, t.Description)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nTransforms: %s\n", strings.Join(transform.NewTransformRegistry().List(), ", "))
			return nil
		}

		log := cliLogger(cmd)
		defer func() { _ = log.Sync() }()

		set, err := config.NewInputParser().LoadOffers(args[0])
		if err != nil {
			return err
		}
		if base, _ := cmd.Flags().GetString("base"); base != "" {
			set.Base = base
		}
		if with, _ := cmd.Flags().GetStringSlice("with"); len(with) > 0 {
			base, ok := set.BaseOffer()
			if !ok {
				return fmt.Errorf("base offer %q not found", set.Base)
			}
			alts, err := transform.Alternatives(*base, with)
			if err != nil {
				return err
			}
			set.Offers = append(set.Offers, alts...)
		}

		rulesFile, _ := cmd.Flags().GetString("rules")
		rules, err := config.NewRulesParser().LoadOrDefault(rulesFile)
		if err != nil {
			return err
		}
		engine := calculation.NewSalaryEngineWithRules(*rules, nil)
		engine.SetLogger(log.Sugar())

		result, err := compare.NewCompareEngine(engine).Compare(context.Background(), set)
		if err != nil {
			return err
		}
		result.SourcePath = args[0]

		format, _ := cmd.Flags().GetString("format")
		var out string
		switch format {
		case "table", "":
			out = (&compare.TableFormatter{}).Format(result)
		case "compact":
			out = (&compare.TableFormatter{}).FormatCompact(result)
		case "csv":
			out, err = (&compare.CSVFormatter{}).Format(result)
		case "json":
			out, err = (&compare.JSONFormatter{Pretty: true}).Format(result)
		default:
			return fmt.Errorf("unsupported format %q (table, compact, csv, json)", format)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	compareCmd.Flags().String("base", "", "Name of the base offer (default: the file's base, else the first offer)")
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")
	compareCmd.Flags().StringSlice("with", nil, "What-if offers derived from the base: template names or transform specs, '+' chains (e.g. hike_20,hike_10+move_mumbai)")
	compareCmd.Flags().Bool("list-templates", false, "List built-in what-if templates and transforms")
	compareCmd.Flags().String("rules", "", "Statutory rules YAML (default: built-in rules)")
}
