package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rgehrsitz/ctcgo/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:          "ctcgo",
	Short:        "Indian CTC to in-hand salary calculator",
	Long:         "Break an annual cost-to-company package into monthly in-hand pay, compare offers, score resumes and serve the calculator over HTTP.",
	SilenceUsage: true,
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ctcgo %s (commit %s, built %s)\n", version, commit, date)
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				if info := buildInfo(); info != "" {
					fmt.Fprintln(cmd.OutOrStdout(), info)
				}
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

// cliLogger is the console logger used by the one-shot commands.
// Output goes to stderr so stdout stays parseable.
func cliLogger(cmd *cobra.Command) *zap.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	log, err := logging.New(logging.Config{Level: "warn", Format: "console"}, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q, using warn\n", level)
		log, _ = logging.New(logging.Config{Level: "warn", Format: "console"}, "")
	}
	return log
}

func init() {
	// Every JSON surface (calculate, compare, required-ctc, stats, the API) emits money as numbers.
	decimal.MarshalJSONWithoutQuotes = true

	rootCmd.PersistentFlags().String("config", "", "Path to ctcgo.yaml (default: ./ctcgo.yaml or $HOME/.ctcgo/ctcgo.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level override (debug, info, warn, error)")

	vc := versionCmd()
	vc.Flags().BoolP("verbose", "v", false, "Include module build information")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(requiredCTCCmd)
	rootCmd.AddCommand(atsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(citiesCmd)
	rootCmd.AddCommand(validateRulesCmd)
	rootCmd.AddCommand(vc)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
