package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/ctcgo/internal/ats"
	"github.com/rgehrsitz/ctcgo/internal/domain"
)

var atsCmd = &cobra.Command{
	Use:   "ats [resume-file]",
	Short: "Score a plain-text resume for applicant tracking systems",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		text, err := ats.ExtractText(data, ats.DefaultMaxFileSize)
		if err != nil {
			return err
		}

		scorer := ats.NewScorer()
		result := scorer.Score(text)
		result.FileSize = int64(len(data))

		var premium *domain.PremiumEnhancements
		if enhance, _ := cmd.Flags().GetBool("enhance"); enhance {
			p := scorer.Enhance(text, result)
			premium = &p
		}

		if format, _ := cmd.Flags().GetString("format"); format == "json" {
			payload := struct {
				domain.AtsResult
				PremiumFeatures *domain.PremiumEnhancements `json:"premiumFeatures,omitempty"`
			}{result, premium}
			out, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		printAtsResult(cmd, result, premium)
		return nil
	},
}

func printAtsResult(cmd *cobra.Command, r domain.AtsResult, premium *domain.PremiumEnhancements) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "ATS score: %d/100 (%s)\n", r.Score, ats.MatchLevelFor(r.Score))
	fmt.Fprintf(w, "Keywords matched: %d of %d, %d words\n", r.KeywordMatches, r.TotalKeywords, r.WordCount)

	section := func(title string, lines []string) {
		if len(lines) == 0 {
			return
		}
		fmt.Fprintf(w, "\n%s:\n", title)
		for _, l := range lines {
			fmt.Fprintf(w, "  - %s\n", l)
		}
	}
	section("Strengths", r.Strengths)
	section("Weaknesses", r.Weaknesses)
	section("Suggestions", r.Suggestions)

	if len(r.CompanyComparisons) > 0 {
		fmt.Fprintln(w, "\nCompany fit:")
		keys := make([]string, 0, len(r.CompanyComparisons))
		for k := range r.CompanyComparisons {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			c := r.CompanyComparisons[k]
			fmt.Fprintf(w, "  %-14s %3d  %s\n", k, c.Score, c.Match)
		}
	}

	if premium == nil {
		return
	}
	fmt.Fprintf(w, "\nProjected score after fixes: %d\n", premium.ProjectedScore)
	groups := make([]string, 0, len(premium.MissingKeywords))
	for g := range premium.MissingKeywords {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	for _, group := range groups {
		if words := premium.MissingKeywords[group]; len(words) > 0 {
			fmt.Fprintf(w, "Missing %s keywords: %s\n", group, strings.Join(words, ", "))
		}
	}
	for _, br := range premium.BulletRewrites {
		fmt.Fprintf(w, "  * %q: %s\n", br.Original, strings.Join(br.Issues, "; "))
	}
	section("Section advice", premium.SectionAdvice)
}

func init() {
	atsCmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
	atsCmd.Flags().Bool("enhance", false, "Include keyword, bullet and section recommendations")
}
