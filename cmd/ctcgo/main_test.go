package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes rootCmd with args after resetting flag state left by earlier runs.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var reset func(c *cobra.Command)
	reset = func(c *cobra.Command) {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				_ = sv.Replace(nil)
			} else {
				_ = f.Value.Set(f.DefValue)
			}
			f.Changed = false
		})
		for _, sub := range c.Commands() {
			reset(sub)
		}
	}
	reset(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "ctcgo", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)

	out, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "calculate")
	assert.Contains(t, out, "serve")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ctcgo dev")
}

func TestCalculateCommand_Flags(t *testing.T) {
	out, err := run(t, "calculate", "--ctc", "12,00,000", "--city", "Delhi", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "91683.33")
	assert.Contains(t, out, "2316.67")
	assert.Regexp(t, `"inHandSalary":\s*91683.33`, out, "money is a JSON number")
	assert.Regexp(t, `"marginalRate":\s*0.1\b`, out)
}

func TestCalculateCommand_FileWithOverride(t *testing.T) {
	path := writeFile(t, "input.yaml", "ctc: 1500000\ncity: Pune\n")
	out, err := run(t, "calculate", path, "--ctc", "1200000", "--city", "Delhi", "-f", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "Component,Monthly,Annual")
	assert.Contains(t, out, "91683.33")
}

func TestCalculateCommand_Errors(t *testing.T) {
	_, err := run(t, "calculate", "--ctc", "1200000")
	assert.Error(t, err, "city is required")

	_, err = run(t, "calculate", "--ctc", "twelve", "--city", "Pune")
	assert.ErrorContains(t, err, "--ctc")

	_, err = run(t, "calculate", "--ctc", "1200000", "--city", "Pune", "--format", "pdf")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestCalculateCommand_OutputDir(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "calculate", "--ctc", "1200000", "--city", "Delhi", "--format", "yaml", "--output-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to")

	matches, err := filepath.Glob(filepath.Join(dir, "salary_breakdown_*.yaml"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestCompareCommand(t *testing.T) {
	path := writeFile(t, "offers.yaml", `
base: current
offers:
  - name: current
    input: {ctc: 1200000, city: Delhi}
  - name: startup
    input: {ctc: 1500000, city: Bangalore, company: Acme}
`)
	out, err := run(t, "compare", path, "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "current")
	assert.Contains(t, out, "startup")

	out, err = run(t, "compare", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Best In-Hand:")

	out, err = run(t, "compare", path, "--format", "json")
	require.NoError(t, err)
	assert.Regexp(t, `"inHandSalary":\s*91683.33`, out, "money is a JSON number")
	assert.NotRegexp(t, `"inHandSalary":\s*"`, out)

	_, err = run(t, "compare", path, "--format", "xml")
	assert.ErrorContains(t, err, "unsupported format")

	out, err = run(t, "compare", path, "--format", "csv", "--with", "hike_20,relocate:city=Mumbai")
	require.NoError(t, err)
	assert.Contains(t, out, "hike_20")
	assert.Contains(t, out, "relocate:city=Mumbai")

	_, err = run(t, "compare", path, "--with", "promote:level=2")
	assert.ErrorContains(t, err, "unknown transform")
}

func TestCompareCommand_ListTemplates(t *testing.T) {
	out, err := run(t, "compare", "--list-templates")
	require.NoError(t, err)
	assert.Contains(t, out, "hike_20")
	assert.Contains(t, out, "move_mumbai")
	assert.Contains(t, out, "Transforms: hike, relocate")
}

func TestAtsCommand(t *testing.T) {
	path := writeFile(t, "resume.txt", `Jane Doe
Experience
- Led a team of 5 engineers building Java microservices on AWS
Education
B.Tech Computer Science
Skills
Python, SQL, Docker, Kubernetes
`)
	out, err := run(t, "ats", path, "--enhance")
	require.NoError(t, err)
	assert.Contains(t, out, "ATS score:")
	assert.Contains(t, out, "Projected score after fixes:")

	out, err = run(t, "ats", path, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"score"`)
	assert.NotContains(t, out, "premiumFeatures")

	_, err = run(t, "ats", writeFile(t, "empty.txt", ""))
	assert.Error(t, err)
}

func TestCitiesCommand(t *testing.T) {
	out, err := run(t, "cities")
	require.NoError(t, err)
	assert.Contains(t, out, "Delhi")
	assert.Contains(t, out, "Kolkata")
	assert.Contains(t, out, "(other)")
	assert.Less(t, strings.Index(out, "Chennai"), strings.Index(out, "Mumbai"), "cities listed alphabetically")
}

func TestValidateRulesCommand(t *testing.T) {
	out, err := run(t, "validate-rules", writeFile(t, "rules.yaml", "income_tax:\n  standard_deduction: 75000\n"))
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	_, err = run(t, "validate-rules", writeFile(t, "bad.yaml", "income_tax:\n  standard_deduction: -1\n"))
	assert.Error(t, err)
}

func TestSeedCommand_MemoryStore(t *testing.T) {
	t.Setenv("CTCGO_DATABASE_DSN", "")
	cfg := writeFile(t, "ctcgo.yaml", "logging:\n  level: error\n")
	out, err := run(t, "seed", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "city tax rows")
}

func TestRequiredCTCCommand(t *testing.T) {
	out, err := run(t, "required-ctc", "--in-hand", "91683.33", "--city", "Delhi")
	require.NoError(t, err)
	assert.Contains(t, out, "Required CTC:")
	assert.Contains(t, out, "converged")

	out, err = run(t, "required-ctc", "--current-ctc", "1200000", "--current-city", "Delhi", "--city", "Mumbai", "-f", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"referenceCtc": 1200000`)

	_, err = run(t, "required-ctc", "--city", "Pune")
	assert.ErrorContains(t, err, "target in-hand must be positive")
}
