// Package output renders salary breakdowns as console tables, JSON, CSV or YAML.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rgehrsitz/ctcgo/internal/domain"
)

// Report is what every formatter renders: the input, its breakdown and the
// assumptions behind it. Tax is optional.
type Report struct {
	Input       domain.SalaryInput     `json:"input" yaml:"input"`
	Breakdown   domain.SalaryBreakdown `json:"breakdown" yaml:"breakdown"`
	Tax         *domain.TaxSummary     `json:"tax,omitempty" yaml:"tax,omitempty"`
	Assumptions []string               `json:"assumptions,omitempty" yaml:"assumptions,omitempty"`
}

// NewReport builds a Report with assumptions derived from rules.
func NewReport(input domain.SalaryInput, b domain.SalaryBreakdown, rules domain.SalaryRules) *Report {
	return &Report{Input: input, Breakdown: b, Assumptions: Assumptions(rules)}
}

// Formatter renders a Report. Extension is the file suffix used when the
// output is written to disk.
type Formatter interface {
	Format(r *Report) ([]byte, error)
	Name() string
	Extension() string
}

// FormatterFunc lets a plain function act as a Formatter.
type FormatterFunc struct {
	ID  string
	Ext string
	F   func(*Report) ([]byte, error)
}

func (ff FormatterFunc) Format(r *Report) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                     { return ff.ID }

func (ff FormatterFunc) Extension() string {
	if ff.Ext == "" {
		return "txt"
	}
	return ff.Ext
}

// WriteFormatted renders r and writes it to dir as
// salary_breakdown_<timestamp>.<ext>, returning the path.
func WriteFormatted(f Formatter, r *Report, dir string) (string, error) {
	data, err := f.Format(r)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("salary_breakdown_%s.%s", time.Now().Format("20060102_150405"), f.Extension())
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

var (
	formatters = map[string]Formatter{}
	aliases    = map[string]string{}
)

func init() {
	Register(ConsoleFormatter{}, "table", "text")
	Register(JSONFormatter{Pretty: true}, "json-pretty")
	Register(CSVFormatter{})
	Register(YAMLFormatter{}, "yml")
}

// Register makes f available under its name and the given aliases.
// Registering a name twice replaces the earlier formatter.
func Register(f Formatter, alias ...string) {
	formatters[f.Name()] = f
	for _, a := range alias {
		aliases[strings.ToLower(a)] = f.Name()
	}
}

// GetFormatterByName returns the formatter for name or alias, or nil.
func GetFormatterByName(name string) Formatter {
	return formatters[NormalizeFormatName(name)]
}

// NormalizeFormatName lowercases name and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[n]; ok {
		return canonical
	}
	return n
}

// AvailableFormatterNames lists canonical names, sorted.
func AvailableFormatterNames() []string {
	return sortedKeys(formatters)
}

// AvailableFormatAliases lists alias names, sorted.
func AvailableFormatAliases() []string {
	return sortedKeys(aliases)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
