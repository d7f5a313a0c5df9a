package compare

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

func sampleSet() *ComparisonSet {
	gap := decimal.NewFromInt(-5000)
	return &ComparisonSet{
		BaseOfferName: "Current",
		SourcePath:    "/path/to/offers.yaml",
		BaseResult: &ComparisonResult{
			OfferName:        "Current",
			City:             "Delhi",
			CTC:              decimal.NewFromInt(1200000),
			InHandMonthly:    decimal.RequireFromString("91683.33"),
			AnnualTakeHome:   decimal.RequireFromString("1100199.96"),
			AnnualDeductions: decimal.RequireFromString("99800.04"),
			Gratuity:         decimal.RequireFromString("144230.77"),
		},
		AlternativeResults: []ComparisonResult{
			{
				OfferName:             "Startup",
				Company:               "Acme",
				City:                  "Bangalore",
				CTC:                   decimal.NewFromInt(1500000),
				InHandMonthly:         decimal.NewFromInt(110000),
				AnnualTakeHome:        decimal.NewFromInt(1320000),
				AnnualDeductions:      decimal.NewFromInt(150000),
				InHandDiffFromBase:    decimal.RequireFromString("18316.67"),
				InHandPctFromBase:     decimal.RequireFromString("19.98"),
				DeductionDiffFromBase: decimal.RequireFromString("50199.96"),
				ExpectationGap:        &gap,
			},
		},
		Recommendations: []string{"Best In-Hand: Startup pays ₹18,316.67 more per month than Current"},
	}
}

func TestTableFormatter_Format(t *testing.T) {
	result := (&TableFormatter{}).Format(sampleSet())

	for _, want := range []string{
		"OFFER COMPARISON",
		"Base Offer: Current",
		"Offers File: /path/to/offers.yaml",
		"Current (base)",
		"₹12.00 L",
		"₹91,683.33",
		"+₹18,316.67/month (20.0%)",
		"-₹50,199.96/year",
		"QUOTED IN-HAND CHECK",
		"RECOMMENDATIONS",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("expected %q in output:\n%s", want, result)
		}
	}
}

func TestTableFormatter_Format_EmptyAlternatives(t *testing.T) {
	set := sampleSet()
	set.AlternativeResults = nil
	set.Recommendations = nil

	result := (&TableFormatter{}).Format(set)
	if strings.Contains(result, "COMPARISON TO BASE") {
		t.Error("did not expect a comparison section without alternatives")
	}
	if strings.Contains(result, "RECOMMENDATIONS") {
		t.Error("did not expect recommendations")
	}
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	got := (&TableFormatter{}).FormatCompact(sampleSet())
	want := "Base: Current | Startup: +₹18,316.67"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTableFormatter_LakhsAndCrores(t *testing.T) {
	tf := &TableFormatter{}
	if got := tf.formatLakhs(decimal.NewFromInt(25000000)); got != "₹2.50 Cr" {
		t.Errorf("got %q", got)
	}
	if got := tf.formatLakhs(decimal.NewFromInt(850000)); got != "₹8.50 L" {
		t.Errorf("got %q", got)
	}
}

func TestCSVFormatter_Format(t *testing.T) {
	out, err := (&CSVFormatter{}).Format(sampleSet())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Offer,Type,Company,City,CTC") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Current,base,,Delhi,1200000.00,91683.33") {
		t.Errorf("unexpected base row %q", lines[1])
	}
	if !strings.HasSuffix(lines[1], ",") {
		t.Errorf("base row should leave the expectation gap empty: %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], ",-5000.00") {
		t.Errorf("unexpected alternative row %q", lines[2])
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	for _, pretty := range []bool{false, true} {
		out, err := (&JSONFormatter{Pretty: pretty}).Format(sampleSet())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var decoded map[string]any
		if err := json.Unmarshal([]byte(out), &decoded); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if decoded["baseOfferName"] != "Current" {
			t.Errorf("baseOfferName = %v", decoded["baseOfferName"])
		}
		if pretty != strings.Contains(out, "\n  ") {
			t.Errorf("pretty=%v mismatched indentation", pretty)
		}
	}
}
