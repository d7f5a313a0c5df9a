package calculation

import (
	"testing"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIncomeTaxCalculator_Slabs(t *testing.T) {
	tc := NewIncomeTaxCalculator()

	tests := []struct {
		name     string
		income   string
		expected string
	}{
		{"zero income", "0", "0"},
		{"negative income", "-5000", "0"},
		{"below first boundary", "250000", "0"},
		{"first boundary", "300000", "0"},
		{"second slab", "500000", "10000"},
		{"second boundary", "700000", "20000"},
		{"third slab", "778000", "27800"},
		{"third boundary", "1000000", "50000"},
		{"fourth boundary", "1200000", "80000"},
		{"fifth boundary", "1500000", "140000"},
		{"top slab", "2000000", "290000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tc.CalculateIncomeTax(d(tt.income))
			assert.True(t, got.Equal(d(tt.expected)), "income %s: expected %s, got %s", tt.income, tt.expected, got)
		})
	}
}

func TestIncomeTaxCalculator_ContinuousAndMonotone(t *testing.T) {
	tc := NewIncomeTaxCalculator()
	eps := d("0.01")

	for _, boundary := range []string{"300000", "700000", "1000000", "1200000", "1500000"} {
		b := d(boundary)
		below := tc.CalculateIncomeTax(b.Sub(eps))
		at := tc.CalculateIncomeTax(b)
		above := tc.CalculateIncomeTax(b.Add(eps))

		assert.True(t, below.LessThanOrEqual(at), "non-decreasing into %s", boundary)
		assert.True(t, at.LessThanOrEqual(above), "non-decreasing out of %s", boundary)
		// Highest rate is 30%, so a one-paisa step moves tax by at most 0.003.
		assert.True(t, above.Sub(below).LessThanOrEqual(d("0.006")), "continuous at %s", boundary)
	}

	prev := decimal.Zero
	for income := int64(0); income <= 2500000; income += 12500 {
		tax := tc.CalculateIncomeTax(decimal.NewFromInt(income))
		assert.True(t, tax.GreaterThanOrEqual(prev), "tax decreased at %d", income)
		prev = tax
	}
}

func TestIncomeTaxCalculator_Rates(t *testing.T) {
	tc := NewIncomeTaxCalculator()

	assert.True(t, tc.MarginalRate(d("250000")).IsZero())
	assert.True(t, tc.MarginalRate(d("700000")).Equal(d("0.05")))
	assert.True(t, tc.MarginalRate(d("700001")).Equal(d("0.10")))
	assert.True(t, tc.MarginalRate(d("9000000")).Equal(d("0.30")))

	assert.True(t, tc.EffectiveRate(decimal.Zero).IsZero())
	assert.True(t, tc.EffectiveRate(d("1000000")).Equal(d("0.05")))
}

func TestNewIncomeTaxCalculatorWithConfig(t *testing.T) {
	empty := NewIncomeTaxCalculatorWithConfig(domain.IncomeTaxConfig{Regime: "new"})
	assert.Len(t, empty.Slabs, 6, "Should fall back to built-in slabs")

	flat := NewIncomeTaxCalculatorWithConfig(domain.IncomeTaxConfig{
		Regime: "flat",
		Slabs: []domain.IncomeTaxSlab{
			{LowerBound: decimal.Zero, Rate: d("0.10")},
		},
	})
	assert.True(t, flat.CalculateIncomeTax(d("100000")).Equal(d("10000")))
	assert.Equal(t, "flat", flat.Regime)
}
