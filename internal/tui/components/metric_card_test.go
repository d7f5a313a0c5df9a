package components

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMetricCard_Render(t *testing.T) {
	out := AmountCard("In-Hand", decimal.RequireFromString("91683.33")).
		Versus(decimal.NewFromInt(-1000), "vs quote").
		WithNote("monthly").
		Render()
	assert.Contains(t, out, "In-Hand")
	assert.Contains(t, out, "₹91,683.33")
	assert.Contains(t, out, "▼ ₹1,000.00 vs quote")
	assert.Contains(t, out, "monthly")

	assert.Contains(t, TextCard("Regime", "new").Render(), "new")
}

func TestGrid(t *testing.T) {
	assert.Empty(t, Grid(nil, 2))
	out := Grid([]*MetricCard{TextCard("A", "1"), TextCard("B", "2"), TextCard("C", "3")}, 2)
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "C")
}
