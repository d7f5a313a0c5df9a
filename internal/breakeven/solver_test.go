package breakeven

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/domain"
)

func TestRequiredCTC_RoundTrip(t *testing.T) {
	s := NewDefaultSolver(calculation.NewSalaryEngine(nil))
	res, err := s.RequiredCTC(context.Background(), Request{
		Template:     domain.SalaryInput{City: "Delhi"},
		TargetInHand: decimal.RequireFromString("91683.33"),
	})
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.True(t, res.Breakdown.InHandSalary.GreaterThanOrEqual(res.Request.TargetInHand))
	assert.False(t, res.Surplus.IsNegative())

	// 12L in Delhi pays exactly the target; per-component rounding allows a few rupees of slack
	diff := res.RequiredCTC.Sub(decimal.NewFromInt(1200000)).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.NewFromInt(10)), "got %s", res.RequiredCTC)
}

func TestRequiredCTC_KeepsNonMonthlyComponents(t *testing.T) {
	s := NewDefaultSolver(calculation.NewSalaryEngine(nil))
	res, err := s.RequiredCTC(context.Background(), Request{
		Template:     domain.SalaryInput{City: "Pune", VariablePay: decimal.NewFromInt(200000)},
		TargetInHand: decimal.NewFromInt(50000),
	})
	require.NoError(t, err)
	assert.True(t, res.RequiredCTC.GreaterThan(decimal.NewFromInt(200000)))
	assert.Equal(t, "200000", res.Breakdown.VariablePay.String())
}

func TestRequiredCTC_Invalid(t *testing.T) {
	s := NewDefaultSolver(calculation.NewSalaryEngine(nil))
	_, err := s.RequiredCTC(context.Background(), Request{Template: domain.SalaryInput{City: "Pune"}})
	var be *BreakEvenError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "validate", be.Operation)

	_, err = s.RequiredCTC(context.Background(), Request{TargetInHand: decimal.NewFromInt(1)})
	assert.ErrorAs(t, err, &be)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.RequiredCTC(ctx, Request{Template: domain.SalaryInput{City: "Pune"}, TargetInHand: decimal.NewFromInt(100000)})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMatchOffer(t *testing.T) {
	s := NewDefaultSolver(calculation.NewSalaryEngine(nil))
	current := domain.SalaryInput{CTC: decimal.NewFromInt(1200000), City: "Delhi"}
	res, err := s.MatchOffer(context.Background(), current, domain.SalaryInput{City: "Mumbai"})
	require.NoError(t, err)

	// Mumbai levies 200/month professional tax, Delhi none
	assert.True(t, res.RequiredCTC.GreaterThan(current.CTC))
	hike, ok := res.HikeOverReference()
	require.True(t, ok)
	assert.True(t, hike.IsPositive())

	out := (&TableFormatter{}).Format(res)
	assert.Contains(t, out, "Mumbai")
	assert.Contains(t, out, "Versus Current CTC")
}
