package salary

import (
	"context"
	"errors"
	"testing"

	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/store"
	"github.com/rgehrsitz/ctcgo/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*Service, *store.MemoryStore) {
	t.Helper()
	mem := store.NewMemoryStore()
	_, err := store.Seed(context.Background(), mem, nil)
	require.NoError(t, err)
	return NewService(calculation.NewSalaryEngine(nil), mem, zap.NewNop()), mem
}

func TestService_Calculate(t *testing.T) {
	svc, mem := newTestService(t)
	ctx := context.Background()

	b, err := svc.Calculate(ctx, "alice", domain.SalaryInput{
		CTC:         decimal.NewFromInt(1200000),
		City:        " Delhi ",
		Company:     "Google",
		Designation: "Software Engineer",
		OfferInHand: decimal.NewFromInt(90000),
	})
	require.NoError(t, err)
	assert.True(t, b.InHandSalary.Equal(decimal.RequireFromString("91683.33")), "inHand %s", b.InHandSalary)

	history, err := svc.History(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Delhi", history[0].City)
	assert.Equal(t, "Software Engineer", history[0].Designation)
	assert.True(t, history[0].OfferInHand.Equal(decimal.NewFromInt(90000)))

	cities, err := mem.ListReference(ctx, store.KindCity, true)
	require.NoError(t, err)
	for _, c := range cities {
		if c.Name == "Delhi" {
			assert.Equal(t, int64(1), c.UsageCount)
		}
	}

	other, err := svc.History(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, other)

	all, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestService_Calculate_InvalidInput(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Calculate(context.Background(), "alice", domain.SalaryInput{
		CTC:         decimal.NewFromInt(100000),
		City:        "Pune",
		VariablePay: decimal.NewFromInt(150000),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, validation.ErrInvalidInput))

	history, _ := svc.History(context.Background(), "alice")
	assert.Empty(t, history, "invalid input is not stored")
}

func TestService_StoredCityTaxOverridesStatic(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateCityTax(ctx, domain.CityTaxProfile{City: "Delhi", State: "Delhi", ProfessionalTax: decimal.NewFromInt(100)})
	require.NoError(t, err)

	b, err := svc.Calculate(ctx, "alice", domain.SalaryInput{CTC: decimal.NewFromInt(1200000), City: "Delhi"})
	require.NoError(t, err)
	assert.True(t, b.ProfessionalTax.Equal(decimal.NewFromInt(100)))
}

func TestService_CityTaxAdmin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateCityTax(ctx, domain.CityTaxProfile{City: "Pune", State: "Maharashtra", ProfessionalTax: decimal.NewFromInt(200)})
	require.NoError(t, err)
	assert.True(t, created.HRAExemptionPercent.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, "new", created.DefaultTaxRegime)

	_, err = svc.CreateCityTax(ctx, domain.CityTaxProfile{City: "Pune", ProfessionalTax: decimal.NewFromInt(200)})
	assert.True(t, errors.Is(err, store.ErrAlreadyExists))

	_, err = svc.CreateCityTax(ctx, domain.CityTaxProfile{City: "Goa", ProfessionalTax: decimal.NewFromInt(-1)})
	assert.True(t, errors.Is(err, validation.ErrInvalidInput))

	updated, err := svc.UpdateCityTax(ctx, "Pune", domain.CityTaxProfile{ProfessionalTax: decimal.NewFromInt(300)})
	require.NoError(t, err)
	assert.True(t, updated.ProfessionalTax.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, "Maharashtra", updated.State, "state kept")
	assert.Equal(t, "new", updated.DefaultTaxRegime)

	_, err = svc.UpdateCityTax(ctx, "Nagpur", domain.CityTaxProfile{})
	assert.True(t, errors.Is(err, store.ErrNotFound))

	list, err := svc.ListCityTax(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.DeleteCityTax(ctx, "Pune"))
	_, err = svc.GetCityTax(ctx, "Pune")
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestService_Reference(t *testing.T) {
	svc, _ := newTestService(t)

	companies, err := svc.Reference(context.Background(), store.KindCompany)
	require.NoError(t, err)
	assert.Contains(t, companies, "Goldman Sachs")
	assert.IsNonDecreasing(t, companies)
}
