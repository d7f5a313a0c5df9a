package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Store = (*MemoryStore)(nil)
var _ Store = (*GormStore)(nil)

func fixedClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	t := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Minute)
		return t
	}
}

func TestMemoryStore_CityTaxCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, found, err := s.LookupCityTax(ctx, "Pune")
	require.NoError(t, err)
	assert.False(t, found)

	_, err = s.CreateCityTax(ctx, domain.CityTaxProfile{City: "Pune", ProfessionalTax: decimal.NewFromInt(200)})
	require.NoError(t, err)
	_, err = s.CreateCityTax(ctx, domain.CityTaxProfile{City: "Pune"})
	assert.True(t, errors.Is(err, ErrAlreadyExists))

	updated, err := s.UpdateCityTax(ctx, "Pune", domain.CityTaxProfile{City: "ignored", ProfessionalTax: decimal.NewFromInt(250)})
	require.NoError(t, err)
	assert.Equal(t, "Pune", updated.City)

	got, err := s.GetCityTax(ctx, "Pune")
	require.NoError(t, err)
	assert.True(t, got.ProfessionalTax.Equal(decimal.NewFromInt(250)))

	_, err = s.UpdateCityTax(ctx, "Nagpur", domain.CityTaxProfile{})
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = s.CreateCityTax(ctx, domain.CityTaxProfile{City: "Agra"})
	require.NoError(t, err)
	list, err := s.ListCityTax(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Agra", list[0].City)

	require.NoError(t, s.DeleteCityTax(ctx, "Pune"))
	assert.True(t, errors.Is(s.DeleteCityTax(ctx, "Pune"), ErrNotFound))
	_, err = s.GetCityTax(ctx, "Pune")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemoryStore_Calculations(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	s.Now = fixedClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	for i := 0; i < 5; i++ {
		user := "alice"
		if i%2 == 1 {
			user = "bob"
		}
		calc := &domain.SalaryCalculation{UserID: user, City: "Pune",
			SalaryBreakdown: domain.SalaryBreakdown{CTC: decimal.NewFromInt(int64(100000 * (i + 1)))}}
		require.NoError(t, s.SaveCalculation(ctx, calc))
		assert.NotEmpty(t, calc.ID)
	}

	alice, err := s.ListCalculations(ctx, "alice", 100)
	require.NoError(t, err)
	require.Len(t, alice, 3)
	assert.True(t, alice[0].CTC.Equal(decimal.NewFromInt(500000)), "newest first")

	all, err := s.ListAllCalculations(ctx, 2)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[1].CTC.Equal(decimal.NewFromInt(400000)))

	summaries, err := s.CalculationSummaries(ctx)
	require.NoError(t, err)
	assert.Len(t, summaries, 5)
}

func TestMemoryStore_ChecksAndUsage(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	check := &domain.AtsCheck{UserID: "alice", AtsResult: domain.AtsResult{Score: 72}}
	require.NoError(t, s.SaveCheck(ctx, check))

	got, err := s.GetCheck(ctx, check.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, 72, got.Score)

	_, err = s.GetCheck(ctx, check.ID, "bob")
	assert.True(t, errors.Is(err, ErrNotFound), "checks are scoped to their owner")

	now := time.Now()
	require.NoError(t, s.RecordUsage(ctx, "alice", now.Add(-13*time.Hour)))
	require.NoError(t, s.RecordUsage(ctx, "alice", now.Add(-1*time.Hour)))
	require.NoError(t, s.RecordUsage(ctx, "alice", now.Add(-2*time.Hour)))

	recent, err := s.UsageSince(ctx, "alice", now.Add(-12*time.Hour))
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.True(t, recent[0].Before(recent[1]), "oldest first")
}

func TestMemoryStore_ReferenceAndSeed(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	cityTax := []domain.CityTaxProfile{{City: "Kolkata", ProfessionalTax: decimal.NewFromInt(110)}}

	first, err := Seed(ctx, s, cityTax)
	require.NoError(t, err)
	assert.Equal(t, len(SeedCities()), first.Cities)
	assert.Equal(t, len(SeedCompanies()), first.Companies)
	assert.Equal(t, len(SeedDesignations()), first.Designations)
	assert.Equal(t, 1, first.CityTax)

	second, err := Seed(ctx, s, cityTax)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{}, second, "seeding is idempotent")

	cities, err := s.ListReference(ctx, KindCity, true)
	require.NoError(t, err)
	require.NotEmpty(t, cities)
	assert.Equal(t, "Agra", cities[0].Name, "sorted ascending")

	require.NoError(t, s.IncrementUsage(ctx, KindCity, "Pune"))
	require.NoError(t, s.IncrementUsage(ctx, KindCity, "Atlantis"))
	s.SetReferenceActive(KindCity, "Agra", false)

	cities, err = s.ListReference(ctx, KindCity, true)
	require.NoError(t, err)
	assert.NotEqual(t, "Agra", cities[0].Name)
	for _, c := range cities {
		if c.Name == "Pune" {
			assert.Equal(t, int64(1), c.UsageCount)
		}
	}
}
