package calculation

import (
	"context"
	"sort"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
)

// CityTaxStore is the persistent city tax table. found is false when the
// city has no row; err is reserved for storage failures.
type CityTaxStore interface {
	LookupCityTax(ctx context.Context, city string) (profile domain.CityTaxProfile, found bool, err error)
}

// DefaultHRAExemptionPercent is reported for cities without a stored profile.
var DefaultHRAExemptionPercent = decimal.NewFromInt(50)

// CityTaxLookup resolves professional tax through the store, then the static
// table, then the default. It never fails.
type CityTaxLookup struct {
	Store      CityTaxStore
	Fallback   map[string]decimal.Decimal
	DefaultTax decimal.Decimal
	Logger     Logger
}

// NewCityTaxLookup creates a lookup over the built-in fallback table.
// store may be nil, in which case only the static table is consulted.
func NewCityTaxLookup(store CityTaxStore) *CityTaxLookup {
	return NewCityTaxLookupWithConfig(store, domain.DefaultSalaryRules().ProfessionalTax)
}

// NewCityTaxLookupWithConfig creates a lookup over a configured fallback table.
func NewCityTaxLookupWithConfig(store CityTaxStore, table domain.ProfessionalTaxTable) *CityTaxLookup {
	fallback := table.Cities
	if fallback == nil {
		fallback = domain.DefaultProfessionalTaxCities()
	}
	def := table.Default
	if def.IsZero() && table.Cities == nil {
		def = decimal.NewFromInt(200)
	}
	return &CityTaxLookup{
		Store:      store,
		Fallback:   fallback,
		DefaultTax: def,
		Logger:     NopLogger{},
	}
}

// ProfessionalTax returns the monthly professional tax for city.
func (l *CityTaxLookup) ProfessionalTax(ctx context.Context, city string) decimal.Decimal {
	return l.Profile(ctx, city).ProfessionalTax
}

// Profile returns the tax profile for city. Matching is exact and case-sensitive.
func (l *CityTaxLookup) Profile(ctx context.Context, city string) domain.CityTaxProfile {
	if l.Store != nil {
		profile, found, err := l.Store.LookupCityTax(ctx, city)
		if err != nil {
			l.logger().Warnf("city tax store lookup failed for %q, using fallback: %v", city, err)
		} else if found {
			return profile
		}
	}

	if pt, ok := l.Fallback[city]; ok {
		return domain.CityTaxProfile{City: city, ProfessionalTax: pt, HRAExemptionPercent: DefaultHRAExemptionPercent}
	}

	l.logger().Debugf("no professional tax entry for %q, using default %s", city, l.DefaultTax)
	return domain.CityTaxProfile{City: city, ProfessionalTax: l.DefaultTax, HRAExemptionPercent: DefaultHRAExemptionPercent}
}

// KnownCities returns the cities in the static table, sorted.
func (l *CityTaxLookup) KnownCities() []string {
	cities := make([]string, 0, len(l.Fallback))
	for c := range l.Fallback {
		cities = append(cities, c)
	}
	sort.Strings(cities)
	return cities
}

func (l *CityTaxLookup) logger() Logger {
	if l.Logger == nil {
		return NopLogger{}
	}
	return l.Logger
}
