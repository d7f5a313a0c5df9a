// Package store persists salary calculations, city tax rows, ATS checks and
// reference data. GormStore backs it with PostgreSQL; MemoryStore keeps
// everything in process for tests, the CLI and database-less servers.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when a keyed row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when creating a row whose key is taken.
	ErrAlreadyExists = errors.New("already exists")
)

// CityTaxRepository is the city_tax_data table.
type CityTaxRepository interface {
	LookupCityTax(ctx context.Context, city string) (domain.CityTaxProfile, bool, error)
	ListCityTax(ctx context.Context) ([]domain.CityTaxProfile, error)
	GetCityTax(ctx context.Context, city string) (domain.CityTaxProfile, error)
	CreateCityTax(ctx context.Context, profile domain.CityTaxProfile) (domain.CityTaxProfile, error)
	UpdateCityTax(ctx context.Context, city string, profile domain.CityTaxProfile) (domain.CityTaxProfile, error)
	DeleteCityTax(ctx context.Context, city string) error
}

// SalaryRepository is the salary_calculations table.
type SalaryRepository interface {
	SaveCalculation(ctx context.Context, calc *domain.SalaryCalculation) error
	ListCalculations(ctx context.Context, userID string, limit int) ([]domain.SalaryCalculation, error)
	ListAllCalculations(ctx context.Context, limit int) ([]domain.SalaryCalculation, error)
}

// AtsRepository holds ATS checks and the usage log used for rate limiting.
type AtsRepository interface {
	SaveCheck(ctx context.Context, check *domain.AtsCheck) error
	ListChecks(ctx context.Context, userID string, limit int) ([]domain.AtsCheck, error)
	GetCheck(ctx context.Context, id, userID string) (domain.AtsCheck, error)
	RecordUsage(ctx context.Context, userID string, at time.Time) error
	UsageSince(ctx context.Context, userID string, since time.Time) ([]time.Time, error)
}

// ReferenceRepository holds the city, company and designation lists.
type ReferenceRepository interface {
	ListReference(ctx context.Context, kind ReferenceKind, activeOnly bool) ([]domain.ReferenceItem, error)
	IncrementUsage(ctx context.Context, kind ReferenceKind, name string) error
	UpsertReference(ctx context.Context, kind ReferenceKind, item domain.ReferenceItem) (created bool, err error)
}

// StatsSource feeds the statistics service.
type StatsSource interface {
	CalculationSummaries(ctx context.Context) ([]CalculationSummary, error)
	CheckSummaries(ctx context.Context) ([]CheckSummary, error)
}

// Store is everything the application persists.
type Store interface {
	CityTaxRepository
	SalaryRepository
	AtsRepository
	ReferenceRepository
	StatsSource
	Close() error
}

// ReferenceKind selects a reference list.
type ReferenceKind string

const (
	KindCity        ReferenceKind = "city"
	KindCompany     ReferenceKind = "company"
	KindDesignation ReferenceKind = "designation"
)

// CalculationSummary is the slice of a stored calculation used by statistics.
type CalculationSummary struct {
	CTC       decimal.Decimal
	InHand    decimal.Decimal
	City      string
	CreatedAt time.Time
}

// CheckSummary is the slice of a stored ATS check used by statistics.
type CheckSummary struct {
	Score     int
	CreatedAt time.Time
}
