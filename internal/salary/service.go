// Package salary runs CTC breakdowns for callers and keeps their history.
package salary

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/store"
	"github.com/rgehrsitz/ctcgo/internal/validation"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// HistoryLimit caps the calculations returned by History and All.
const HistoryLimit = 100

// Repository is what the service needs from persistence.
type Repository interface {
	store.SalaryRepository
	store.CityTaxRepository
	store.ReferenceRepository
}

// Service validates input, runs the engine and records the result.
type Service struct {
	Engine *calculation.SalaryEngine
	Repo   Repository
	Logger *zap.Logger
}

// NewService wires an engine to repo. The engine's city tax lookup is pointed
// at repo so stored rows take precedence over the static table.
func NewService(engine *calculation.SalaryEngine, repo Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if engine.CityTax != nil && engine.CityTax.Store == nil {
		engine.CityTax.Store = repo
	}
	return &Service{Engine: engine, Repo: repo, Logger: log}
}

// Calculate sanitizes and validates input, computes the breakdown, stores it
// for userID and bumps the reference usage counters.
func (s *Service) Calculate(ctx context.Context, userID string, input domain.SalaryInput) (domain.SalaryBreakdown, error) {
	input, err := validation.PrepareSalaryInput(input)
	if err != nil {
		return domain.SalaryBreakdown{}, err
	}

	breakdown := s.Engine.Calculate(ctx, input)

	calc := &domain.SalaryCalculation{
		UserID:          userID,
		City:            input.City,
		Designation:     input.Designation,
		GithubProfile:   input.GithubProfile,
		LinkedinProfile: input.LinkedinProfile,
		OfferInHand:     input.OfferInHand,
		SalaryBreakdown: breakdown,
	}
	if err := s.Repo.SaveCalculation(ctx, calc); err != nil {
		return domain.SalaryBreakdown{}, fmt.Errorf("failed to save calculation: %w", err)
	}

	s.bumpUsage(ctx, store.KindCity, input.City)
	s.bumpUsage(ctx, store.KindCompany, input.Company)
	s.bumpUsage(ctx, store.KindDesignation, input.Designation)

	s.Logger.Info("salary calculated",
		zap.String("op", "salary.Calculate"),
		zap.String("user", userID),
		zap.String("city", input.City),
		zap.String("ctc", input.CTC.String()),
		zap.String("inHand", breakdown.InHandSalary.String()),
	)
	return breakdown, nil
}

// usage counters are best effort
func (s *Service) bumpUsage(ctx context.Context, kind store.ReferenceKind, name string) {
	if name == "" {
		return
	}
	if err := s.Repo.IncrementUsage(ctx, kind, name); err != nil {
		s.Logger.Warn("failed to increment usage",
			zap.String("op", "salary.bumpUsage"), zap.String("kind", string(kind)), zap.String("name", name), zap.Error(err))
	}
}

// History returns userID's calculations, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]domain.SalaryCalculation, error) {
	return s.Repo.ListCalculations(ctx, userID, HistoryLimit)
}

// All returns every user's calculations, newest first.
func (s *Service) All(ctx context.Context) ([]domain.SalaryCalculation, error) {
	return s.Repo.ListAllCalculations(ctx, HistoryLimit)
}

// ListCityTax returns the stored city tax rows.
func (s *Service) ListCityTax(ctx context.Context) ([]domain.CityTaxProfile, error) {
	return s.Repo.ListCityTax(ctx)
}

// GetCityTax returns one stored row or store.ErrNotFound.
func (s *Service) GetCityTax(ctx context.Context, city string) (domain.CityTaxProfile, error) {
	return s.Repo.GetCityTax(ctx, city)
}

// CreateCityTax stores a new row, defaulting the HRA exemption to 50% and the
// regime to "new".
func (s *Service) CreateCityTax(ctx context.Context, profile domain.CityTaxProfile) (domain.CityTaxProfile, error) {
	profile.City = validation.SanitizeCity(profile.City)
	profile.State = validation.SanitizeString(profile.State)
	if profile.HRAExemptionPercent.IsZero() {
		profile.HRAExemptionPercent = decimal.NewFromInt(50)
	}
	if profile.DefaultTaxRegime == "" {
		profile.DefaultTaxRegime = "new"
	}
	if err := validation.ValidateCityTaxProfile(profile); err != nil {
		return domain.CityTaxProfile{}, err
	}
	created, err := s.Repo.CreateCityTax(ctx, profile)
	if err != nil {
		return domain.CityTaxProfile{}, err
	}
	s.Logger.Info("city tax created", zap.String("op", "salary.CreateCityTax"), zap.String("city", created.City))
	return created, nil
}

// UpdateCityTax replaces the row for city. Unset HRA percent and regime keep
// their stored values.
func (s *Service) UpdateCityTax(ctx context.Context, city string, profile domain.CityTaxProfile) (domain.CityTaxProfile, error) {
	existing, err := s.Repo.GetCityTax(ctx, city)
	if err != nil {
		return domain.CityTaxProfile{}, err
	}
	profile.City = city
	profile.State = validation.SanitizeString(profile.State)
	if profile.State == "" {
		profile.State = existing.State
	}
	if profile.HRAExemptionPercent.IsZero() {
		profile.HRAExemptionPercent = existing.HRAExemptionPercent
	}
	if profile.DefaultTaxRegime == "" {
		profile.DefaultTaxRegime = existing.DefaultTaxRegime
	}
	if err := validation.ValidateCityTaxProfile(profile); err != nil {
		return domain.CityTaxProfile{}, err
	}
	return s.Repo.UpdateCityTax(ctx, city, profile)
}

// DeleteCityTax removes the row for city.
func (s *Service) DeleteCityTax(ctx context.Context, city string) error {
	if err := s.Repo.DeleteCityTax(ctx, city); err != nil {
		return err
	}
	s.Logger.Info("city tax deleted", zap.String("op", "salary.DeleteCityTax"), zap.String("city", city))
	return nil
}

// Reference returns the active names of kind, sorted ascending.
func (s *Service) Reference(ctx context.Context, kind store.ReferenceKind) ([]string, error) {
	items, err := s.Repo.ListReference(ctx, kind, true)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out, nil
}
