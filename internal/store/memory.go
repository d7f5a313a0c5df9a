package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rgehrsitz/ctcgo/internal/domain"
)

// MemoryStore is a process-local Store. It is safe for concurrent use.
type MemoryStore struct {
	mu           sync.RWMutex
	cityTax      map[string]domain.CityTaxProfile
	calculations []domain.SalaryCalculation
	checks       []domain.AtsCheck
	usage        map[string][]time.Time
	reference    map[ReferenceKind]map[string]*domain.ReferenceItem

	// Now stamps new rows; tests replace it.
	Now func() time.Time
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cityTax:   make(map[string]domain.CityTaxProfile),
		usage:     make(map[string][]time.Time),
		reference: make(map[ReferenceKind]map[string]*domain.ReferenceItem),
		Now:       time.Now,
	}
}

func (m *MemoryStore) Close() error { return nil }

func (m *MemoryStore) LookupCityTax(_ context.Context, city string) (domain.CityTaxProfile, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.cityTax[city]
	return p, ok, nil
}

func (m *MemoryStore) ListCityTax(_ context.Context) ([]domain.CityTaxProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.CityTaxProfile, 0, len(m.cityTax))
	for _, p := range m.cityTax {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].City < out[j].City })
	return out, nil
}

func (m *MemoryStore) GetCityTax(ctx context.Context, city string) (domain.CityTaxProfile, error) {
	p, ok, _ := m.LookupCityTax(ctx, city)
	if !ok {
		return domain.CityTaxProfile{}, fmt.Errorf("city tax %q: %w", city, ErrNotFound)
	}
	return p, nil
}

func (m *MemoryStore) CreateCityTax(_ context.Context, profile domain.CityTaxProfile) (domain.CityTaxProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cityTax[profile.City]; ok {
		return domain.CityTaxProfile{}, fmt.Errorf("city tax %q: %w", profile.City, ErrAlreadyExists)
	}
	m.cityTax[profile.City] = profile
	return profile, nil
}

func (m *MemoryStore) UpdateCityTax(_ context.Context, city string, profile domain.CityTaxProfile) (domain.CityTaxProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cityTax[city]; !ok {
		return domain.CityTaxProfile{}, fmt.Errorf("city tax %q: %w", city, ErrNotFound)
	}
	profile.City = city
	m.cityTax[city] = profile
	return profile, nil
}

func (m *MemoryStore) DeleteCityTax(_ context.Context, city string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cityTax[city]; !ok {
		return fmt.Errorf("city tax %q: %w", city, ErrNotFound)
	}
	delete(m.cityTax, city)
	return nil
}

func (m *MemoryStore) SaveCalculation(_ context.Context, calc *domain.SalaryCalculation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if calc.ID == "" {
		calc.ID = uuid.NewString()
	}
	if calc.CreatedAt.IsZero() {
		calc.CreatedAt = m.Now()
	}
	m.calculations = append(m.calculations, *calc)
	return nil
}

func (m *MemoryStore) ListCalculations(_ context.Context, userID string, limit int) ([]domain.SalaryCalculation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return newestFirst(m.calculations, limit, func(c domain.SalaryCalculation) bool { return c.UserID == userID },
		func(c domain.SalaryCalculation) time.Time { return c.CreatedAt }), nil
}

func (m *MemoryStore) ListAllCalculations(_ context.Context, limit int) ([]domain.SalaryCalculation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return newestFirst(m.calculations, limit, func(domain.SalaryCalculation) bool { return true },
		func(c domain.SalaryCalculation) time.Time { return c.CreatedAt }), nil
}

func (m *MemoryStore) SaveCheck(_ context.Context, check *domain.AtsCheck) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if check.ID == "" {
		check.ID = uuid.NewString()
	}
	if check.CreatedAt.IsZero() {
		check.CreatedAt = m.Now()
	}
	m.checks = append(m.checks, *check)
	return nil
}

func (m *MemoryStore) ListChecks(_ context.Context, userID string, limit int) ([]domain.AtsCheck, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return newestFirst(m.checks, limit, func(c domain.AtsCheck) bool { return c.UserID == userID },
		func(c domain.AtsCheck) time.Time { return c.CreatedAt }), nil
}

func (m *MemoryStore) GetCheck(_ context.Context, id, userID string) (domain.AtsCheck, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.checks {
		if c.ID == id && c.UserID == userID {
			return c, nil
		}
	}
	return domain.AtsCheck{}, fmt.Errorf("ats check %s: %w", id, ErrNotFound)
}

func (m *MemoryStore) RecordUsage(_ context.Context, userID string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.usage[userID] = append(m.usage[userID], at)
	return nil
}

func (m *MemoryStore) UsageSince(_ context.Context, userID string, since time.Time) ([]time.Time, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []time.Time
	for _, t := range m.usage[userID] {
		if t.After(since) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out, nil
}

func (m *MemoryStore) ListReference(_ context.Context, kind ReferenceKind, activeOnly bool) ([]domain.ReferenceItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.ReferenceItem
	for _, item := range m.reference[kind] {
		if activeOnly && !item.IsActive {
			continue
		}
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *MemoryStore) IncrementUsage(_ context.Context, kind ReferenceKind, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item, ok := m.reference[kind][name]; ok {
		item.UsageCount++
	}
	return nil
}

func (m *MemoryStore) UpsertReference(_ context.Context, kind ReferenceKind, item domain.ReferenceItem) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items, ok := m.reference[kind]
	if !ok {
		items = make(map[string]*domain.ReferenceItem)
		m.reference[kind] = items
	}
	if _, exists := items[item.Name]; exists {
		return false, nil
	}
	item.IsActive = true
	items[item.Name] = &item
	return true, nil
}

// SetReferenceActive toggles an entry; inactive entries are hidden from public lists.
func (m *MemoryStore) SetReferenceActive(kind ReferenceKind, name string, active bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item, ok := m.reference[kind][name]; ok {
		item.IsActive = active
	}
}

func (m *MemoryStore) CalculationSummaries(_ context.Context) ([]CalculationSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]CalculationSummary, len(m.calculations))
	for i, c := range m.calculations {
		out[i] = CalculationSummary{CTC: c.CTC, InHand: c.InHandSalary, City: c.City, CreatedAt: c.CreatedAt}
	}
	return out, nil
}

func (m *MemoryStore) CheckSummaries(_ context.Context) ([]CheckSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]CheckSummary, len(m.checks))
	for i, c := range m.checks {
		out[i] = CheckSummary{Score: c.Score, CreatedAt: c.CreatedAt}
	}
	return out, nil
}

// newestFirst filters rows, orders them by descending time and truncates to limit (0 = no limit).
func newestFirst[T any](rows []T, limit int, keep func(T) bool, at func(T) time.Time) []T {
	out := make([]T, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		if keep(rows[i]) {
			out = append(out, rows[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return at(out[i]).After(at(out[j])) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
