package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormStore persists to PostgreSQL through gorm.
type GormStore struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

// Connect opens dsn and, when autoMigrate is set, creates or updates the tables.
func Connect(dsn string, autoMigrate bool, log *zap.Logger) (*GormStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("database connection established", zap.String("op", "store.Connect"))

	s := NewGormStore(db, log)
	if autoMigrate {
		if err := s.Migrate(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// NewGormStore wraps an existing connection.
func NewGormStore(db *gorm.DB, log *zap.Logger) *GormStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &GormStore{DB: db, Logger: log}
}

// Migrate runs AutoMigrate over every model.
func (s *GormStore) Migrate() error {
	s.Logger.Info("running migrations", zap.String("op", "store.Migrate"))
	if err := s.DB.AutoMigrate(allModels()...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *GormStore) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *GormStore) LookupCityTax(ctx context.Context, city string) (domain.CityTaxProfile, bool, error) {
	var row CityTaxData
	err := s.DB.WithContext(ctx).Where("city = ?", city).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CityTaxProfile{}, false, nil
	}
	if err != nil {
		return domain.CityTaxProfile{}, false, err
	}
	return row.toDomain(), true, nil
}

func (s *GormStore) ListCityTax(ctx context.Context) ([]domain.CityTaxProfile, error) {
	var rows []CityTaxData
	if err := s.DB.WithContext(ctx).Order("city ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.CityTaxProfile, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out, nil
}

func (s *GormStore) GetCityTax(ctx context.Context, city string) (domain.CityTaxProfile, error) {
	p, found, err := s.LookupCityTax(ctx, city)
	if err != nil {
		return domain.CityTaxProfile{}, err
	}
	if !found {
		return domain.CityTaxProfile{}, fmt.Errorf("city tax %q: %w", city, ErrNotFound)
	}
	return p, nil
}

func (s *GormStore) CreateCityTax(ctx context.Context, profile domain.CityTaxProfile) (domain.CityTaxProfile, error) {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&CityTaxData{}).Where("city = ?", profile.City).Count(&count).Error; err != nil {
		return domain.CityTaxProfile{}, err
	}
	if count > 0 {
		return domain.CityTaxProfile{}, fmt.Errorf("city tax %q: %w", profile.City, ErrAlreadyExists)
	}
	row := cityTaxFromDomain(profile)
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.CityTaxProfile{}, err
	}
	return row.toDomain(), nil
}

func (s *GormStore) UpdateCityTax(ctx context.Context, city string, profile domain.CityTaxProfile) (domain.CityTaxProfile, error) {
	var row CityTaxData
	err := s.DB.WithContext(ctx).Where("city = ?", city).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CityTaxProfile{}, fmt.Errorf("city tax %q: %w", city, ErrNotFound)
	}
	if err != nil {
		return domain.CityTaxProfile{}, err
	}

	updated := cityTaxFromDomain(profile)
	updated.Model = row.Model
	updated.City = city
	if err := s.DB.WithContext(ctx).Save(&updated).Error; err != nil {
		return domain.CityTaxProfile{}, err
	}
	return updated.toDomain(), nil
}

func (s *GormStore) DeleteCityTax(ctx context.Context, city string) error {
	res := s.DB.WithContext(ctx).Where("city = ?", city).Delete(&CityTaxData{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("city tax %q: %w", city, ErrNotFound)
	}
	return nil
}

func (s *GormStore) SaveCalculation(ctx context.Context, calc *domain.SalaryCalculation) error {
	row := salaryRowFromDomain(calc)
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	calc.ID = row.ID
	calc.CreatedAt = row.CreatedAt
	return nil
}

func (s *GormStore) ListCalculations(ctx context.Context, userID string, limit int) ([]domain.SalaryCalculation, error) {
	return s.listCalculations(s.DB.WithContext(ctx).Where("user_id = ?", userID), limit)
}

func (s *GormStore) ListAllCalculations(ctx context.Context, limit int) ([]domain.SalaryCalculation, error) {
	return s.listCalculations(s.DB.WithContext(ctx), limit)
}

func (s *GormStore) listCalculations(q *gorm.DB, limit int) ([]domain.SalaryCalculation, error) {
	var rows []SalaryCalculationRow
	if err := q.Order("created_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.SalaryCalculation, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out, nil
}

func (s *GormStore) SaveCheck(ctx context.Context, check *domain.AtsCheck) error {
	row := atsRowFromDomain(check)
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	check.ID = row.ID
	check.CreatedAt = row.CreatedAt
	return nil
}

func (s *GormStore) ListChecks(ctx context.Context, userID string, limit int) ([]domain.AtsCheck, error) {
	var rows []AtsCheckRow
	err := s.DB.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.AtsCheck, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out, nil
}

func (s *GormStore) GetCheck(ctx context.Context, id, userID string) (domain.AtsCheck, error) {
	// id is a uuid column; anything unparsable cannot name a row.
	if _, err := uuid.Parse(id); err != nil {
		return domain.AtsCheck{}, fmt.Errorf("ats check %s: %w", id, ErrNotFound)
	}
	var row AtsCheckRow
	err := s.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AtsCheck{}, fmt.Errorf("ats check %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return domain.AtsCheck{}, err
	}
	return row.toDomain(), nil
}

func (s *GormStore) RecordUsage(ctx context.Context, userID string, at time.Time) error {
	return s.DB.WithContext(ctx).Create(&AtsUsage{Model: Model{CreatedAt: at}, UserID: userID}).Error
}

func (s *GormStore) UsageSince(ctx context.Context, userID string, since time.Time) ([]time.Time, error) {
	var rows []AtsUsage
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND created_at > ?", userID, since).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]time.Time, len(rows))
	for i, r := range rows {
		out[i] = r.CreatedAt
	}
	return out, nil
}

func (s *GormStore) ListReference(ctx context.Context, kind ReferenceKind, activeOnly bool) ([]domain.ReferenceItem, error) {
	q := s.DB.WithContext(ctx).Where("kind = ?", string(kind))
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var rows []ReferenceRow
	if err := q.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.ReferenceItem, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out, nil
}

func (s *GormStore) IncrementUsage(ctx context.Context, kind ReferenceKind, name string) error {
	return s.DB.WithContext(ctx).Model(&ReferenceRow{}).
		Where("kind = ? AND name = ?", string(kind), name).
		UpdateColumn("usage_count", gorm.Expr("usage_count + ?", 1)).Error
}

func (s *GormStore) UpsertReference(ctx context.Context, kind ReferenceKind, item domain.ReferenceItem) (bool, error) {
	row := ReferenceRow{Name: item.Name, Kind: string(kind), Category: item.Category, IsActive: true}
	res := s.DB.WithContext(ctx).
		Where(ReferenceRow{Name: item.Name, Kind: string(kind)}).
		Attrs(row).
		FirstOrCreate(&row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *GormStore) CalculationSummaries(ctx context.Context) ([]CalculationSummary, error) {
	var rows []SalaryCalculationRow
	err := s.DB.WithContext(ctx).Select("ctc", "in_hand_salary", "city", "created_at").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]CalculationSummary, len(rows))
	for i, r := range rows {
		out[i] = CalculationSummary{CTC: r.CTC, InHand: r.InHandSalary, City: r.City, CreatedAt: r.CreatedAt}
	}
	return out, nil
}

func (s *GormStore) CheckSummaries(ctx context.Context) ([]CheckSummary, error) {
	var rows []AtsCheckRow
	if err := s.DB.WithContext(ctx).Select("score", "created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]CheckSummary, len(rows))
	for i, r := range rows {
		out[i] = CheckSummary{Score: r.Score, CreatedAt: r.CreatedAt}
	}
	return out, nil
}
