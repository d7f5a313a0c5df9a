package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Model carries the uuid key and timestamps shared by every table.
type Model struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (b *Model) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// CityTaxData is a row of city_tax_data.
type CityTaxData struct {
	Model
	City                 string                       `gorm:"uniqueIndex;not null"`
	State                string                       `gorm:"type:varchar(50)"`
	ProfessionalTax      decimal.Decimal              `gorm:"type:decimal(10,2);default:200"`
	HRAExemptionPercent  decimal.Decimal              `gorm:"type:decimal(5,2);default:50"`
	AdditionalDeductions []domain.AdditionalDeduction `gorm:"type:jsonb;serializer:json"`
	DefaultTaxRegime     string                       `gorm:"type:varchar(10);default:new"`
}

func (CityTaxData) TableName() string { return "city_tax_data" }

func (c CityTaxData) toDomain() domain.CityTaxProfile {
	return domain.CityTaxProfile{
		City:                 c.City,
		State:                c.State,
		ProfessionalTax:      c.ProfessionalTax,
		HRAExemptionPercent:  c.HRAExemptionPercent,
		DefaultTaxRegime:     c.DefaultTaxRegime,
		AdditionalDeductions: c.AdditionalDeductions,
	}
}

func cityTaxFromDomain(p domain.CityTaxProfile) CityTaxData {
	return CityTaxData{
		City:                 p.City,
		State:                p.State,
		ProfessionalTax:      p.ProfessionalTax,
		HRAExemptionPercent:  p.HRAExemptionPercent,
		AdditionalDeductions: p.AdditionalDeductions,
		DefaultTaxRegime:     p.DefaultTaxRegime,
	}
}

// SalaryCalculationRow is a row of salary_calculations.
type SalaryCalculationRow struct {
	Model
	UserID              string          `gorm:"index"`
	CTC                 decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	City                string          `gorm:"not null"`
	Company             string
	Designation         string
	GithubProfile       string
	LinkedinProfile     string
	OfferInHand         decimal.Decimal `gorm:"type:decimal(12,2)"`
	VariablePay         decimal.Decimal `gorm:"type:decimal(12,2);default:0"`
	Insurance           decimal.Decimal `gorm:"type:decimal(12,2);default:0"`
	IsRelocation        bool            `gorm:"default:false"`
	RelocationAllowance decimal.Decimal `gorm:"type:decimal(12,2);default:0"`
	FixedCTC            decimal.Decimal `gorm:"type:decimal(12,2)"`
	BasicSalary         decimal.Decimal `gorm:"type:decimal(12,2)"`
	HRA                 decimal.Decimal `gorm:"type:decimal(12,2)"`
	SpecialAllowance    decimal.Decimal `gorm:"type:decimal(12,2)"`
	PF                  decimal.Decimal `gorm:"type:decimal(12,2)"`
	ESI                 decimal.Decimal `gorm:"type:decimal(12,2)"`
	ProfessionalTax     decimal.Decimal `gorm:"type:decimal(12,2)"`
	IncomeTax           decimal.Decimal `gorm:"type:decimal(12,2)"`
	Gratuity            decimal.Decimal `gorm:"type:decimal(12,2)"`
	InHandSalary        decimal.Decimal `gorm:"type:decimal(12,2)"`
	MonthlyDeductions   decimal.Decimal `gorm:"type:decimal(12,2)"`
	AnnualDeductions    decimal.Decimal `gorm:"type:decimal(12,2)"`
}

func (SalaryCalculationRow) TableName() string { return "salary_calculations" }

func salaryRowFromDomain(c *domain.SalaryCalculation) SalaryCalculationRow {
	b := c.SalaryBreakdown
	return SalaryCalculationRow{
		Model:               Model{ID: c.ID, CreatedAt: c.CreatedAt},
		UserID:              c.UserID,
		CTC:                 b.CTC,
		City:                c.City,
		Company:             b.Company,
		Designation:         c.Designation,
		GithubProfile:       c.GithubProfile,
		LinkedinProfile:     c.LinkedinProfile,
		OfferInHand:         c.OfferInHand,
		VariablePay:         b.VariablePay,
		Insurance:           b.Insurance,
		IsRelocation:        b.IsRelocation,
		RelocationAllowance: b.RelocationAllowance,
		FixedCTC:            b.FixedCTC,
		BasicSalary:         b.BasicSalary,
		HRA:                 b.HRA,
		SpecialAllowance:    b.SpecialAllowance,
		PF:                  b.PF,
		ESI:                 b.ESI,
		ProfessionalTax:     b.ProfessionalTax,
		IncomeTax:           b.IncomeTax,
		Gratuity:            b.Gratuity,
		InHandSalary:        b.InHandSalary,
		MonthlyDeductions:   b.MonthlyDeductions,
		AnnualDeductions:    b.AnnualDeductions,
	}
}

func (r SalaryCalculationRow) toDomain() domain.SalaryCalculation {
	return domain.SalaryCalculation{
		ID:              r.ID,
		UserID:          r.UserID,
		City:            r.City,
		Designation:     r.Designation,
		GithubProfile:   r.GithubProfile,
		LinkedinProfile: r.LinkedinProfile,
		OfferInHand:     r.OfferInHand,
		CreatedAt:       r.CreatedAt,
		SalaryBreakdown: domain.SalaryBreakdown{
			CTC:                 r.CTC,
			FixedCTC:            r.FixedCTC,
			VariablePay:         r.VariablePay,
			Insurance:           r.Insurance,
			RelocationAllowance: r.RelocationAllowance,
			BasicSalary:         r.BasicSalary,
			HRA:                 r.HRA,
			SpecialAllowance:    r.SpecialAllowance,
			PF:                  r.PF,
			ESI:                 r.ESI,
			ProfessionalTax:     r.ProfessionalTax,
			IncomeTax:           r.IncomeTax,
			Gratuity:            r.Gratuity,
			InHandSalary:        r.InHandSalary,
			MonthlyDeductions:   r.MonthlyDeductions,
			AnnualDeductions:    r.AnnualDeductions,
			Company:             r.Company,
			IsRelocation:        r.IsRelocation,
		},
	}
}

// AtsCheckRow is a row of ats_checks.
type AtsCheckRow struct {
	Model
	UserID             string `gorm:"index;not null"`
	ResumeText         string `gorm:"type:text"`
	Score              int    `gorm:"not null"`
	KeywordMatches     int
	TotalKeywords      int
	WordCount          int
	FileSize           int64
	Suggestions        []string                            `gorm:"type:jsonb;serializer:json"`
	Strengths          []string                            `gorm:"type:jsonb;serializer:json"`
	Weaknesses         []string                            `gorm:"type:jsonb;serializer:json"`
	CompanyComparisons map[string]domain.CompanyComparison `gorm:"type:jsonb;serializer:json"`
	DetailedAnalysis   domain.DetailedAnalysis             `gorm:"type:jsonb;serializer:json"`
}

func (AtsCheckRow) TableName() string { return "ats_checks" }

func atsRowFromDomain(c *domain.AtsCheck) AtsCheckRow {
	return AtsCheckRow{
		Model:              Model{ID: c.ID, CreatedAt: c.CreatedAt},
		UserID:             c.UserID,
		ResumeText:         c.ResumeText,
		Score:              c.Score,
		KeywordMatches:     c.KeywordMatches,
		TotalKeywords:      c.TotalKeywords,
		WordCount:          c.WordCount,
		FileSize:           c.FileSize,
		Suggestions:        c.Suggestions,
		Strengths:          c.Strengths,
		Weaknesses:         c.Weaknesses,
		CompanyComparisons: c.CompanyComparisons,
		DetailedAnalysis:   c.DetailedAnalysis,
	}
}

func (r AtsCheckRow) toDomain() domain.AtsCheck {
	return domain.AtsCheck{
		ID:         r.ID,
		UserID:     r.UserID,
		ResumeText: r.ResumeText,
		CreatedAt:  r.CreatedAt,
		AtsResult: domain.AtsResult{
			Score:              r.Score,
			Suggestions:        r.Suggestions,
			Strengths:          r.Strengths,
			Weaknesses:         r.Weaknesses,
			KeywordMatches:     r.KeywordMatches,
			TotalKeywords:      r.TotalKeywords,
			FileSize:           r.FileSize,
			WordCount:          r.WordCount,
			CompanyComparisons: r.CompanyComparisons,
			DetailedAnalysis:   r.DetailedAnalysis,
		},
	}
}

// AtsUsage is one consumed ATS check.
type AtsUsage struct {
	Model
	UserID string `gorm:"index;not null"`
}

func (AtsUsage) TableName() string { return "ats_usage" }

// ReferenceRow is a row of cities, companies or designations.
type ReferenceRow struct {
	Model
	Name       string `gorm:"not null;uniqueIndex:idx_reference_kind_name"`
	Kind       string `gorm:"type:varchar(20);not null;uniqueIndex:idx_reference_kind_name"`
	Category   string
	IsActive   bool  `gorm:"default:true"`
	UsageCount int64 `gorm:"default:0"`
}

func (ReferenceRow) TableName() string { return "reference_data" }

func (r ReferenceRow) toDomain() domain.ReferenceItem {
	return domain.ReferenceItem{Name: r.Name, Category: r.Category, IsActive: r.IsActive, UsageCount: r.UsageCount}
}

// allModels is the AutoMigrate set.
func allModels() []interface{} {
	return []interface{}{&CityTaxData{}, &SalaryCalculationRow{}, &AtsCheckRow{}, &AtsUsage{}, &ReferenceRow{}}
}
