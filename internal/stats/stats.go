// Package stats aggregates stored calculations and ATS checks for the admin
// overview.
package stats

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/store"
	"github.com/shopspring/decimal"
)

const topCityCount = 10

type ctcRange struct {
	label string
	min   int64
	max   int64 // 0 means unbounded
}

var ctcRanges = []ctcRange{
	{"0-5 Lakhs", 0, 500000},
	{"5-10 Lakhs", 500000, 1000000},
	{"10-15 Lakhs", 1000000, 1500000},
	{"15-20 Lakhs", 1500000, 2000000},
	{"20-30 Lakhs", 2000000, 3000000},
	{"30-50 Lakhs", 3000000, 5000000},
	{"50+ Lakhs", 5000000, 0},
}

// Service computes Statistics from a store.
type Service struct {
	Source store.StatsSource
	Now    func() time.Time
}

// NewService returns a Service over src.
func NewService(src store.StatsSource) *Service {
	return &Service{Source: src, Now: time.Now}
}

// Compute builds the statistics as of Now. Weeks start on Sunday.
func (s *Service) Compute(ctx context.Context) (domain.Statistics, error) {
	calcs, err := s.Source.CalculationSummaries(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}
	checks, err := s.Source.CheckSummaries(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}

	now := s.Now()
	month, week := periodStarts(now)
	return domain.Statistics{
		Salary: salaryStatistics(calcs, month, week),
		Ats:    atsStatistics(checks, month, week),
	}, nil
}

func periodStarts(now time.Time) (month, week time.Time) {
	y, m, d := now.Date()
	month = time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	week = time.Date(y, m, d-int(now.Weekday()), 0, 0, 0, 0, now.Location())
	return month, week
}

func salaryStatistics(calcs []store.CalculationSummary, month, week time.Time) domain.SalaryStatistics {
	out := domain.SalaryStatistics{
		Total:         int64(len(calcs)),
		AverageCTC:    decimal.Zero,
		MinCTC:        decimal.Zero,
		MaxCTC:        decimal.Zero,
		AverageInHand: decimal.Zero,
	}

	var ctcs []decimal.Decimal
	inHandSum, inHandN := decimal.Zero, 0
	cities := map[string]int64{}
	for _, c := range calcs {
		if !c.CreatedAt.Before(month) {
			out.ThisMonth++
		}
		if !c.CreatedAt.Before(week) {
			out.ThisWeek++
		}
		if c.CTC.IsPositive() {
			ctcs = append(ctcs, c.CTC)
		}
		if c.InHand.IsPositive() {
			inHandSum = inHandSum.Add(c.InHand)
			inHandN++
		}
		city := c.City
		if city == "" {
			city = "Unknown"
		}
		cities[city]++
	}

	if len(ctcs) > 0 {
		out.AverageCTC = decimal.Avg(ctcs[0], ctcs[1:]...).Round(2)
		out.MinCTC = decimal.Min(ctcs[0], ctcs[1:]...)
		out.MaxCTC = decimal.Max(ctcs[0], ctcs[1:]...)
	}
	if inHandN > 0 {
		out.AverageInHand = inHandSum.Div(decimal.NewFromInt(int64(inHandN))).Round(2)
	}

	out.CTCRanges = make([]domain.RangeCount, len(ctcRanges))
	for i, r := range ctcRanges {
		out.CTCRanges[i].Range = r.label
		lo := decimal.NewFromInt(r.min)
		hi := decimal.NewFromInt(r.max)
		for _, v := range ctcs {
			if v.GreaterThanOrEqual(lo) && (r.max == 0 || v.LessThan(hi)) {
				out.CTCRanges[i].Count++
			}
		}
	}

	out.TopCities = make([]domain.CityCount, 0, len(cities))
	for city, n := range cities {
		out.TopCities = append(out.TopCities, domain.CityCount{City: city, Count: n})
	}
	sort.Slice(out.TopCities, func(i, j int) bool {
		a, b := out.TopCities[i], out.TopCities[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.City < b.City
	})
	if len(out.TopCities) > topCityCount {
		out.TopCities = out.TopCities[:topCityCount]
	}
	return out
}

func atsStatistics(checks []store.CheckSummary, month, week time.Time) domain.AtsStatistics {
	out := domain.AtsStatistics{Total: int64(len(checks))}
	sum, n := 0, 0
	for _, c := range checks {
		if !c.CreatedAt.Before(month) {
			out.ThisMonth++
		}
		if !c.CreatedAt.Before(week) {
			out.ThisWeek++
		}
		if c.Score > 0 {
			sum += c.Score
			n++
		}
	}
	if n > 0 {
		out.AverageScore = math.Round(float64(sum)/float64(n)*100) / 100
	}
	return out
}
