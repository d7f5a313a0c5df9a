package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/validation"
	"golang.org/x/sync/errgroup"
)

// CompareEngine evaluates every offer of a set and compares it to the base.
type CompareEngine struct {
	CalcEngine        *calculation.SalaryEngine
	MetricsCalculator *MetricsCalculator
	// Concurrency bounds the offers evaluated at once; zero means no limit.
	Concurrency int
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.SalaryEngine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
		Concurrency:       4,
	}
}

// Compare evaluates set concurrently. Offers are sanitized and validated
// first; the first invalid offer fails the whole comparison.
func (ce *CompareEngine) Compare(ctx context.Context, set *domain.OfferSet) (*ComparisonSet, error) {
	base, ok := set.BaseOffer()
	if !ok {
		if set.Base != "" {
			return nil, fmt.Errorf("base offer %s not found", set.Base)
		}
		return nil, fmt.Errorf("no offers to compare")
	}

	offers := make([]domain.Offer, len(set.Offers))
	for i, o := range set.Offers {
		prepared, err := validation.PrepareSalaryInput(o.Input)
		if err != nil {
			return nil, fmt.Errorf("offer %s: %w", o.Name, err)
		}
		o.Input = prepared
		offers[i] = o
	}

	results := make([]ComparisonResult, len(offers))
	g, gctx := errgroup.WithContext(ctx)
	if ce.Concurrency > 0 {
		g.SetLimit(ce.Concurrency)
	}
	for i := range offers {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b := ce.CalcEngine.Calculate(gctx, offers[i].Input)
			results[i] = ce.MetricsCalculator.CalculateMetrics(offers[i], b)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to evaluate offers: %w", err)
	}

	compSet := &ComparisonSet{BaseOfferName: base.Name, AlternativeResults: []ComparisonResult{}}
	for i := range results {
		if offers[i].Name == base.Name {
			r := results[i]
			compSet.BaseResult = &r
			break
		}
	}
	for i := range results {
		if offers[i].Name == base.Name {
			continue
		}
		compSet.AlternativeResults = append(compSet.AlternativeResults,
			ce.MetricsCalculator.CalculateComparison(results[i], *compSet.BaseResult))
	}

	compSet.Recommendations = GenerateRecommendations(compSet)
	return compSet, nil
}
