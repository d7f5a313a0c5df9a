package breakeven

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/domain"
)

var two = decimal.NewFromInt(2)

// Solver bisects on CTC. In-hand pay never falls as CTC rises, since no
// deduction has a marginal rate of 100% or more.
type Solver struct {
	Engine  *calculation.SalaryEngine
	Options SolverOptions
}

// NewSolver creates a solver.
func NewSolver(engine *calculation.SalaryEngine, options SolverOptions) *Solver {
	return &Solver{Engine: engine, Options: options}
}

// NewDefaultSolver creates a solver with default options.
func NewDefaultSolver(engine *calculation.SalaryEngine) *Solver {
	return NewSolver(engine, DefaultSolverOptions())
}

// RequiredCTC finds the smallest CTC, to Options.Tolerance, whose in-hand
// salary is at least req.TargetInHand.
func (s *Solver) RequiredCTC(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	opts := s.Options
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultSolverOptions().MaxIterations
	}
	if !opts.Tolerance.IsPositive() {
		opts.Tolerance = DefaultSolverOptions().Tolerance
	}

	eval := func(ctc decimal.Decimal) domain.SalaryBreakdown {
		in := req.Template
		in.CTC = ctc
		return s.Engine.Calculate(ctx, in)
	}

	lo := req.Template.NonMonthlyComponents()
	hi := lo.Add(req.TargetInHand.Mul(decimal.NewFromInt(12))).Ceil()
	iterations := 0
	for eval(hi).InHandSalary.LessThan(req.TargetInHand) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iterations++
		if hi.GreaterThanOrEqual(MaxCTC) || iterations >= opts.MaxIterations {
			return nil, &BreakEvenError{Operation: "bracket", Message: "target in-hand is not reachable"}
		}
		lo = hi
		hi = decimal.Min(hi.Mul(two), MaxCTC)
	}

	for hi.Sub(lo).GreaterThan(opts.Tolerance) && iterations < opts.MaxIterations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iterations++
		mid := lo.Add(hi).Div(two).Floor()
		if eval(mid).InHandSalary.GreaterThanOrEqual(req.TargetInHand) {
			hi = mid
		} else {
			lo = mid
		}
	}

	b := eval(hi)
	return &Result{
		Request:     req,
		RequiredCTC: hi,
		Breakdown:   b,
		Iterations:  iterations,
		Converged:   hi.Sub(lo).LessThanOrEqual(opts.Tolerance),
		Surplus:     b.InHandSalary.Sub(req.TargetInHand),
	}, nil
}

// MatchOffer returns the CTC candidate needs to pay the same monthly in-hand
// as current. candidate's own CTC is ignored.
func (s *Solver) MatchOffer(ctx context.Context, current, candidate domain.SalaryInput) (*Result, error) {
	target := s.Engine.Calculate(ctx, current).InHandSalary
	res, err := s.RequiredCTC(ctx, Request{Template: candidate, TargetInHand: target})
	if err != nil {
		return nil, err
	}
	ref := current.CTC
	res.ReferenceCTC = &ref
	return res, nil
}
