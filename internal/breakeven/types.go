// Package breakeven solves for the CTC that produces a target in-hand salary.
package breakeven

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ctcgo/internal/domain"
)

// MaxCTC is the largest CTC the solver will try.
var MaxCTC = decimal.NewFromInt(999999999)

// SolverOptions bound the search.
type SolverOptions struct {
	MaxIterations int
	Tolerance     decimal.Decimal // rupees of annual CTC
}

// DefaultSolverOptions searches to the rupee.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		MaxIterations: 100,
		Tolerance:     decimal.NewFromInt(1),
	}
}

// Request describes one solve. Template supplies everything but the CTC;
// its variable pay, insurance and relocation allowance stay fixed.
type Request struct {
	Template     domain.SalaryInput `json:"template"`
	TargetInHand decimal.Decimal    `json:"targetInHand"`
}

// Validate checks the target and the template's non-CTC fields.
func (r Request) Validate() error {
	if !r.TargetInHand.IsPositive() {
		return &BreakEvenError{Operation: "validate", Message: "target in-hand must be positive"}
	}
	if r.Template.City == "" {
		return &BreakEvenError{Operation: "validate", Message: "city is required"}
	}
	if r.Template.NonMonthlyComponents().IsNegative() {
		return &BreakEvenError{Operation: "validate", Message: "non-monthly components cannot be negative"}
	}
	return nil
}

// Result is the smallest CTC whose in-hand salary reaches the target.
type Result struct {
	Request      Request                `json:"request"`
	RequiredCTC  decimal.Decimal        `json:"requiredCtc"`
	Breakdown    domain.SalaryBreakdown `json:"breakdown"`
	Iterations   int                    `json:"iterations"`
	Converged    bool                   `json:"converged"`
	Surplus      decimal.Decimal        `json:"surplus"` // monthly in-hand above target
	ReferenceCTC *decimal.Decimal       `json:"referenceCtc,omitempty"`
}

// HikeOverReference is the percentage RequiredCTC exceeds ReferenceCTC by.
func (r *Result) HikeOverReference() (decimal.Decimal, bool) {
	if r.ReferenceCTC == nil || !r.ReferenceCTC.IsPositive() {
		return decimal.Zero, false
	}
	return r.RequiredCTC.Sub(*r.ReferenceCTC).Div(*r.ReferenceCTC).Mul(decimal.NewFromInt(100)).Round(2), true
}

// BreakEvenError describes a failed solve.
type BreakEvenError struct {
	Operation string
	Message   string
}

func (e *BreakEvenError) Error() string {
	return fmt.Sprintf("break-even %s: %s", e.Operation, e.Message)
}
