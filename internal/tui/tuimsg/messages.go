// Package tuimsg defines the messages passed between TUI scenes and the root model.
package tuimsg

import "github.com/rgehrsitz/ctcgo/internal/domain"

// CalculateRequestedMsg is sent by the form once its input validates.
type CalculateRequestedMsg struct {
	Input domain.SalaryInput
}

// CalculationCompleteMsg carries the engine result back to the root model.
type CalculationCompleteMsg struct {
	Input     domain.SalaryInput
	Breakdown domain.SalaryBreakdown
	Tax       domain.TaxSummary
	Err       error
}

// BackMsg returns to the form.
type BackMsg struct{}
