package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/tui/tuimsg"
)

// Scene represents the different screens in the application
type Scene int

const (
	SceneForm Scene = iota
	SceneResults
)

// String returns the scene name
func (s Scene) String() string {
	switch s {
	case SceneForm:
		return "Calculator"
	case SceneResults:
		return "Results"
	default:
		return "Unknown"
	}
}

// calculateCmd runs the engine off the update loop.
func calculateCmd(engine *calculation.SalaryEngine, input domain.SalaryInput) tea.Cmd {
	return func() tea.Msg {
		b, tax := engine.CalculateWithTax(context.Background(), input)
		return tuimsg.CalculationCompleteMsg{Input: input, Breakdown: b, Tax: tax}
	}
}
