// Package tui is the interactive terminal front end for the salary engine.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/tui/scenes"
)

// Model represents the entire application state
type Model struct {
	currentScene Scene

	width  int
	height int

	engine *calculation.SalaryEngine

	formModel    scenes.FormModel
	resultsModel scenes.ResultsModel

	loading bool
	err     error
}

// NewModel creates the application model. A nil engine uses the built-in
// rules and the static professional tax table.
func NewModel(engine *calculation.SalaryEngine) Model {
	if engine == nil {
		engine = calculation.NewSalaryEngine(nil)
	}
	return Model{
		currentScene: SceneForm,
		engine:       engine,
		formModel:    scenes.NewFormModel(),
		resultsModel: scenes.NewResultsModel(),
		width:        80,
		height:       24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Scene returns the active scene.
func (m Model) Scene() Scene { return m.currentScene }

// Form exposes the form scene.
func (m Model) Form() scenes.FormModel { return m.formModel }

// Results exposes the results scene.
func (m Model) Results() scenes.ResultsModel { return m.resultsModel }
