package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"github.com/rgehrsitz/ctcgo/internal/calculation"
	"github.com/rgehrsitz/ctcgo/internal/config"
	"github.com/rgehrsitz/ctcgo/internal/tui"
)

func main() {
	rulesFile := flag.String("rules", "", "statutory rules YAML (default: built-in rules)")
	flag.Parse()

	rules, err := config.NewRulesParser().LoadOrDefault(*rulesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	model := tui.NewModel(calculation.NewSalaryEngineWithRules(*rules, nil))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
