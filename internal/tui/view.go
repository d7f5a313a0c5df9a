package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/ctcgo/internal/tui/tuistyles"
)

// View renders the current state of the application
func (m Model) View() string {
	var content string
	switch {
	case m.loading:
		content = "Calculating..."
	case m.err != nil:
		content = tuistyles.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	case m.currentScene == SceneResults:
		content = m.resultsModel.View()
	default:
		content = m.formModel.View()
	}

	return tuistyles.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, content, "", m.renderStatusBar()))
}

func (m Model) renderStatusBar() string {
	var keys [][2]string
	switch m.currentScene {
	case SceneResults:
		keys = [][2]string{{"esc", "edit"}, {"q", "quit"}}
	default:
		keys = [][2]string{{"tab", "next"}, {"shift+tab", "prev"}, {"enter", "calculate"}, {"ctrl+c", "quit"}}
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, tuistyles.StatusKeyStyle.Render(k[0])+" "+k[1])
	}
	return tuistyles.StatusBarStyle.Render(m.currentScene.String() + "  " + strings.Join(parts, "  "))
}
