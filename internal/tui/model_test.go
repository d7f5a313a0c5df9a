package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/ctcgo/internal/tui/scenes"
	"github.com/rgehrsitz/ctcgo/internal/tui/tuimsg"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m tea.Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestModel_FormToResults(t *testing.T) {
	m := NewModel(nil)
	assert.Equal(t, SceneForm, m.Scene())

	m, _ = send(t, m, runes("1200000"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, scenes.FieldCity, m.Form().Focused())
	m, _ = send(t, m, runes("Delhi"))

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	req, ok := cmd().(tuimsg.CalculateRequestedMsg)
	require.True(t, ok)
	assert.Equal(t, "Delhi", req.Input.City)

	m, cmd = send(t, m, req)
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Calculating")

	m, _ = send(t, m, cmd())
	assert.Equal(t, SceneResults, m.Scene())
	assert.Equal(t, "91683.33", m.Results().Breakdown().InHandSalary.StringFixed(2))
	assert.Contains(t, m.View(), "₹91,683.33")
	assert.Contains(t, m.View(), "10.00%", "marginal tax rate")
	assert.Contains(t, m.View(), "3.57%", "effective tax rate")

	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())
	assert.Equal(t, SceneForm, m.Scene())
	assert.Equal(t, "1200000", m.Form().Value(scenes.FieldCTC))
}

func TestModel_InvalidInputStaysOnForm(t *testing.T) {
	m := NewModel(nil)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, SceneForm, m.Scene())
	assert.NotEmpty(t, m.Form().Err())
}

func TestModel_QuitKeys(t *testing.T) {
	m := NewModel(nil)

	_, cmd := send(t, m, runes("q"))
	if cmd != nil {
		_, quit := cmd().(tea.QuitMsg)
		assert.False(t, quit, "q must type into the form")
	}

	_, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	m.currentScene = SceneResults
	_, cmd = send(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
