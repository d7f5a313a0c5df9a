// Package scenes contains the screens of the interactive salary calculator.
package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/tui/tuimsg"
	"github.com/rgehrsitz/ctcgo/internal/tui/tuistyles"
	"github.com/rgehrsitz/ctcgo/internal/validation"
)

const (
	FieldCTC = iota
	FieldCity
	FieldVariablePay
	FieldInsurance
	FieldRelocation
	FieldCompany
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Annual CTC (₹)",
	"City",
	"Variable pay (₹)",
	"Insurance (₹)",
	"Relocation bonus (₹)",
	"Company",
}

var fieldPlaceholders = [fieldCount]string{
	"1200000",
	"Bangalore",
	"0",
	"0",
	"0",
	"optional",
}

// FormModel collects a SalaryInput.
type FormModel struct {
	inputs []textinput.Model
	focus  int
	err    string
	width  int
}

// NewFormModel creates the form with the CTC field focused.
func NewFormModel() FormModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = fieldPlaceholders[i]
		ti.Prompt = ""
		ti.CharLimit = 16
		if i == FieldCity || i == FieldCompany {
			ti.CharLimit = 100
		}
		inputs[i] = ti
	}
	inputs[FieldCTC].Focus()
	return FormModel{inputs: inputs}
}

// Focused returns the index of the focused field.
func (m FormModel) Focused() int { return m.focus }

// Err returns the last validation message, if any.
func (m FormModel) Err() string { return m.err }

// Value returns the raw text of a field.
func (m FormModel) Value(field int) string { return m.inputs[field].Value() }

// SetValue replaces the text of a field.
func (m *FormModel) SetValue(field int, v string) { m.inputs[field].SetValue(v) }

// SetSize records the terminal width.
func (m *FormModel) SetSize(width, _ int) { m.width = width }

func (m *FormModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (i + fieldCount) % fieldCount
	return m.inputs[m.focus].Focus()
}

// Update handles focus movement and submission; other keys go to the focused input.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("tab", "down"))):
			cmd := m.setFocus(m.focus + 1)
			return m, cmd
		case key.Matches(msg, key.NewBinding(key.WithKeys("shift+tab", "up"))):
			cmd := m.setFocus(m.focus - 1)
			return m, cmd
		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			input, err := m.Input()
			if err != nil {
				m.err = err.Error()
				return m, nil
			}
			m.err = ""
			return m, func() tea.Msg { return tuimsg.CalculateRequestedMsg{Input: input} }
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// Input parses, sanitizes and validates the form fields.
func (m FormModel) Input() (domain.SalaryInput, error) {
	var amounts [fieldCount]decimal.Decimal
	for _, f := range []int{FieldCTC, FieldVariablePay, FieldInsurance, FieldRelocation} {
		v, err := parseAmount(m.inputs[f].Value())
		if err != nil {
			return domain.SalaryInput{}, fmt.Errorf("%s: %w", fieldLabels[f], err)
		}
		amounts[f] = v
	}

	in := domain.SalaryInput{
		CTC:                 amounts[FieldCTC],
		City:                m.inputs[FieldCity].Value(),
		Company:             m.inputs[FieldCompany].Value(),
		VariablePay:         amounts[FieldVariablePay],
		Insurance:           amounts[FieldInsurance],
		RelocationAllowance: amounts[FieldRelocation],
		IsRelocation:        amounts[FieldRelocation].IsPositive(),
	}
	in, err := validation.PrepareSalaryInput(in)
	if err != nil {
		return domain.SalaryInput{}, err
	}
	return in, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is not a number", s)
	}
	return d, nil
}

// View renders the form.
func (m FormModel) View() string {
	var b strings.Builder
	b.WriteString(tuistyles.TitleStyle.Render("CTC to In-Hand Calculator"))
	b.WriteString("\n")
	b.WriteString(tuistyles.SubtitleStyle.Render("New tax regime, FY rules built in"))
	b.WriteString("\n\n")

	for i, in := range m.inputs {
		label := tuistyles.LabelStyle.Render(fieldLabels[i])
		if i == m.focus {
			label = tuistyles.FocusedLabelStyle.Render(fieldLabels[i])
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, in.View()))
		b.WriteString("\n")
	}

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(tuistyles.ErrorStyle.Render(m.err))
		b.WriteString("\n")
	}
	return b.String()
}
