// Package components holds reusable TUI widgets.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ctcgo/internal/tui/tuistyles"
)

const defaultCardWidth = 30

// MetricCard is a bordered box with a label, a rupee value and an optional
// signed delta underneath.
type MetricCard struct {
	Label string
	Value string
	Note  string
	Width int

	delta    *decimal.Decimal
	deltaFor string
}

// AmountCard formats amount in rupees.
func AmountCard(label string, amount decimal.Decimal) *MetricCard {
	return &MetricCard{Label: label, Value: tuistyles.FormatCurrency(amount), Width: defaultCardWidth}
}

// TextCard shows a preformatted value.
func TextCard(label, value string) *MetricCard {
	return &MetricCard{Label: label, Value: value, Width: defaultCardWidth}
}

// Versus adds the difference from a reference figure, e.g. "vs quote".
func (c *MetricCard) Versus(delta decimal.Decimal, against string) *MetricCard {
	c.delta = &delta
	c.deltaFor = against
	return c
}

// WithNote adds a muted line under the value.
func (c *MetricCard) WithNote(note string) *MetricCard {
	c.Note = note
	return c
}

func (c *MetricCard) lines() []string {
	out := []string{
		tuistyles.MetricLabelStyle.Render(c.Label),
		tuistyles.MetricValueStyle.Render(c.Value),
	}
	if c.delta != nil {
		up := !c.delta.IsNegative()
		text := tuistyles.TrendIndicator(up) + " " + tuistyles.FormatCurrency(c.delta.Abs())
		if c.deltaFor != "" {
			text += " " + c.deltaFor
		}
		out = append(out, tuistyles.MetricTrendStyle(up).Render(text))
	}
	if c.Note != "" {
		out = append(out, tuistyles.SubtitleStyle.Render(c.Note))
	}
	return out
}

// Render draws the card.
func (c *MetricCard) Render() string {
	w := c.Width
	if w <= 0 {
		w = defaultCardWidth
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(w).
		Render(strings.Join(c.lines(), "\n"))
}

// Grid lays cards out left to right, wrapping after columns cards.
func Grid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	if columns < 1 {
		columns = 1
	}
	var rows []string
	for start := 0; start < len(cards); start += columns {
		end := start + columns
		if end > len(cards) {
			end = len(cards)
		}
		rendered := make([]string, 0, end-start)
		for _, c := range cards[start:end] {
			rendered = append(rendered, c.Render())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
