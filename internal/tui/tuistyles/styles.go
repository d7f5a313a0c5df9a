// Package tuistyles holds the lipgloss palette shared by the TUI packages.
package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/ctcgo/pkg/money"
	"github.com/shopspring/decimal"
)

var (
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#A78BFA"}
	ColorSuccess   = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}
	ColorDanger    = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	ColorMuted     = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	ColorBorder    = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}
)

var (
	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	StatusBarStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	StatusKeyStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary)

	LabelStyle        = lipgloss.NewStyle().Width(22)
	FocusedLabelStyle = lipgloss.NewStyle().Width(22).Bold(true).Foreground(ColorPrimary)

	MetricLabelStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	MetricValueStyle    = lipgloss.NewStyle().Bold(true)
	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary)

	ErrorStyle = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)
)

// MetricTrendStyle colours a delta by direction.
func MetricTrendStyle(isPositive bool) lipgloss.Style {
	if isPositive {
		return MetricPositiveStyle
	}
	return MetricNegativeStyle
}

// TrendIndicator is the arrow shown next to a delta.
func TrendIndicator(isPositive bool) string {
	if isPositive {
		return "▲"
	}
	return "▼"
}

// FormatCurrency renders rupees with Indian digit grouping.
func FormatCurrency(d decimal.Decimal) string {
	return money.FormatINR(d)
}
