package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/internal/tui/components"
	"github.com/rgehrsitz/ctcgo/internal/tui/tuimsg"
	"github.com/rgehrsitz/ctcgo/internal/tui/tuistyles"
)

var twelve = decimal.NewFromInt(12)

// ResultsModel shows a computed breakdown.
type ResultsModel struct {
	input     domain.SalaryInput
	breakdown domain.SalaryBreakdown
	tax       domain.TaxSummary
	width     int
}

// NewResultsModel creates an empty results scene.
func NewResultsModel() ResultsModel { return ResultsModel{} }

// SetResult stores the breakdown to display.
func (m *ResultsModel) SetResult(in domain.SalaryInput, b domain.SalaryBreakdown, tax domain.TaxSummary) {
	m.input = in
	m.breakdown = b
	m.tax = tax
}

// Breakdown returns the displayed breakdown.
func (m ResultsModel) Breakdown() domain.SalaryBreakdown { return m.breakdown }

// SetSize records the terminal width.
func (m *ResultsModel) SetSize(width, _ int) { m.width = width }

// Update handles esc.
func (m ResultsModel) Update(msg tea.Msg) (ResultsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, key.NewBinding(key.WithKeys("esc", "backspace"))) {
			return m, func() tea.Msg { return tuimsg.BackMsg{} }
		}
	}
	return m, nil
}

// View renders the metric cards and the component table.
func (m ResultsModel) View() string {
	b := m.breakdown
	var sb strings.Builder

	title := fmt.Sprintf("Breakdown for %s in %s", tuistyles.FormatCurrency(b.CTC), m.input.City)
	if b.Company != "" {
		title += " at " + b.Company
	}
	sb.WriteString(tuistyles.TitleStyle.Render(title))
	sb.WriteString("\n\n")

	inHand := components.AmountCard("In-Hand Monthly", b.InHandSalary)
	if m.input.OfferInHand.IsPositive() {
		inHand.Versus(b.InHandSalary.Sub(m.input.OfferInHand), "vs quote")
	}
	cards := []*components.MetricCard{
		inHand,
		components.AmountCard("Annual Take-Home", b.InHandSalary.Mul(twelve)),
		components.AmountCard("Monthly Deductions", b.MonthlyDeductions),
		components.AmountCard("Income Tax / month", b.IncomeTax),
		components.AmountCard("Annual Deductions", b.AnnualDeductions),
		components.AmountCard("Gratuity (5 yrs)", b.Gratuity).WithNote("paid on exit"),
		components.TextCard("Marginal Tax Rate", ratePercent(m.tax.MarginalRate)),
		components.TextCard("Effective Tax Rate", ratePercent(m.tax.EffectiveRate)).
			WithNote("on " + tuistyles.FormatCurrency(m.tax.AnnualTaxable) + " taxable"),
	}
	columns := 3
	if m.width > 0 && m.width < 100 {
		columns = 2
	}
	sb.WriteString(components.Grid(cards, columns))
	sb.WriteString("\n\n")

	sb.WriteString(tuistyles.TableHeaderStyle.Render(fmt.Sprintf("%-22s %16s %18s", "Component", "Monthly", "Annual")))
	sb.WriteString("\n")
	rows := []struct {
		name  string
		value decimal.Decimal
	}{
		{"Basic", b.BasicSalary},
		{"HRA", b.HRA},
		{"Special Allowance", b.SpecialAllowance},
		{"Provident Fund", b.PF},
		{"ESI", b.ESI},
		{"Professional Tax", b.ProfessionalTax},
		{"Income Tax", b.IncomeTax},
	}
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-22s %16s %18s\n", r.name,
			tuistyles.FormatCurrency(r.value), tuistyles.FormatCurrency(r.value.Mul(twelve))))
	}
	return sb.String()
}

func ratePercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
