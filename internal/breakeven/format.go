package breakeven

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/ctcgo/pkg/money"
)

// TableFormatter formats a solve as a console report.
type TableFormatter struct{}

// Format generates the report.
func (tf *TableFormatter) Format(r *Result) string {
	var sb strings.Builder

	sb.WriteString("REQUIRED CTC\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("City:                %s\n", r.Request.Template.City))
	if r.Request.Template.Company != "" {
		sb.WriteString(fmt.Sprintf("Company:             %s\n", r.Request.Template.Company))
	}
	sb.WriteString(fmt.Sprintf("Target In-Hand:      %s / month\n", money.FormatINR(r.Request.TargetInHand)))
	sb.WriteString(fmt.Sprintf("Status:              %s (%d iterations)\n", tf.formatStatus(r.Converged), r.Iterations))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Required CTC:        %s\n", money.FormatINR(r.RequiredCTC)))
	sb.WriteString(fmt.Sprintf("In-Hand at that CTC: %s\n", money.FormatINR(r.Breakdown.InHandSalary)))
	sb.WriteString(fmt.Sprintf("Monthly Deductions:  %s\n", money.FormatINR(r.Breakdown.MonthlyDeductions)))
	if hike, ok := r.HikeOverReference(); ok {
		sb.WriteString(fmt.Sprintf("Versus Current CTC:  %s (%s%%)\n", money.FormatINR(*r.ReferenceCTC), hike.StringFixed(2)))
	}
	return sb.String()
}

func (tf *TableFormatter) formatStatus(converged bool) string {
	if converged {
		return "converged"
	}
	return "stopped at iteration limit"
}
