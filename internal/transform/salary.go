package transform

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/rgehrsitz/ctcgo/pkg/money"
)

var hundred = decimal.NewFromInt(100)

// Hike raises the fixed part of the CTC by Percent. Non-monthly components
// are carried over unchanged.
type Hike struct {
	Percent decimal.Decimal
}

func (h *Hike) Name() string { return "hike" }

func (h *Hike) Description() string {
	return fmt.Sprintf("Fixed pay raised by %s%%", h.Percent.String())
}

func (h *Hike) Validate(base domain.SalaryInput) error {
	if h.Percent.LessThanOrEqual(hundred.Neg()) {
		return &TransformError{h.Name(), "percent must be greater than -100"}
	}
	return nil
}

func (h *Hike) Apply(base domain.SalaryInput) (domain.SalaryInput, error) {
	fixed := base.CTC.Sub(base.NonMonthlyComponents())
	raise := fixed.Mul(h.Percent).Div(hundred).Round(0)
	base.CTC = base.CTC.Add(raise)
	return base, nil
}

// SetCTC replaces the annual CTC.
type SetCTC struct {
	Amount decimal.Decimal
}

func (s *SetCTC) Name() string { return "set_ctc" }

func (s *SetCTC) Description() string { return "CTC set to " + money.FormatINR(s.Amount) }

func (s *SetCTC) Validate(domain.SalaryInput) error {
	if !s.Amount.IsPositive() {
		return &TransformError{s.Name(), "amount must be positive"}
	}
	return nil
}

func (s *SetCTC) Apply(base domain.SalaryInput) (domain.SalaryInput, error) {
	base.CTC = s.Amount
	return base, nil
}

// Relocate moves the offer to City, optionally with a one-time allowance
// that is added to the CTC.
type Relocate struct {
	City      string
	Allowance decimal.Decimal
}

func (r *Relocate) Name() string { return "relocate" }

func (r *Relocate) Description() string {
	if r.Allowance.IsPositive() {
		return fmt.Sprintf("Relocate to %s with %s allowance", r.City, money.FormatINR(r.Allowance))
	}
	return "Relocate to " + r.City
}

func (r *Relocate) Validate(domain.SalaryInput) error {
	if r.City == "" {
		return &TransformError{r.Name(), "city is required"}
	}
	if r.Allowance.IsNegative() {
		return &TransformError{r.Name(), "allowance cannot be negative"}
	}
	return nil
}

func (r *Relocate) Apply(base domain.SalaryInput) (domain.SalaryInput, error) {
	base.City = r.City
	if r.Allowance.IsPositive() {
		base.CTC = base.CTC.Add(r.Allowance)
		base.RelocationAllowance = base.RelocationAllowance.Add(r.Allowance)
		base.IsRelocation = true
	}
	return base, nil
}

// SetVariable replaces the variable pay, keeping the fixed part. With
// KeepCTC the total CTC stays put and fixed pay absorbs the difference.
type SetVariable struct {
	Amount  decimal.Decimal
	KeepCTC bool
}

func (s *SetVariable) Name() string { return "set_variable" }

func (s *SetVariable) Description() string {
	return "Variable pay set to " + money.FormatINR(s.Amount)
}

func (s *SetVariable) Validate(base domain.SalaryInput) error {
	if s.Amount.IsNegative() {
		return &TransformError{s.Name(), "amount cannot be negative"}
	}
	if s.KeepCTC && s.Amount.Add(base.Insurance).Add(base.RelocationAllowance).GreaterThan(base.CTC) {
		return &TransformError{s.Name(), "variable pay would exceed the CTC"}
	}
	return nil
}

func (s *SetVariable) Apply(base domain.SalaryInput) (domain.SalaryInput, error) {
	if !s.KeepCTC {
		base.CTC = base.CTC.Sub(base.VariablePay).Add(s.Amount)
	}
	base.VariablePay = s.Amount
	return base, nil
}

// SetCompany changes the employer, which can trigger company adjustments.
type SetCompany struct {
	Company string
}

func (s *SetCompany) Name() string { return "set_company" }

func (s *SetCompany) Description() string { return "Offer from " + s.Company }

func (s *SetCompany) Validate(domain.SalaryInput) error {
	if s.Company == "" {
		return &TransformError{s.Name(), "company is required"}
	}
	return nil
}

func (s *SetCompany) Apply(base domain.SalaryInput) (domain.SalaryInput, error) {
	base.Company = s.Company
	return base, nil
}
