// Package validation checks caller-supplied input at the boundary. The salary
// engine itself does not validate, so every entry point (HTTP, CLI, TUI)
// runs input through here first.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidInput is wrapped by every validation failure.
var ErrInvalidInput = errors.New("invalid input")

// FieldError is one failed rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error collects the failed rules for one value.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}

func (e *Error) Unwrap() error { return ErrInvalidInput }

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator with decimal and salary rules registered.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		v.RegisterStructValidation(salaryInputRules, domain.SalaryInput{})
		validate = v
	})
	return validate
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return nil
}

// salaryInputRules enforces variablePay + insurance + relocationAllowance <= ctc.
func salaryInputRules(sl validator.StructLevel) {
	in := sl.Current().Interface().(domain.SalaryInput)
	if in.NonMonthlyComponents().GreaterThan(in.CTC) {
		sl.ReportError(in.VariablePay, "variablePay", "VariablePay", "componentsum", "")
	}
	if strings.TrimSpace(in.City) == "" && in.City != "" {
		sl.ReportError(in.City, "city", "City", "required", "")
	}
}

// ValidateSalaryInput checks bounds and the component-sum invariant.
func ValidateSalaryInput(in domain.SalaryInput) error {
	return Struct(in)
}

// CheckTextLengths rejects free-text fields longer than their stored column.
// Sanitizing truncates, so this has to run on the raw input.
func CheckTextLengths(in domain.SalaryInput) error {
	var fields []FieldError
	for _, f := range []struct {
		name  string
		value string
		max   int
	}{
		{"city", in.City, 100},
		{"company", in.Company, 200},
		{"designation", in.Designation, 200},
		{"githubProfile", in.GithubProfile, 2048},
		{"linkedinProfile", in.LinkedinProfile, 2048},
	} {
		if err := Validator().Var(strings.TrimSpace(f.value), "max="+strconv.Itoa(f.max)); err != nil {
			fields = append(fields, FieldError{Field: f.name, Message: fmt.Sprintf("%s must be at most %d characters", f.name, f.max)})
		}
	}
	if len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}

// PrepareSalaryInput is the boundary check every entry point runs: raw length
// limits, then sanitizing, then the full rule set.
func PrepareSalaryInput(in domain.SalaryInput) (domain.SalaryInput, error) {
	if err := CheckTextLengths(in); err != nil {
		return in, err
	}
	in = SanitizeSalaryInput(in)
	if err := ValidateSalaryInput(in); err != nil {
		return in, err
	}
	return in, nil
}

// ValidateCityTaxProfile checks an admin-supplied city tax row.
func ValidateCityTaxProfile(p domain.CityTaxProfile) error {
	var fields []FieldError
	if strings.TrimSpace(p.City) == "" {
		fields = append(fields, FieldError{Field: "city", Message: "city is required"})
	}
	if p.ProfessionalTax.IsNegative() {
		fields = append(fields, FieldError{Field: "professionalTax", Message: "professionalTax must be 0 or more"})
	}
	if p.HRAExemptionPercent.IsNegative() || p.HRAExemptionPercent.GreaterThan(decimal.NewFromInt(100)) {
		fields = append(fields, FieldError{Field: "hraExemptionPercent", Message: "hraExemptionPercent must be between 0 and 100"})
	}
	for i, ad := range p.AdditionalDeductions {
		if err := Validator().Struct(ad); err != nil {
			for _, fe := range translate(err).Fields {
				fields = append(fields, FieldError{
					Field:   fmt.Sprintf("additionalDeductions[%d].%s", i, fe.Field),
					Message: fmt.Sprintf("additionalDeductions[%d]: %s", i, fe.Message),
				})
			}
		}
	}
	if len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}

// Struct validates any tagged struct and returns an *Error on failure.
func Struct(v interface{}) error {
	if err := Validator().Struct(v); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return fmt.Errorf("validation: %w", err)
		}
		return translate(err)
	}
	return nil
}

func translate(err error) *Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &Error{Fields: []FieldError{{Message: err.Error()}}}
	}
	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	f := fe.Field()
	switch fe.Tag() {
	case "required":
		return f + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", f, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or more", f, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", f, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", f, fe.Param())
	case "url":
		return f + " must be a valid URL"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", f, fe.Param())
	case "componentsum":
		return "variablePay + insurance + relocationAllowance cannot exceed ctc"
	default:
		return fmt.Sprintf("%s failed %s validation", f, fe.Tag())
	}
}
