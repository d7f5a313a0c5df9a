package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/rgehrsitz/ctcgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() domain.SalaryInput {
	return domain.SalaryInput{
		CTC:         decimal.NewFromInt(1200000),
		City:        "Delhi",
		Company:     "Acme",
		VariablePay: decimal.NewFromInt(100000),
		Insurance:   decimal.NewFromInt(20000),
	}
}

func TestValidateSalaryInput(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*domain.SalaryInput)
		wantField string
	}{
		{"valid", func(*domain.SalaryInput) {}, ""},
		{"zero ctc", func(in *domain.SalaryInput) {
			in.CTC = decimal.Zero
			in.VariablePay = decimal.Zero
			in.Insurance = decimal.Zero
		}, "ctc"},
		{"negative ctc", func(in *domain.SalaryInput) { in.CTC = decimal.NewFromInt(-1) }, "ctc"},
		{"ctc too large", func(in *domain.SalaryInput) { in.CTC = decimal.NewFromInt(1000000000) }, "ctc"},
		{"missing city", func(in *domain.SalaryInput) { in.City = "" }, "city"},
		{"negative insurance", func(in *domain.SalaryInput) { in.Insurance = decimal.NewFromInt(-5) }, "insurance"},
		{"components exceed ctc", func(in *domain.SalaryInput) { in.RelocationAllowance = decimal.NewFromInt(1100000) }, "variablePay"},
		{"bad profile url", func(in *domain.SalaryInput) { in.GithubProfile = "not a url" }, "githubProfile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			err := ValidateSalaryInput(in)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			var verr *Error
			require.True(t, errors.As(err, &verr))
			fields := make([]string, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				fields = append(fields, f.Field)
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestValidateSalaryInput_ComponentsEqualToCTC(t *testing.T) {
	in := domain.SalaryInput{
		CTC:         decimal.NewFromInt(500000),
		City:        "Pune",
		VariablePay: decimal.NewFromInt(500000),
	}
	assert.NoError(t, ValidateSalaryInput(in), "sum equal to ctc is allowed")
}

func TestValidateSalaryInput_Message(t *testing.T) {
	in := validInput()
	in.VariablePay = decimal.NewFromInt(5000000)

	err := ValidateSalaryInput(in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot exceed ctc")
}

func TestPrepareSalaryInput_LengthsCheckedBeforeTruncation(t *testing.T) {
	in := validInput()
	in.City = strings.Repeat("a", 101)

	_, err := PrepareSalaryInput(in)
	require.Error(t, err)
	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "city", verr.Fields[0].Field)
	assert.Equal(t, "city must be at most 100 characters", verr.Fields[0].Message)

	in.City = "  " + strings.Repeat("a", 100) + "  "
	out, err := PrepareSalaryInput(in)
	require.NoError(t, err, "surrounding spaces are trimmed, not counted")
	assert.Len(t, out.City, 100)

	in = validInput()
	in.Company = strings.Repeat("b", 201)
	_, err = PrepareSalaryInput(in)
	assert.ErrorContains(t, err, "company must be at most 200 characters")
}

func TestPrepareSalaryInput_Sanitizes(t *testing.T) {
	in := validInput()
	in.City = " Delhi42 "

	out, err := PrepareSalaryInput(in)
	require.NoError(t, err)
	assert.Equal(t, "Delhi", out.City)
}

func TestValidateCityTaxProfile(t *testing.T) {
	ok := domain.CityTaxProfile{
		City:                "Pune",
		ProfessionalTax:     decimal.NewFromInt(200),
		HRAExemptionPercent: decimal.NewFromInt(40),
		AdditionalDeductions: []domain.AdditionalDeduction{
			{Name: "Labour welfare fund", Amount: decimal.NewFromInt(12), Type: "fixed"},
		},
	}
	assert.NoError(t, ValidateCityTaxProfile(ok))

	bad := ok
	bad.City = " "
	bad.HRAExemptionPercent = decimal.NewFromInt(120)
	bad.AdditionalDeductions = []domain.AdditionalDeduction{{Name: "x", Type: "weekly"}}
	err := ValidateCityTaxProfile(bad)
	require.Error(t, err)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 3)
	assert.Equal(t, "additionalDeductions[0].type", verr.Fields[2].Field)
}
