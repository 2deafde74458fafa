package service

import (
	"math"
	"strings"

	"fund-selector/domain"
)

// FieldError is a message attached to one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every field that failed validation.
type ValidationError struct {
	Fields []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Message
	}
	return "invalid inputs: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) add(field, msg string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: msg})
}

// NormalizeInputs clears the debt amount when no debt service was declared.
func NormalizeInputs(in domain.FinancialInputs) domain.FinancialInputs {
	if !in.HasDebtService {
		in.DebtServiceAmount = 0
	}
	in.StatedRisk = strings.ToUpper(strings.TrimSpace(in.StatedRisk))
	return in
}

// ValidateInputs applies the form rules. It returns a *ValidationError or nil.
func ValidateInputs(in domain.FinancialInputs) error {
	verr := &ValidationError{}

	if in.Age < MinAge || in.Age > MaxAge {
		verr.add("age", "Enter a valid age between 16 and 100.")
	}
	if in.MonthlyIncome <= 0 || !finite(in.MonthlyIncome) {
		verr.add("monthly_income", "Enter a positive monthly income.")
	}
	if in.MonthlyExpenses < 0 || !finite(in.MonthlyExpenses) {
		verr.add("monthly_expenses", "Expenses cannot be negative.")
	}
	if in.HasDebtService && (in.DebtServiceAmount < 0 || !finite(in.DebtServiceAmount)) {
		verr.add("debt_service_amount", "EMI amount cannot be negative.")
	}
	if _, ok := domain.ParseRiskTier(in.StatedRisk); !ok {
		verr.add("stated_risk", "Please choose a risk tolerance.")
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
