package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when an operation targets an id that does not exist.
var ErrNotFound = errors.New("expense not found")

// ValidationError reports bad user input.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// ParseAmount parses an expense amount, which must be a positive number.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, &ValidationError{Field: "amount", Value: s, Reason: "must be a number"}
	}
	if !d.IsPositive() {
		return decimal.Zero, &ValidationError{Field: "amount", Value: s, Reason: "must be a positive number"}
	}
	return d, nil
}

// ParseLimit parses a budget limit, which may be zero but not negative.
func ParseLimit(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, &ValidationError{Field: "budget amount", Value: s, Reason: "must be a number"}
	}
	if d.IsNegative() {
		return decimal.Zero, &ValidationError{Field: "budget amount", Value: s, Reason: "must not be negative"}
	}
	return d, nil
}

// ValidateMonth checks that month is in 1..12.
func ValidateMonth(month int) error {
	if month < 1 || month > 12 {
		return &ValidationError{Field: "month", Value: fmt.Sprint(month), Reason: "must be between 1 and 12"}
	}
	return nil
}

// MonthName returns the English name of a month number, e.g. 3 -> "March".
func MonthName(month int) string {
	return time.Month(month).String()
}
