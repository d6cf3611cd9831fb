package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCategory is assigned to expenses added without a category.
const DefaultCategory = "Uncategorized"

// DateFormat is the on-disk layout of Expense.Date.
const DateFormat = "2006-01-02"

// Expense is one recorded spending event.
type Expense struct {
	ID          int
	Date        time.Time // calendar date, midnight UTC
	Description string
	Amount      decimal.Decimal
	Category    string
}

// Month returns the month-of-year (1-12) the expense falls in.
func (e Expense) Month() int {
	return int(e.Date.Month())
}

// Today truncates t to a calendar date in UTC, keeping t's local day.
func Today(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
