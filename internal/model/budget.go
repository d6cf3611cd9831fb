package model

import "github.com/shopspring/decimal"

// Budget maps a month number (1-12) to its spending limit.
type Budget map[int]decimal.Decimal

// Limit returns the limit for month and whether one is set.
func (b Budget) Limit(month int) (decimal.Decimal, bool) {
	limit, ok := b[month]
	return limit, ok
}
