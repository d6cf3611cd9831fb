package query

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/spendcli/spend/internal/model"
)

// Filter selects expenses. Zero-valued fields match everything.
type Filter struct {
	Category string // exact match
	Month    int    // month-of-year, 1-12
}

// Validate checks the month when one is supplied.
func (f Filter) Validate() error {
	if f.Month != 0 {
		return model.ValidateMonth(f.Month)
	}
	return nil
}

// Match reports whether e passes the filter.
func (f Filter) Match(e model.Expense) bool {
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.Month != 0 && e.Month() != f.Month {
		return false
	}
	return true
}

// Apply returns the expenses matching f, in their original order.
func Apply(expenses []model.Expense, f Filter) []model.Expense {
	var out []model.Expense
	for _, e := range expenses {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

// Total sums the amounts of expenses. An empty set totals zero.
func Total(expenses []model.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// CategoryTotal is the spending for one category.
type CategoryTotal struct {
	Category string
	Count    int
	Total    decimal.Decimal
}

// ByCategory groups expenses by category, sorted by category name.
func ByCategory(expenses []model.Expense) []CategoryTotal {
	idx := make(map[string]int)
	var out []CategoryTotal
	for _, e := range expenses {
		i, ok := idx[e.Category]
		if !ok {
			i = len(out)
			idx[e.Category] = i
			out = append(out, CategoryTotal{Category: e.Category, Total: decimal.Zero})
		}
		out[i].Count++
		out[i].Total = out[i].Total.Add(e.Amount)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Category < out[b].Category })
	return out
}

// Summary is the aggregate over a filtered set of expenses.
type Summary struct {
	Filter     Filter
	Count      int
	Total      decimal.Decimal
	Categories []CategoryTotal
}

// Summarize filters expenses and aggregates the result.
func Summarize(expenses []model.Expense, f Filter) Summary {
	matched := Apply(expenses, f)
	return Summary{
		Filter:     f,
		Count:      len(matched),
		Total:      Total(matched),
		Categories: ByCategory(matched),
	}
}
