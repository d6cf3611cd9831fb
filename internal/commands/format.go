package commands

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/spendcli/spend/internal/budget"
	"github.com/spendcli/spend/internal/model"
)

// money formats an amount with thousands separators and two decimals, e.g. "$1,234.50".
func money(currency string, d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	return sign + currency + humanize.FormatFloat("#,###.##", d.Round(2).InexactFloat64())
}

func printWarning(w io.Writer, currency string, warn *budget.OverBudget) {
	if warn == nil {
		return
	}
	fmt.Fprintf(w, "Warning: spending for %s (%s) exceeds budget (%s) by %s\n",
		model.MonthName(warn.Month),
		money(currency, warn.Total),
		money(currency, warn.Budget),
		money(currency, warn.Excess()))
}
