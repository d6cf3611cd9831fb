package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spendcli/spend/internal/model"
	"github.com/spendcli/spend/internal/query"
)

func newSummaryCommand(opts *globalOptions) *cobra.Command {
	var category, month string
	var byCategory bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show total expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := optionalMonth(cmd, "month", month)
			if err != nil {
				return err
			}

			a, err := opts.open(cmd)
			if err != nil {
				return err
			}

			sum, err := a.expenses.Summary(query.Filter{Category: category, Month: m})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n", summaryLabel(sum.Filter), money(a.currency(), sum.Total))

			if byCategory && len(sum.Categories) > 0 {
				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				for _, c := range sum.Categories {
					fmt.Fprintf(tw, "  %s\t%d\t%s\n", c.Category, c.Count, money(a.currency(), c.Total))
				}
				return tw.Flush()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "filter by month (1-12)")
	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().BoolVar(&byCategory, "by-category", false, "break the total down by category")

	return cmd
}

func summaryLabel(f query.Filter) string {
	var b strings.Builder
	b.WriteString("Total expenses")
	if f.Month != 0 {
		b.WriteString(" for " + model.MonthName(f.Month))
	}
	if f.Category != "" {
		b.WriteString(" in " + f.Category)
	}
	return b.String()
}
