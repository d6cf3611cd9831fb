package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spendcli/spend/internal/model"
	"github.com/spendcli/spend/internal/query"
)

func newListCommand(opts *globalOptions) *cobra.Command {
	var category, month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses",
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

			list, err := a.expenses.List(query.Filter{Category: category, Month: m})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, "No expenses found")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDate\tDescription\tCategory\tAmount")
			for _, e := range list {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
					e.ID, e.Date.Format(model.DateFormat), e.Description, e.Category, money(a.currency(), e.Amount))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only show this category")
	cmd.Flags().StringVar(&month, "month", "", "only show this month (1-12)")

	return cmd
}
