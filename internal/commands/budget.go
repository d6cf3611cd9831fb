package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spendcli/spend/internal/model"
)

func newSetBudgetCommand(opts *globalOptions) *cobra.Command {
	var month, amount string

	cmd := &cobra.Command{
		Use:   "set-budget",
		Short: "Set the spending limit for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMonth(month)
			if err != nil {
				return err
			}

			a, err := opts.open(cmd)
			if err != nil {
				return err
			}

			res, err := a.budgets.Set(m, amount)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Budget for %s set to %s\n", model.MonthName(m), money(a.currency(), res.Limit))
			printWarning(cmd.ErrOrStderr(), a.currency(), res.Warning)
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month (1-12, required)")
	_ = cmd.MarkFlagRequired("month")
	cmd.Flags().StringVar(&amount, "amount", "", "spending limit (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newBudgetsCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "budgets",
		Short: "Show monthly budgets and spending against them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open(cmd)
			if err != nil {
				return err
			}

			entries, err := a.budgets.All()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No budgets set")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "Month\tBudget\tSpent\tRemaining")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					model.MonthName(e.Month),
					money(a.currency(), e.Limit),
					money(a.currency(), e.Spent),
					money(a.currency(), e.Remaining))
			}
			return tw.Flush()
		},
	}
}
