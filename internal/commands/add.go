package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendcli/spend/internal/expenses"
)

func newAddCommand(opts *globalOptions) *cobra.Command {
	var params expenses.AddParams

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open(cmd)
			if err != nil {
				return err
			}

			res, err := a.expenses.Add(params)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Expense added successfully (ID: %d)\n", res.Expense.ID)
			printWarning(cmd.ErrOrStderr(), a.currency(), res.Warning)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Description, "description", "", "description of the expense")
	cmd.Flags().StringVar(&params.Amount, "amount", "", "amount of the expense (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&params.Category, "category", "", "category (default from config, \"Uncategorized\")")

	return cmd
}
