package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendcli/spend/internal/expenses"
	"github.com/spendcli/spend/internal/id"
	"github.com/spendcli/spend/internal/model"
)

func newUpdateCommand(opts *globalOptions) *cobra.Command {
	var rawID, description, amount, category string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update an existing expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			expenseID, err := id.Parse(rawID)
			if err != nil {
				return err
			}

			params := expenses.UpdateParams{ID: expenseID}
			if cmd.Flags().Changed("description") {
				params.Description = &description
			}
			if cmd.Flags().Changed("amount") {
				params.Amount = &amount
			}
			if cmd.Flags().Changed("category") {
				params.Category = &category
			}

			a, err := opts.open(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			res, err := a.expenses.Update(params)
			if errors.Is(err, model.ErrNotFound) {
				fmt.Fprintf(out, "Expense with ID: %d not found\n", expenseID)
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Expense with ID: %d updated successfully\n", expenseID)
			printWarning(cmd.ErrOrStderr(), a.currency(), res.Warning)
			return nil
		},
	}

	cmd.Flags().StringVar(&rawID, "id", "", "ID of the expense to update (required)")
	_ = cmd.MarkFlagRequired("id")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&amount, "amount", "", "new amount")
	cmd.Flags().StringVar(&category, "category", "", "new category")

	return cmd
}
