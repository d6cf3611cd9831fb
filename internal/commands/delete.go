package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendcli/spend/internal/id"
	"github.com/spendcli/spend/internal/model"
)

func newDeleteCommand(opts *globalOptions) *cobra.Command {
	var rawID string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an existing expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			expenseID, err := id.Parse(rawID)
			if err != nil {
				return err
			}

			a, err := opts.open(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			err = a.expenses.Delete(expenseID)
			if errors.Is(err, model.ErrNotFound) {
				fmt.Fprintf(out, "Expense with ID: %d not found\n", expenseID)
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Expense with ID: %d deleted successfully\n", expenseID)
			return nil
		},
	}

	cmd.Flags().StringVar(&rawID, "id", "", "ID of the expense to delete (required)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}
