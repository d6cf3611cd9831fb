package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spendcli/spend/internal/export"
	"github.com/spendcli/spend/internal/query"
)

func newExportCommand(opts *globalOptions) *cobra.Command {
	var output, category, month string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export expenses as CSV",
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

			if output == "" || output == "-" {
				return export.WriteExpenses(cmd.OutOrStdout(), list)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			defer f.Close()

			if err := export.WriteExpenses(f, list); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing export file: %w", err)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d expenses to %s\n", len(list), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&category, "category", "", "only export this category")
	cmd.Flags().StringVar(&month, "month", "", "only export this month (1-12)")

	return cmd
}
