package commands

import (
	"github.com/spf13/cobra"

	"github.com/spendcli/spend/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "spend",
		Short:   "Track personal expenses and monthly budgets",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.dataDir, "data-dir", "", "directory holding the data files (default $SPEND_DATA_DIR or .)")
	flags.StringVar(&opts.configPath, "config", "", "config file (default <data-dir>/spend.yaml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newInitCommand(opts),
		newAddCommand(opts),
		newUpdateCommand(opts),
		newDeleteCommand(opts),
		newListCommand(opts),
		newSummaryCommand(opts),
		newSetBudgetCommand(opts),
		newBudgetsCommand(opts),
		newExportCommand(opts),
	)

	return rootCmd
}
