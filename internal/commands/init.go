package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/spendcli/spend/internal/config"
	"github.com/spendcli/spend/internal/logging"
	"github.com/spendcli/spend/internal/model"
	"github.com/spendcli/spend/internal/store"
)

func newInitCommand(opts *globalOptions) *cobra.Command {
	var currency string
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := opts.dataDir
			if len(args) > 0 {
				dir = args[0]
			}
			if dir == "" {
				dir = os.Getenv(config.EnvDataDir)
			}
			if dir == "" {
				dir = "."
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := runInit(cmd, absDir, currency, force, opts.verbose); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized spend data directory at %s\n", absDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "$", "currency symbol used when printing amounts")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing spend.yaml")

	return cmd
}

func runInit(cmd *cobra.Command, dir, currency string, force, verbose bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	// Write spend.yaml.
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgPath)
	}
	cfg := config.Default()
	cfg.Display.Currency = currency
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Create empty data files, keeping any that already exist.
	paths := cfg.PathsIn(dir)
	s := store.New(paths, logging.New(cmd.ErrOrStderr(), verbose))
	if !exists(paths.Expenses) {
		if err := s.SaveExpenses([]model.Expense{}); err != nil {
			return err
		}
	}
	if !exists(paths.Budget) {
		if err := s.SaveBudget(model.Budget{}); err != nil {
			return err
		}
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
