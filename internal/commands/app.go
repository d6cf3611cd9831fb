package commands

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spendcli/spend/internal/budget"
	"github.com/spendcli/spend/internal/config"
	"github.com/spendcli/spend/internal/expenses"
	"github.com/spendcli/spend/internal/logging"
	"github.com/spendcli/spend/internal/model"
	"github.com/spendcli/spend/internal/store"
)

type globalOptions struct {
	dataDir    string
	configPath string
	verbose    bool
}

// app is the set of services one command invocation works with.
type app struct {
	resolved *config.Resolved
	store    *store.Store
	expenses *expenses.Service
	budgets  *budget.Manager
	log      *slog.Logger
}

func (o *globalOptions) open(cmd *cobra.Command) (*app, error) {
	log := logging.New(cmd.ErrOrStderr(), o.verbose)

	resolved, err := config.Resolve(config.Options{
		DataDir:    o.dataDir,
		ConfigPath: o.configPath,
	})
	if err != nil {
		return nil, err
	}
	log.Debug("config resolved", "data_dir", resolved.DataDir,
		"expenses", resolved.Paths.Expenses, "budget", resolved.Paths.Budget)

	s := store.New(resolved.Paths, log)
	budgets := budget.NewManager(s, log)
	svc := expenses.NewService(s, expenses.Options{
		Budget:          budgets,
		DefaultCategory: resolved.Config.Defaults.Category,
		Logger:          log,
	})

	return &app{
		resolved: resolved,
		store:    s,
		expenses: svc,
		budgets:  budgets,
		log:      log,
	}, nil
}

func (a *app) currency() string {
	return a.resolved.Config.Display.Currency
}

// parseMonth parses a --month value. Months are 1-12.
func parseMonth(s string) (int, error) {
	m, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &model.ValidationError{Field: "month", Value: s, Reason: "must be a number between 1 and 12"}
	}
	if err := model.ValidateMonth(m); err != nil {
		return 0, err
	}
	return m, nil
}

// optionalMonth parses the named flag when it was set, and returns 0 otherwise.
func optionalMonth(cmd *cobra.Command, name, value string) (int, error) {
	if !cmd.Flags().Changed(name) {
		return 0, nil
	}
	return parseMonth(value)
}
