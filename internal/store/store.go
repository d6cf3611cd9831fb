package store

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spendcli/spend/internal/config"
	"github.com/spendcli/spend/internal/logging"
	"github.com/spendcli/spend/internal/model"
)

// Store loads and saves the expense collection and the budget table as whole files.
// Every call goes to disk; nothing is cached between calls.
type Store struct {
	paths config.Paths
	log   *slog.Logger
}

// New creates a Store over the given file locations. A nil logger discards output.
func New(paths config.Paths, log *slog.Logger) *Store {
	if log == nil {
		log = logging.Discard()
	}
	return &Store{paths: paths, log: log.With("component", "store")}
}

// Paths returns the file locations the store was built with.
func (s *Store) Paths() config.Paths {
	return s.paths
}

// LoadExpenses reads the expense collection. A missing or empty file yields no expenses.
func (s *Store) LoadExpenses() ([]model.Expense, error) {
	data, err := readIfExists(s.paths.Expenses)
	if err != nil {
		return nil, err
	}
	expenses, err := DecodeExpenses(data)
	if err != nil {
		return nil, &ReadError{Path: s.paths.Expenses, Err: err}
	}
	s.log.Debug("loaded expenses", "path", s.paths.Expenses, "count", len(expenses))
	return expenses, nil
}

// SaveExpenses replaces the expense collection on disk.
func (s *Store) SaveExpenses(expenses []model.Expense) error {
	data, err := EncodeExpenses(expenses)
	if err != nil {
		return &WriteError{Path: s.paths.Expenses, Err: err}
	}
	if err := writeFileAtomic(s.paths.Expenses, data); err != nil {
		return &WriteError{Path: s.paths.Expenses, Err: err}
	}
	s.log.Debug("saved expenses", "path", s.paths.Expenses, "count", len(expenses))
	return nil
}

// LoadBudget reads the budget table. A missing or empty file yields an empty table.
func (s *Store) LoadBudget() (model.Budget, error) {
	data, err := readIfExists(s.paths.Budget)
	if err != nil {
		return nil, err
	}
	b, err := DecodeBudget(data)
	if err != nil {
		return nil, &ReadError{Path: s.paths.Budget, Err: err}
	}
	s.log.Debug("loaded budget", "path", s.paths.Budget, "months", len(b))
	return b, nil
}

// SaveBudget replaces the budget table on disk.
func (s *Store) SaveBudget(b model.Budget) error {
	data, err := EncodeBudget(b)
	if err != nil {
		return &WriteError{Path: s.paths.Budget, Err: err}
	}
	if err := writeFileAtomic(s.paths.Budget, data); err != nil {
		return &WriteError{Path: s.paths.Budget, Err: err}
	}
	s.log.Debug("saved budget", "path", s.paths.Budget, "months", len(b))
	return nil
}

func readIfExists(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	return data, nil
}
