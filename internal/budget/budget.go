package budget

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/spendcli/spend/internal/logging"
	"github.com/spendcli/spend/internal/model"
	"github.com/spendcli/spend/internal/query"
)

// Store is the slice of the record store the budget manager needs.
type Store interface {
	LoadExpenses() ([]model.Expense, error)
	LoadBudget() (model.Budget, error)
	SaveBudget(model.Budget) error
}

// OverBudget is an advisory warning: spending for Month exceeds its Budget.
type OverBudget struct {
	Month  int
	Total  decimal.Decimal
	Budget decimal.Decimal
}

// Excess returns how far spending is over the limit.
func (o *OverBudget) Excess() decimal.Decimal {
	return o.Total.Sub(o.Budget)
}

func (o *OverBudget) String() string {
	return fmt.Sprintf("spending for %s (%s) exceeds budget (%s) by %s",
		model.MonthName(o.Month), o.Total.StringFixed(2), o.Budget.StringFixed(2), o.Excess().StringFixed(2))
}

// Entry is one month's budget alongside what has been spent.
type Entry struct {
	Month     int
	Limit     decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal // negative when over budget
}

// Manager stores per-month limits and compares them with spending.
type Manager struct {
	store Store
	log   *slog.Logger
}

// NewManager creates a Manager. A nil logger discards output.
func NewManager(store Store, log *slog.Logger) *Manager {
	if log == nil {
		log = logging.Discard()
	}
	return &Manager{store: store, log: log.With("component", "budget")}
}

// SetResult is what Set reports back: the limit as stored and any warning.
type SetResult struct {
	Limit   decimal.Decimal
	Warning *OverBudget
}

// Set records the limit for month, replacing any earlier one. Both files are
// read before anything is written, so a broken expense file leaves the budget
// untouched. Warning is non-nil when the month's spending already exceeds the
// new limit; the limit is saved either way.
func (m *Manager) Set(month int, amount string) (SetResult, error) {
	if err := model.ValidateMonth(month); err != nil {
		return SetResult{}, err
	}
	limit, err := model.ParseLimit(amount)
	if err != nil {
		return SetResult{}, err
	}

	b, err := m.store.LoadBudget()
	if err != nil {
		return SetResult{}, fmt.Errorf("loading budget: %w", err)
	}
	expenses, err := m.store.LoadExpenses()
	if err != nil {
		return SetResult{}, fmt.Errorf("loading expenses: %w", err)
	}

	b[month] = limit
	if err := m.store.SaveBudget(b); err != nil {
		return SetResult{}, fmt.Errorf("saving budget: %w", err)
	}
	m.log.Debug("budget set", "month", month, "limit", limit.String())

	return SetResult{Limit: limit, Warning: m.compare(month, limit, expenses)}, nil
}

// Check compares month's spending with its limit. It returns nil when no
// limit is set or spending is within it.
func (m *Manager) Check(month int) (*OverBudget, error) {
	if err := model.ValidateMonth(month); err != nil {
		return nil, err
	}

	b, err := m.store.LoadBudget()
	if err != nil {
		return nil, fmt.Errorf("loading budget: %w", err)
	}
	limit, ok := b.Limit(month)
	if !ok {
		return nil, nil
	}

	expenses, err := m.store.LoadExpenses()
	if err != nil {
		return nil, fmt.Errorf("loading expenses: %w", err)
	}
	return m.compare(month, limit, expenses), nil
}

func (m *Manager) compare(month int, limit decimal.Decimal, expenses []model.Expense) *OverBudget {
	total := query.Total(query.Apply(expenses, query.Filter{Month: month}))
	if !total.GreaterThan(limit) {
		return nil
	}
	m.log.Info("over budget", "month", month, "total", total.String(), "budget", limit.String())
	return &OverBudget{Month: month, Total: total, Budget: limit}
}

// All returns every month with a limit, in month order.
func (m *Manager) All() ([]Entry, error) {
	b, err := m.store.LoadBudget()
	if err != nil {
		return nil, fmt.Errorf("loading budget: %w", err)
	}
	expenses, err := m.store.LoadExpenses()
	if err != nil {
		return nil, fmt.Errorf("loading expenses: %w", err)
	}

	months := make([]int, 0, len(b))
	for month := range b {
		months = append(months, month)
	}
	sort.Ints(months)

	entries := make([]Entry, 0, len(months))
	for _, month := range months {
		spent := query.Total(query.Apply(expenses, query.Filter{Month: month}))
		entries = append(entries, Entry{
			Month:     month,
			Limit:     b[month],
			Spent:     spent,
			Remaining: b[month].Sub(spent),
		})
	}
	return entries, nil
}
