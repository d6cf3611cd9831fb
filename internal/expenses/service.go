package expenses

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendcli/spend/internal/budget"
	"github.com/spendcli/spend/internal/id"
	"github.com/spendcli/spend/internal/logging"
	"github.com/spendcli/spend/internal/model"
	"github.com/spendcli/spend/internal/query"
)

// Store is the slice of the record store the expense service needs.
type Store interface {
	LoadExpenses() ([]model.Expense, error)
	SaveExpenses([]model.Expense) error
}

// BudgetChecker reports whether a month's spending exceeds its limit.
type BudgetChecker interface {
	Check(month int) (*budget.OverBudget, error)
}

// Options configure a Service. Zero values get defaults.
type Options struct {
	Budget          BudgetChecker // nil disables over-budget warnings on add
	Now             func() time.Time
	DefaultCategory string
	Logger          *slog.Logger
}

// Service provides business logic for expense entries. Every operation
// loads the full collection, and mutating operations save it back.
type Service struct {
	store           Store
	budget          BudgetChecker
	now             func() time.Time
	defaultCategory string
	log             *slog.Logger
}

// NewService creates an expense Service.
func NewService(store Store, opts Options) *Service {
	s := &Service{
		store:           store,
		budget:          opts.Budget,
		now:             opts.Now,
		defaultCategory: opts.DefaultCategory,
		log:             opts.Logger,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.defaultCategory == "" {
		s.defaultCategory = model.DefaultCategory
	}
	if s.log == nil {
		s.log = logging.Discard()
	}
	s.log = s.log.With("component", "expenses")
	return s
}

// AddParams holds parameters for recording a new expense.
type AddParams struct {
	Description string
	Amount      string
	Category    string
}

// AddResult describes a newly recorded expense.
type AddResult struct {
	Expense model.Expense
	Warning *budget.OverBudget // set when the expense pushes its month over budget
}

// Add validates and appends a new expense dated today. Returns the stored expense.
func (s *Service) Add(params AddParams) (AddResult, error) {
	amount, err := model.ParseAmount(params.Amount)
	if err != nil {
		return AddResult{}, err
	}

	expenses, err := s.store.LoadExpenses()
	if err != nil {
		return AddResult{}, fmt.Errorf("loading expenses: %w", err)
	}

	category := params.Category
	if category == "" {
		category = s.defaultCategory
	}

	e := model.Expense{
		ID:          id.Next(expenses),
		Date:        model.Today(s.now()),
		Description: params.Description,
		Amount:      amount,
		Category:    category,
	}
	expenses = append(expenses, e)

	if err := s.store.SaveExpenses(expenses); err != nil {
		return AddResult{}, fmt.Errorf("saving expenses: %w", err)
	}
	s.log.Debug("expense added", "id", e.ID, "amount", e.Amount.String(), "category", e.Category)

	return AddResult{Expense: e, Warning: s.checkBudget(e.Month())}, nil
}

// checkBudget runs after a save. The expense is already on disk, so a broken
// budget file only loses the warning.
func (s *Service) checkBudget(month int) *budget.OverBudget {
	if s.budget == nil {
		return nil
	}
	warn, err := s.budget.Check(month)
	if err != nil {
		s.log.Warn("budget check failed", "month", month, "error", err)
		return nil
	}
	return warn
}

// UpdateParams holds the fields to change. Nil fields are left as they are.
type UpdateParams struct {
	ID          int
	Description *string
	Amount      *string
	Category    *string
}

// UpdateResult is the updated expense and the budget warning for its month.
type UpdateResult struct {
	Expense model.Expense
	Warning *budget.OverBudget
}

// Update applies the supplied fields to the expense with params.ID.
// Returns model.ErrNotFound (wrapped) when no such expense exists.
func (s *Service) Update(params UpdateParams) (UpdateResult, error) {
	if err := id.Validate(params.ID); err != nil {
		return UpdateResult{}, err
	}

	var amount decimal.Decimal
	if params.Amount != nil {
		d, err := model.ParseAmount(*params.Amount)
		if err != nil {
			return UpdateResult{}, err
		}
		amount = d
	}

	expenses, err := s.store.LoadExpenses()
	if err != nil {
		return UpdateResult{}, fmt.Errorf("loading expenses: %w", err)
	}

	i := id.Index(expenses, params.ID)
	if i < 0 {
		return UpdateResult{}, fmt.Errorf("expense %d: %w", params.ID, model.ErrNotFound)
	}

	e := &expenses[i]
	if params.Description != nil {
		e.Description = *params.Description
	}
	if params.Amount != nil {
		e.Amount = amount
	}
	if params.Category != nil {
		e.Category = *params.Category
		if e.Category == "" {
			e.Category = s.defaultCategory
		}
	}

	if err := s.store.SaveExpenses(expenses); err != nil {
		return UpdateResult{}, fmt.Errorf("saving expenses: %w", err)
	}
	s.log.Debug("expense updated", "id", e.ID)
	return UpdateResult{Expense: *e, Warning: s.checkBudget(e.Month())}, nil
}

// Delete removes the expense with the given id.
// Returns model.ErrNotFound (wrapped) and writes nothing when no such expense exists.
func (s *Service) Delete(expenseID int) error {
	if err := id.Validate(expenseID); err != nil {
		return err
	}

	expenses, err := s.store.LoadExpenses()
	if err != nil {
		return fmt.Errorf("loading expenses: %w", err)
	}

	kept := make([]model.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.ID != expenseID {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(expenses) {
		return fmt.Errorf("expense %d: %w", expenseID, model.ErrNotFound)
	}

	if err := s.store.SaveExpenses(kept); err != nil {
		return fmt.Errorf("saving expenses: %w", err)
	}
	s.log.Debug("expense deleted", "id", expenseID)
	return nil
}

// List returns the expenses matching f, in store order.
func (s *Service) List(f query.Filter) ([]model.Expense, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	expenses, err := s.store.LoadExpenses()
	if err != nil {
		return nil, fmt.Errorf("loading expenses: %w", err)
	}
	return query.Apply(expenses, f), nil
}

// Summary totals the expenses matching f.
func (s *Service) Summary(f query.Filter) (query.Summary, error) {
	if err := f.Validate(); err != nil {
		return query.Summary{}, err
	}
	expenses, err := s.store.LoadExpenses()
	if err != nil {
		return query.Summary{}, fmt.Errorf("loading expenses: %w", err)
	}
	return query.Summarize(expenses, f), nil
}
