package expenses

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendcli/spend/internal/budget"
	"github.com/spendcli/spend/internal/config"
	"github.com/spendcli/spend/internal/model"
	"github.com/spendcli/spend/internal/query"
	"github.com/spendcli/spend/internal/store"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func ptr(s string) *string { return &s }

// countingStore wraps a real store and counts saves.
type countingStore struct {
	*store.Store
	saves int
}

func (c *countingStore) SaveExpenses(e []model.Expense) error {
	c.saves++
	return c.Store.SaveExpenses(e)
}

// failingStore refuses every save.
type failingStore struct {
	expenses []model.Expense
}

func (f *failingStore) LoadExpenses() ([]model.Expense, error) { return f.expenses, nil }
func (f *failingStore) SaveExpenses([]model.Expense) error {
	return &store.WriteError{Path: "expenses.json", Err: errors.New("disk full")}
}

var today = time.Date(2026, 3, 14, 18, 45, 0, 0, time.UTC)

func fixedClock() time.Time { return today }

func newTestService(t *testing.T) (*Service, *countingStore) {
	t.Helper()
	dir := t.TempDir()
	s := &countingStore{Store: store.New(config.Paths{
		Expenses: filepath.Join(dir, "expenses.json"),
		Budget:   filepath.Join(dir, "budget.json"),
	}, nil)}
	svc := NewService(s, Options{
		Budget: budget.NewManager(s, nil),
		Now:    fixedClock,
	})
	return svc, s
}

func mustAdd(t *testing.T, svc *Service, desc, amount, category string) model.Expense {
	t.Helper()
	res, err := svc.Add(AddParams{Description: desc, Amount: amount, Category: category})
	require.NoError(t, err)
	return res.Expense
}

func TestAdd_Defaults(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.Add(AddParams{Description: "Lunch", Amount: "12.50"})
	require.NoError(t, err)

	e := res.Expense
	assert.Equal(t, 1, e.ID)
	assert.True(t, e.Amount.Equal(dec("12.50")))
	assert.Equal(t, model.DefaultCategory, e.Category)
	assert.Equal(t, "2026-03-14", e.Date.Format(model.DateFormat))
	assert.Nil(t, res.Warning)
}

func TestAdd_SequentialIDs(t *testing.T) {
	svc, _ := newTestService(t)

	for want := 1; want <= 5; want++ {
		before, err := svc.List(query.Filter{})
		require.NoError(t, err)

		e := mustAdd(t, svc, "item", "1", "")
		assert.Equal(t, want, e.ID)
		assert.Equal(t, len(before)+1, e.ID)
	}
}

func TestAdd_IDsStayUniqueAfterDelete(t *testing.T) {
	svc, _ := newTestService(t)
	mustAdd(t, svc, "a", "1", "")
	mustAdd(t, svc, "b", "2", "")
	mustAdd(t, svc, "c", "3", "")

	require.NoError(t, svc.Delete(1))
	e := mustAdd(t, svc, "d", "4", "")
	assert.Equal(t, 4, e.ID, "must not reissue id 3 as len+1 would")

	all, err := svc.List(query.Filter{})
	require.NoError(t, err)
	seen := map[int]bool{}
	for _, x := range all {
		assert.False(t, seen[x.ID], "duplicate id %d", x.ID)
		seen[x.ID] = true
	}
}

func TestAdd_InvalidAmount(t *testing.T) {
	svc, s := newTestService(t)

	for _, amount := range []string{"", "abc", "0", "-4.20"} {
		_, err := svc.Add(AddParams{Description: "bad", Amount: amount})
		var ve *model.ValidationError
		require.ErrorAs(t, err, &ve, "amount %q", amount)
	}
	assert.Equal(t, 0, s.saves)
}

func TestAdd_OverBudgetWarning(t *testing.T) {
	svc, s := newTestService(t)
	_, err := budget.NewManager(s, nil).Set(3, "100")
	require.NoError(t, err)

	res, err := svc.Add(AddParams{Description: "a", Amount: "50"})
	require.NoError(t, err)
	assert.Nil(t, res.Warning)
	res, err = svc.Add(AddParams{Description: "b", Amount: "50"})
	require.NoError(t, err)
	assert.Nil(t, res.Warning, "exactly at the limit is not over")

	res, err = svc.Add(AddParams{Description: "c", Amount: "50"})
	require.NoError(t, err)
	require.NotNil(t, res.Warning)
	assert.Equal(t, 3, res.Warning.Month)
	assert.True(t, res.Warning.Total.Equal(dec("150")))
	assert.True(t, res.Warning.Budget.Equal(dec("100")))
}

func TestAdd_BrokenBudgetFileStillSaves(t *testing.T) {
	svc, s := newTestService(t)
	require.NoError(t, os.WriteFile(s.Paths().Budget, []byte("{broken"), 0o644))

	res, err := svc.Add(AddParams{Description: "Lunch", Amount: "12"})
	require.NoError(t, err)
	assert.Nil(t, res.Warning)
	assert.Equal(t, 1, s.saves)

	all, err := svc.List(query.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Lunch", all[0].Description)
}

func TestAdd_SaveFailure(t *testing.T) {
	svc := NewService(&failingStore{}, Options{Now: fixedClock})

	_, err := svc.Add(AddParams{Description: "x", Amount: "1"})
	var we *store.WriteError
	require.ErrorAs(t, err, &we)
}

func TestAdd_CustomDefaultCategory(t *testing.T) {
	dir := t.TempDir()
	s := store.New(config.Paths{Expenses: filepath.Join(dir, "e.json")}, nil)
	svc := NewService(s, Options{Now: fixedClock, DefaultCategory: "Misc"})

	e := mustAdd(t, svc, "x", "1", "")
	assert.Equal(t, "Misc", e.Category)
}

func TestUpdate_OnlySuppliedFields(t *testing.T) {
	svc, _ := newTestService(t)
	orig := mustAdd(t, svc, "Coffee", "3.50", "Food")

	res, err := svc.Update(UpdateParams{ID: orig.ID, Amount: ptr("4.00")})
	require.NoError(t, err)
	got := res.Expense
	assert.True(t, got.Amount.Equal(dec("4")))
	assert.Equal(t, "Coffee", got.Description)
	assert.Equal(t, "Food", got.Category)
	assert.True(t, orig.Date.Equal(got.Date))

	res, err = svc.Update(UpdateParams{ID: orig.ID, Description: ptr("Flat white")})
	require.NoError(t, err)
	got = res.Expense
	assert.Equal(t, "Flat white", got.Description)
	assert.True(t, got.Amount.Equal(dec("4")))

	// The change is persisted.
	all, err := svc.List(query.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Flat white", all[0].Description)
	assert.True(t, all[0].Amount.Equal(dec("4")))
}

func TestUpdate_Category(t *testing.T) {
	svc, _ := newTestService(t)
	e := mustAdd(t, svc, "Train", "20", "Travel")

	res, err := svc.Update(UpdateParams{ID: e.ID, Category: ptr("Transport")})
	require.NoError(t, err)
	assert.Equal(t, "Transport", res.Expense.Category)

	res, err = svc.Update(UpdateParams{ID: e.ID, Category: ptr("")})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCategory, res.Expense.Category)
}

func TestUpdate_OverBudgetWarning(t *testing.T) {
	svc, s := newTestService(t)
	e := mustAdd(t, svc, "Groceries", "40", "Food")
	_, err := budget.NewManager(s, nil).Set(3, "100")
	require.NoError(t, err)

	res, err := svc.Update(UpdateParams{ID: e.ID, Description: ptr("Weekly shop")})
	require.NoError(t, err)
	assert.Nil(t, res.Warning)

	res, err = svc.Update(UpdateParams{ID: e.ID, Amount: ptr("120")})
	require.NoError(t, err)
	require.NotNil(t, res.Warning)
	assert.Equal(t, 3, res.Warning.Month)
	assert.True(t, res.Warning.Total.Equal(dec("120")))
	assert.True(t, res.Warning.Budget.Equal(dec("100")))
	assert.True(t, res.Expense.Amount.Equal(dec("120")))
}

func TestUpdate_NotFound(t *testing.T) {
	svc, s := newTestService(t)
	mustAdd(t, svc, "a", "1", "")
	saves := s.saves

	_, err := svc.Update(UpdateParams{ID: 99, Description: ptr("nope")})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Equal(t, saves, s.saves, "no write on not-found")
}

func TestUpdate_InvalidAmount(t *testing.T) {
	svc, s := newTestService(t)
	e := mustAdd(t, svc, "a", "10", "")
	saves := s.saves

	for _, amount := range []string{"ten", "0", "-1"} {
		_, err := svc.Update(UpdateParams{ID: e.ID, Description: ptr("changed"), Amount: ptr(amount)})
		var ve *model.ValidationError
		require.ErrorAs(t, err, &ve, "amount %q", amount)
	}
	assert.Equal(t, saves, s.saves)

	all, err := svc.List(query.Filter{})
	require.NoError(t, err)
	assert.Equal(t, "a", all[0].Description, "aborted update leaves the record unchanged")
}

func TestUpdate_InvalidID(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Update(UpdateParams{ID: 0})
	var ve *model.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService(t)
	mustAdd(t, svc, "a", "1", "")
	mustAdd(t, svc, "b", "2", "")
	mustAdd(t, svc, "c", "3", "")

	require.NoError(t, svc.Delete(2))

	all, err := svc.List(query.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, e := range all {
		assert.NotEqual(t, 2, e.ID)
	}
	assert.Equal(t, 1, all[0].ID)
	assert.Equal(t, 3, all[1].ID)
}

func TestDelete_NotFound(t *testing.T) {
	svc, s := newTestService(t)
	mustAdd(t, svc, "a", "1", "")
	saves := s.saves

	err := svc.Delete(7)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Equal(t, saves, s.saves)

	all, err := svc.List(query.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDelete_InvalidID(t *testing.T) {
	svc, s := newTestService(t)

	for _, n := range []int{0, -2} {
		err := svc.Delete(n)
		var ve *model.ValidationError
		require.ErrorAs(t, err, &ve)
	}
	assert.Equal(t, 0, s.saves)
}

func TestList_Filters(t *testing.T) {
	svc, s := newTestService(t)
	require.NoError(t, s.SaveExpenses([]model.Expense{
		{ID: 1, Date: time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC), Description: "a", Amount: dec("5"), Category: "Food"},
		{ID: 2, Date: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), Description: "b", Amount: dec("6"), Category: "Fun"},
		{ID: 3, Date: time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC), Description: "c", Amount: dec("7"), Category: "Food"},
	}))

	got, err := svc.List(query.Filter{Category: "Food"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)

	got, err = svc.List(query.Filter{Month: 2})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = svc.List(query.Filter{Month: 13})
	var ve *model.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestSummary(t *testing.T) {
	svc, s := newTestService(t)
	require.NoError(t, s.SaveExpenses([]model.Expense{
		{ID: 1, Date: time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC), Description: "a", Amount: dec("5.10"), Category: "Food"},
		{ID: 2, Date: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), Description: "b", Amount: dec("6.20"), Category: "Fun"},
		{ID: 3, Date: time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC), Description: "c", Amount: dec("7.30"), Category: "Food"},
	}))

	all, err := svc.Summary(query.Filter{})
	require.NoError(t, err)
	assert.True(t, all.Total.Equal(dec("18.60")))
	assert.Equal(t, 3, all.Count)

	feb, err := svc.Summary(query.Filter{Month: 2})
	require.NoError(t, err)
	assert.True(t, feb.Total.Equal(dec("13.50")))

	none, err := svc.Summary(query.Filter{Month: 7})
	require.NoError(t, err)
	assert.True(t, none.Total.IsZero())

	_, err = svc.Summary(query.Filter{Month: -1})
	var ve *model.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestScenario_AddSummaryDelete(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.Add(AddParams{Description: "Lunch", Amount: "12.50"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Expense.ID)
	assert.True(t, res.Expense.Amount.Equal(dec("12.50")))
	assert.Equal(t, "Uncategorized", res.Expense.Category)

	sum, err := svc.Summary(query.Filter{Month: int(today.Month())})
	require.NoError(t, err)
	assert.True(t, sum.Total.Equal(dec("12.50")))

	require.NoError(t, svc.Delete(1))

	all, err := svc.List(query.Filter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestLoadFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory where the file should be makes every load fail.
	s := store.New(config.Paths{Expenses: dir}, nil)
	svc := NewService(s, Options{Now: fixedClock})

	_, err := svc.List(query.Filter{})
	var re *store.ReadError
	require.ErrorAs(t, err, &re)

	_, err = svc.Add(AddParams{Description: "x", Amount: "1"})
	require.ErrorAs(t, err, &re)

	err = svc.Delete(1)
	require.ErrorAs(t, err, &re)
}
