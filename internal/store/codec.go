package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendcli/spend/internal/model"
)

// expenseRecord is the on-disk shape of an expense.
type expenseRecord struct {
	ID          int         `json:"id"`
	Date        string      `json:"date"`
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
	Category    string      `json:"category"`
}

// marshalExpense converts an Expense to its on-disk record.
func marshalExpense(e model.Expense) expenseRecord {
	return expenseRecord{
		ID:          e.ID,
		Date:        e.Date.Format(model.DateFormat),
		Description: e.Description,
		Amount:      json.Number(e.Amount.String()),
		Category:    e.Category,
	}
}

// unmarshalExpense converts an on-disk record to an Expense.
func unmarshalExpense(rec expenseRecord) (model.Expense, error) {
	if rec.ID <= 0 {
		return model.Expense{}, fmt.Errorf("invalid id %d", rec.ID)
	}

	date, err := time.Parse(model.DateFormat, rec.Date)
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing date %q: %w", rec.Date, err)
	}

	amount, err := decimal.NewFromString(rec.Amount.String())
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing amount %q: %w", rec.Amount, err)
	}

	category := rec.Category
	if category == "" {
		category = model.DefaultCategory
	}

	return model.Expense{
		ID:          rec.ID,
		Date:        date,
		Description: rec.Description,
		Amount:      amount,
		Category:    category,
	}, nil
}

// EncodeExpenses serializes the whole expense collection.
func EncodeExpenses(expenses []model.Expense) ([]byte, error) {
	records := make([]expenseRecord, 0, len(expenses))
	for _, e := range expenses {
		records = append(records, marshalExpense(e))
	}
	return marshal(records)
}

// DecodeExpenses parses an expense collection. Empty input is an empty collection.
func DecodeExpenses(data []byte) ([]model.Expense, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var records []expenseRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding expenses: %w", err)
	}

	expenses := make([]model.Expense, 0, len(records))
	for i, rec := range records {
		e, err := unmarshalExpense(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

// EncodeBudget serializes the month -> limit mapping with month numbers as keys.
func EncodeBudget(b model.Budget) ([]byte, error) {
	obj := make(map[string]json.Number, len(b))
	for month, limit := range b {
		obj[strconv.Itoa(month)] = json.Number(limit.String())
	}
	return marshal(obj)
}

// DecodeBudget parses a budget mapping. Empty input is an empty mapping.
func DecodeBudget(data []byte) (model.Budget, error) {
	b := model.Budget{}
	if len(bytes.TrimSpace(data)) == 0 {
		return b, nil
	}

	var obj map[string]json.Number
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("decoding budget: %w", err)
	}

	for k, v := range obj {
		month, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil || month < 1 || month > 12 {
			return nil, fmt.Errorf("invalid budget month %q", k)
		}
		limit, err := decimal.NewFromString(v.String())
		if err != nil {
			return nil, fmt.Errorf("parsing budget for month %d: %w", month, err)
		}
		if limit.IsNegative() {
			return nil, fmt.Errorf("negative budget %s for month %d", limit, month)
		}
		b[month] = limit
	}
	return b, nil
}

func marshal(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
