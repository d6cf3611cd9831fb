package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendcli/spend/internal/model"
)

// Header is the CSV header for exported expenses.
const Header = "id,date,description,amount,category"

const (
	numFields = 5
	colID     = 0
	colDate   = 1
	colDesc   = 2
	colAmount = 3
	colCat    = 4
)

// WriteExpenses writes expenses as CSV, including the header.
func WriteExpenses(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range expenses {
		if err := cw.Write(MarshalExpense(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadExpenses reads CSV produced by WriteExpenses.
func ReadExpenses(r io.Reader) ([]model.Expense, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading expenses CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var expenses []model.Expense
	for i, rec := range records[1:] {
		e, err := UnmarshalExpense(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

// MarshalExpense converts an Expense to a CSV row.
func MarshalExpense(e model.Expense) []string {
	row := make([]string, numFields)
	row[colID] = strconv.Itoa(e.ID)
	row[colDate] = e.Date.Format(model.DateFormat)
	row[colDesc] = e.Description
	row[colAmount] = e.Amount.StringFixed(2)
	row[colCat] = e.Category
	return row
}

// UnmarshalExpense converts a CSV row to an Expense.
func UnmarshalExpense(record []string) (model.Expense, error) {
	if len(record) != numFields {
		return model.Expense{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	expenseID, err := strconv.Atoi(record[colID])
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing id %q: %w", record[colID], err)
	}

	date, err := time.Parse(model.DateFormat, record[colDate])
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return model.Expense{
		ID:          expenseID,
		Date:        date,
		Description: record[colDesc],
		Amount:      amount,
		Category:    record[colCat],
	}, nil
}
