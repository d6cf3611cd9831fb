package id

import (
	"strconv"
	"strings"

	"github.com/spendcli/spend/internal/model"
)

// Parse parses a CLI id argument. Ids are positive integers.
func Parse(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, &model.ValidationError{Field: "id", Value: s, Reason: "must be a positive integer"}
	}
	return n, nil
}

// Validate checks an already-typed id.
func Validate(n int) error {
	if n <= 0 {
		return &model.ValidationError{Field: "id", Value: strconv.Itoa(n), Reason: "must be a positive integer"}
	}
	return nil
}

// Next returns the id for a new expense: one past the highest id in use.
// For a collection with no gaps this equals len(expenses)+1.
func Next(expenses []model.Expense) int {
	maxID := 0
	for _, e := range expenses {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return maxID + 1
}

// Index returns the position of the first expense with the given id, or -1.
func Index(expenses []model.Expense, n int) int {
	for i, e := range expenses {
		if e.ID == n {
			return i
		}
	}
	return -1
}
