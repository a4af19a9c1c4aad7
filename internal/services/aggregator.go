package services

import (
	"slices"

	"personal-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// FilteredSorted returns the transactions matching filter, newest date first.
// Transactions on the same date keep their ledger order.
func FilteredSorted(ledger models.Ledger, filter models.Filter) []models.Transaction {
	out := make([]models.Transaction, 0, len(ledger))
	for i := range ledger {
		if filter.Matches(&ledger[i]) {
			out = append(out, ledger[i])
		}
	}

	slices.SortStableFunc(out, func(a, b models.Transaction) int {
		return b.Date.Compare(a.Date.Time)
	})

	return out
}

// Summarize totals income and expense across the whole ledger
func Summarize(ledger models.Ledger) models.Summary {
	income := decimal.Zero
	expense := decimal.Zero

	for i := range ledger {
		t := &ledger[i]
		switch {
		case t.IsIncome():
			income = income.Add(t.Amount)
		case t.IsExpense():
			expense = expense.Add(t.Amount)
		}
	}

	return models.Summary{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}
