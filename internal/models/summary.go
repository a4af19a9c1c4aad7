package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Filter selects which transaction types a listing shows
type Filter string

const (
	FilterAll     Filter = "all"
	FilterIncome  Filter = "income"
	FilterExpense Filter = "expense"
)

// ParseFilter maps a raw value to a Filter; empty means all
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterIncome, FilterExpense:
		return Filter(s), nil
	default:
		return "", fmt.Errorf("invalid filter %q, must be all, income or expense", s)
	}
}

// Matches reports whether t passes the filter
func (f Filter) Matches(t *Transaction) bool {
	switch f {
	case FilterAll:
		return true
	case FilterIncome:
		return t.IsIncome()
	case FilterExpense:
		return t.IsExpense()
	default:
		return false
	}
}

// Balance states
const (
	BalanceStatusPlus  = "plus"
	BalanceStatusMinus = "minus"
	BalanceStatusZero  = "zero"
)

// Summary contains the ledger totals
type Summary struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// BalanceStatus reports the sign of the balance
func (s Summary) BalanceStatus() string {
	switch s.Balance.Sign() {
	case 1:
		return BalanceStatusPlus
	case -1:
		return BalanceStatusMinus
	default:
		return BalanceStatusZero
	}
}

// FormatAmount renders an amount with two decimal places
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
