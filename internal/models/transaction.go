package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of money for a ledger entry
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrEmptyDescription       = errors.New("transaction description is required")
	ErrInvalidCategory        = errors.New("category is not valid for transaction type")
	ErrMissingDate            = errors.New("transaction date is required")
	ErrDuplicateID            = errors.New("duplicate transaction id")
)

// Transaction is an accepted ledger entry. It is never edited in place.
type Transaction struct {
	ID          int64           `json:"id"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        Date            `json:"date"`
}

// Ledger is the full set of recorded transactions in insertion order
type Ledger []Transaction

// Validate checks the invariants every stored transaction must hold
func (t *Transaction) Validate() error {
	if !IsValidTransactionType(string(t.Type)) {
		return ErrInvalidTransactionType
	}

	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if !IsValidCategoryForType(t.Type, t.Category) {
		return ErrInvalidCategory
	}

	if t.Date.IsZero() {
		return ErrMissingDate
	}

	return nil
}

// IsIncome returns true for income entries
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense returns true for expense entries
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch TransactionType(transactionType) {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// Validate checks every entry and that ids are pairwise distinct
func (l Ledger) Validate() error {
	seen := make(map[int64]struct{}, len(l))
	for i := range l {
		if err := l[i].Validate(); err != nil {
			return err
		}
		if _, exists := seen[l[i].ID]; exists {
			return ErrDuplicateID
		}
		seen[l[i].ID] = struct{}{}
	}
	return nil
}

// Contains reports whether a transaction with the given id is present
func (l Ledger) Contains(id int64) bool {
	return l.IndexOf(id) >= 0
}

// IndexOf returns the position of the transaction with the given id, or -1
func (l Ledger) IndexOf(id int64) int {
	for i := range l {
		if l[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a copy that shares no backing array with l
func (l Ledger) Clone() Ledger {
	if l == nil {
		return Ledger{}
	}
	out := make(Ledger, len(l))
	copy(out, l)
	return out
}
