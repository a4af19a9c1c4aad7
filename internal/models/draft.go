package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Field names reported by ValidationError
const (
	FieldDescription = "description"
	FieldAmount      = "amount"
	FieldCategory    = "category"
	FieldDate        = "date"
)

// Draft is unvalidated transaction input. Amount and Date are optional so a
// missing value can be told apart from an invalid one.
type Draft struct {
	Type        TransactionType
	Description string
	Amount      decimal.NullDecimal
	Category    string
	Date        *Date
}

// ValidationError names the first draft field that failed validation
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Message returns the user-facing prompt for the failed field
func (e *ValidationError) Message() string {
	switch e.Field {
	case FieldDescription:
		return "Please enter a description"
	case FieldAmount:
		return "Please enter a valid amount"
	case FieldCategory:
		return "Please select a category"
	case FieldDate:
		return "Please select a date"
	default:
		return "Please check the transaction details"
	}
}

// Validate checks the draft field by field and returns the first failure.
// Order: description, amount, category, date.
func (d Draft) Validate() *ValidationError {
	if strings.TrimSpace(d.Description) == "" {
		return &ValidationError{Field: FieldDescription, Err: ErrEmptyDescription}
	}

	if !d.Amount.Valid || d.Amount.Decimal.LessThanOrEqual(decimal.Zero) {
		return &ValidationError{Field: FieldAmount, Err: ErrInvalidAmount}
	}

	if strings.TrimSpace(d.Category) == "" || !IsValidCategoryForType(d.Type, d.Category) {
		return &ValidationError{Field: FieldCategory, Err: ErrInvalidCategory}
	}

	if d.Date == nil || d.Date.IsZero() {
		return &ValidationError{Field: FieldDate, Err: ErrMissingDate}
	}

	return nil
}

// ToTransaction builds the accepted transaction. Call only after Validate succeeds.
func (d Draft) ToTransaction(id int64) Transaction {
	return Transaction{
		ID:          id,
		Type:        d.Type,
		Description: strings.TrimSpace(d.Description),
		Amount:      d.Amount.Decimal,
		Category:    d.Category,
		Date:        *d.Date,
	}
}

// NewAmount wraps a decimal as a present draft amount
func NewAmount(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// ParseAmount parses a raw amount string. Unparseable input yields a missing
// amount, which validation reports on the amount field.
func ParseAmount(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return NewAmount(d)
}
