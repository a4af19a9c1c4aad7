package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Draft {
	date := NewDate(2024, 1, 1)
	return Draft{
		Type:        TransactionTypeIncome,
		Description: "  Salary  ",
		Amount:      NewAmount(decimal.NewFromInt(5000)),
		Category:    CategorySalary,
		Date:        &date,
	}
}

func TestDraft_Validate_Valid(t *testing.T) {
	draft := validDraft()
	assert.Nil(t, draft.Validate())
}

func TestDraft_Validate_FieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Draft)
		wantField string
	}{
		{"empty description", func(d *Draft) { d.Description = "" }, FieldDescription},
		{"whitespace description", func(d *Draft) { d.Description = " \t\n" }, FieldDescription},
		{"missing amount", func(d *Draft) { d.Amount = decimal.NullDecimal{} }, FieldAmount},
		{"zero amount", func(d *Draft) { d.Amount = NewAmount(decimal.Zero) }, FieldAmount},
		{"negative amount", func(d *Draft) { d.Amount = NewAmount(decimal.NewFromInt(-5)) }, FieldAmount},
		{"empty category", func(d *Draft) { d.Category = "" }, FieldCategory},
		{"unknown category", func(d *Draft) { d.Category = "Lottery" }, FieldCategory},
		{"expense category on income", func(d *Draft) { d.Category = CategoryHousing }, FieldCategory},
		{"invalid type", func(d *Draft) { d.Type = "transfer" }, FieldCategory},
		{"missing date", func(d *Draft) { d.Date = nil }, FieldDate},
		{"zero date", func(d *Draft) { d.Date = &Date{} }, FieldDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.modify(&draft)

			verr := draft.Validate()
			require.NotNil(t, verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestDraft_Validate_ShortCircuitsInOrder(t *testing.T) {
	draft := Draft{Type: TransactionTypeExpense}

	verr := draft.Validate()
	require.NotNil(t, verr)
	assert.Equal(t, FieldDescription, verr.Field)

	draft.Description = "Rent"
	assert.Equal(t, FieldAmount, draft.Validate().Field)

	draft.Amount = NewAmount(decimal.NewFromInt(1200))
	assert.Equal(t, FieldCategory, draft.Validate().Field)

	draft.Category = CategoryHousing
	assert.Equal(t, FieldDate, draft.Validate().Field)
}

func TestDraft_ToTransaction_TrimsDescription(t *testing.T) {
	draft := validDraft()
	tx := draft.ToTransaction(99)

	assert.Equal(t, int64(99), tx.ID)
	assert.Equal(t, "Salary", tx.Description)
	assert.True(t, decimal.NewFromInt(5000).Equal(tx.Amount))
	assert.Equal(t, NewDate(2024, 1, 1), tx.Date)
	assert.NoError(t, tx.Validate())
}

func TestValidationError(t *testing.T) {
	verr := &ValidationError{Field: FieldAmount, Err: ErrInvalidAmount}

	assert.Contains(t, verr.Error(), "amount")
	assert.True(t, errors.Is(verr, ErrInvalidAmount))
	assert.Equal(t, "Please enter a valid amount", verr.Message())

	var target *ValidationError
	wrapped := errors.Join(errors.New("context"), verr)
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, FieldAmount, target.Field)
}

func TestParseAmount(t *testing.T) {
	assert.False(t, ParseAmount("").Valid)
	assert.False(t, ParseAmount("abc").Valid)

	amount := ParseAmount(" 12.50 ")
	require.True(t, amount.Valid)
	assert.Equal(t, "12.5", amount.Decimal.String())

	negative := ParseAmount("-5")
	require.True(t, negative.Valid)
	assert.True(t, negative.Decimal.IsNegative())
}
