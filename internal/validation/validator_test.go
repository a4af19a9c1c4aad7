package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Type   string `json:"type" validate:"required,transaction_type"`
	Date   string `json:"date" validate:"omitempty,ledger_date"`
	Filter string `query:"filter" validate:"omitempty,ledger_filter"`
	Note   string `json:"note" validate:"max=5"`
}

func TestValidator_AcceptsValidInput(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(sampleRequest{Type: "income"}))
	assert.NoError(t, v.Struct(sampleRequest{Type: "expense", Date: "2024-02-29", Filter: "all"}))
	assert.NoError(t, v.Struct(sampleRequest{Type: "expense", Filter: "income"}))
}

func TestValidator_CustomRules(t *testing.T) {
	testCases := []struct {
		name    string
		request sampleRequest
		detail  string
	}{
		{"missing type", sampleRequest{}, "type: is required"},
		{"unknown type", sampleRequest{Type: "transfer"}, "type: must be income or expense"},
		{"uppercase type", sampleRequest{Type: "INCOME"}, "type: must be income or expense"},
		{"bad date", sampleRequest{Type: "income", Date: "2023-02-29"}, "date: must be a date in YYYY-MM-DD format"},
		{"slash date", sampleRequest{Type: "income", Date: "01/02/2024"}, "date: must be a date in YYYY-MM-DD format"},
		{"bad filter", sampleRequest{Type: "income", Filter: "transfers"}, "filter: must be all, income or expense"},
		{"too long", sampleRequest{Type: "income", Note: "toolong"}, "note: must be at most 5 characters long"},
	}

	v := NewValidator()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.request)
			require.Error(t, err)
			assert.Equal(t, []string{tc.detail}, FormatErrors(err))
		})
	}
}

func TestFormatErrors_NonValidationError(t *testing.T) {
	assert.Equal(t, []string{"boom"}, FormatErrors(errors.New("boom")))
}

func TestGetValidator_ReturnsSameInstance(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
	assert.NotNil(t, GetValidator().GetValidate())
}
