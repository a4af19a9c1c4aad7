package dto

import (
	"bytes"
	"encoding/json"
	"strings"

	"personal-ledger/internal/models"
)

// AmountInput accepts an amount sent either as a JSON number or a string.
// Parsing is left to the ledger so an unusable amount is reported in field order.
type AmountInput string

func (a *AmountInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = AmountInput(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = AmountInput(n.String())
	return nil
}

// CreateTransactionRequest is the body of POST /transactions. Only the type is
// checked up front; every other field is validated by the ledger in order.
type CreateTransactionRequest struct {
	Type        string      `json:"type" validate:"required,transaction_type"`
	Description string      `json:"description" validate:"max=500"`
	Amount      AmountInput `json:"amount"`
	Category    string      `json:"category"`
	Date        string      `json:"date"`
}

// ToDraft converts the request into a draft. An unparseable date becomes a
// missing one.
func (r CreateTransactionRequest) ToDraft() models.Draft {
	draft := models.Draft{
		Type:        models.TransactionType(r.Type),
		Description: r.Description,
		Amount:      models.ParseAmount(string(r.Amount)),
		Category:    strings.TrimSpace(r.Category),
	}

	if date, err := models.ParseDate(r.Date); err == nil {
		draft.Date = &date
	}

	return draft
}

// ListTransactionsQuery contains the listing filter
type ListTransactionsQuery struct {
	Filter string `query:"filter" validate:"omitempty,ledger_filter"`
}

// ExportQuery contains the export filter and optional date window
type ExportQuery struct {
	Filter string `query:"filter" validate:"omitempty,ledger_filter"`
	From   string `query:"from" validate:"omitempty,ledger_date"`
	To     string `query:"to" validate:"omitempty,ledger_date"`
}

// TransactionResponse is the API form of a transaction
type TransactionResponse struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	DisplayDate string `json:"displayDate"`
}

// NewTransactionResponse formats a transaction for display
func NewTransactionResponse(t models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Type:        string(t.Type),
		Description: t.Description,
		Amount:      models.FormatAmount(t.Amount),
		Category:    t.Category,
		Date:        t.Date.String(),
		DisplayDate: t.Date.Display(),
	}
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Filter       string                `json:"filter"`
	Count        int                   `json:"count"`
	Message      string                `json:"message,omitempty"`
}

// CreateTransactionResponse represents the response for an added transaction
type CreateTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Message     string              `json:"message"`
	Warning     string              `json:"warning,omitempty"`
}

// RemoveTransactionResponse represents the response for a removal
type RemoveTransactionResponse struct {
	ID      int64  `json:"id"`
	Removed bool   `json:"removed"`
	Message string `json:"message"`
	Warning string `json:"warning,omitempty"`
}
