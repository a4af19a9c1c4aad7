package dto

import "personal-ledger/internal/models"

// SummaryResponse contains the formatted ledger totals
type SummaryResponse struct {
	Income        string `json:"income"`
	Expense       string `json:"expense"`
	Balance       string `json:"balance"`
	BalanceStatus string `json:"balanceStatus"`
}

// NewSummaryResponse formats totals with two decimals
func NewSummaryResponse(s models.Summary) SummaryResponse {
	return SummaryResponse{
		Income:        models.FormatAmount(s.Income),
		Expense:       models.FormatAmount(s.Expense),
		Balance:       models.FormatAmount(s.Balance),
		BalanceStatus: s.BalanceStatus(),
	}
}

// CategoriesQuery selects the category set to list
type CategoriesQuery struct {
	Type string `query:"type" validate:"omitempty,transaction_type"`
}

// CategoriesResponse lists category labels, for one type or keyed by type
type CategoriesResponse struct {
	Type       string              `json:"type,omitempty"`
	Categories []string            `json:"categories,omitempty"`
	All        map[string][]string `json:"all,omitempty"`
}

// SuggestCategoryQuery carries the text to categorize
type SuggestCategoryQuery struct {
	Type        string `query:"type" validate:"required,transaction_type"`
	Description string `query:"description" validate:"max=500"`
}

// CategorySuggestionResponse is the API form of a category suggestion
type CategorySuggestionResponse struct {
	Category       string  `json:"category"`
	Method         string  `json:"method"`
	Confidence     float64 `json:"confidence"`
	MatchedPattern string  `json:"matchedPattern,omitempty"`
}
