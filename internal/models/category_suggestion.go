package models

// Suggestion methods
const (
	CategorizationMethodMerchant    = "merchant"
	CategorizationMethodDescription = "description"
	CategorizationMethodFuzzy       = "fuzzy"
	CategorizationMethodFallback    = "fallback"
)

// CategorySuggestion is the outcome of suggesting a category from free text
type CategorySuggestion struct {
	Category       string  `json:"category"`
	Method         string  `json:"method"`
	Confidence     float64 `json:"confidence"`
	MatchedPattern string  `json:"matched_pattern,omitempty"`
}

// MerchantInfo is a known payee or payer and the category it books to
type MerchantInfo struct {
	Name     string
	Category string
}
