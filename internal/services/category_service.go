package services

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"personal-ledger/internal/models"
)

const fuzzyMatchThreshold = 0.7

type categoryService struct {
	merchantPatterns    map[string]merchantPattern
	merchantOrder       []string
	descriptionPatterns []descriptionPattern
}

type merchantPattern struct {
	category   string
	confidence float64
}

type descriptionPattern struct {
	keywords   []string
	category   string
	confidence float64
}

// NewCategoryService creates a new CategoryServiceInterface instance
func NewCategoryService() CategoryServiceInterface {
	patterns := initMerchantPatterns()
	return &categoryService{
		merchantPatterns:    patterns,
		merchantOrder:       merchantMatchOrder(patterns),
		descriptionPatterns: initDescriptionPatterns(),
	}
}

// merchantMatchOrder lists longer names first so the most specific merchant wins
func merchantMatchOrder(patterns map[string]merchantPattern) []string {
	names := slices.Collect(maps.Keys(patterns))
	slices.SortFunc(names, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return names
}

// CategoriesFor returns the labels valid for transactionType
func (s *categoryService) CategoriesFor(transactionType models.TransactionType) []string {
	return models.CategoriesFor(transactionType)
}

// AllCategories returns the full table keyed by type
func (s *categoryService) AllCategories() map[models.TransactionType][]string {
	return map[models.TransactionType][]string{
		models.TransactionTypeIncome:  models.CategoriesFor(models.TransactionTypeIncome),
		models.TransactionTypeExpense: models.CategoriesFor(models.TransactionTypeExpense),
	}
}

// SuggestCategory tries merchant names, then description keywords, then falls
// back to the catch-all category of the type. Suggestions never cross types.
func (s *categoryService) SuggestCategory(transactionType models.TransactionType, description string) *models.CategorySuggestion {
	fallback := &models.CategorySuggestion{
		Category:   fallbackCategory(transactionType),
		Method:     models.CategorizationMethodFallback,
		Confidence: 0.0,
	}

	if !models.IsValidTransactionType(string(transactionType)) {
		fallback.Category = ""
		return fallback
	}

	if strings.TrimSpace(description) == "" {
		return fallback
	}

	normalized := normalizeForMatching(description)
	for _, merchant := range s.merchantOrder {
		mapping := s.merchantPatterns[merchant]
		if !models.IsValidCategoryForType(transactionType, mapping.category) {
			continue
		}
		if strings.Contains(normalized, normalizeForMatching(merchant)) {
			return &models.CategorySuggestion{
				Category:       mapping.category,
				Method:         models.CategorizationMethodMerchant,
				Confidence:     mapping.confidence,
				MatchedPattern: "Merchant:" + merchant,
			}
		}
	}

	for _, pattern := range s.descriptionPatterns {
		if !models.IsValidCategoryForType(transactionType, pattern.category) {
			continue
		}
		for _, keyword := range pattern.keywords {
			if containsIgnoreCase(description, keyword) {
				return &models.CategorySuggestion{
					Category:       pattern.category,
					Method:         models.CategorizationMethodDescription,
					Confidence:     pattern.confidence,
					MatchedPattern: "Keyword:" + keyword,
				}
			}
		}
	}

	if category, score := s.FuzzyMatchCategory(transactionType, description); category != "" {
		return &models.CategorySuggestion{
			Category:       category,
			Method:         models.CategorizationMethodFuzzy,
			Confidence:     score,
			MatchedPattern: "Category:" + category,
		}
	}

	return fallback
}

// FuzzyMatchCategory compares input against the category labels of the type
func (s *categoryService) FuzzyMatchCategory(transactionType models.TransactionType, input string) (string, float64) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", 0.0
	}

	var bestMatch string
	var bestScore float64

	for _, category := range models.CategoriesFor(transactionType) {
		score := calculateSimilarity(input, strings.ToLower(category))
		if score > bestScore && score > fuzzyMatchThreshold {
			bestScore = score
			bestMatch = category
		}
	}

	return bestMatch, bestScore
}

func fallbackCategory(transactionType models.TransactionType) string {
	switch transactionType {
	case models.TransactionTypeIncome:
		return models.CategoryOtherIncome
	case models.TransactionTypeExpense:
		return models.CategoryOtherExpense
	default:
		return ""
	}
}

// initMerchantPatterns maps well-known payees to categories
func initMerchantPatterns() map[string]merchantPattern {
	return map[string]merchantPattern{
		// Food
		"Walmart":     {category: models.CategoryFood, confidence: 0.90},
		"Kroger":      {category: models.CategoryFood, confidence: 0.95},
		"Safeway":     {category: models.CategoryFood, confidence: 0.95},
		"Whole Foods": {category: models.CategoryFood, confidence: 0.95},
		"Trader Joe":  {category: models.CategoryFood, confidence: 0.95},
		"Aldi":        {category: models.CategoryFood, confidence: 0.95},
		"Starbucks":   {category: models.CategoryFood, confidence: 0.95},
		"McDonald":    {category: models.CategoryFood, confidence: 0.95},
		"Chipotle":    {category: models.CategoryFood, confidence: 0.95},
		"Pizza Hut":   {category: models.CategoryFood, confidence: 0.95},

		// Transportation
		"Uber":    {category: models.CategoryTransportation, confidence: 0.95},
		"Lyft":    {category: models.CategoryTransportation, confidence: 0.95},
		"Shell":   {category: models.CategoryTransportation, confidence: 0.95},
		"Chevron": {category: models.CategoryTransportation, confidence: 0.95},
		"Amtrak":  {category: models.CategoryTransportation, confidence: 0.95},

		// Entertainment
		"Netflix": {category: models.CategoryEntertainment, confidence: 0.95},
		"Spotify": {category: models.CategoryEntertainment, confidence: 0.95},
		"AMC":     {category: models.CategoryEntertainment, confidence: 0.95},
		"Hulu":    {category: models.CategoryEntertainment, confidence: 0.95},
		"Disney":  {category: models.CategoryEntertainment, confidence: 0.90},

		// Shopping
		"Amazon":     {category: models.CategoryShopping, confidence: 0.95},
		"Best Buy":   {category: models.CategoryShopping, confidence: 0.95},
		"Target":     {category: models.CategoryShopping, confidence: 0.90},
		"Home Depot": {category: models.CategoryShopping, confidence: 0.95},
		"Ikea":       {category: models.CategoryShopping, confidence: 0.95},

		// Utilities
		"AT&T":     {category: models.CategoryUtilities, confidence: 0.95},
		"Verizon":  {category: models.CategoryUtilities, confidence: 0.95},
		"Comcast":  {category: models.CategoryUtilities, confidence: 0.95},
		"PG&E":     {category: models.CategoryUtilities, confidence: 0.95},
		"T-Mobile": {category: models.CategoryUtilities, confidence: 0.95},

		// Healthcare
		"CVS":       {category: models.CategoryHealthcare, confidence: 0.95},
		"Walgreens": {category: models.CategoryHealthcare, confidence: 0.95},
		"Kaiser":    {category: models.CategoryHealthcare, confidence: 0.95},

		// Education
		"Udemy":    {category: models.CategoryEducation, confidence: 0.95},
		"Coursera": {category: models.CategoryEducation, confidence: 0.95},

		// Income
		"Upwork":   {category: models.CategoryFreelance, confidence: 0.95},
		"Fiverr":   {category: models.CategoryFreelance, confidence: 0.95},
		"Vanguard": {category: models.CategoryInvestments, confidence: 0.90},
	}
}

// initDescriptionPatterns initializes keyword-based categorization patterns
func initDescriptionPatterns() []descriptionPattern {
	return []descriptionPattern{
		{
			keywords:   []string{"Salary", "Payroll", "Paycheck", "Wage", "Direct Deposit", "Bonus"},
			category:   models.CategorySalary,
			confidence: 0.95,
		},
		{
			keywords:   []string{"Invoice", "Freelance", "Contract", "Consulting", "Gig"},
			category:   models.CategoryFreelance,
			confidence: 0.85,
		},
		{
			keywords:   []string{"Dividend", "Interest", "Stock", "Crypto", "Capital Gain"},
			category:   models.CategoryInvestments,
			confidence: 0.90,
		},
		{
			keywords:   []string{"Gift", "Birthday", "Present"},
			category:   models.CategoryGifts,
			confidence: 0.80,
		},
		{
			keywords:   []string{"Rent", "Mortgage", "Landlord", "HOA", "Property Tax"},
			category:   models.CategoryHousing,
			confidence: 0.95,
		},
		{
			keywords:   []string{"Grocer", "Restaurant", "Lunch", "Dinner", "Breakfast", "Coffee", "Cafe"},
			category:   models.CategoryFood,
			confidence: 0.85,
		},
		{
			keywords:   []string{"Fuel", "Gas Station", "Parking", "Taxi", "Bus", "Train", "Toll"},
			category:   models.CategoryTransportation,
			confidence: 0.85,
		},
		{
			keywords:   []string{"Electric", "Water Bill", "Internet", "Phone Bill", "Utility"},
			category:   models.CategoryUtilities,
			confidence: 0.90,
		},
		{
			keywords:   []string{"Movie", "Concert", "Cinema", "Game", "Streaming"},
			category:   models.CategoryEntertainment,
			confidence: 0.80,
		},
		{
			keywords:   []string{"Doctor", "Dentist", "Pharmacy", "Hospital", "Clinic", "Insurance"},
			category:   models.CategoryHealthcare,
			confidence: 0.90,
		},
		{
			keywords:   []string{"Tuition", "Course", "Book", "School", "Class"},
			category:   models.CategoryEducation,
			confidence: 0.85,
		},
		{
			keywords:   []string{"Clothes", "Shoes", "Mall", "Store", "Purchase"},
			category:   models.CategoryShopping,
			confidence: 0.70,
		},
	}
}

// calculateSimilarity calculates the similarity score between two strings using Levenshtein distance
func calculateSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}

	if len(s1) == 0 || len(s2) == 0 {
		return 0.0
	}

	distance := levenshteinDistance(s1, s2)
	maxLen := max(len(s1), len(s2))

	return 1.0 - float64(distance)/float64(maxLen)
}

// levenshteinDistance calculates the Levenshtein distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// normalizeForMatching normalizes strings for consistent matching
func normalizeForMatching(s string) string {
	s = strings.ToLower(s)
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", "")
	return s
}
