package services

import (
	"testing"

	"personal-ledger/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	service *categoryService
}

func TestCategoryServiceSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func (s *CategoryServiceTestSuite) SetupTest() {
	s.service = NewCategoryService().(*categoryService)
}

func (s *CategoryServiceTestSuite) TestAllCategories_KeyedByType() {
	all := s.service.AllCategories()

	s.Len(all, 2)
	s.Equal(models.CategoriesFor(models.TransactionTypeIncome), all[models.TransactionTypeIncome])
	s.Equal(models.CategoriesFor(models.TransactionTypeExpense), all[models.TransactionTypeExpense])
}

func (s *CategoryServiceTestSuite) TestCategoriesFor_UnknownType() {
	s.Empty(s.service.CategoriesFor("transfer"))
}

func (s *CategoryServiceTestSuite) TestSuggestCategory_Merchant() {
	testCases := []struct {
		transactionType models.TransactionType
		description     string
		expected        string
	}{
		{models.TransactionTypeExpense, "Purchase at Whole Foods Market", models.CategoryFood},
		{models.TransactionTypeExpense, "UBER *TRIP 8812", models.CategoryTransportation},
		{models.TransactionTypeExpense, "netflix.com subscription", models.CategoryEntertainment},
		{models.TransactionTypeExpense, "Best-Buy store #12", models.CategoryShopping},
		{models.TransactionTypeIncome, "Upwork payout", models.CategoryFreelance},
	}

	for _, tc := range testCases {
		s.Run(tc.description, func() {
			suggestion := s.service.SuggestCategory(tc.transactionType, tc.description)
			s.Equal(tc.expected, suggestion.Category)
			s.Equal(models.CategorizationMethodMerchant, suggestion.Method)
			s.Greater(suggestion.Confidence, 0.8)
			s.Contains(suggestion.MatchedPattern, "Merchant:")
		})
	}
}

func (s *CategoryServiceTestSuite) TestSuggestCategory_Keyword() {
	testCases := []struct {
		transactionType models.TransactionType
		description     string
		expected        string
	}{
		{models.TransactionTypeIncome, "Monthly payroll deposit", models.CategorySalary},
		{models.TransactionTypeIncome, "Quarterly dividend", models.CategoryInvestments},
		{models.TransactionTypeExpense, "Rent", models.CategoryHousing},
		{models.TransactionTypeExpense, "Dentist appointment", models.CategoryHealthcare},
		{models.TransactionTypeExpense, "Parking downtown", models.CategoryTransportation},
	}

	for _, tc := range testCases {
		s.Run(tc.description, func() {
			suggestion := s.service.SuggestCategory(tc.transactionType, tc.description)
			s.Equal(tc.expected, suggestion.Category)
			s.Equal(models.CategorizationMethodDescription, suggestion.Method)
		})
	}
}

func (s *CategoryServiceTestSuite) TestSuggestCategory_NeverCrossesTypes() {
	// "Salary" is an income keyword; an expense must not be categorized as Salary
	suggestion := s.service.SuggestCategory(models.TransactionTypeExpense, "Salary advance fee")
	s.True(models.IsValidCategoryForType(models.TransactionTypeExpense, suggestion.Category))

	// "Rent" is an expense keyword
	suggestion = s.service.SuggestCategory(models.TransactionTypeIncome, "Rent from tenant")
	s.True(models.IsValidCategoryForType(models.TransactionTypeIncome, suggestion.Category))
}

func (s *CategoryServiceTestSuite) TestSuggestCategory_Fuzzy() {
	suggestion := s.service.SuggestCategory(models.TransactionTypeExpense, "Utilitie")

	s.Equal(models.CategoryUtilities, suggestion.Category)
	s.Equal(models.CategorizationMethodFuzzy, suggestion.Method)
	s.Greater(suggestion.Confidence, fuzzyMatchThreshold)
}

func (s *CategoryServiceTestSuite) TestSuggestCategory_Fallback() {
	suggestion := s.service.SuggestCategory(models.TransactionTypeExpense, "zzqx")
	s.Equal(models.CategoryOtherExpense, suggestion.Category)
	s.Equal(models.CategorizationMethodFallback, suggestion.Method)
	s.Zero(suggestion.Confidence)

	suggestion = s.service.SuggestCategory(models.TransactionTypeIncome, "   ")
	s.Equal(models.CategoryOtherIncome, suggestion.Category)
	s.Equal(models.CategorizationMethodFallback, suggestion.Method)
}

func (s *CategoryServiceTestSuite) TestSuggestCategory_InvalidType() {
	suggestion := s.service.SuggestCategory("transfer", "Whole Foods")

	s.Empty(suggestion.Category)
	s.Equal(models.CategorizationMethodFallback, suggestion.Method)
}

func (s *CategoryServiceTestSuite) TestSuggestCategory_AlwaysValidForType() {
	for i := 0; i < 50; i++ {
		description := gofakeit.Sentence(4)
		for _, transactionType := range []models.TransactionType{models.TransactionTypeIncome, models.TransactionTypeExpense} {
			suggestion := s.service.SuggestCategory(transactionType, description)
			s.True(models.IsValidCategoryForType(transactionType, suggestion.Category),
				"%q suggested %q for %s", description, suggestion.Category, transactionType)
		}
	}
}

func (s *CategoryServiceTestSuite) TestFuzzyMatchCategory() {
	category, score := s.service.FuzzyMatchCategory(models.TransactionTypeIncome, "salry")
	s.Equal(models.CategorySalary, category)
	s.Greater(score, fuzzyMatchThreshold)

	category, score = s.service.FuzzyMatchCategory(models.TransactionTypeIncome, "Housing")
	s.Empty(category)
	s.Zero(score)

	category, _ = s.service.FuzzyMatchCategory(models.TransactionTypeExpense, "")
	s.Empty(category)
}

func (s *CategoryServiceTestSuite) TestMerchantMatchOrder_LongestFirst() {
	order := s.service.merchantOrder

	s.Len(order, len(s.service.merchantPatterns))
	for i := 1; i < len(order); i++ {
		s.GreaterOrEqual(len(order[i-1]), len(order[i]))
	}
}

func (s *CategoryServiceTestSuite) TestLevenshteinDistance() {
	s.Equal(0, levenshteinDistance("food", "food"))
	s.Equal(4, levenshteinDistance("", "food"))
	s.Equal(1, levenshteinDistance("food", "foods"))
	s.Equal(3, levenshteinDistance("kitten", "sitting"))
	s.InDelta(1.0, calculateSimilarity("gifts", "gifts"), 0.0001)
	s.InDelta(0.0, calculateSimilarity("", "gifts"), 0.0001)
}
