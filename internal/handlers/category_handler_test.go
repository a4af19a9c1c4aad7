package handlers

import (
	"encoding/json"
	"net/http"

	"personal-ledger/internal/dto"
	"personal-ledger/internal/models"
)

func (s *TransactionHandlerTestSuite) TestListCategories_ForType() {
	s.categories.EXPECT().CategoriesFor(models.TransactionTypeIncome).Return(models.CategoriesFor(models.TransactionTypeIncome))

	rec := s.serve(http.MethodGet, "/api/v1/categories?type=income", "")

	s.Equal(http.StatusOK, rec.Code)
	var response dto.CategoriesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("income", response.Type)
	s.Contains(response.Categories, models.CategorySalary)
	s.Nil(response.All)
}

func (s *TransactionHandlerTestSuite) TestListCategories_All() {
	s.categories.EXPECT().AllCategories().Return(map[models.TransactionType][]string{
		models.TransactionTypeIncome:  models.CategoriesFor(models.TransactionTypeIncome),
		models.TransactionTypeExpense: models.CategoriesFor(models.TransactionTypeExpense),
	})

	rec := s.serve(http.MethodGet, "/api/v1/categories", "")

	s.Equal(http.StatusOK, rec.Code)
	var response dto.CategoriesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.All, 2)
	s.Contains(response.All["expense"], models.CategoryHousing)
}

func (s *TransactionHandlerTestSuite) TestListCategories_InvalidType() {
	rec := s.serve(http.MethodGet, "/api/v1/categories?type=transfer", "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("TRANSACTION_005", s.decodeError(rec).Error.Code)
}

func (s *TransactionHandlerTestSuite) TestSuggestCategory() {
	s.categories.EXPECT().SuggestCategory(models.TransactionTypeExpense, "Whole Foods run").Return(&models.CategorySuggestion{
		Category:       models.CategoryFood,
		Method:         models.CategorizationMethodMerchant,
		Confidence:     0.95,
		MatchedPattern: "Merchant:Whole Foods",
	})

	rec := s.serve(http.MethodGet, "/api/v1/categories/suggest?type=expense&description=Whole+Foods+run", "")

	s.Equal(http.StatusOK, rec.Code)
	var response dto.CategorySuggestionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(models.CategoryFood, response.Category)
	s.Equal(models.CategorizationMethodMerchant, response.Method)
	s.InDelta(0.95, response.Confidence, 0.0001)
}

func (s *TransactionHandlerTestSuite) TestSuggestCategory_MissingType() {
	rec := s.serve(http.MethodGet, "/api/v1/categories/suggest?description=rent", "")

	s.Equal(http.StatusBadRequest, rec.Code)
	response := s.decodeError(rec)
	s.Equal("TRANSACTION_005", response.Error.Code)
	s.Equal([]string{"type: is required"}, response.Error.Details)
}
