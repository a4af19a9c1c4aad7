package handlers

import (
	"net/http"

	"personal-ledger/internal/dto"
	"personal-ledger/internal/errors"
	"personal-ledger/internal/models"
	"personal-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler serves the category table and suggestions
type CategoryHandler struct {
	categories services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categories services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// ListCategories returns the labels for one type, or all of them keyed by type
// @Summary List categories
// @Tags Categories
// @Produce json
// @Param type query string false "Transaction type" Enums(income, expense)
// @Success 200 {object} dto.CategoriesResponse
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_005 - Invalid type"
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	var query dto.CategoriesQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(query); err != nil {
		return SendValidationError(c, err)
	}

	if query.Type != "" {
		return c.JSON(http.StatusOK, dto.CategoriesResponse{
			Type:       query.Type,
			Categories: h.categories.CategoriesFor(models.TransactionType(query.Type)),
		})
	}

	all := make(map[string][]string)
	for transactionType, labels := range h.categories.AllCategories() {
		all[string(transactionType)] = labels
	}
	return c.JSON(http.StatusOK, dto.CategoriesResponse{All: all})
}

// SuggestCategory proposes a category for a description
// @Summary Suggest a category
// @Tags Categories
// @Produce json
// @Param type query string true "Transaction type" Enums(income, expense)
// @Param description query string false "Transaction description"
// @Success 200 {object} dto.CategorySuggestionResponse
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_005 - Invalid type"
// @Router /categories/suggest [get]
func (h *CategoryHandler) SuggestCategory(c echo.Context) error {
	var query dto.SuggestCategoryQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(query); err != nil {
		return SendValidationError(c, err)
	}

	suggestion := h.categories.SuggestCategory(models.TransactionType(query.Type), query.Description)

	return c.JSON(http.StatusOK, dto.CategorySuggestionResponse{
		Category:       suggestion.Category,
		Method:         suggestion.Method,
		Confidence:     suggestion.Confidence,
		MatchedPattern: suggestion.MatchedPattern,
	})
}
