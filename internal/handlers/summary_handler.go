package handlers

import (
	"net/http"

	"personal-ledger/internal/dto"
	"personal-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// SummaryHandler serves the ledger totals
type SummaryHandler struct {
	ledger services.LedgerServiceInterface
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(ledger services.LedgerServiceInterface) *SummaryHandler {
	return &SummaryHandler{ledger: ledger}
}

// GetSummary returns income, expense and balance over the whole ledger
// @Summary Ledger totals
// @Tags Summary
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Router /summary [get]
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewSummaryResponse(h.ledger.Summary()))
}
