package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handlers groups the API handlers for route registration
type Handlers struct {
	Transactions *TransactionHandler
	Summary      *SummaryHandler
	Categories   *CategoryHandler
	Health       *HealthCheckHandler
	Metrics      http.Handler
}

// RegisterRoutes mounts the API under /api/v1 plus /health and /metrics
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/health", h.Health.HealthCheck)
	if h.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(h.Metrics))
	}

	api := e.Group("/api/v1")

	api.GET("/transactions", h.Transactions.ListTransactions)
	api.POST("/transactions", h.Transactions.CreateTransaction)
	api.GET("/transactions/export.xlsx", h.Transactions.ExportTransactions)
	api.DELETE("/transactions/:id", h.Transactions.DeleteTransaction)

	api.GET("/summary", h.Summary.GetSummary)

	api.GET("/categories", h.Categories.ListCategories)
	api.GET("/categories/suggest", h.Categories.SuggestCategory)
}
