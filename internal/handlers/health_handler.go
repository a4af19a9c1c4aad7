package handlers

import (
	"net/http"
	"time"

	"personal-ledger/internal/errors"
	"personal-ledger/internal/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db     *gorm.DB
	ledger services.LedgerServiceInterface
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db *gorm.DB, ledger services.LedgerServiceInterface) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, ledger: ledger}
}

// HealthCheck reports storage connectivity and the in-memory ledger size
// @Summary Health check
// @Description Check API and database connectivity status
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,transactions=int} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	if err := sqlDB.Ping(); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":       "healthy",
		"time":         time.Now().UTC().Format(time.RFC3339),
		"transactions": h.ledger.Count(),
	})
}
