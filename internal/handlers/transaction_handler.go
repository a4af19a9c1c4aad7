package handlers

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"net/http"

	"personal-ledger/internal/dto"
	"personal-ledger/internal/errors"
	"personal-ledger/internal/models"
	"personal-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	msgTransactionAdded   = "Transaction added successfully!"
	msgTransactionRemoved = "Transaction removed successfully!"
	msgNothingRemoved     = "No transaction with this ID, nothing removed"
	msgNoTransactions     = "No transactions found"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	xlsxFilename    = "transactions.xlsx"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	ledger   services.LedgerServiceInterface
	exporter services.ExportServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	ledger services.LedgerServiceInterface,
	exporter services.ExportServiceInterface,
) *TransactionHandler {
	return &TransactionHandler{
		ledger:   ledger,
		exporter: exporter,
	}
}

// ListTransactions returns the filtered ledger, newest first
// @Summary List transactions
// @Tags Transactions
// @Produce json
// @Param filter query string false "Transaction type filter" Enums(all, income, expense)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid filter"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	var query dto.ListTransactionsQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(query); err != nil {
		return SendValidationError(c, err)
	}

	filter := parseFilter(query.Filter)
	transactions := h.ledger.List(filter)

	response := dto.ListTransactionsResponse{
		Transactions: make([]dto.TransactionResponse, 0, len(transactions)),
		Filter:       string(filter),
		Count:        len(transactions),
	}
	for _, t := range transactions {
		response.Transactions = append(response.Transactions, dto.NewTransactionResponse(t))
	}
	if len(transactions) == 0 {
		response.Message = msgNoTransactions
	}

	return c.JSON(http.StatusOK, response)
}

// CreateTransaction validates and records a new transaction
// @Summary Add a transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.CreateTransactionResponse "Added; warning is set when the change was not saved"
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_001..005 - First invalid field"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	transaction, err := h.ledger.Add(req.ToDraft())

	var warning string
	if err != nil {
		var verr *models.ValidationError
		if stderrors.As(err, &verr) {
			return SendError(c, errors.FieldErrorCode(verr.Field),
				errors.WithMessage(verr.Message()),
				errors.WithDetails(verr.Field),
			)
		}
		if !stderrors.Is(err, services.ErrNotPersisted) || transaction == nil {
			return SendSystemError(c, err)
		}
		warning = h.notPersistedWarning(c, err)
	}

	return c.JSON(http.StatusCreated, dto.CreateTransactionResponse{
		Transaction: dto.NewTransactionResponse(*transaction),
		Message:     msgTransactionAdded,
		Warning:     warning,
	})
}

// DeleteTransaction removes a transaction; an unknown id is not an error
// @Summary Remove a transaction
// @Tags Transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.RemoveTransactionResponse
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_006 - Invalid transaction ID"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := getIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.TransactionInvalidID, errors.WithDetails(c.Param("id")))
	}

	removed, err := h.ledger.Remove(id)

	var warning string
	if err != nil {
		if !stderrors.Is(err, services.ErrNotPersisted) {
			return SendSystemError(c, err)
		}
		warning = h.notPersistedWarning(c, err)
	}

	message := msgTransactionRemoved
	if !removed {
		message = msgNothingRemoved
	}

	return c.JSON(http.StatusOK, dto.RemoveTransactionResponse{
		ID:      id,
		Removed: removed,
		Message: message,
		Warning: warning,
	})
}

// ExportTransactions streams the filtered ledger as an XLSX workbook
// @Summary Export transactions
// @Tags Transactions
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param filter query string false "Transaction type filter" Enums(all, income, expense)
// @Param from query string false "First date to include (YYYY-MM-DD)"
// @Param to query string false "Last date to include (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005/006 - Invalid date or filter"
// @Failure 500 {object} errors.ErrorResponse "LEDGER_002 - Export failed"
// @Router /transactions/export.xlsx [get]
func (h *TransactionHandler) ExportTransactions(c echo.Context) error {
	var query dto.ExportQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(query); err != nil {
		return SendValidationError(c, err)
	}

	from, err := parseOptionalDate(query.From)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("from"))
	}
	to, err := parseOptionalDate(query.To)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("to"))
	}

	var buf bytes.Buffer
	if err := h.exporter.WriteXLSX(&buf, parseFilter(query.Filter), from, to); err != nil {
		slog.Error("Export failed",
			"trace_id", getTraceID(c),
			"error", err,
		)
		return SendError(c, errors.LedgerExportFailed)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+xlsxFilename+`"`)
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *TransactionHandler) notPersistedWarning(c echo.Context, err error) string {
	slog.Warn("Ledger change not persisted",
		"trace_id", getTraceID(c),
		"client_ip", getClientIP(c),
		"error", err,
	)
	return errors.GetErrorMessage(errors.LedgerNotPersisted)
}
