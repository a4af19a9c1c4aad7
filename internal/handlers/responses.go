package handlers

import (
	"log/slog"
	"net/http"

	"personal-ledger/internal/errors"
	"personal-ledger/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Error responses go through SendError (4xx and business outcomes) or
// SendSystemError (500, internal details hidden). Handlers do not build
// echo.HTTPError values or call c.JSON with an error body directly.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty" swaggertype:"object"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError logs err and answers with the generic internal error body
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	slog.ErrorContext(c.Request().Context(), "Request failed",
		slog.String("trace_id", traceID),
		slog.String("error", err.Error()),
	)
	return c.JSON(http.StatusInternalServerError, errors.NewSystemError(traceID))
}

// SendValidationError reports request validation failures. The code follows
// the first failing field.
func SendValidationError(c echo.Context, err error) error {
	code := errors.ValidationGeneral
	if validationErrs, ok := err.(validator.ValidationErrors); ok && len(validationErrs) > 0 {
		code = errors.FieldErrorCode(validationErrs[0].Field())
	}
	return SendError(c, code, errors.WithDetails(validation.FormatErrors(err)...))
}
