package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(TransactionInvalidAmount, s.traceID)

	s.NotNil(response)
	s.Equal("TRANSACTION_002", response.Error.Code)
	s.Equal("Please enter a valid amount", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	response := NewErrorResponse(
		ValidationInvalidFilter,
		s.traceID,
		WithMessage("Unknown filter"),
		WithDetails("filter: transfers"),
	)

	s.Equal("VALIDATION_006", response.Error.Code)
	s.Equal("Unknown filter", response.Error.Message)
	s.Equal([]string{"filter: transfers"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_SortedDetails() {
	response := NewValidationError(TransactionInvalidType, map[string]string{
		"type":   "must be income or expense",
		"amount": "is required",
		"date":   "must be YYYY-MM-DD",
	}, s.traceID)

	s.Equal("TRANSACTION_005", response.Error.Code)
	s.Equal("Transaction type must be income or expense", response.Error.Message)
	s.Equal([]string{
		"amount: is required",
		"date: must be YYYY-MM-DD",
		"type: must be income or expense",
	}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewSystemError_GenericBody() {
	response := NewSystemError(s.traceID)

	s.Equal(string(SystemInternalError), response.Error.Code)
	s.Equal(GetErrorMessage(SystemInternalError), response.Error.Message)
	s.Empty(response.Error.Details)
	s.Equal(http.StatusInternalServerError, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationInvalidFilter, http.StatusBadRequest},
		{TransactionInvalidDescription, http.StatusBadRequest},
		{TransactionInvalidDate, http.StatusBadRequest},
		{TransactionInvalidID, http.StatusBadRequest},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemRouteNotFound, http.StatusNotFound},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{LedgerNotPersisted, http.StatusInternalServerError},
		{LedgerExportFailed, http.StatusInternalServerError},
		{SystemDatabaseError, http.StatusInternalServerError},
		{"UNKNOWN_999", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}
