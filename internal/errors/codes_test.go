package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "Invalid Description",
			code:     TransactionInvalidDescription,
			expected: "Please enter a description",
		},
		{
			name:     "Invalid Amount",
			code:     TransactionInvalidAmount,
			expected: "Please enter a valid amount",
		},
		{
			name:     "Invalid Category",
			code:     TransactionInvalidCategory,
			expected: "Please select a category",
		},
		{
			name:     "Invalid Date",
			code:     TransactionInvalidDate,
			expected: "Please select a date",
		},
		{
			name:     "Not Persisted",
			code:     LedgerNotPersisted,
			expected: "Change applied but could not be saved",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred. Please contact support with trace ID",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

// TestGetErrorMessage_InvalidCode tests getting message for invalid error code
func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
	s.Equal("An error occurred", GetErrorMessage(""))
}

// TestErrorMessages_EveryCodeRegistered tests that each declared code has its own message
func (s *CodesTestSuite) TestErrorMessages_EveryCodeRegistered() {
	validCodes := []ErrorCode{
		ValidationGeneral,
		ValidationRequiredField,
		ValidationInvalidFormat,
		ValidationOutOfRange,
		ValidationInvalidDate,
		ValidationInvalidFilter,
		TransactionInvalidDescription,
		TransactionInvalidAmount,
		TransactionInvalidCategory,
		TransactionInvalidDate,
		TransactionInvalidType,
		TransactionInvalidID,
		LedgerNotPersisted,
		LedgerExportFailed,
		SystemInternalError,
		SystemDatabaseError,
		SystemServiceUnavailable,
		SystemConfigurationError,
		SystemUnexpectedError,
		SystemRateLimitExceeded,
		SystemRouteNotFound,
	}

	for _, code := range validCodes {
		s.Run(string(code), func() {
			s.Contains(errorMessages, code)
			s.NotEqual("An error occurred", GetErrorMessage(code))
		})
	}

	s.Len(errorMessages, len(validCodes))
	s.Equal("An error occurred", GetErrorMessage("AUTH_001"))
}

// TestErrorCodes_FollowNamingConvention checks the PREFIX_NNN format
func (s *CodesTestSuite) TestErrorCodes_FollowNamingConvention() {
	prefixes := []string{"VALIDATION_", "TRANSACTION_", "LEDGER_", "SYSTEM_"}

	for code := range errorMessages {
		matched := false
		for _, prefix := range prefixes {
			if strings.HasPrefix(string(code), prefix) {
				matched = true
				s.Len(strings.TrimPrefix(string(code), prefix), 3, "code %s", code)
			}
		}
		s.True(matched, "code %s has an unknown prefix", code)
	}
}

// TestFieldErrorCode tests mapping of request fields to codes
func (s *CodesTestSuite) TestFieldErrorCode() {
	s.Equal(TransactionInvalidDescription, FieldErrorCode("description"))
	s.Equal(TransactionInvalidAmount, FieldErrorCode("amount"))
	s.Equal(TransactionInvalidCategory, FieldErrorCode("category"))
	s.Equal(TransactionInvalidDate, FieldErrorCode("date"))
	s.Equal(TransactionInvalidType, FieldErrorCode("type"))
	s.Equal(ValidationInvalidFilter, FieldErrorCode("filter"))
	s.Equal(ValidationInvalidDate, FieldErrorCode("from"))
	s.Equal(ValidationInvalidDate, FieldErrorCode("to"))
	s.Equal(ValidationGeneral, FieldErrorCode("memo"))
}
