package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidFilter ErrorCode = "VALIDATION_006"
)

// Transaction error codes (TRANSACTION_*), one per rejected draft field
const (
	TransactionInvalidDescription ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount      ErrorCode = "TRANSACTION_002"
	TransactionInvalidCategory    ErrorCode = "TRANSACTION_003"
	TransactionInvalidDate        ErrorCode = "TRANSACTION_004"
	TransactionInvalidType        ErrorCode = "TRANSACTION_005"
	TransactionInvalidID          ErrorCode = "TRANSACTION_006"
)

// Ledger error codes (LEDGER_*)
const (
	LedgerNotPersisted ErrorCode = "LEDGER_001"
	LedgerExportFailed ErrorCode = "LEDGER_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format, use YYYY-MM-DD",
	ValidationInvalidFilter: "Filter must be all, income or expense",

	// Transaction errors
	TransactionInvalidDescription: "Please enter a description",
	TransactionInvalidAmount:      "Please enter a valid amount",
	TransactionInvalidCategory:    "Please select a category",
	TransactionInvalidDate:        "Please select a date",
	TransactionInvalidType:        "Transaction type must be income or expense",
	TransactionInvalidID:          "Invalid transaction ID",

	// Ledger errors
	LedgerNotPersisted: "Change applied but could not be saved",
	LedgerExportFailed: "Could not export transactions",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// FieldErrorCode maps a rejected request field to its error code
func FieldErrorCode(field string) ErrorCode {
	switch field {
	case "filter":
		return ValidationInvalidFilter
	case "from", "to":
		return ValidationInvalidDate
	case "description":
		return TransactionInvalidDescription
	case "amount":
		return TransactionInvalidAmount
	case "category":
		return TransactionInvalidCategory
	case "date":
		return TransactionInvalidDate
	case "type":
		return TransactionInvalidType
	default:
		return ValidationGeneral
	}
}
