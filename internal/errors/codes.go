package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidAmount ErrorCode = "VALIDATION_004"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound        ErrorCode = "ACCOUNT_001"
	AccountAccessDenied    ErrorCode = "ACCOUNT_002"
	AccountScopeViolation  ErrorCode = "ACCOUNT_003"
	AccountAlreadyHidden   ErrorCode = "ACCOUNT_004"
	AccountNotHidden       ErrorCode = "ACCOUNT_005"
	AccountDeletionBlocked ErrorCode = "ACCOUNT_006"
	AccountInvalidState    ErrorCode = "ACCOUNT_007"
)

// Sync and provider-connection error codes (SYNC_*, CONNECTION_*)
const (
	SyncNotSupported         ErrorCode = "SYNC_001"
	ConnectionRelinkRequired ErrorCode = "CONNECTION_001"
	ConnectionUnavailable    ErrorCode = "CONNECTION_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidAmount: "Invalid monetary amount",

	// Account errors
	AccountNotFound:        "Account not found",
	AccountAccessDenied:    "Account belongs to another user or family",
	AccountScopeViolation:  "Exactly one of user or family scope must be provided",
	AccountAlreadyHidden:   "Account is already hidden",
	AccountNotHidden:       "Only hidden accounts can be restored",
	AccountDeletionBlocked: "Account cannot be deleted while linked transfers exist",
	AccountInvalidState:    "Account is in an invalid state for this operation",

	// Sync and connection errors
	SyncNotSupported:         "Sync requires a bank-linked account",
	ConnectionRelinkRequired: "Bank connection was revoked and must be re-linked",
	ConnectionUnavailable:    "Provider connection status is temporarily unavailable",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
