package errors

import (
	"encoding/json"
	"errors"
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

// TestNewErrorResponse_BasicUsage tests creating a basic error response
func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(AccountNotFound, s.traceID)

	s.NotNil(response)
	s.Equal("ACCOUNT_001", response.Error.Code)
	s.Equal("Account not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

// TestNewErrorResponse_WithDetails tests creating error response with details
func (s *ResponseTestSuite) TestNewErrorResponse_WithDetails() {
	details := []string{"Field validation failed", "Account name is required"}
	response := NewErrorResponse(ValidationGeneral, s.traceID, WithDetails(details...))

	s.NotNil(response)
	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal("Validation failed", response.Error.Message)
	s.Equal(details, response.Error.Details)
}

// TestNewErrorResponse_WithCustomMessage tests overriding the default message
func (s *ResponseTestSuite) TestNewErrorResponse_WithCustomMessage() {
	customMessage := "cannot delete account with 2 transfers linked to other accounts; hide the account or remove the transfers first"
	response := NewErrorResponse(AccountDeletionBlocked, s.traceID, WithMessage(customMessage))

	s.Equal("ACCOUNT_006", response.Error.Code)
	s.Equal(customMessage, response.Error.Message)
}

// TestNewErrorResponse_WithData tests attaching a structured payload
func (s *ResponseTestSuite) TestNewErrorResponse_WithData() {
	payload := map[string]interface{}{
		"can_delete":            false,
		"can_hide":              true,
		"linked_transfer_count": 2,
	}
	response := NewErrorResponse(AccountDeletionBlocked, s.traceID, WithData(payload))

	s.Equal(payload, response.Error.Data)

	serialized, err := response.ToJSON()
	s.NoError(err)
	s.Contains(string(serialized), "can_hide")
	s.Contains(string(serialized), "linked_transfer_count")
}

// TestNewValidationError tests the field-error convenience constructor
func (s *ResponseTestSuite) TestNewValidationError() {
	fieldErrors := map[string]string{
		"account_type": "must be one of checking, savings, credit_card, loan, mortgage, investment, other",
	}
	response := NewValidationError(fieldErrors, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Len(response.Error.Details, 1)
	s.Contains(response.Error.Details[0], "account_type")
}

// TestWrapSystemError tests that internal errors are not leaked to clients
func (s *ResponseTestSuite) TestWrapSystemError() {
	internal := errors.New("pq: connection refused on host db-internal-01")
	response, returned := WrapSystemError(internal, s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "db-internal-01")
	s.Equal(internal, returned)

	serialized, err := response.ToJSON()
	s.NoError(err)
	s.NotContains(string(serialized), "db-internal-01")
}

// TestGetHTTPStatus tests the code-to-status mapping
func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{AuthMissingToken, http.StatusUnauthorized},
		{AuthExpiredToken, http.StatusUnauthorized},
		{AuthInsufficientPermission, http.StatusForbidden},
		{ValidationGeneral, http.StatusBadRequest},
		{AccountNotFound, http.StatusNotFound},
		{AccountAccessDenied, http.StatusForbidden},
		{AccountScopeViolation, http.StatusBadRequest},
		{AccountAlreadyHidden, http.StatusBadRequest},
		{AccountNotHidden, http.StatusBadRequest},
		{AccountDeletionBlocked, http.StatusBadRequest},
		{SyncNotSupported, http.StatusForbidden},
		{ConnectionRelinkRequired, http.StatusConflict},
		{ConnectionUnavailable, http.StatusServiceUnavailable},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemInternalError, http.StatusInternalServerError},
		{"UNKNOWN_CODE", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, GetHTTPStatus(tc.code), "code %s", tc.code)
	}
}

// TestErrorResponse_JSONShape tests the serialized envelope shape
func (s *ResponseTestSuite) TestErrorResponse_JSONShape() {
	response := NewErrorResponse(AccountNotFound, s.traceID)

	serialized, err := json.Marshal(response)
	s.NoError(err)

	var decoded map[string]map[string]interface{}
	s.NoError(json.Unmarshal(serialized, &decoded))
	s.Equal("ACCOUNT_001", decoded["error"]["code"])
	s.Equal(s.traceID, decoded["error"]["trace_id"])
}

// TestIsClientError tests the 4xx helper
func (s *ResponseTestSuite) TestIsClientError() {
	s.True(NewErrorResponse(AccountNotFound, s.traceID).IsClientError())
	s.False(NewErrorResponse(SystemInternalError, s.traceID).IsClientError())
	s.True(NewErrorResponse(SystemInternalError, s.traceID).IsServerError())
}
