package clubsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/chapterhouse/pageturn/pkg/httpx"
)

// API error codes returned in the "error" field of error responses.
const (
	ErrorCodeInvalidRequest = "invalid_request"
	ErrorCodeUnauthorized   = "unauthorized"
	ErrorCodeForbidden      = "forbidden"
	ErrorCodeNotFound       = "not_found"
	ErrorCodeConflict       = "conflict"
	ErrorCodeInvalidToken   = "invalid_token"
	ErrorCodeExpiredToken   = "expired_token"
	ErrorCodeServerError    = "server_error"
)

// APIError represents the service's JSON error envelope. It implements the
// error interface and is used both by the server (to write HTTP responses)
// and by the SDK client (to surface errors to callers).
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g. "not_found", "conflict")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

// Predefined API errors. Handlers that need a more specific description
// should use NewAPIError with one of the codes above.
var (
	// ErrInvalidRequest is returned when the request body or parameters are malformed.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrUnauthorized is returned when the request lacks valid credentials.
	ErrUnauthorized = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeUnauthorized,
		Description: "invalid credentials",
	}

	// ErrForbidden is returned when the authenticated user lacks the required role.
	ErrForbidden = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeForbidden,
		Description: "the acting user is not permitted to perform this operation",
	}

	// ErrNotFound is returned when the referenced resource does not exist.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "resource not found",
	}

	// ErrConflict is returned when the request conflicts with existing state,
	// such as a duplicate membership or an already-processed invite.
	ErrConflict = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeConflict,
		Description: "the request conflicts with the current state",
	}

	// ErrInvalidToken is returned when an invite or access token fails verification.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "the token is missing, malformed or has a bad signature",
	}

	// ErrExpiredToken is returned when an invite token is past its expiry.
	ErrExpiredToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeExpiredToken,
		Description: "the token has expired",
	}

	// ErrServerError is returned when an unexpected internal error occurred.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// NewAPIError creates an APIError with a custom description.
func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{
		StatusCode:  statusCode,
		Code:        code,
		Description: description,
	}
}

// parseErrorResponse parses an HTTP error response body into a typed *APIError.
// Returns nil if the response indicates success (2xx status code).
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	// Fallback: create a generic error from the status code
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
