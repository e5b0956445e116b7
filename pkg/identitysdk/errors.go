package identitysdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// FieldError describes a single failed validation constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError is the stable error shape every failure translates to:
// {message, errors?, statusCode}. It implements error so both the server
// handlers and SDK callers can pass it around directly.
//
// Credential failures deliberately collapse into one message ("Invalid
// credentials") so a caller cannot probe which accounts exist. Validation
// failures do the opposite and enumerate the failing field and constraint.
type APIError struct {
	Message    string       `json:"message"`
	Errors     []FieldError `json:"errors,omitempty"`
	StatusCode int          `json:"statusCode"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// WriteError writes the error to w as JSON with its status code.
func (e *APIError) WriteError(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(e)
}

var (
	// ErrUserExists is returned when signing up with an email that already
	// has an identity record.
	ErrUserExists = &APIError{
		StatusCode: http.StatusConflict,
		Message:    "User already exists",
	}

	// ErrInvalidCredentials covers both "no such user" and "wrong password".
	ErrInvalidCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Message:    "Invalid credentials",
	}

	// ErrUnauthorized is returned when a bearer token is missing, malformed,
	// forged, or expired.
	ErrUnauthorized = &APIError{
		StatusCode: http.StatusUnauthorized,
		Message:    "Unauthorized",
	}

	// ErrUserNotFound is returned for lookups of unknown identifiers.
	ErrUserNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Message:    "User not found",
	}

	// ErrServerError hides store and transport failures from the caller.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Message:    "Internal server error",
	}
)

// NewValidationError builds a 400 carrying field-level messages.
func NewValidationError(fields ...FieldError) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Message:    "Validation failed",
		Errors:     fields,
	}
}
