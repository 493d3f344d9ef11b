package handler

import "net/http"

// HTTPError represents an HTTP error with status code and message key.
// Error handlers use Key to pick the message shown to the client.
type HTTPError struct {
	Code int
	Key  string
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Key
}

// ErrInternalServerError stands in for a nil error passed to Error.
var ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}

// NewHTTPError creates a custom HTTP error with the given status code and key.
//
// Example:
//
//	errInvalidBody := handler.NewHTTPError(http.StatusBadRequest, "Invalid request body.")
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}
