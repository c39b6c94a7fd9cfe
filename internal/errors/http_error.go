package errors

import "net/http"

// HTTPError represents an error with an associated HTTP status code. Details
// carries the underlying failure text for 500-class transport errors; it is
// empty for validation errors.
type HTTPError struct {
	Code    int
	Message string
	Details string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// Helpers for the two failure classes the endpoints emit.
var (
	BadRequest = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadRequest, msg) }

	SendFailed = func(msg, details string) *HTTPError {
		e := NewHTTPError(http.StatusInternalServerError, msg)
		e.Details = details
		return e
	}
)
