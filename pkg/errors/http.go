package errors

import "net/http"

// HTTPError is an error that carries the HTTP status it should be reported with.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

var (
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests, slow down a little")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal server error")
)
