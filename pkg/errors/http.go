package errors

import "net/http"

// HTTPError is an error that already carries the status code and the
// taxonomy tag the delivery layer wants to expose.
type HTTPError struct {
	StatusCode int
	Kind       string
	Message    string
}

// NewHTTPError returns an HTTPError without a taxonomy tag.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// NewHTTPErrorWithKind returns an HTTPError tagged with kind.
func NewHTTPErrorWithKind(statusCode int, kind, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Kind: kind, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
)
