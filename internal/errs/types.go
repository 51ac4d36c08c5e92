package errs

import (
	"net/http"
)

// InternalServerErrorPrefix starts the message of every 500 response.
const InternalServerErrorPrefix = "Internal server error: "

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// Validation failures and domain errors (division by zero) both end up here;
// they differ only in message text.
func NewBadRequestError(message string) *HTTPError {
	return New(http.StatusBadRequest, message)
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return New(http.StatusNotFound, message)
}

// NewMethodNotAllowedError creates a 405 Method Not Allowed HTTPError.
func NewMethodNotAllowedError() *HTTPError {
	return New(http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
}

// NewRequestEntityTooLargeError creates a 413 HTTPError for oversized bodies.
func NewRequestEntityTooLargeError() *HTTPError {
	return New(http.StatusRequestEntityTooLarge, http.StatusText(http.StatusRequestEntityTooLarge))
}

// NewInternalServerError creates a 500 HTTPError that embeds the cause's text.
//
// The message reads "Internal server error: <cause>". A nil cause falls back
// to the generic status text.
func NewInternalServerError(cause error) *HTTPError {
	detail := http.StatusText(http.StatusInternalServerError)
	if cause != nil {
		detail = cause.Error()
	}

	e := New(http.StatusInternalServerError, InternalServerErrorPrefix+detail)
	e.cause = cause
	return e
}

// New creates an HTTPError for any status; the code is derived from the status text.
func New(status int, message string) *HTTPError {
	return &HTTPError{
		// http.StatusText(400) => "Bad Request" => "BAD_REQUEST"
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: message,
		Status:  status,
	}
}
