package handler

import "net/http"

// HTTPError is an error with a status code and a user-facing message.
type HTTPError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Message
}

var (
	ErrBadRequest            = HTTPError{Code: http.StatusBadRequest, Message: "Bad Request"}
	ErrUnauthorized          = HTTPError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	ErrNotFound              = HTTPError{Code: http.StatusNotFound, Message: "Not Found"}
	ErrMethodNotAllowed      = HTTPError{Code: http.StatusMethodNotAllowed, Message: "Method Not Allowed"}
	ErrRequestEntityTooLarge = HTTPError{Code: http.StatusRequestEntityTooLarge, Message: "Request Entity Too Large"}
	ErrUnsupportedMediaType  = HTTPError{Code: http.StatusUnsupportedMediaType, Message: "Unsupported Media Type"}

	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Message: "Internal Server Error"}
	ErrServiceUnavailable  = HTTPError{Code: http.StatusServiceUnavailable, Message: "Service Unavailable. Try Again Later."}
)

// NewHTTPError creates a custom HTTP error.
//
// Example:
//
//	err := handler.NewHTTPError(http.StatusForbidden, "Forbidden")
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}
