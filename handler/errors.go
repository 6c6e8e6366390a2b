package handler

import (
	"errors"
	"net/http"
)

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrSSENotInitialized indicates SSE was accessed outside a DataStar request
	ErrSSENotInitialized = errors.New("SSE not initialized for this request")
	// ErrNilStore indicates New was called without a form store
	ErrNilStore = errors.New("form store is required")
)

// HTTPError is an error carrying a status code and a message key.
type HTTPError struct {
	Code int    // HTTP status code
	Key  string // machine readable key, e.g. "form_not_found"
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Key
}

// NewHTTPError returns an HTTPError for code and key.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrFormNotFound        = HTTPError{Code: http.StatusNotFound, Key: "form_not_found"}
	ErrUnsupportedMedia    = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	ErrTooManyRequests     = HTTPError{Code: http.StatusTooManyRequests, Key: "too_many_requests"}
	ErrRuleConfiguration   = HTTPError{Code: http.StatusInternalServerError, Key: "rule_configuration_error"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
)
