package yts

import (
	"errors"
	"fmt"
	"net/http"
)

// User-facing messages carried by failed search results.
const (
	MessageUpstreamError = "Oops. Looks like something went wrong when sending the request :grimacing:"
	MessageTimeout       = "Oops. The request timed out :alarm_clock:"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid yts configuration")
	// ErrUpstream indicates the catalog API answered with a failure
	ErrUpstream = errors.New("yts upstream error")
	// ErrTimeout indicates the request exceeded the configured timeout
	ErrTimeout = errors.New("yts request timed out")
	// ErrMalformedPayload indicates the response body is not a JSON document
	ErrMalformedPayload = errors.New("malformed yts payload")
)

// APIError represents a failed search
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("yts API error: status %d: %s", e.StatusCode, e.Message)
}

// Unwrap returns ErrTimeout or ErrUpstream
func (e *APIError) Unwrap() error {
	return e.Err
}

// IsTimeout checks if the error was caused by the request timeout
func (e *APIError) IsTimeout() bool {
	return e.StatusCode == http.StatusRequestTimeout
}

// IsNotFound checks if the catalog answered 404
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}
