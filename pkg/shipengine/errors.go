package shipengine

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors.
var (
	// ErrMissingAPIKey indicates no API key was resolved for a call.
	ErrMissingAPIKey = errors.New("shipengine: missing API key")
)

// APIError represents a non-2xx reply from the ShipEngine API. The remote
// status and body are carried through without local interpretation.
type APIError struct {
	StatusCode int
	RequestID  string // request_id echoed by the API, if any
	Message    string
	Errors     []ErrorDetail // field-level detail from the error envelope
	Body       []byte        // raw response body
	Header     http.Header
}

// ErrorDetail is one entry of the API's error envelope.
type ErrorDetail struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	FieldName string `json:"field_name,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("shipengine: API error (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("shipengine: API error (HTTP %d)", e.StatusCode)
}

// Is matches two APIErrors by status code.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode
}

// ConversionError indicates a shipment record in an API reply did not
// match the expected Shipment shape. Conversion is all-or-nothing: a
// single bad record fails the whole reply rather than yielding a
// partially populated object.
type ConversionError struct {
	Index int // position of the offending record, -1 for single replies
	Cause error
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("shipengine: converting shipment record %d: %v", e.Index, e.Cause)
	}
	return fmt.Sprintf("shipengine: converting shipment record: %v", e.Cause)
}

// Unwrap returns the underlying decode error.
func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// IsRetryable reports whether err is a transient API failure the caller
// (or transport) may reasonably retry: rate limiting or a 5xx reply.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500
	}
	return false
}
