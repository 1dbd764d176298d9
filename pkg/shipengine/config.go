package shipengine

import (
	"time"
)

// Library-wide defaults applied by the constructors for every field the
// caller leaves unset.
const (
	// DefaultBaseURL is the production ShipEngine v1 endpoint.
	DefaultBaseURL = "https://api.shipengine.com/v1"

	// DefaultPageSize is the page_size applied to list operations when the
	// caller does not supply one.
	DefaultPageSize = 50

	// DefaultRetries is how many times the transport re-attempts a request
	// after a retryable failure.
	DefaultRetries = 1

	// DefaultTimeout bounds a single logical operation, including any
	// transport-level retries.
	DefaultTimeout = 30 * time.Second
)

// Config holds the effective settings for API calls. A Client keeps one
// long-lived Config; per-call Overrides are merged onto it to produce a
// fresh value, so the Client's own Config is never mutated after
// construction.
type Config struct {
	// APIKey authenticates against the ShipEngine API. Required at call
	// time: operations fail with ErrMissingAPIKey when the resolved key
	// is empty.
	APIKey string

	// BaseURL is the API endpoint requests are issued against.
	BaseURL string

	// PageSize is the default page_size for list operations.
	PageSize int

	// Retries is the retry budget the transport applies per request.
	Retries int

	// Timeout bounds one logical operation end to end.
	Timeout time.Duration

	// Transport executes HTTP exchanges. Defaults to an HTTPTransport.
	Transport Transport

	// AsObjects controls the result shape of shipment-returning
	// operations: true converts raw records into typed Shipment values,
	// false returns the reply as-is.
	AsObjects bool
}

// Override is a partial Config for a single call. Nil fields fall back to
// the Client's defaults. Unknown settings cannot be expressed: the struct
// is the full set of overridable fields, so typos are compile errors
// rather than silently ignored keys.
type Override struct {
	APIKey    *string
	BaseURL   *string
	PageSize  *int
	Retries   *int
	Timeout   *time.Duration
	Transport Transport
	AsObjects *bool
}

// Merge overlays o onto c and returns the resolved configuration as a new
// value. Merge(nil) returns c unchanged. Pure: neither c nor o is
// modified.
func (c Config) Merge(o *Override) Config {
	if o == nil {
		return c
	}
	out := c
	if o.APIKey != nil {
		out.APIKey = *o.APIKey
	}
	if o.BaseURL != nil {
		out.BaseURL = *o.BaseURL
	}
	if o.PageSize != nil {
		out.PageSize = *o.PageSize
	}
	if o.Retries != nil {
		out.Retries = *o.Retries
	}
	if o.Timeout != nil {
		out.Timeout = *o.Timeout
	}
	if o.Transport != nil {
		out.Transport = o.Transport
	}
	if o.AsObjects != nil {
		out.AsObjects = *o.AsObjects
	}
	return out
}

// withDefaults fills every zero field with its library-wide default.
func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.PageSize == 0 {
		c.PageSize = DefaultPageSize
	}
	if c.Retries == 0 {
		c.Retries = DefaultRetries
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Transport == nil {
		c.Transport = NewHTTPTransport()
	}
	return c
}
