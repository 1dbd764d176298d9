package shipengine

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"
)

// Transport executes one HTTP exchange against the ShipEngine API. It is
// the only collaborator the dispatcher talks to, which allows swapping in
// a MockTransport for tests or a custom implementation per call via
// Override.Transport.
//
// The transport is responsible for applying the resolved credential,
// timeout and retry budget carried on the Request; the dispatcher issues
// exactly one Do per logical operation and never retries on its own.
type Transport interface {
	Do(ctx context.Context, req *Request) (json.RawMessage, error)
}

// Request describes one outbound API call, fully resolved: path and body
// from the operation, credential and policy from the merged configuration.
type Request struct {
	Method string
	Path   string // relative to BaseURL, identifiers already interpolated
	Query  url.Values
	Body   any // JSON-encoded when non-nil

	// Resolved configuration applied by the transport.
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Retries int
}

// URL returns the absolute request URL including query parameters.
func (r *Request) URL() string {
	u := strings.TrimSuffix(r.BaseURL, "/") + "/" + r.Path
	if len(r.Query) > 0 {
		u += "?" + r.Query.Encode()
	}
	return u
}
