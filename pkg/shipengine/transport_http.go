package shipengine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const userAgent = "shipengine-go/1.0"

// retryInterval is the pause between transport-level retry attempts.
const retryInterval = 500 * time.Millisecond

// HTTPTransport is the production Transport implementation on top of
// net/http. It applies the credential, timeout, and retry budget resolved
// onto each Request.
type HTTPTransport struct {
	httpClient *http.Client
}

// HTTPTransportOption customizes an HTTPTransport.
type HTTPTransportOption func(*HTTPTransport)

// WithHTTPClient injects a custom *http.Client (proxy, TLS config,
// instrumentation). The per-request timeout still comes from the resolved
// configuration.
func WithHTTPClient(hc *http.Client) HTTPTransportOption {
	return func(t *HTTPTransport) {
		t.httpClient = hc
	}
}

// NewHTTPTransport creates a Transport for production use.
func NewHTTPTransport(opts ...HTTPTransportOption) *HTTPTransport {
	t := &HTTPTransport{
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Do executes the request, retrying transient failures up to the request's
// retry budget. The request timeout bounds all attempts together.
func (t *HTTPTransport) Do(ctx context.Context, req *Request) (json.RawMessage, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	var bodyBytes []byte
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		bodyBytes = b
	}

	attempts := req.Retries + 1
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryInterval):
			}
		}

		raw, err := t.doOnce(ctx, req, bodyBytes)
		if err == nil {
			return raw, nil
		}
		lastErr = err

		// Context errors and terminal API replies are not worth
		// re-attempting.
		if ctx.Err() != nil {
			return nil, err
		}
		if apiErr, ok := err.(*APIError); ok && !IsRetryable(apiErr) {
			return nil, err
		}
	}
	return nil, lastErr
}

func (t *HTTPTransport) doOnce(ctx context.Context, req *Request, body []byte) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL(), reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("API-Key", req.APIKey)
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseError(resp, respBody)
	}

	if len(respBody) == 0 {
		respBody = []byte("{}")
	}
	return json.RawMessage(respBody), nil
}

// parseError builds an *APIError from a non-2xx reply. ShipEngine errors
// use an {"errors": [...], "request_id": "..."} envelope; anything else is
// carried through with the raw body.
func parseError(resp *http.Response, body []byte) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Body:       body,
		Header:     resp.Header,
	}

	var envelope struct {
		RequestID string        `json:"request_id"`
		Errors    []ErrorDetail `json:"errors"`
		Message   string        `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.RequestID = envelope.RequestID
		apiErr.Errors = envelope.Errors
		switch {
		case len(envelope.Errors) > 0:
			apiErr.Message = envelope.Errors[0].Message
		case envelope.Message != "":
			apiErr.Message = envelope.Message
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

var _ Transport = (*HTTPTransport)(nil)
