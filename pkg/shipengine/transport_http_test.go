package shipengine_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashcdev/shipengine-go/pkg/shipengine"
)

func TestHTTPTransport_Do_SendsHeadersAndBody(t *testing.T) {
	var gotReq *http.Request
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(context.Background())
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rate_id": "se-rate-1"}`))
	}))
	defer server.Close()

	transport := shipengine.NewHTTPTransport()
	raw, err := transport.Do(context.Background(), &shipengine.Request{
		Method:  http.MethodPost,
		Path:    "rates",
		Body:    map[string]any{"shipment_id": "se-1"},
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"rate_id": "se-rate-1"}`, string(raw))

	require.NotNil(t, gotReq)
	assert.Equal(t, "/rates", gotReq.URL.Path)
	assert.Equal(t, "test-key", gotReq.Header.Get("API-Key"))
	assert.Equal(t, "application/json", gotReq.Header.Get("Content-Type"))
	assert.NotEmpty(t, gotReq.Header.Get("X-Request-ID"))
	assert.Equal(t, map[string]any{"shipment_id": "se-1"}, gotBody)
}

func TestHTTPTransport_Do_EncodesQuery(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	transport := shipengine.NewHTTPTransport()
	_, err := transport.Do(context.Background(), &shipengine.Request{
		Method:  http.MethodGet,
		Path:    "tracking",
		Query:   url.Values{"carrier_code": {"ups"}, "tracking_number": {"1Z999"}},
		APIKey:  "test-key",
		BaseURL: server.URL,
	})

	require.NoError(t, err)
	assert.Equal(t, "ups", gotQuery.Get("carrier_code"))
	assert.Equal(t, "1Z999", gotQuery.Get("tracking_number"))
}

func TestHTTPTransport_Do_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	transport := shipengine.NewHTTPTransport()
	raw, err := transport.Do(context.Background(), &shipengine.Request{
		Method:  http.MethodGet,
		Path:    "carriers",
		APIKey:  "test-key",
		BaseURL: server.URL,
		Retries: 1,
		Timeout: 10 * time.Second,
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, string(raw))
	assert.Equal(t, int32(2), calls.Load())
}

func TestHTTPTransport_Do_RetryBudgetExhausted(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	transport := shipengine.NewHTTPTransport()
	_, err := transport.Do(context.Background(), &shipengine.Request{
		Method:  http.MethodGet,
		Path:    "carriers",
		APIKey:  "test-key",
		BaseURL: server.URL,
		Retries: 2,
		Timeout: 10 * time.Second,
	})

	var apiErr *shipengine.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPTransport_Do_NoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{
			"request_id": "req-1",
			"errors": [{"error_code": "invalid_address", "message": "postal code is required", "field_name": "postal_code"}]
		}`))
	}))
	defer server.Close()

	transport := shipengine.NewHTTPTransport()
	_, err := transport.Do(context.Background(), &shipengine.Request{
		Method:  http.MethodPost,
		Path:    "addresses/validate",
		APIKey:  "test-key",
		BaseURL: server.URL,
		Retries: 3,
	})

	var apiErr *shipengine.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "req-1", apiErr.RequestID)
	assert.Equal(t, "postal code is required", apiErr.Message)
	require.Len(t, apiErr.Errors, 1)
	assert.Equal(t, "invalid_address", apiErr.Errors[0].ErrorCode)
	assert.Equal(t, int32(1), calls.Load(), "4xx replies are terminal")
}

func TestHTTPTransport_Do_TimeoutPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	transport := shipengine.NewHTTPTransport()
	_, err := transport.Do(context.Background(), &shipengine.Request{
		Method:  http.MethodGet,
		Path:    "carriers",
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 50 * time.Millisecond,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHTTPTransport_Do_EmptyBodyBecomesEmptyObject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	transport := shipengine.NewHTTPTransport()
	raw, err := transport.Do(context.Background(), &shipengine.Request{
		Method:  http.MethodDelete,
		Path:    "shipments/se-1/tags/fragile",
		APIKey:  "test-key",
		BaseURL: server.URL,
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(raw))
}
