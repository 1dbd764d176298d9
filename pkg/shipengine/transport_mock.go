package shipengine

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// MockTransport is a Transport test double. It records every request and
// serves canned JSON replies keyed by "METHOD path". An OnDo hook takes
// precedence over canned replies for per-test behavior.
type MockTransport struct {
	Err             error // returned from every Do when set
	SimulateLatency time.Duration

	OnDo func(ctx context.Context, req *Request) (json.RawMessage, error)

	mu        sync.Mutex
	responses map[string]json.RawMessage
	calls     []*Request
}

// NewMockTransport creates a mock transport with no canned replies;
// unmatched requests get an empty JSON object.
func NewMockTransport() *MockTransport {
	return &MockTransport{
		responses: make(map[string]json.RawMessage),
	}
}

// RespondWith registers a canned JSON reply for method + path (path
// without query string).
func (m *MockTransport) RespondWith(method, path, body string) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[method+" "+path] = json.RawMessage(body)
	return m
}

// Calls returns a copy of the recorded requests in order.
func (m *MockTransport) Calls() []*Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Request, len(m.calls))
	copy(out, m.calls)
	return out
}

// LastCall returns the most recent request, or nil.
func (m *MockTransport) LastCall() *Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return nil
	}
	return m.calls[len(m.calls)-1]
}

// Do records the request and serves the configured reply.
func (m *MockTransport) Do(ctx context.Context, req *Request) (json.RawMessage, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()

	if m.SimulateLatency > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.SimulateLatency):
		}
	}

	if m.Err != nil {
		return nil, m.Err
	}

	if m.OnDo != nil {
		return m.OnDo(ctx, req)
	}

	m.mu.Lock()
	resp, ok := m.responses[req.Method+" "+req.Path]
	m.mu.Unlock()
	if ok {
		return resp, nil
	}
	return json.RawMessage(`{}`), nil
}

var _ Transport = (*MockTransport)(nil)
