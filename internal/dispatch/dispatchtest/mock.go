// Package dispatchtest provides test helpers and mocks for the dispatch package.
package dispatchtest

import (
	"context"
	"encoding/json"
	"maps"
	"sync"

	"github.com/flemzord/tgmcp/internal/dispatch"
)

// Call is one recorded transport invocation.
type Call struct {
	Method string
	Args   map[string]any
}

// MockTransport is a configurable mock implementation of dispatch.Transport.
// Every call is recorded; CallFunc decides the outcome.
type MockTransport struct {
	CallFunc func(ctx context.Context, method string, args map[string]any) (json.RawMessage, error)

	mu    sync.Mutex
	calls []Call
}

// Call implements dispatch.Transport.
func (m *MockTransport) Call(ctx context.Context, method string, args map[string]any) (json.RawMessage, error) {
	m.mu.Lock()
	m.calls = append(m.calls, Call{Method: method, Args: maps.Clone(args)})
	m.mu.Unlock()

	if m.CallFunc != nil {
		return m.CallFunc(ctx, method, args)
	}
	return json.RawMessage(`true`), nil
}

// Calls returns a snapshot of recorded calls.
func (m *MockTransport) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// Returning creates a transport that always answers with result.
func Returning(result string) *MockTransport {
	return &MockTransport{
		CallFunc: func(context.Context, string, map[string]any) (json.RawMessage, error) {
			return json.RawMessage(result), nil
		},
	}
}

// Failing creates a transport that always fails with err.
func Failing(err error) *MockTransport {
	return &MockTransport{
		CallFunc: func(context.Context, string, map[string]any) (json.RawMessage, error) {
			return nil, err
		},
	}
}

// Interface guard.
var _ dispatch.Transport = (*MockTransport)(nil)
