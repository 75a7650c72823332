package generation

import (
	"context"
	"sync"
)

// MockCompleter is a Completer for tests. It returns Response or Err and
// remembers every prompt it received.
type MockCompleter struct {
	Response string
	Err      error
	// CompleteFn, when set, replaces the fixed Response/Err behaviour.
	CompleteFn func(ctx context.Context, prompt string) (string, error)

	mu      sync.Mutex
	prompts []string
}

// NewMockCompleter creates a mock that always answers with response.
func NewMockCompleter(response string) *MockCompleter {
	return &MockCompleter{Response: response}
}

// NewMockCompleterWithError creates a mock that always fails with err.
func NewMockCompleterWithError(err error) *MockCompleter {
	return &MockCompleter{Err: err}
}

// Complete implements Completer.
func (m *MockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, prompt)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// Provider implements Provider.
func (m *MockCompleter) Provider() string {
	return "mock"
}

// Calls returns how many times Complete was invoked.
func (m *MockCompleter) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// LastPrompt returns the most recent prompt, or "" if none was sent.
func (m *MockCompleter) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.prompts) == 0 {
		return ""
	}
	return m.prompts[len(m.prompts)-1]
}
