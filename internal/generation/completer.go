package generation

import (
	"context"
	"errors"
	"fmt"
)

// Completer defines the interface for sending a prompt to an external text
// completion service. This interface serves as a boundary between the
// application core and the LLM provider SDKs.
type Completer interface {
	// Complete sends prompt to the provider and returns the raw completion text.
	// Implementations must be safe for concurrent use and must not retry.
	Complete(ctx context.Context, prompt string) (string, error)
}

// Provider is implemented by completers that can name their backing service
// for logs and metrics.
type Provider interface {
	Provider() string
}

// UnavailableCompleter is installed in place of a real completer when the
// provider could not be configured. Every call fails with the stored cause
// before any network traffic happens.
type UnavailableCompleter struct {
	Name  string
	Cause error
}

// Complete implements Completer.
func (u UnavailableCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	if u.Cause == nil {
		return "", ErrConfiguration
	}
	if errors.Is(u.Cause, ErrConfiguration) {
		return "", u.Cause
	}
	return "", fmt.Errorf("%w: %w", ErrConfiguration, u.Cause)
}

// Provider implements Provider.
func (u UnavailableCompleter) Provider() string {
	return u.Name
}

func providerName(c Completer) string {
	if p, ok := c.(Provider); ok && p.Provider() != "" {
		return p.Provider()
	}
	return "unknown"
}
