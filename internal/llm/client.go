// Package llm provides clients for the remote recommendation service.
// Two providers exist behind one interface: the plain HTTP recommendation
// endpoint, and a direct Gemini call that produces the same JSON contract.
package llm

import (
	"context"
	"fmt"
)

// Client requests role recommendations for an experience description.
// Recommend returns the raw response body; shape detection and normalization
// happen in the caller, because the wire contract has two coexisting shapes.
type Client interface {
	Recommend(ctx context.Context, description string) ([]byte, error)
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a recommendation client based on configuration.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderHTTP:
		return NewHTTPClient(config), nil
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return nil, fmt.Errorf("unknown provider %q", config.Provider)
	}
}
