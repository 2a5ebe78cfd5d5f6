package llm

import "time"

// Provider selects how recommendations are obtained.
type Provider string

// Supported providers.
const (
	// ProviderHTTP calls the deployed recommendation endpoint.
	ProviderHTTP Provider = "http"
	// ProviderGemini calls Gemini directly with the same output contract.
	ProviderGemini Provider = "gemini"
)

// DefaultTimeout bounds one recommendation call. A single failed or timed-out
// attempt goes straight to the local fallback; no retry is made.
const DefaultTimeout = 30 * time.Second

// DefaultBaseURL is the deployed recommendation endpoint.
const DefaultBaseURL = "http://127.0.0.1:8000/chat-to-gemini"

// DefaultModel is the Gemini model used by the direct provider.
const DefaultModel = "gemini-2.5-flash"

// Config holds client configuration for either provider.
type Config struct {
	Provider Provider
	BaseURL  string        // HTTP provider endpoint
	Model    string        // Gemini provider model name
	Timeout  time.Duration // per-call bound; zero means DefaultTimeout
}

// DefaultConfig returns the default configuration (HTTP provider).
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderHTTP,
		BaseURL:  DefaultBaseURL,
		Model:    DefaultModel,
		Timeout:  DefaultTimeout,
	}
}

// timeout returns the configured timeout, defaulting when unset.
func (c *Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}
