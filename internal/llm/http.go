package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/jonathan/role-recommender/internal/types"
)

// StatusError reports a non-success status from the recommendation endpoint.
// Message carries any structured error text the body contained; it is used
// purely for diagnostic reporting and never changes control flow.
type StatusError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("recommendation request failed: %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("recommendation request failed: %s", e.Status)
}

// HTTPClient calls the deployed recommendation endpoint. One outbound request
// per analysis; the payload is a single description field.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a client for the configured endpoint.
func NewHTTPClient(config *Config) *HTTPClient {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: config.timeout()},
	}
}

// Recommend posts the description and returns the raw response body.
func (c *HTTPClient) Recommend(ctx context.Context, description string) ([]byte, error) {
	form := url.Values{}
	form.Set("description", description)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recommendation request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Message:    errorBodyMessage(body),
		}
	}

	return body, nil
}

// Close implements Client; the HTTP client holds no resources to release.
func (c *HTTPClient) Close() error {
	return nil
}

// errorBodyMessage extracts the structured error text from a failed response
// body, if it has one.
func errorBodyMessage(body []byte) string {
	var errBody types.RemoteErrorBody
	if err := json.Unmarshal(body, &errBody); err != nil {
		return ""
	}
	message := errBody.Error
	if errBody.Details != "" {
		if message != "" {
			message += " - " + errBody.Details
		} else {
			message = errBody.Details
		}
	}
	return message
}
