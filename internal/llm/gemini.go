package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient obtains recommendations straight from Gemini instead of the
// deployed endpoint, asking for the direct wire shape so the downstream
// normalization is identical for both providers.
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini-backed client.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// Recommend generates recommendations for the description and returns the
// raw JSON text. The JSON response MIME type keeps the model from wrapping
// the payload in code fences.
func (c *GeminiClient) Recommend(ctx context.Context, description string) ([]byte, error) {
	modelName := c.config.Model
	if modelName == "" {
		modelName = DefaultModel
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(recommendPrompt(description)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate recommendations: %w", err)
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// recommendPrompt builds the generation prompt for an experience description.
func recommendPrompt(description string) string {
	var sb strings.Builder

	sb.WriteString(`You are an expert career advisor that maps a candidate's work experience to job roles.

Analyze the experience description and recommend:
- direct_matches: up to 3 roles the candidate already fits, best first
- trending_roles: up to 2 growth roles worth reskilling toward

Return ONLY valid JSON matching this exact structure:
{
  "direct_matches": [{"title": string, "reason": string}],
  "trending_roles": [{"title": string, "existing_skills": [string], "missing_skills": [string]}]
}

IMPORTANT:
- Base all reasoning only on the provided text; do not assume experience not mentioned.
- Return ONLY the JSON object, no markdown, no explanation, no code blocks.

Experience description:
"""
`)
	sb.WriteString(description)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
