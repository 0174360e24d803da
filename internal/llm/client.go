// Package llm provides the language-model client used for search-query generation.
package llm

import (
	"context"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// Client is an abstraction over the hosted language model. One request, one
// text completion; no streaming.
type Client interface {
	// GenerateContent sends a prompt and returns the model's text reply.
	GenerateContent(ctx context.Context, prompt string) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a Gemini-backed client from an API key.
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, &APICallError{Message: "API key is required"}
	}
	if config == nil {
		config = DefaultConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &APICallError{Message: "failed to create Gemini client", Cause: err}
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// GenerateContent sends the prompt to the configured model and returns the
// joined text parts of the first candidate.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	reqID := uuid.NewString()[:8]

	model := c.client.GenerativeModel(c.config.Model)
	model.SetTemperature(c.config.Temperature) // Low temperature for consistent output

	log.Printf("[LLM] req=%s model=%s prompt_chars=%d", reqID, c.config.Model, len(prompt))

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("[LLM] req=%s failed: %v", reqID, err)
		return "", &APICallError{Message: "generate content request failed", Cause: err}
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		log.Printf("[LLM] req=%s unusable response: %v", reqID, err)
		return "", err
	}

	log.Printf("[LLM] req=%s ok reply_chars=%d", reqID, len(text))
	return text, nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &APICallError{Message: "no candidates in response"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &APICallError{Message: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", &APICallError{Message: "no text parts in response"}
	}

	return strings.Join(parts, ""), nil
}
