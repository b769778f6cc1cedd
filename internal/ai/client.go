// Package ai wraps the Gemini text-generation API behind the one blocking
// call the document workflow needs. There is no retry policy: failures
// propagate to the caller.
package ai

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ErrMissingAPIKey is returned when a command needs the generation service
// but GEMINI_API_KEY was not configured. This is a runtime error surfaced to
// the user, not a startup failure.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY environment variable is not set")

type Client struct {
	apiKey string
	model  string

	client *genai.Client
}

func NewClient(apiKey, model string) *Client {
	return &Client{apiKey: apiKey, model: model}
}

// Generate sends a single prompt and returns the model's text response. The
// underlying API client is created lazily on first use so that a missing
// credential only fails the commands that need it.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}
	if c.client == nil {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  c.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return "", fmt.Errorf("failed to create generation client: %w", err)
		}
		c.client = client
	}

	chat, err := c.client.Chats.Create(ctx, c.model, nil, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create chat: %w", err)
	}
	response, err := chat.SendMessage(ctx, genai.Part{Text: prompt})
	if err != nil {
		return "", err
	}
	return response.Text(), nil
}
