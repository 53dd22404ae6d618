// Package gemini wraps the Gemini API behind the one operation the
// pipeline needs: prompt in, completion text out.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Client sends analysis prompts to a fixed Gemini model.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini client. The API key is injected here at
// construction; its presence was validated at startup.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

// Model returns the fixed model identifier this client is bound to.
func (c *Client) Model() string {
	return c.model
}

// Complete sends one prompt and returns the single text completion.
// One blocking call, no streaming, no retry — failures surface to the
// caller as a generic analysis failure.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		// Content filtering, API hiccups, or an inaccessible video can all
		// produce an empty completion.
		return "", fmt.Errorf("empty completion from model %s", c.model)
	}

	return text, nil
}
