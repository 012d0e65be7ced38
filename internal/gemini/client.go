package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GenerativeClient is the single remote boundary of the service. The
// dispatcher depends on this interface so tests can inject a fake.
type GenerativeClient interface {
	GenerateParts(ctx context.Context, model string, parts []*genai.Part) (*genai.GenerateContentResponse, error)
}

type Client struct {
	api *genai.Client
}

// NewClient builds a Gemini API client from an explicitly passed key.
// The key comes from config, not from ambient environment.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	api, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Client{api: api}, nil
}

func (c *Client) GenerateParts(ctx context.Context, model string, parts []*genai.Part) (*genai.GenerateContentResponse, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	resp, err := c.api.Models.GenerateContent(ctx, model, contents, &genai.GenerateContentConfig{})
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return resp, nil
}
