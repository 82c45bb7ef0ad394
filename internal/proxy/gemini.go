package proxy

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiUpstream sends the same prompts through the Google GenAI SDK and asks
// for a JSON response.
type GeminiUpstream struct {
	client *genai.Client
	model  string
}

func NewGeminiUpstream(ctx context.Context, apiKey, model string) (*GeminiUpstream, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create GenAI client: %w", err)
	}
	return &GeminiUpstream{client: client, model: model}, nil
}

func (g *GeminiUpstream) Complete(ctx context.Context, system, user string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		Temperature:       genai.Ptr[float32](0.7),
		MaxOutputTokens:   4000,
	}
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(user), cfg)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", &UpstreamError{Provider: "gemini", Status: apiErr.Code, Body: apiErr.Message}
		}
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	return result.Text(), nil
}
