package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sehat-clinic/config"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-1.5-flash"

var (
	ErrNoCandidates = errors.New("ai: gemini returned no candidates")
	ErrEmptyContent = errors.New("ai: gemini returned empty content")
)

// GeminiClient sends single-turn prompts to Google's Gemini API.
type GeminiClient struct {
	client  *genai.Client
	modelID string
}

// NewGeminiClient returns nil and no error when no API key is configured,
// which callers treat as "assistant disabled".
func NewGeminiClient(ctx context.Context, cfg config.GeminiConfig) (*GeminiClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, nil
	}
	modelID := strings.TrimSpace(cfg.Model)
	if modelID == "" {
		modelID = defaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("ai: failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client:  client,
		modelID: modelID,
	}, nil
}

// Complete sends message under the given system instruction and returns the reply text.
func (c *GeminiClient) Complete(ctx context.Context, instruction, message string) (string, error) {
	model := c.client.GenerativeModel(c.modelID)
	if strings.TrimSpace(instruction) != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(instruction))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("ai: gemini completion failed: %w", err)
	}

	return extractText(resp)
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrNoCandidates
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", ErrEmptyContent
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	if text.Len() == 0 {
		return "", ErrEmptyContent
	}
	return text.String(), nil
}

// Close releases resources held by the Gemini client.
func (c *GeminiClient) Close() error {
	if c != nil && c.client != nil {
		return c.client.Close()
	}
	return nil
}
