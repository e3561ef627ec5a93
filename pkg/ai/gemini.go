package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.0-flash"

// GeminiGenerator implements Generator against the hosted Gemini API.
type GeminiGenerator struct {
	apiKey string
	model  string
}

// NewGeminiGenerator creates a new GeminiGenerator
func NewGeminiGenerator(apiKey string) *GeminiGenerator {
	return &GeminiGenerator{apiKey: apiKey, model: geminiModel}
}

// Complete sends the prompt in a single blocking round trip and returns the
// raw reply text. No retries.
func (g *GeminiGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.apiKey == "" {
		return "", ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrGenerationFailed)
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("%w: unexpected response format", ErrGenerationFailed)
	}

	return string(text), nil
}
