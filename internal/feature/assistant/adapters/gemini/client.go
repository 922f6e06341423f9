// Package gemini provides the Gemini-backed ticker analyzer.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"finance_backend/internal/feature/assistant/usecase"
)

const (
	// DefaultModel is the default Gemini model.
	DefaultModel = "gemini-2.5-flash"
)

// GeminiAnalyzer generates ticker analyses with the Google Gemini API.
type GeminiAnalyzer struct {
	client *genai.Client
	model  string
}

// Compile-time check that GeminiAnalyzer implements TickerAnalyzer.
var _ usecase.TickerAnalyzer = (*GeminiAnalyzer)(nil)

// NewGeminiAnalyzer creates a GeminiAnalyzer using ADC. It needs the
// GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT and GOOGLE_CLOUD_LOCATION
// environment variables (or GEMINI_API_KEY).
func NewGeminiAnalyzer(ctx context.Context) (*GeminiAnalyzer, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiAnalyzer{client: client, model: DefaultModel}, nil
}

// Analyze generates an analysis from the prompt.
func (g *GeminiAnalyzer) Analyze(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	return resp.Text(), nil
}
