// Package openaicompat provides a chat client for OpenAI-compatible APIs.
// The user supplies the endpoint and key at connect time, so one client
// serves OpenAI, OpenRouter, Together and self-hosted gateways alike.
package openaicompat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"finance_backend/internal/feature/assistant/adapters/openaicompat/dto"
	"finance_backend/internal/feature/assistant/domain/entity"
	"finance_backend/internal/feature/assistant/usecase"
)

// Generation parameters for every chat call.
const (
	temperature = 0.7
	maxTokens   = 2000
)

// Client implements the LLMClient interface over HTTP.
type Client struct {
	httpClient *http.Client
}

// Compile-time check that Client implements LLMClient.
var _ usecase.LLMClient = (*Client)(nil)

// NewClient creates a Client using the given HTTP client.
func NewClient(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

// ChatCompletion sends the transcript to {base_url}/chat/completions with
// the session's bearer key and returns the first choice's content.
func (c *Client) ChatCompletion(ctx context.Context, cfg entity.ProviderConfig, messages []entity.Message) (string, error) {
	reqBody := dto.ChatCompletionRequest{
		Model:       cfg.Model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	for _, m := range messages {
		reqBody.Messages = append(reqBody.Messages, dto.ChatMessage{Role: m.Role, Content: m.Content})
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	u := cfg.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	var body dto.ChatCompletionResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("llm provider: decode response (http %d): %w", res.StatusCode, err)
	}
	if body.Error != nil {
		return "", fmt.Errorf("llm provider: %s", body.Error.Message)
	}
	if res.StatusCode >= 400 {
		return "", fmt.Errorf("llm provider: http %d", res.StatusCode)
	}
	if len(body.Choices) == 0 {
		return "", fmt.Errorf("llm provider: empty response")
	}
	return body.Choices[0].Message.Content, nil
}
