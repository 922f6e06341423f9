// Package dto defines data transfer objects for OpenAI-compatible chat APIs.
package dto

// ChatMessage is one message in a chat completion request or response.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequest is the request body for POST /chat/completions.
type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// ChatCompletionResponse is the response body from POST /chat/completions.
type ChatCompletionResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
	Error *APIError `json:"error,omitempty"`
}

// APIError is the error object OpenAI-compatible endpoints embed in failed
// responses.
type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}
