// Package entity defines the domain models for the assistant feature.
package entity

import (
	"sync"
	"time"
)

// Message roles used in the chat transcript.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn in the conversation with the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ProviderConfig holds the user's LLM connection details. The API key is
// kept only inside the in-memory session; it must never reach the database,
// Redis or the logs.
type ProviderConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Session is one user's live assistant connection. History is mutable and
// must only be touched while holding the session lock; the HTTP layer serves
// requests concurrently, so two chat turns from the same user can overlap.
type Session struct {
	mu           sync.Mutex
	UserID       uint
	Provider     ProviderConfig
	SystemPrompt string
	History      []Message
	LastUsed     time.Time
}

// Lock serializes access to the session's transcript.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the transcript lock.
func (s *Session) Unlock() { s.mu.Unlock() }

// FunctionCall is a model-issued request to run a market-data function.
type FunctionCall struct {
	Function   string         `json:"function"`
	Parameters map[string]any `json:"parameters"`
}
