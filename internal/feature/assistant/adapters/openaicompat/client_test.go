package openaicompat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finance_backend/internal/feature/assistant/adapters/openaicompat/dto"
	"finance_backend/internal/feature/assistant/domain/entity"
)

func testMessages() []entity.Message {
	return []entity.Message{
		{Role: entity.RoleSystem, Content: "You are a finance assistant."},
		{Role: entity.RoleUser, Content: "price of THYAO?"},
	}
}

func TestClient_ChatCompletion(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody dto.ChatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatal(err)
		}
		resp := `{"choices": [{"message": {"role": "assistant", "content": "312.5 TRY"}}]}`
		if _, err := w.Write([]byte(resp)); err != nil {
			t.Fatal(err)
		}
	}))
	defer srv.Close()

	c := NewClient(&http.Client{Timeout: time.Second})
	cfg := entity.ProviderConfig{APIKey: "sk-test", BaseURL: srv.URL, Model: "gpt-4o-mini"}

	reply, err := c.ChatCompletion(context.Background(), cfg, testMessages())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "312.5 TRY" {
		t.Errorf("reply = %q", reply)
	}

	if gotPath != "/chat/completions" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if gotBody.Model != "gpt-4o-mini" || gotBody.Temperature != 0.7 || gotBody.MaxTokens != 2000 {
		t.Errorf("request = %+v", gotBody)
	}
	if len(gotBody.Messages) != 2 || gotBody.Messages[0].Role != "system" {
		t.Errorf("messages = %+v", gotBody.Messages)
	}
}

// TestClient_ChatCompletion_APIError verifies the provider's error message
// surfaces even on non-2xx responses.
func TestClient_ChatCompletion_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		body := `{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}))
	defer srv.Close()

	c := NewClient(&http.Client{Timeout: time.Second})
	cfg := entity.ProviderConfig{APIKey: "bad", BaseURL: srv.URL, Model: "gpt-4o-mini"}

	_, err := c.ChatCompletion(context.Background(), cfg, testMessages())
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != "llm provider: Incorrect API key provided" {
		t.Errorf("error = %q", got)
	}
}

func TestClient_ChatCompletion_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(`{"choices": []}`)); err != nil {
			t.Fatal(err)
		}
	}))
	defer srv.Close()

	c := NewClient(&http.Client{Timeout: time.Second})
	cfg := entity.ProviderConfig{APIKey: "sk-test", BaseURL: srv.URL}

	if _, err := c.ChatCompletion(context.Background(), cfg, testMessages()); err == nil {
		t.Error("expected error for empty choices")
	}
}
