package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"finance_backend/internal/feature/assistant/domain/entity"
	"finance_backend/internal/platform/config"
)

const (
	// DefaultBaseURL targets the OpenAI API when connect omits one. Any
	// OpenAI-compatible endpoint works.
	DefaultBaseURL = "https://api.openai.com/v1"
	// DefaultModel is used when connect omits a model name.
	DefaultModel = "gpt-4o-mini"
	// maxFunctionRounds caps chained function calls per chat turn.
	maxFunctionRounds = 3
	// maxHistoryMessages bounds the transcript kept per session.
	maxHistoryMessages = 40
	// MaxTickerLength bounds the symbol accepted by AnalyzeTicker.
	MaxTickerLength = 12
)

// analysisPromptTemplate drives the one-shot ticker analysis.
const analysisPromptTemplate = "Provide a brief investment analysis of the Borsa Istanbul company %s. " +
	"Cover valuation, momentum and risks in under 200 words. Current data: %s"

// validTicker matches plain BIST codes, optionally with a .IS suffix.
var validTicker = regexp.MustCompile(`^[A-Za-z0-9]{1,10}(\.IS)?$`)

// functionCallStart locates an inline JSON function call in a model reply.
var functionCallStart = regexp.MustCompile(`\{\s*"function"`)

// fencedJSON captures a JSON object inside a markdown code fence.
var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// FunctionSpec describes one callable function as rendered into the system
// prompt.
type FunctionSpec struct {
	Name        string
	Description string
	Parameters  map[string]string
}

// LLMClient talks to the user's OpenAI-compatible endpoint.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type LLMClient interface {
	// ChatCompletion sends the transcript and returns the model's reply.
	ChatCompletion(ctx context.Context, cfg entity.ProviderConfig, messages []entity.Message) (string, error)
}

// FunctionGateway exposes the market-data functions the model may call.
type FunctionGateway interface {
	Specs() []FunctionSpec
	Execute(ctx context.Context, name string, params map[string]any) (any, error)
}

// TickerAnalyzer generates a one-shot analysis from a prompt. Backed by
// Gemini, independent of the user's chat provider.
type TickerAnalyzer interface {
	Analyze(ctx context.Context, prompt string) (string, error)
}

// AssistantUsecase manages per-user chat sessions with a user-supplied LLM
// provider, routing model-issued function calls to live market data.
type AssistantUsecase struct {
	store    *SessionStore
	llm      LLMClient
	gateway  FunctionGateway
	analyzer TickerAnalyzer
	appCfg   *config.AppConfig
}

// NewAssistantUsecase creates an AssistantUsecase. analyzer may be nil when
// no Gemini credentials are available; AnalyzeTicker then fails cleanly.
func NewAssistantUsecase(store *SessionStore, llm LLMClient, gateway FunctionGateway, analyzer TickerAnalyzer, appCfg *config.AppConfig) *AssistantUsecase {
	return &AssistantUsecase{store: store, llm: llm, gateway: gateway, analyzer: analyzer, appCfg: appCfg}
}

// Connect opens (or replaces) the user's assistant session. The API key is
// held only in memory for the life of the session.
func (u *AssistantUsecase) Connect(ctx context.Context, userID uint, cfg entity.ProviderConfig, promptName string) (model, prompt string, err error) {
	if cfg.APIKey == "" {
		return "", "", fmt.Errorf("api key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	if promptName == "" {
		promptName = "default"
	}
	if _, ok := u.appCfg.Prompts[promptName]; !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownPrompt, promptName)
	}
	system := strings.ReplaceAll(u.appCfg.Prompt(promptName), "{available_functions}", u.renderFunctions())

	u.store.Put(userID, &entity.Session{
		UserID:       userID,
		Provider:     cfg,
		SystemPrompt: system,
		LastUsed:     time.Now(),
	})
	return cfg.Model, promptName, nil
}

// Disconnect drops the user's session and the API key with it.
func (u *AssistantUsecase) Disconnect(userID uint) {
	u.store.Delete(userID)
}

// ClearHistory wipes the transcript but keeps the connection.
func (u *AssistantUsecase) ClearHistory(userID uint) error {
	sess, ok := u.store.Get(userID)
	if !ok {
		return ErrNoSession
	}
	sess.Lock()
	sess.History = nil
	sess.Unlock()
	return nil
}

// Chat sends a user message through the session's provider. When the model
// replies with a JSON function call, the function runs against live market
// data and its result is fed back for a final answer. Returns the reply and
// the names of the functions executed.
func (u *AssistantUsecase) Chat(ctx context.Context, userID uint, message string) (string, []string, error) {
	sess, ok := u.store.Get(userID)
	if !ok {
		return "", nil, ErrNoSession
	}
	if strings.TrimSpace(message) == "" {
		return "", nil, fmt.Errorf("message is empty")
	}

	// One turn per user at a time. Overlapping turns would interleave their
	// history appends and feed half-built transcripts to the model.
	sess.Lock()
	defer sess.Unlock()

	sess.History = append(sess.History, entity.Message{Role: entity.RoleUser, Content: message})

	var executed []string
	reply, err := u.llm.ChatCompletion(ctx, sess.Provider, u.transcript(sess))
	if err != nil {
		return "", nil, err
	}

	for round := 0; round < maxFunctionRounds; round++ {
		call, ok := extractFunctionCall(reply)
		if !ok {
			break
		}
		executed = append(executed, call.Function)

		result, err := u.gateway.Execute(ctx, call.Function, call.Parameters)
		var resultJSON string
		if err != nil {
			// The model gets the error too, so it can correct itself.
			resultJSON = fmt.Sprintf(`{"error": %q}`, err.Error())
		} else if b, merr := json.Marshal(result); merr == nil {
			resultJSON = string(b)
		} else {
			resultJSON = fmt.Sprintf(`{"error": %q}`, merr.Error())
		}

		sess.History = append(sess.History,
			entity.Message{Role: entity.RoleAssistant, Content: reply},
			entity.Message{Role: entity.RoleUser, Content: fmt.Sprintf("Function %s returned: %s\nAnswer the original question using this data.", call.Function, resultJSON)},
		)

		reply, err = u.llm.ChatCompletion(ctx, sess.Provider, u.transcript(sess))
		if err != nil {
			return "", executed, err
		}
	}

	sess.History = append(sess.History, entity.Message{Role: entity.RoleAssistant, Content: reply})
	if len(sess.History) > maxHistoryMessages {
		sess.History = sess.History[len(sess.History)-maxHistoryMessages:]
	}
	return reply, executed, nil
}

// AnalyzeTicker produces a one-shot Gemini analysis of a single symbol,
// grounded on its current stock info.
func (u *AssistantUsecase) AnalyzeTicker(ctx context.Context, symbol string) (string, error) {
	if u.analyzer == nil {
		return "", fmt.Errorf("ticker analysis is not configured")
	}
	symbol = strings.TrimSpace(symbol)
	if symbol == "" || len(symbol) > MaxTickerLength || !validTicker.MatchString(symbol) {
		return "", fmt.Errorf("invalid ticker %q", symbol)
	}

	info, err := u.gateway.Execute(ctx, "get_stock_info", map[string]any{"ticker": symbol})
	if err != nil {
		return "", fmt.Errorf("fetch stock info for %s: %w", symbol, err)
	}
	b, err := json.Marshal(info)
	if err != nil {
		return "", err
	}

	analysis, err := u.analyzer.Analyze(ctx, fmt.Sprintf(analysisPromptTemplate, strings.ToUpper(symbol), b))
	if err != nil {
		return "", fmt.Errorf("analyzer failed for %q: %w", symbol, err)
	}
	return analysis, nil
}

// transcript prepends the system prompt to the session history. The caller
// holds the session lock.
func (u *AssistantUsecase) transcript(sess *entity.Session) []entity.Message {
	out := make([]entity.Message, 0, len(sess.History)+1)
	out = append(out, entity.Message{Role: entity.RoleSystem, Content: sess.SystemPrompt})
	return append(out, sess.History...)
}

// renderFunctions formats the function registry for the system prompt.
func (u *AssistantUsecase) renderFunctions() string {
	var b strings.Builder
	for _, spec := range u.gateway.Specs() {
		fmt.Fprintf(&b, "- %s: %s\n", spec.Name, spec.Description)
		for name, desc := range spec.Parameters {
			fmt.Fprintf(&b, "    %s: %s\n", name, desc)
		}
	}
	return b.String()
}

// extractFunctionCall finds a JSON function call in a model reply, either
// inside a ```json fence or inline in the text.
func extractFunctionCall(reply string) (entity.FunctionCall, bool) {
	if m := fencedJSON.FindStringSubmatch(reply); m != nil {
		if call, ok := parseFunctionCall(m[1]); ok {
			return call, true
		}
	}
	if loc := functionCallStart.FindStringIndex(reply); loc != nil {
		if raw, ok := braceMatch(reply[loc[0]:]); ok {
			if call, ok := parseFunctionCall(raw); ok {
				return call, true
			}
		}
	}
	return entity.FunctionCall{}, false
}

func parseFunctionCall(raw string) (entity.FunctionCall, bool) {
	var call entity.FunctionCall
	if err := json.Unmarshal([]byte(raw), &call); err != nil || call.Function == "" {
		return entity.FunctionCall{}, false
	}
	if call.Parameters == nil {
		call.Parameters = map[string]any{}
	}
	return call, true
}

// braceMatch returns the balanced JSON object starting at s[0], which must
// be '{'. String literals are skipped so embedded braces don't miscount.
func braceMatch(s string) (string, bool) {
	depth := 0
	inString := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch c {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}
