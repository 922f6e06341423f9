package di

import (
	"context"
	"log/slog"
	"time"

	"finance_backend/internal/feature/assistant/adapters/gemini"
	"finance_backend/internal/feature/assistant/adapters/marketfn"
	"finance_backend/internal/feature/assistant/adapters/openaicompat"
	assistantusecase "finance_backend/internal/feature/assistant/usecase"
	quotesusecase "finance_backend/internal/feature/quotes/usecase"
	"finance_backend/internal/platform/config"
	platformhttp "finance_backend/internal/platform/http"
)

// llmTimeout bounds one chat completion round-trip. Providers can take a
// while on long prompts, so it is generous.
const llmTimeout = 90 * time.Second

// NewAssistant assembles the assistant usecase: in-memory sessions, the
// OpenAI-compatible chat client, the market-data gateway and, when
// credentials allow, the Gemini analyzer.
func NewAssistant(ctx context.Context, quotes *quotesusecase.QuotesUsecase, appCfg *config.AppConfig) *assistantusecase.AssistantUsecase {
	store := assistantusecase.NewSessionStore(0)
	llm := openaicompat.NewClient(platformhttp.NewHTTPClient(llmTimeout))
	gateway := marketfn.NewGateway(quotes)

	var analyzer assistantusecase.TickerAnalyzer
	if a, err := gemini.NewGeminiAnalyzer(ctx); err != nil {
		slog.Warn("gemini analyzer unavailable, /api/assistant/analyze disabled", "error", err)
	} else {
		analyzer = a
	}

	return assistantusecase.NewAssistantUsecase(store, llm, gateway, analyzer, appCfg)
}
