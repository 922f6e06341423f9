// Command chat is a terminal client for the market assistant. It talks to
// the same usecase the HTTP API uses, with live Yahoo data and no database.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"finance_backend/internal/app/di"
	"finance_backend/internal/feature/assistant/adapters/marketfn"
	"finance_backend/internal/feature/assistant/adapters/openaicompat"
	"finance_backend/internal/feature/assistant/domain/entity"
	assistantusecase "finance_backend/internal/feature/assistant/usecase"
	quotesusecase "finance_backend/internal/feature/quotes/usecase"
	"finance_backend/internal/platform/config"
	platformhttp "finance_backend/internal/platform/http"
)

// cliUserID keys the single local session in the store.
const cliUserID = 1

const helpText = `commands:
  /prompt <name>   switch system prompt (resets history)
  /prompts         list available prompts
  /model <name>    switch model (resets history)
  /clear           clear conversation history
  /portfolio       show current portfolio prices
  /help            show this help
  /quit            exit`

func main() {
	_ = godotenv.Load()

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY is not set")
	}

	path := os.Getenv("APP_CONFIG")
	if path == "" {
		path = config.DefaultAppConfigPath
	}
	appCfg, err := config.LoadAppConfig(path)
	if err != nil {
		log.Fatal(err)
	}

	// Live market data only; the CLI needs no database.
	quotesUC := quotesusecase.NewQuotesUsecase(di.NewMarket(), nil, appCfg.TickerCodes())
	store := assistantusecase.NewSessionStore(24 * time.Hour)
	llm := openaicompat.NewClient(platformhttp.NewHTTPClient(90 * time.Second))
	assistantUC := assistantusecase.NewAssistantUsecase(store, llm, marketfn.NewGateway(quotesUC), nil, appCfg)

	provider := entity.ProviderConfig{
		APIKey:  apiKey,
		BaseURL: os.Getenv("LLM_BASE_URL"),
		Model:   os.Getenv("LLM_MODEL"),
	}
	promptName := "default"

	connect := func() {
		model, prompt, err := assistantUC.Connect(context.Background(), cliUserID, provider, promptName)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("connected (model=%s, prompt=%s). Type /help for commands.\n", model, prompt)
	}
	connect()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			cmd, arg, _ := strings.Cut(line, " ")
			arg = strings.TrimSpace(arg)
			switch cmd {
			case "/quit", "/exit":
				return
			case "/help":
				fmt.Println(helpText)
			case "/prompts":
				names := appCfg.PromptNames()
				sort.Strings(names)
				fmt.Println(strings.Join(names, ", "))
			case "/prompt":
				if arg == "" {
					fmt.Println("usage: /prompt <name>")
					continue
				}
				promptName = arg
				connect()
			case "/model":
				if arg == "" {
					fmt.Println("usage: /model <name>")
					continue
				}
				provider.Model = arg
				connect()
			case "/clear":
				if err := assistantUC.ClearHistory(cliUserID); err != nil {
					fmt.Println("error:", err)
					continue
				}
				fmt.Println("history cleared")
			case "/portfolio":
				printPortfolio(quotesUC)
			default:
				fmt.Println("unknown command; /help lists them")
			}
			continue
		}

		reply, calls, err := assistantUC.Chat(context.Background(), cliUserID, line)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		if len(calls) > 0 {
			fmt.Printf("[called: %s]\n", strings.Join(calls, ", "))
		}
		fmt.Println(reply)
	}
}

func printPortfolio(uc *quotesusecase.QuotesUsecase) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	summary, err := uc.GetPortfolioSummary(ctx, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, q := range summary.Stocks {
		fmt.Printf("  %-8s %10.2f %s  %+.2f%%\n", q.Symbol, q.Price, q.Currency, q.ChangePercent)
	}
	fmt.Printf("  %d stocks: %d up, %d down, %d flat\n",
		summary.TotalStocks, summary.Gainers, summary.Losers, summary.Unchanged)
}
