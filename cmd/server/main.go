package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"finance_backend/internal/app/di"
	"finance_backend/internal/app/router"
	assistanthandler "finance_backend/internal/feature/assistant/transport/handler"
	authadapters "finance_backend/internal/feature/auth/adapters"
	authhandler "finance_backend/internal/feature/auth/transport/handler"
	authusecase "finance_backend/internal/feature/auth/usecase"
	portfolioadapters "finance_backend/internal/feature/portfolio/adapters"
	portfoliohandler "finance_backend/internal/feature/portfolio/transport/handler"
	portfoliousecase "finance_backend/internal/feature/portfolio/usecase"
	quotesadapters "finance_backend/internal/feature/quotes/adapters"
	quoteshandler "finance_backend/internal/feature/quotes/transport/handler"
	quotesusecase "finance_backend/internal/feature/quotes/usecase"
	symboladapters "finance_backend/internal/feature/symbols/adapters"
	symbolhandler "finance_backend/internal/feature/symbols/transport/handler"
	symbolusecase "finance_backend/internal/feature/symbols/usecase"
	"finance_backend/internal/platform/cache"
	"finance_backend/internal/platform/config"
	platformdb "finance_backend/internal/platform/db"
	jwtmw "finance_backend/internal/platform/jwt"
	platformredis "finance_backend/internal/platform/redis"
	"finance_backend/internal/shared/ratelimiter"
)

const (
	tokenExpiration = 24 * time.Hour
	seedTimeout     = 30 * time.Second
	// Yahoo's chart endpoint tolerates about 60 calls a minute.
	ingestCallsPerMinute = 50
)

func main() {
	// Local development reads .env; deployed environments set real env vars.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// Refuse to start without SECRET_KEY rather than serve unsigned sessions.
		log.Fatal(err)
	}

	appCfg, err := config.LoadAppConfig(cfg.AppConfigPath)
	if err != nil {
		log.Fatal(err)
	}

	db := platformdb.OpenDB()

	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repositories.
	userRepo := authadapters.NewUserMySQL(db)
	symbolRepo := symboladapters.NewSymbolRepository(db)
	holdingRepo := portfolioadapters.NewHoldingRepository(db)
	candleRepo := quotesadapters.NewCandleRepository(db)

	ttl := cache.TimeUntilNextMarketClose()
	cachedCandleRepo := cache.NewCachingCandleRepository(rdb, ttl, candleRepo, "candles")
	dashCache := cache.NewDashboardCache(rdb)

	marketRepo := di.NewMarket()

	// Usecases.
	jwtGen := jwtmw.NewGenerator(cfg.SecretKey, tokenExpiration)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	symbolUC := symbolusecase.NewSymbolUsecase(symbolRepo)
	quotesUC := quotesusecase.NewQuotesUsecase(marketRepo, cachedCandleRepo, appCfg.TickerCodes())
	ingestUC := quotesusecase.NewIngestUsecase(marketRepo, cachedCandleRepo,
		ratelimiter.NewRateLimiter(ingestCallsPerMinute, time.Minute))
	portfolioUC := portfoliousecase.NewPortfolioUsecase(holdingRepo, cachedCandleRepo, cfg.RiskFreeRate)
	assistantUC := di.NewAssistant(context.Background(), quotesUC, appCfg)

	// Seed symbols and holdings from the YAML config on first start.
	seedCtx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()
	if err := symbolUC.SeedFromConfig(seedCtx, appCfg.Tickers); err != nil {
		log.Fatal("failed to seed symbols:", err)
	}
	holdings, err := portfoliousecase.HoldingsFromSeeds(appCfg.Holdings)
	if err != nil {
		log.Fatal(err)
	}
	if err := portfolioUC.SeedFromConfig(seedCtx, holdings); err != nil {
		log.Fatal("failed to seed holdings:", err)
	}

	// Handlers.
	authH := authhandler.NewAuthHandler(authUC)
	symbolH := symbolhandler.NewSymbolHandler(symbolUC)
	quotesH := quoteshandler.NewQuotesHandler(quotesUC)
	portfolioH := portfoliohandler.NewPortfolioHandler(portfolioUC, ingestUC, symbolUC, dashCache)
	assistantH := assistanthandler.NewAssistantHandler(assistantUC)

	r := router.NewRouter(authH, quotesH, portfolioH, symbolH, assistantH)

	log.Printf("listening on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal(err)
	}
}
