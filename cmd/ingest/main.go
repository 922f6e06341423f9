// Command ingest backfills candles for every active symbol, the BIST 100
// index and the USD/TRY rate, then exits. Run it on a schedule after market
// close.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"finance_backend/internal/app/di"
	quotesadapters "finance_backend/internal/feature/quotes/adapters"
	quotesusecase "finance_backend/internal/feature/quotes/usecase"
	symboladapters "finance_backend/internal/feature/symbols/adapters"
	platformdb "finance_backend/internal/platform/db"
	"finance_backend/internal/shared/ratelimiter"
)

const ingestCallsPerMinute = 50

func main() {
	_ = godotenv.Load()

	db := platformdb.OpenDB()
	marketRepo := di.NewMarket()
	candleRepo := quotesadapters.NewCandleRepository(db)
	symbolRepo := symboladapters.NewSymbolRepository(db)
	uc := quotesusecase.NewIngestUsecase(marketRepo, candleRepo,
		ratelimiter.NewRateLimiter(ingestCallsPerMinute, time.Minute))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	symbols, err := symbolRepo.ListActiveCodes(ctx)
	if err != nil {
		log.Fatal("failed to load symbols:", err)
	}

	if err := uc.IngestAll(ctx, symbols); err != nil {
		log.Fatal(err)
	}
	log.Println("ingest ok")
}
