package usecase

import (
	"context"
	"log/slog"

	"finance_backend/internal/feature/quotes/domain/entity"
	"finance_backend/internal/shared/ratelimiter"
)

const (
	ingestOutputSize = 200 // candles fetched per request
)

// ingestIntervals lists the timeframes persisted for every symbol.
var ingestIntervals = []string{"1day", "1week", "1month"}

// IngestUsecase fetches market data from the external API and persists it.
type IngestUsecase struct {
	market      MarketRepository
	candle      CandleRepository
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewIngestUsecase creates a new IngestUsecase.
func NewIngestUsecase(market MarketRepository, candle CandleRepository, rateLimiter ratelimiter.RateLimiterInterface) *IngestUsecase {
	return &IngestUsecase{market: market, candle: candle, rateLimiter: rateLimiter}
}

// ingestOne fetches the time series for one symbol/interval pair and
// upserts it into the database.
func (iu *IngestUsecase) ingestOne(ctx context.Context, symbol, interval string, outputsize int) error {
	cs, err := iu.market.GetTimeSeries(ctx, symbol, interval, outputsize)
	if err != nil {
		return err
	}

	for i := range cs {
		cs[i].Symbol = symbol
		cs[i].Interval = interval
	}
	return iu.candle.UpsertBatch(ctx, cs)
}

// IngestAll persists daily, weekly and monthly candles for every tracked
// symbol plus the BIST 100 index and the USD/TRY rate, which the portfolio
// metrics need for benchmarking and currency conversion. A failed symbol is
// logged and skipped so one bad ticker does not abort the run.
func (iu *IngestUsecase) IngestAll(ctx context.Context, symbols []string) error {
	all := make([]string, 0, len(symbols)+2)
	for _, s := range symbols {
		all = append(all, entity.NormalizeSymbol(s))
	}
	all = append(all, entity.IndexSymbol, entity.FXSymbol)

	for _, s := range all {
		for _, interval := range ingestIntervals {
			iu.rateLimiter.WaitIfNeeded()
			if err := iu.ingestOne(ctx, s, interval, ingestOutputSize); err != nil {
				slog.Error("failed to ingest data", "symbol", s, "interval", interval, "error", err)
				continue
			}
		}
	}
	return nil
}
