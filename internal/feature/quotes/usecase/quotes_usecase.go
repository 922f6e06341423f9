// Package usecase implements the business logic for quote and candle operations.
package usecase

import (
	"context"
	"fmt"

	"finance_backend/internal/feature/quotes/domain/entity"
)

const (
	// DefaultInterval is the default candle interval for queries.
	DefaultInterval = "1day"
	// DefaultOutputSize is the default number of candles returned.
	DefaultOutputSize = 200
	// MaxOutputSize caps the number of candles returned per query.
	MaxOutputSize = 5000
	// DefaultPeriod is the default history period for live lookups.
	DefaultPeriod = "1mo"
	// historyTail is how many points get_historical_data hands to the LLM.
	historyTail = 10
)

// MarketRepository abstracts the live market data source (Yahoo Finance).
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type MarketRepository interface {
	// GetTimeSeries fetches candles for a symbol over a named period.
	GetTimeSeries(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error)
	// GetQuotes fetches current price snapshots for the given symbols.
	GetQuotes(ctx context.Context, symbols []string) ([]entity.Quote, error)
	// GetStockInfo fetches the full quote detail for one symbol.
	GetStockInfo(ctx context.Context, symbol string) (*entity.StockInfo, error)
}

// CandleRepository abstracts the persisted candle store.
type CandleRepository interface {
	// Find returns stored candles for a symbol, newest first.
	Find(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error)
	// UpsertBatch inserts candles, updating rows that already exist.
	UpsertBatch(ctx context.Context, candles []entity.Candle) error
}

// QuotesUsecase serves live quote lookups and persisted candle queries for
// the configured portfolio.
type QuotesUsecase struct {
	market   MarketRepository
	candle   CandleRepository
	universe []string // default portfolio codes (plain, without .IS)
}

// NewQuotesUsecase creates a QuotesUsecase. candle may be nil for callers
// that only need live data (the terminal chat client).
func NewQuotesUsecase(market MarketRepository, candle CandleRepository, universe []string) *QuotesUsecase {
	return &QuotesUsecase{market: market, candle: candle, universe: universe}
}

// GetCandles reads stored candles for a symbol and interval.
func (u *QuotesUsecase) GetCandles(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
	if u.candle == nil {
		return nil, fmt.Errorf("candle store is not configured")
	}
	if interval == "" {
		interval = DefaultInterval
	}
	if outputsize <= 0 || outputsize > MaxOutputSize {
		outputsize = DefaultOutputSize
	}
	return u.candle.Find(ctx, entity.NormalizeSymbol(symbol), interval, outputsize)
}

// GetQuote returns the current price snapshot for one symbol.
func (u *QuotesUsecase) GetQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	qs, err := u.market.GetQuotes(ctx, []string{entity.NormalizeSymbol(symbol)})
	if err != nil {
		return nil, err
	}
	if len(qs) == 0 {
		return nil, fmt.Errorf("no quote for %q", symbol)
	}
	return &qs[0], nil
}

// GetStockInfo returns the full quote detail for one symbol.
func (u *QuotesUsecase) GetStockInfo(ctx context.Context, symbol string) (*entity.StockInfo, error) {
	return u.market.GetStockInfo(ctx, entity.NormalizeSymbol(symbol))
}

// GetHistory fetches live historical candles for a symbol over a named
// period (1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, 10y, ytd, max). The returned
// slice is trimmed to the most recent points so function-call results stay
// small enough for a model prompt.
func (u *QuotesUsecase) GetHistory(ctx context.Context, symbol, period string) ([]entity.Candle, error) {
	if period == "" {
		period = DefaultPeriod
	}
	cs, err := u.market.GetTimeSeries(ctx, entity.NormalizeSymbol(symbol), DefaultInterval, periodPoints(period))
	if err != nil {
		return nil, err
	}
	if len(cs) > historyTail {
		cs = cs[len(cs)-historyTail:]
	}
	return cs, nil
}

// GetMultipleQuotes returns quotes for the given symbols, defaulting to the
// configured portfolio when symbols is empty.
func (u *QuotesUsecase) GetMultipleQuotes(ctx context.Context, symbols []string) ([]entity.Quote, error) {
	return u.market.GetQuotes(ctx, u.normalizeAll(symbols))
}

// GetPortfolioSummary aggregates quotes into gainer/loser counts.
func (u *QuotesUsecase) GetPortfolioSummary(ctx context.Context, symbols []string) (*entity.PortfolioSummary, error) {
	qs, err := u.market.GetQuotes(ctx, u.normalizeAll(symbols))
	if err != nil {
		return nil, err
	}

	summary := &entity.PortfolioSummary{TotalStocks: len(qs), Stocks: qs}
	for _, q := range qs {
		switch {
		case q.ChangePercent > 0:
			summary.Gainers++
		case q.ChangePercent < 0:
			summary.Losers++
		default:
			summary.Unchanged++
		}
	}
	return summary, nil
}

// CompareStocks returns side-by-side stock info for the given symbols.
func (u *QuotesUsecase) CompareStocks(ctx context.Context, symbols []string) ([]entity.StockInfo, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("compare_stocks requires at least one ticker")
	}
	out := make([]entity.StockInfo, 0, len(symbols))
	for _, s := range symbols {
		info, err := u.market.GetStockInfo(ctx, entity.NormalizeSymbol(s))
		if err != nil {
			return nil, err
		}
		out = append(out, *info)
	}
	return out, nil
}

// normalizeAll maps symbols to Yahoo form, falling back to the universe.
func (u *QuotesUsecase) normalizeAll(symbols []string) []string {
	if len(symbols) == 0 {
		symbols = u.universe
	}
	out := make([]string, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, entity.NormalizeSymbol(s))
	}
	return out
}

// periodPoints maps a yfinance-style period name to an approximate number
// of daily candles, used as the fetch size for live history lookups.
func periodPoints(period string) int {
	switch period {
	case "1d":
		return 1
	case "5d":
		return 5
	case "1mo":
		return 22
	case "3mo":
		return 66
	case "6mo":
		return 132
	case "1y":
		return 260
	case "2y":
		return 520
	case "5y":
		return 1300
	case "10y":
		return 2600
	case "ytd":
		return 260
	default: // "max" and anything unknown
		return MaxOutputSize
	}
}
