package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"finance_backend/internal/feature/quotes/domain/entity"
	"finance_backend/internal/feature/quotes/usecase"
)

// noopLimiter satisfies RateLimiterInterface without waiting.
type noopLimiter struct{}

func (noopLimiter) WaitIfNeeded() {}

// TestIngestUsecase_IngestAll verifies that every symbol is fetched for all
// three intervals, that the index and FX symbols are appended, and that
// candles are stamped before the upsert.
func TestIngestUsecase_IngestAll(t *testing.T) {
	ctx := context.Background()

	var mu sync.Mutex
	fetched := map[string]int{}
	var upserted [][]entity.Candle

	market := &mockMarketRepository{
		GetTimeSeriesFunc: func(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
			mu.Lock()
			fetched[symbol]++
			mu.Unlock()
			return []entity.Candle{{Close: 1}, {Close: 2}}, nil
		},
	}
	candle := &mockCandleRepository{
		UpsertBatchFunc: func(ctx context.Context, candles []entity.Candle) error {
			mu.Lock()
			upserted = append(upserted, candles)
			mu.Unlock()
			return nil
		},
	}

	uc := usecase.NewIngestUsecase(market, candle, noopLimiter{})
	if err := uc.IngestAll(ctx, []string{"THYAO", "TCELL"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 2 tickers + index + fx, 3 intervals each.
	for _, sym := range []string{"THYAO.IS", "TCELL.IS", entity.IndexSymbol, entity.FXSymbol} {
		if fetched[sym] != 3 {
			t.Errorf("symbol %s fetched %d times, want 3", sym, fetched[sym])
		}
	}
	if len(upserted) != 12 {
		t.Fatalf("upsert batches = %d, want 12", len(upserted))
	}
	for _, batch := range upserted {
		for _, c := range batch {
			if c.Symbol == "" || c.Interval == "" {
				t.Errorf("candle not stamped: %+v", c)
			}
		}
	}
}

// TestIngestUsecase_IngestAll_ContinuesOnError verifies one failing symbol
// does not abort the run.
func TestIngestUsecase_IngestAll_ContinuesOnError(t *testing.T) {
	ctx := context.Background()

	var upsertCount int
	market := &mockMarketRepository{
		GetTimeSeriesFunc: func(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
			if symbol == "BAD.IS" {
				return nil, errors.New("upstream 404")
			}
			return []entity.Candle{{Close: 1}}, nil
		},
	}
	candle := &mockCandleRepository{
		UpsertBatchFunc: func(ctx context.Context, candles []entity.Candle) error {
			upsertCount++
			return nil
		},
	}

	uc := usecase.NewIngestUsecase(market, candle, noopLimiter{})
	if err := uc.IngestAll(ctx, []string{"BAD", "THYAO"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// THYAO + index + fx succeed, 3 intervals each; BAD contributes nothing.
	if upsertCount != 9 {
		t.Errorf("upsert count = %d, want 9", upsertCount)
	}
}
