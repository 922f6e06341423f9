package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance_backend/internal/api"
	"finance_backend/internal/feature/quotes/domain/entity"
)

// mockQuotesUsecase is a mock implementation of the QuotesUsecase interface.
type mockQuotesUsecase struct {
	GetCandlesFunc          func(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error)
	GetQuoteFunc            func(ctx context.Context, symbol string) (*entity.Quote, error)
	GetStockInfoFunc        func(ctx context.Context, symbol string) (*entity.StockInfo, error)
	GetPortfolioSummaryFunc func(ctx context.Context, symbols []string) (*entity.PortfolioSummary, error)
}

func (m *mockQuotesUsecase) GetCandles(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
	return m.GetCandlesFunc(ctx, symbol, interval, outputsize)
}

func (m *mockQuotesUsecase) GetQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	return m.GetQuoteFunc(ctx, symbol)
}

func (m *mockQuotesUsecase) GetStockInfo(ctx context.Context, symbol string) (*entity.StockInfo, error) {
	return m.GetStockInfoFunc(ctx, symbol)
}

func (m *mockQuotesUsecase) GetPortfolioSummary(ctx context.Context, symbols []string) (*entity.PortfolioSummary, error) {
	return m.GetPortfolioSummaryFunc(ctx, symbols)
}

func newRouter(uc *mockQuotesUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewQuotesHandler(uc)
	r := gin.New()
	r.GET("/api/candles/:symbol", h.GetCandles)
	r.GET("/api/quote/:symbol", h.GetQuote)
	r.GET("/api/stock/:symbol", h.GetStockInfo)
	r.GET("/api/portfolio", h.GetPortfolioSummary)
	return r
}

func TestQuotesHandler_GetCandles(t *testing.T) {
	t.Run("passes params and formats dates", func(t *testing.T) {
		var gotSymbol, gotInterval string
		var gotSize int
		uc := &mockQuotesUsecase{
			GetCandlesFunc: func(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
				gotSymbol, gotInterval, gotSize = symbol, interval, outputsize
				return []entity.Candle{{
					Symbol:   "THYAO.IS",
					Interval: interval,
					Time:     time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
					Close:    312,
				}}, nil
			},
		}
		router := newRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/candles/THYAO?interval=1week&outputsize=50", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "THYAO", gotSymbol)
		assert.Equal(t, "1week", gotInterval)
		assert.Equal(t, 50, gotSize)

		var got []api.CandleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "THYAO", got[0].Symbol, "exchange suffix should be stripped")
		assert.Equal(t, "2025-01-05", got[0].Time)
	})

	t.Run("defaults interval and outputsize", func(t *testing.T) {
		uc := &mockQuotesUsecase{
			GetCandlesFunc: func(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
				assert.Equal(t, "1day", interval)
				assert.Equal(t, 200, outputsize)
				return nil, nil
			},
		}
		router := newRouter(uc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/candles/THYAO", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("usecase failure yields 502", func(t *testing.T) {
		uc := &mockQuotesUsecase{
			GetCandlesFunc: func(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
				return nil, errors.New("upstream down")
			},
		}
		router := newRouter(uc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/candles/THYAO", nil))
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestQuotesHandler_GetQuote(t *testing.T) {
	uc := &mockQuotesUsecase{
		GetQuoteFunc: func(ctx context.Context, symbol string) (*entity.Quote, error) {
			return &entity.Quote{Symbol: "THYAO", Price: 312.5}, nil
		},
	}
	router := newRouter(uc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/quote/THYAO", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var got entity.Quote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 312.5, got.Price)
}

func TestQuotesHandler_GetPortfolioSummary(t *testing.T) {
	t.Run("splits the tickers query", func(t *testing.T) {
		var gotSymbols []string
		uc := &mockQuotesUsecase{
			GetPortfolioSummaryFunc: func(ctx context.Context, symbols []string) (*entity.PortfolioSummary, error) {
				gotSymbols = symbols
				return &entity.PortfolioSummary{}, nil
			},
		}
		router := newRouter(uc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/portfolio?tickers=THYAO,%20TCELL,", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"THYAO", "TCELL"}, gotSymbols)
	})

	t.Run("no query means the whole universe", func(t *testing.T) {
		uc := &mockQuotesUsecase{
			GetPortfolioSummaryFunc: func(ctx context.Context, symbols []string) (*entity.PortfolioSummary, error) {
				assert.Nil(t, symbols)
				return &entity.PortfolioSummary{}, nil
			},
		}
		router := newRouter(uc)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/portfolio", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
