// Package handler provides the HTTP handlers for the quotes feature.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"finance_backend/internal/api"
	"finance_backend/internal/feature/quotes/domain/entity"
)

// QuotesUsecase defines the quote operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type QuotesUsecase interface {
	GetCandles(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error)
	GetQuote(ctx context.Context, symbol string) (*entity.Quote, error)
	GetStockInfo(ctx context.Context, symbol string) (*entity.StockInfo, error)
	GetPortfolioSummary(ctx context.Context, symbols []string) (*entity.PortfolioSummary, error)
}

// QuotesHandler handles HTTP requests for market data.
type QuotesHandler struct {
	uc QuotesUsecase
}

// NewQuotesHandler creates a new QuotesHandler.
func NewQuotesHandler(uc QuotesUsecase) *QuotesHandler {
	return &QuotesHandler{uc: uc}
}

// GetCandles serves stored candles for one symbol.
//
// GET /api/candles/:symbol?interval=1day&outputsize=200
func (h *QuotesHandler) GetCandles(c *gin.Context) {
	symbol := c.Param("symbol")
	interval := c.DefaultQuery("interval", "1day")
	outputsize, _ := strconv.Atoi(c.DefaultQuery("outputsize", "200"))

	candles, err := h.uc.GetCandles(c.Request.Context(), symbol, interval, outputsize)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]api.CandleResponse, 0, len(candles))
	for _, x := range candles {
		out = append(out, api.CandleResponse{
			Symbol:   entity.DisplaySymbol(x.Symbol),
			Interval: x.Interval,
			Time:     x.Time.UTC().Format("2006-01-02"),
			Open:     x.Open,
			High:     x.High,
			Low:      x.Low,
			Close:    x.Close,
			Volume:   x.Volume,
		})
	}

	c.JSON(http.StatusOK, out)
}

// GetQuote serves the live price snapshot for one symbol.
//
// GET /api/quote/:symbol
func (h *QuotesHandler) GetQuote(c *gin.Context) {
	q, err := h.uc.GetQuote(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, q)
}

// GetStockInfo serves the full live quote detail for one symbol.
//
// GET /api/stock/:symbol
func (h *QuotesHandler) GetStockInfo(c *gin.Context) {
	info, err := h.uc.GetStockInfo(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}

// GetPortfolioSummary serves live gainer/loser counts across the portfolio,
// or across the tickers given in the optional comma-separated "tickers"
// query parameter.
//
// GET /api/portfolio?tickers=THYAO,TCELL
func (h *QuotesHandler) GetPortfolioSummary(c *gin.Context) {
	var symbols []string
	if raw := c.Query("tickers"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				symbols = append(symbols, s)
			}
		}
	}

	summary, err := h.uc.GetPortfolioSummary(c.Request.Context(), symbols)
	if err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
