// Package handler provides the HTTP handlers for the portfolio feature.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"finance_backend/internal/api"
	"finance_backend/internal/feature/portfolio/domain/entity"
	"finance_backend/internal/feature/portfolio/usecase"
	"finance_backend/internal/platform/cache"
)

// DashboardUsecase defines the analytics operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type DashboardUsecase interface {
	BuildDashboard(ctx context.Context) (*entity.Dashboard, error)
}

// Ingestor re-fetches market data for the tracked symbols.
type Ingestor interface {
	IngestAll(ctx context.Context, symbols []string) error
}

// SymbolLister supplies the codes to refresh.
type SymbolLister interface {
	ListActiveCodes(ctx context.Context) ([]string, error)
}

// PortfolioHandler serves the dashboard payload and the manual refresh.
type PortfolioHandler struct {
	uc      DashboardUsecase
	ingest  Ingestor
	symbols SymbolLister
	cache   *cache.DashboardCache
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(uc DashboardUsecase, ingest Ingestor, symbols SymbolLister, c *cache.DashboardCache) *PortfolioHandler {
	return &PortfolioHandler{uc: uc, ingest: ingest, symbols: symbols, cache: c}
}

// Dashboard serves the computed portfolio analytics. The JSON snapshot is
// cached until the next market close, since daily candles only change then.
//
// GET /api/data
func (h *PortfolioHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	if b, ok := h.cache.Get(ctx); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", b)
		return
	}

	dash, err := h.uc.BuildDashboard(ctx)
	if err != nil {
		if errors.Is(err, usecase.ErrNoHoldings) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("dashboard build failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to build dashboard"})
		return
	}

	b, err := json.Marshal(dash)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to encode dashboard"})
		return
	}
	h.cache.Set(ctx, b, cache.TimeUntilNextMarketClose())
	c.Data(http.StatusOK, "application/json; charset=utf-8", b)
}

// Refresh re-ingests candles for every active symbol and drops the cached
// dashboard so the next load recomputes from fresh data.
//
// GET /api/refresh (authenticated)
func (h *PortfolioHandler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	codes, err := h.symbols.ListActiveCodes(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.ingest.IngestAll(ctx, codes); err != nil {
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	h.cache.Invalidate(ctx)
	slog.Info("manual refresh completed", "symbols", len(codes))
	c.JSON(http.StatusOK, api.RefreshResponse{Message: "refreshed", Symbols: len(codes)})
}
