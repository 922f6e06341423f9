package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance_backend/internal/api"
	"finance_backend/internal/feature/portfolio/domain/entity"
	"finance_backend/internal/feature/portfolio/usecase"
	"finance_backend/internal/platform/cache"
)

// mockDashboardUsecase is a mock implementation of the DashboardUsecase interface.
type mockDashboardUsecase struct {
	BuildDashboardFunc func(ctx context.Context) (*entity.Dashboard, error)
}

func (m *mockDashboardUsecase) BuildDashboard(ctx context.Context) (*entity.Dashboard, error) {
	return m.BuildDashboardFunc(ctx)
}

// mockIngestor is a mock implementation of the Ingestor interface.
type mockIngestor struct {
	IngestAllFunc func(ctx context.Context, symbols []string) error
}

func (m *mockIngestor) IngestAll(ctx context.Context, symbols []string) error {
	if m.IngestAllFunc != nil {
		return m.IngestAllFunc(ctx, symbols)
	}
	return nil
}

// mockSymbolLister is a mock implementation of the SymbolLister interface.
type mockSymbolLister struct {
	ListActiveCodesFunc func(ctx context.Context) ([]string, error)
}

func (m *mockSymbolLister) ListActiveCodes(ctx context.Context) ([]string, error) {
	if m.ListActiveCodesFunc != nil {
		return m.ListActiveCodesFunc(ctx)
	}
	return []string{"THYAO", "TCELL"}, nil
}

func newRouter(uc *mockDashboardUsecase, ing *mockIngestor, syms *mockSymbolLister) *gin.Engine {
	gin.SetMode(gin.TestMode)
	// A nil Redis client keeps the cache out of the way.
	h := NewPortfolioHandler(uc, ing, syms, cache.NewDashboardCache(nil))
	r := gin.New()
	r.GET("/api/data", h.Dashboard)
	r.GET("/api/refresh", h.Refresh)
	return r
}

func TestPortfolioHandler_Dashboard(t *testing.T) {
	t.Run("serves the dashboard payload", func(t *testing.T) {
		uc := &mockDashboardUsecase{
			BuildDashboardFunc: func(ctx context.Context) (*entity.Dashboard, error) {
				return &entity.Dashboard{AsOf: "2025-01-05", USDTRY: 30}, nil
			},
		}
		router := newRouter(uc, &mockIngestor{}, &mockSymbolLister{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/data", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

		var got entity.Dashboard
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "2025-01-05", got.AsOf)
		assert.Equal(t, 30.0, got.USDTRY)
	})

	t.Run("no holdings yields 404", func(t *testing.T) {
		uc := &mockDashboardUsecase{
			BuildDashboardFunc: func(ctx context.Context) (*entity.Dashboard, error) {
				return nil, usecase.ErrNoHoldings
			},
		}
		router := newRouter(uc, &mockIngestor{}, &mockSymbolLister{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/data", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("build failure yields 500 without leaking the error", func(t *testing.T) {
		uc := &mockDashboardUsecase{
			BuildDashboardFunc: func(ctx context.Context) (*entity.Dashboard, error) {
				return nil, errors.New("candle table corrupted")
			},
		}
		router := newRouter(uc, &mockIngestor{}, &mockSymbolLister{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/data", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "corrupted")
	})
}

func TestPortfolioHandler_Refresh(t *testing.T) {
	t.Run("ingests every active symbol", func(t *testing.T) {
		var gotSymbols []string
		ing := &mockIngestor{
			IngestAllFunc: func(ctx context.Context, symbols []string) error {
				gotSymbols = symbols
				return nil
			},
		}
		router := newRouter(&mockDashboardUsecase{}, ing, &mockSymbolLister{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/refresh", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"THYAO", "TCELL"}, gotSymbols)

		var got api.RefreshResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "refreshed", got.Message)
		assert.Equal(t, 2, got.Symbols)
	})

	t.Run("ingest failure yields 502", func(t *testing.T) {
		ing := &mockIngestor{
			IngestAllFunc: func(ctx context.Context, symbols []string) error {
				return errors.New("upstream down")
			},
		}
		router := newRouter(&mockDashboardUsecase{}, ing, &mockSymbolLister{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/refresh", nil))
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("symbol listing failure yields 500", func(t *testing.T) {
		syms := &mockSymbolLister{
			ListActiveCodesFunc: func(ctx context.Context) ([]string, error) {
				return nil, errors.New("db down")
			},
		}
		router := newRouter(&mockDashboardUsecase{}, &mockIngestor{}, syms)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/refresh", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
