package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"finance_backend/internal/api"
	"finance_backend/internal/feature/symbols/domain/entity"
)

// SymbolUsecase defines the symbol operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SymbolUsecase interface {
	ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error)
}

// SymbolHandler handles HTTP requests for symbol data.
type SymbolHandler struct {
	uc SymbolUsecase
}

// NewSymbolHandler creates a new SymbolHandler.
func NewSymbolHandler(uc SymbolUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// List serves the active symbol list. Returns 500 when the usecase fails.
func (h *SymbolHandler) List(c *gin.Context) {
	symbols, err := h.uc.ListActiveSymbols(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}
	out := make([]api.SymbolItem, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, api.SymbolItem{Code: s.Code, Name: s.Name, Sector: s.Sector, Market: s.Market})
	}
	c.JSON(http.StatusOK, out)
}
