// Package usecase implements the business logic for symbol-related operations.
package usecase

import (
	"context"

	"finance_backend/internal/feature/symbols/domain/entity"
	"finance_backend/internal/platform/config"
)

// SymbolRepository abstracts the persistence layer for symbol (stock ticker) data.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	ListActive(ctx context.Context) ([]entity.Symbol, error)
	ListActiveCodes(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	UpsertBatch(ctx context.Context, symbols []entity.Symbol) error
}

// SymbolUsecase provides business logic for symbol operations.
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListActiveSymbols returns all active symbols from the repository.
func (u *SymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.ListActive(ctx)
}

// ListActiveCodes returns the codes of all active symbols.
func (u *SymbolUsecase) ListActiveCodes(ctx context.Context) ([]string, error) {
	return u.repo.ListActiveCodes(ctx)
}

// SeedFromConfig populates the symbols table from the application config
// when it is empty. Existing rows win so manual edits survive restarts.
func (u *SymbolUsecase) SeedFromConfig(ctx context.Context, tickers []config.Ticker) error {
	n, err := u.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	symbols := make([]entity.Symbol, 0, len(tickers))
	for i, t := range tickers {
		symbols = append(symbols, entity.Symbol{
			Code:     t.Code,
			Name:     t.Name,
			Sector:   t.Sector,
			Market:   "BIST",
			IsActive: true,
			SortKey:  i,
		})
	}
	return u.repo.UpsertBatch(ctx, symbols)
}
