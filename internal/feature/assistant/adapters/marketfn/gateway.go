// Package marketfn bridges the assistant's function calls to the quotes
// feature.
package marketfn

import (
	"context"

	assistantuc "finance_backend/internal/feature/assistant/usecase"
	quotesuc "finance_backend/internal/feature/quotes/usecase"
)

// Gateway adapts the quotes function registry to the assistant's
// FunctionGateway interface.
type Gateway struct {
	quotes *quotesuc.QuotesUsecase
}

// Compile-time check that Gateway implements FunctionGateway.
var _ assistantuc.FunctionGateway = (*Gateway)(nil)

// NewGateway creates a Gateway over the quotes usecase.
func NewGateway(quotes *quotesuc.QuotesUsecase) *Gateway {
	return &Gateway{quotes: quotes}
}

// Specs lists the callable market-data functions.
func (g *Gateway) Specs() []assistantuc.FunctionSpec {
	specs := g.quotes.AvailableFunctions()
	out := make([]assistantuc.FunctionSpec, 0, len(specs))
	for _, s := range specs {
		out = append(out, assistantuc.FunctionSpec{
			Name:        s.Name,
			Description: s.Description,
			Parameters:  s.Parameters,
		})
	}
	return out
}

// Execute dispatches a function call to the quotes usecase.
func (g *Gateway) Execute(ctx context.Context, name string, params map[string]any) (any, error) {
	return g.quotes.ExecuteFunction(ctx, name, params)
}
