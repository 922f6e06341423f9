package usecase

import (
	"context"
	"fmt"
)

// FunctionSpec describes one market-data function the assistant may call,
// in the shape the system prompt renders for the model.
type FunctionSpec struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Parameters  map[string]string `json:"parameters"`
}

// AvailableFunctions returns the callable market-data functions.
func (u *QuotesUsecase) AvailableFunctions() []FunctionSpec {
	return []FunctionSpec{
		{
			Name:        "get_stock_info",
			Description: "Get detailed information about a stock (price, volume, ratios, ranges)",
			Parameters:  map[string]string{"ticker": "Stock ticker, e.g. THYAO or THYAO.IS"},
		},
		{
			Name:        "get_price",
			Description: "Get the current price of a single stock",
			Parameters:  map[string]string{"ticker": "Stock ticker"},
		},
		{
			Name:        "get_historical_data",
			Description: "Get historical price data for a stock",
			Parameters:  map[string]string{"ticker": "Stock ticker", "period": "1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, 10y, ytd or max"},
		},
		{
			Name:        "get_multiple_prices",
			Description: "Get current prices for several stocks at once",
			Parameters:  map[string]string{"tickers": "List of tickers; empty means the whole portfolio"},
		},
		{
			Name:        "get_portfolio_summary",
			Description: "Summarize the portfolio: gainers, losers and current prices",
			Parameters:  map[string]string{},
		},
		{
			Name:        "compare_stocks",
			Description: "Compare several stocks side by side",
			Parameters:  map[string]string{"tickers": "List of tickers to compare"},
		},
	}
}

// ExecuteFunction dispatches a model-issued function call by name. Unknown
// names and bad parameters return an error the caller feeds back to the
// model as the function result.
func (u *QuotesUsecase) ExecuteFunction(ctx context.Context, name string, params map[string]any) (any, error) {
	switch name {
	case "get_stock_info":
		return u.GetStockInfo(ctx, stringParam(params, "ticker"))
	case "get_price":
		return u.GetQuote(ctx, stringParam(params, "ticker"))
	case "get_historical_data":
		return u.GetHistory(ctx, stringParam(params, "ticker"), stringParam(params, "period"))
	case "get_multiple_prices":
		return u.GetMultipleQuotes(ctx, stringListParam(params, "tickers"))
	case "get_portfolio_summary":
		return u.GetPortfolioSummary(ctx, nil)
	case "compare_stocks":
		return u.CompareStocks(ctx, stringListParam(params, "tickers"))
	default:
		return nil, fmt.Errorf("unknown function %q", name)
	}
}

func stringParam(params map[string]any, key string) string {
	s, _ := params[key].(string)
	return s
}

// stringListParam accepts both a JSON array and a single string, since
// models emit either shape for ticker lists.
func stringListParam(params map[string]any, key string) []string {
	switch v := params[key].(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return v
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}
