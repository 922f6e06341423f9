package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"finance_backend/internal/feature/quotes/domain/entity"
	"finance_backend/internal/feature/quotes/usecase"
	"finance_backend/internal/platform/externalapi/yahoo/dto"
	platformhttp "finance_backend/internal/platform/http"
)

// userAgent identifies the client to Yahoo; requests without one get 403s.
const userAgent = "Mozilla/5.0 (compatible; finance-backend/1.0)"

// YahooMarket is the MarketRepository implementation backed by the public
// Yahoo Finance endpoints.
type YahooMarket struct {
	cfg    Config
	client *platformhttp.RateLimitedClient
}

// Compile-time check that YahooMarket implements MarketRepository.
var _ usecase.MarketRepository = (*YahooMarket)(nil)

// NewYahooMarket creates a YahooMarket with the given config and rate
// limited HTTP client.
func NewYahooMarket(cfg Config, client *platformhttp.RateLimitedClient) *YahooMarket {
	return &YahooMarket{cfg: cfg, client: client}
}

// intervalParams maps a storage interval and fetch size to the Yahoo chart
// interval and the narrowest range that still covers that many points.
func intervalParams(interval string, outputsize int) (yInterval, yRange string) {
	switch interval {
	case "1week":
		return "1wk", "5y"
	case "1month":
		return "1mo", "max"
	}

	// Daily data. A BIST trading year has ~260 sessions; zero means the
	// caller wants everything available.
	switch {
	case outputsize <= 0:
		return "1d", "max"
	case outputsize <= 260:
		return "1d", "1y"
	case outputsize <= 520:
		return "1d", "2y"
	case outputsize <= 1300:
		return "1d", "5y"
	case outputsize <= 2600:
		return "1d", "10y"
	default:
		return "1d", "max"
	}
}

// GetTimeSeries fetches candles from the v8 chart endpoint, oldest first,
// trimmed to the most recent outputsize points.
func (y *YahooMarket) GetTimeSeries(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
	yInterval, yRange := intervalParams(interval, outputsize)

	q := url.Values{}
	q.Set("interval", yInterval)
	q.Set("range", yRange)
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", y.cfg.BaseURL, url.PathEscape(symbol), q.Encode())

	var body dto.ChartResponse
	if err := y.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}
	if body.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo: %s: %s", body.Chart.Error.Code, body.Chart.Error.Description)
	}
	if len(body.Chart.Result) == 0 || len(body.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("yahoo: empty chart result for %q", symbol)
	}

	res := body.Chart.Result[0]
	quote := res.Indicators.Quote[0]

	candles := make([]entity.Candle, 0, len(res.Timestamp))
	for i, ts := range res.Timestamp {
		// Sessions still in progress come back with null prices; skip them.
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}
		c := entity.Candle{
			Symbol:   symbol,
			Interval: interval,
			Time:     time.Unix(ts, 0).UTC(),
			Close:    *quote.Close[i],
		}
		if i < len(quote.Open) && quote.Open[i] != nil {
			c.Open = *quote.Open[i]
		}
		if i < len(quote.High) && quote.High[i] != nil {
			c.High = *quote.High[i]
		}
		if i < len(quote.Low) && quote.Low[i] != nil {
			c.Low = *quote.Low[i]
		}
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			c.Volume = *quote.Volume[i]
		}
		candles = append(candles, c)
	}

	if outputsize > 0 && len(candles) > outputsize {
		candles = candles[len(candles)-outputsize:]
	}
	return candles, nil
}

// GetQuotes fetches current snapshots for the given symbols from the v7
// quote endpoint.
func (y *YahooMarket) GetQuotes(ctx context.Context, symbols []string) ([]entity.Quote, error) {
	results, err := y.fetchQuotes(ctx, symbols)
	if err != nil {
		return nil, err
	}

	out := make([]entity.Quote, 0, len(results))
	for _, r := range results {
		out = append(out, entity.Quote{
			Symbol:        entity.DisplaySymbol(r.Symbol),
			Price:         r.RegularMarketPrice,
			Currency:      r.Currency,
			ChangePercent: r.RegularMarketChangePercent,
		})
	}
	return out, nil
}

// GetStockInfo fetches the full quote detail for one symbol.
func (y *YahooMarket) GetStockInfo(ctx context.Context, symbol string) (*entity.StockInfo, error) {
	results, err := y.fetchQuotes(ctx, []string{symbol})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("yahoo: no quote for %q", symbol)
	}

	r := results[0]
	name := r.LongName
	if name == "" {
		name = r.ShortName
	}
	return &entity.StockInfo{
		Symbol:           entity.DisplaySymbol(r.Symbol),
		Name:             name,
		Currency:         r.Currency,
		CurrentPrice:     r.RegularMarketPrice,
		PreviousClose:    r.RegularMarketPreviousClose,
		Open:             r.RegularMarketOpen,
		DayHigh:          r.RegularMarketDayHigh,
		DayLow:           r.RegularMarketDayLow,
		Volume:           r.RegularMarketVolume,
		MarketCap:        r.MarketCap,
		PERatio:          r.TrailingPE,
		DividendYield:    r.DividendYield,
		FiftyTwoWeekHigh: r.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  r.FiftyTwoWeekLow,
		FiftyDayAvg:      r.FiftyDayAverage,
		TwoHundredDayAvg: r.TwoHundredDayAverage,
	}, nil
}

func (y *YahooMarket) fetchQuotes(ctx context.Context, symbols []string) ([]dto.QuoteResult, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("yahoo: no symbols given")
	}

	q := url.Values{}
	q.Set("symbols", strings.Join(symbols, ","))
	u := fmt.Sprintf("%s/v7/finance/quote?%s", y.cfg.BaseURL, q.Encode())

	var body dto.QuoteResponse
	if err := y.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}
	if body.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("yahoo: %s: %s", body.QuoteResponse.Error.Code, body.QuoteResponse.Error.Description)
	}
	return body.QuoteResponse.Result, nil
}

// getJSON performs a GET request and decodes the JSON response into out.
func (y *YahooMarket) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := y.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("yahoo http %d", res.StatusCode)
	}
	return json.NewDecoder(res.Body).Decode(out)
}
