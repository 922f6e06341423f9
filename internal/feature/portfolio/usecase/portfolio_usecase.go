// Package usecase implements the portfolio analytics business logic.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"finance_backend/internal/feature/portfolio/domain/entity"
	quotesentity "finance_backend/internal/feature/quotes/domain/entity"
)

// ErrNoHoldings is returned when the portfolio has no positions to analyze.
var ErrNoHoldings = errors.New("no holdings configured")

// HoldingRepository abstracts the persistence layer for portfolio holdings.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type HoldingRepository interface {
	ListAll(ctx context.Context) ([]entity.Holding, error)
	Count(ctx context.Context) (int64, error)
	UpsertBatch(ctx context.Context, holdings []entity.Holding) error
}

// CandleSource reads stored candles. The quotes feature's repository
// satisfies it.
type CandleSource interface {
	Find(ctx context.Context, symbol, interval string, outputsize int) ([]quotesentity.Candle, error)
}

// PortfolioUsecase computes the dashboard payload from persisted candles.
// All returns are USD-based: TRY closes are divided by the matching USD/TRY
// close so lira depreciation does not masquerade as performance.
type PortfolioUsecase struct {
	holdings HoldingRepository
	candles  CandleSource
	riskFree float64
}

// NewPortfolioUsecase creates a PortfolioUsecase. riskFree is the annual
// risk-free rate used by Sharpe and Sortino; negative values are treated
// as zero.
func NewPortfolioUsecase(holdings HoldingRepository, candles CandleSource, riskFree float64) *PortfolioUsecase {
	if riskFree < 0 {
		riskFree = 0
	}
	return &PortfolioUsecase{holdings: holdings, candles: candles, riskFree: riskFree}
}

// priceSeries is a date-keyed close series in ascending date order.
type priceSeries struct {
	dates  []string // YYYY-MM-DD, ascending
	values map[string]float64
}

func (s priceSeries) last() (string, float64, bool) {
	if len(s.dates) == 0 {
		return "", 0, false
	}
	d := s.dates[len(s.dates)-1]
	return d, s.values[d], true
}

// valuesFor returns the closes for the given dates, skipping missing ones.
func (s priceSeries) valuesFor(dates []string) []float64 {
	out := make([]float64, 0, len(dates))
	for _, d := range dates {
		if v, ok := s.values[d]; ok {
			out = append(out, v)
		}
	}
	return out
}

// loadSeries reads the full stored daily series for a symbol.
func (p *PortfolioUsecase) loadSeries(ctx context.Context, symbol string) (priceSeries, error) {
	cs, err := p.candles.Find(ctx, symbol, "1day", 0)
	if err != nil {
		return priceSeries{}, err
	}
	s := priceSeries{values: make(map[string]float64, len(cs))}
	// Find returns newest first; walk backwards for ascending order.
	for i := len(cs) - 1; i >= 0; i-- {
		if cs[i].Close <= 0 {
			continue
		}
		d := cs[i].Time.UTC().Format("2006-01-02")
		if _, dup := s.values[d]; !dup {
			s.dates = append(s.dates, d)
		}
		s.values[d] = cs[i].Close
	}
	return s, nil
}

// toUSD divides a TRY series by the FX series on matching dates.
func toUSD(try, fx priceSeries) priceSeries {
	out := priceSeries{values: make(map[string]float64, len(try.dates))}
	for _, d := range try.dates {
		r, ok := fx.values[d]
		if !ok || r <= 0 {
			continue
		}
		out.dates = append(out.dates, d)
		out.values[d] = try.values[d] / r
	}
	return out
}

// intersect returns the dates present in both series, in a's order.
func intersect(a, b priceSeries) []string {
	out := make([]string, 0, len(a.dates))
	for _, d := range a.dates {
		if _, ok := b.values[d]; ok {
			out = append(out, d)
		}
	}
	return out
}

// since drops dates before the cutoff.
func since(dates []string, cutoff string) []string {
	i := sort.SearchStrings(dates, cutoff)
	return dates[i:]
}

// BuildDashboard assembles the full dashboard payload. It needs ingested
// candles for every holding, the BIST 100 index and the USD/TRY rate.
func (p *PortfolioUsecase) BuildDashboard(ctx context.Context) (*entity.Dashboard, error) {
	holdings, err := p.holdings.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(holdings) == 0 {
		return nil, ErrNoHoldings
	}

	fx, err := p.loadSeries(ctx, quotesentity.FXSymbol)
	if err != nil {
		return nil, fmt.Errorf("load fx series: %w", err)
	}
	_, fxRate, ok := fx.last()
	if !ok {
		return nil, fmt.Errorf("no %s candles ingested yet", quotesentity.FXSymbol)
	}

	indexTRY, err := p.loadSeries(ctx, quotesentity.IndexSymbol)
	if err != nil {
		return nil, fmt.Errorf("load index series: %w", err)
	}
	benchmark := toUSD(indexTRY, fx)

	dash := &entity.Dashboard{USDTRY: fxRate}
	if _, v, ok := indexTRY.last(); ok {
		dash.XU100TRY = v
		dash.XU100USD = v / fxRate
	}

	// Per-holding series and metrics.
	usdSeries := make(map[string]priceSeries, len(holdings))
	for _, h := range holdings {
		try, err := p.loadSeries(ctx, quotesentity.NormalizeSymbol(h.Ticker))
		if err != nil {
			return nil, fmt.Errorf("load series for %s: %w", h.Ticker, err)
		}
		usd := toUSD(try, fx)
		usdSeries[h.Ticker] = usd

		m, err := p.holdingMetrics(h, try, usd, benchmark)
		if err != nil {
			return nil, err
		}
		dash.Holdings = append(dash.Holdings, m)
		if d, _, ok := usd.last(); ok && d > dash.AsOf {
			dash.AsOf = d
		}
	}

	// Portfolio value series: sum of shares x USD price per date, positions
	// counted from their investment date on.
	window := intersect(benchmark, fx)
	portfolio := priceSeries{values: make(map[string]float64, len(window))}
	for _, d := range window {
		var total float64
		var priced bool
		for _, h := range holdings {
			if d < h.InvestmentDate.UTC().Format("2006-01-02") {
				continue
			}
			if v, ok := usdSeries[h.Ticker].values[d]; ok {
				total += h.Shares() * v
				priced = true
			}
		}
		if priced {
			portfolio.dates = append(portfolio.dates, d)
			portfolio.values[d] = total
		}
	}

	p.fillAggregates(dash, holdings, portfolio, benchmark)
	dash.Sectors = sectorSummaries(dash.Holdings)
	dash.Insights = buildInsights(dash)

	return dash, nil
}

// holdingMetrics computes the per-position statistics over the window that
// starts at the investment date.
func (p *PortfolioUsecase) holdingMetrics(h entity.Holding, try, usd, benchmark priceSeries) (entity.HoldingMetrics, error) {
	m := entity.HoldingMetrics{
		Ticker:        h.Ticker,
		Name:          h.Name,
		Sector:        h.Sector,
		Shares:        h.Shares(),
		InvPriceUSD:   h.InvPriceUSD,
		InvestmentUSD: h.InvestmentUSD,
		DividendsUSD:  h.DividendsUSD,
	}

	lastDate, lastUSD, ok := usd.last()
	if !ok {
		return m, fmt.Errorf("no usable candles for %s", h.Ticker)
	}
	if _, v, ok := try.last(); ok {
		m.CurrentPriceTRY = v
	}
	m.CurrentPriceUSD = lastUSD
	m.CurrentValueUSD = m.Shares * lastUSD

	if h.InvPriceUSD > 0 {
		m.ReturnPct = (lastUSD/h.InvPriceUSD - 1) * 100
	}
	if h.InvestmentUSD > 0 {
		m.TotalReturnPct = (m.CurrentValueUSD+h.DividendsUSD-h.InvestmentUSD) / h.InvestmentUSD * 100
	}

	// Trailing-year return over the last ~252 trading days, or the whole
	// series when it is shorter.
	if vals := usd.valuesFor(usd.dates); len(vals) >= 2 {
		lookback := tradingDaysPerYear
		if len(vals)-1 < lookback {
			lookback = len(vals) - 1
		}
		if base := vals[len(vals)-1-lookback]; base > 0 {
			m.Return1YPct = (vals[len(vals)-1]/base - 1) * 100
		}
	}

	asOf, err := time.Parse("2006-01-02", lastDate)
	if err != nil {
		return m, err
	}
	m.CAGR = cagr(h.InvPriceUSD, lastUSD, h.InvestmentDate, asOf)

	cutoff := h.InvestmentDate.UTC().Format("2006-01-02")
	window := since(intersect(usd, benchmark), cutoff)
	assetRets := dailyReturns(usd.valuesFor(window))
	benchRets := dailyReturns(benchmark.valuesFor(window))

	m.VolatilityPct = annualizedVolatility(assetRets)
	if len(assetRets) == len(benchRets) {
		m.Beta = beta(assetRets, benchRets)
	}
	m.Sharpe = sharpeRatio(assetRets, p.riskFree)
	m.Sortino = sortinoRatio(assetRets, p.riskFree)
	m.MaxDrawdownPct = maxDrawdown(usd.valuesFor(since(usd.dates, cutoff)))

	return m, nil
}

// fillAggregates computes totals, weights, the indexed comparison and the
// risk decomposition.
func (p *PortfolioUsecase) fillAggregates(dash *entity.Dashboard, holdings []entity.Holding, portfolio, benchmark priceSeries) {
	var t entity.Totals
	t.NumHoldings = len(dash.Holdings)
	for _, m := range dash.Holdings {
		t.InvestmentUSD += m.InvestmentUSD
		t.CurrentValueUSD += m.CurrentValueUSD
		t.DividendsUSD += m.DividendsUSD
	}
	t.TotalGainUSD = t.CurrentValueUSD + t.DividendsUSD - t.InvestmentUSD
	if t.InvestmentUSD > 0 {
		t.ReturnPct = (t.CurrentValueUSD/t.InvestmentUSD - 1) * 100
		t.TotalReturnPct = (t.CurrentValueUSD + t.DividendsUSD - t.InvestmentUSD) / t.InvestmentUSD * 100
	}

	// Value-weighted aggregates and risk decomposition.
	for i := range dash.Holdings {
		m := &dash.Holdings[i]
		if t.CurrentValueUSD > 0 {
			m.Weight = m.CurrentValueUSD / t.CurrentValueUSD * 100
		}
		w := m.Weight / 100
		t.Beta += w * m.Beta
		t.Sharpe += w * m.Sharpe
		t.Sortino += w * m.Sortino
		t.VolatilityPct += w * m.VolatilityPct
		dash.Risk = append(dash.Risk, entity.RiskContribution{
			Ticker:       m.Ticker,
			Sector:       m.Sector,
			Weight:       m.Weight,
			Beta:         m.Beta,
			StdDev:       m.VolatilityPct,
			Contribution: w * m.VolatilityPct,
		})
	}

	// CAGR over the earliest position's holding period.
	earliest := time.Now().UTC()
	for _, h := range holdings {
		if h.InvestmentDate.Before(earliest) {
			earliest = h.InvestmentDate
		}
	}
	if d, _, ok := portfolio.last(); ok {
		if asOf, err := time.Parse("2006-01-02", d); err == nil {
			t.CAGR = cagr(t.InvestmentUSD, t.CurrentValueUSD, earliest, asOf)
		}
	}

	vals := portfolio.valuesFor(portfolio.dates)
	t.MaxDrawdownPct = maxDrawdown(vals)
	dash.Totals = t

	// Drawdown series.
	dd := drawdownSeries(vals)
	for i, d := range portfolio.dates {
		dash.Drawdown = append(dash.Drawdown, entity.SeriesPoint{Date: d, Value: dd[i]})
	}

	// Portfolio vs benchmark, both rebased to 100 on the common window.
	common := intersect(portfolio, benchmark)
	pIdx := indexTo100(portfolio.valuesFor(common))
	bIdx := indexTo100(benchmark.valuesFor(common))
	for i, d := range common {
		dash.Indexed = append(dash.Indexed, entity.IndexedPoint{Date: d, Portfolio: pIdx[i], Benchmark: bIdx[i]})
	}
	for _, d := range benchmark.dates {
		dash.Benchmark = append(dash.Benchmark, entity.SeriesPoint{Date: d, Value: benchmark.values[d]})
	}
}

// sectorSummaries groups holdings by sector, ordered by weight descending.
func sectorSummaries(holdings []entity.HoldingMetrics) []entity.SectorSummary {
	byName := map[string]*entity.SectorSummary{}
	invested := map[string]float64{}
	var order []string
	for _, m := range holdings {
		s, ok := byName[m.Sector]
		if !ok {
			s = &entity.SectorSummary{Sector: m.Sector}
			byName[m.Sector] = s
			order = append(order, m.Sector)
		}
		s.Weight += m.Weight
		s.CurrentValueUSD += m.CurrentValueUSD
		invested[m.Sector] += m.InvestmentUSD
	}
	out := make([]entity.SectorSummary, 0, len(order))
	for _, name := range order {
		s := byName[name]
		if inv := invested[name]; inv > 0 {
			s.ReturnPct = (s.CurrentValueUSD/inv - 1) * 100
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Weight > out[j].Weight })
	return out
}

// SeedFromConfig populates the holdings table when it is empty.
func (p *PortfolioUsecase) SeedFromConfig(ctx context.Context, holdings []entity.Holding) error {
	n, err := p.holdings.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return p.holdings.UpsertBatch(ctx, holdings)
}
