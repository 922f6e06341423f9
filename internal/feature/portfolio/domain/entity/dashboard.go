package entity

// HoldingMetrics is the per-position slice of the dashboard.
type HoldingMetrics struct {
	Ticker          string  `json:"ticker"`
	Name            string  `json:"name"`
	Sector          string  `json:"sector"`
	Shares          float64 `json:"shares"`
	InvPriceUSD     float64 `json:"inv_price_usd"`
	CurrentPriceTRY float64 `json:"current_price_try"`
	CurrentPriceUSD float64 `json:"current_price_usd"`
	InvestmentUSD   float64 `json:"investment_usd"`
	CurrentValueUSD float64 `json:"current_value_usd"`
	DividendsUSD    float64 `json:"dividends_usd"`
	Weight          float64 `json:"weight"`           // share of current portfolio value, percent
	ReturnPct       float64 `json:"return_pct"`       // price return, percent
	TotalReturnPct  float64 `json:"total_return_pct"` // price return including dividends, percent
	Return1YPct     float64 `json:"return_1y_pct"`    // trailing-year return, percent
	CAGR            float64 `json:"cagr"`             // annualized return, percent
	VolatilityPct   float64 `json:"volatility_pct"`   // annualized stddev of daily returns, percent
	Beta            float64 `json:"beta"`             // vs the BIST 100 in USD
	Sharpe          float64 `json:"sharpe"`
	Sortino         float64 `json:"sortino"`
	MaxDrawdownPct  float64 `json:"max_drawdown_pct"`
}

// Totals aggregates the whole portfolio.
type Totals struct {
	NumHoldings     int     `json:"num_holdings"`
	InvestmentUSD   float64 `json:"investment_usd"`
	CurrentValueUSD float64 `json:"current_value_usd"`
	DividendsUSD    float64 `json:"dividends_usd"`
	TotalGainUSD    float64 `json:"total_gain_usd"` // current + dividends - invested
	ReturnPct       float64 `json:"return_pct"`
	TotalReturnPct  float64 `json:"total_return_pct"`
	CAGR            float64 `json:"cagr"`
	VolatilityPct   float64 `json:"volatility_pct"`
	Beta            float64 `json:"beta"`
	Sharpe          float64 `json:"sharpe"`
	Sortino         float64 `json:"sortino"`
	MaxDrawdownPct  float64 `json:"max_drawdown_pct"`
}

// SeriesPoint is one dated value in a time series payload.
type SeriesPoint struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Value float64 `json:"value"`
}

// IndexedPoint compares the portfolio and the benchmark, both rebased to 100
// at the start of the common window.
type IndexedPoint struct {
	Date      string  `json:"date"`
	Portfolio float64 `json:"portfolio"`
	Benchmark float64 `json:"benchmark"`
}

// RiskContribution decomposes portfolio volatility into per-position
// contributions.
type RiskContribution struct {
	Ticker       string  `json:"ticker"`
	Sector       string  `json:"sector"`
	Weight       float64 `json:"weight"`
	Beta         float64 `json:"beta"`
	StdDev       float64 `json:"std_dev"`      // annualized stddev, percent
	Contribution float64 `json:"contribution"` // weight x stddev, percent points
}

// SectorSummary aggregates holdings by sector.
type SectorSummary struct {
	Sector          string  `json:"sector"`
	Weight          float64 `json:"weight"`
	CurrentValueUSD float64 `json:"current_value_usd"`
	ReturnPct       float64 `json:"return_pct"`
}

// Insight is one rule-generated observation about the portfolio.
type Insight struct {
	Severity string `json:"severity"` // "positive", "neutral" or "warning"
	Text     string `json:"text"`
}

// Dashboard is the full payload served by GET /api/data.
type Dashboard struct {
	AsOf      string             `json:"as_of"` // YYYY-MM-DD of the latest candle used
	USDTRY    float64            `json:"usdtry"`
	XU100TRY  float64            `json:"xu100_try"`
	XU100USD  float64            `json:"xu100_usd"`
	Holdings  []HoldingMetrics   `json:"holdings"`
	Totals    Totals             `json:"totals"`
	Indexed   []IndexedPoint     `json:"indexed"`
	Drawdown  []SeriesPoint      `json:"drawdown"`
	Benchmark []SeriesPoint      `json:"benchmark_usd"` // BIST 100 in USD
	Risk      []RiskContribution `json:"risk"`
	Sectors   []SectorSummary    `json:"sectors"`
	Insights  []Insight          `json:"insights"`
}
