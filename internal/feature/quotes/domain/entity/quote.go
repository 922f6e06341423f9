package entity

// Quote is the current price snapshot for one symbol.
type Quote struct {
	Symbol        string  `json:"ticker"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	ChangePercent float64 `json:"change_percent"`
}

// StockInfo is the full quote detail for one symbol, mirroring the fields
// the assistant exposes through get_stock_info.
type StockInfo struct {
	Symbol           string  `json:"ticker"`
	Name             string  `json:"name"`
	Currency         string  `json:"currency"`
	CurrentPrice     float64 `json:"current_price"`
	PreviousClose    float64 `json:"previous_close"`
	Open             float64 `json:"open"`
	DayHigh          float64 `json:"day_high"`
	DayLow           float64 `json:"day_low"`
	Volume           int64   `json:"volume"`
	MarketCap        int64   `json:"market_cap"`
	PERatio          float64 `json:"pe_ratio"`
	DividendYield    float64 `json:"dividend_yield"`
	FiftyTwoWeekHigh float64 `json:"52_week_high"`
	FiftyTwoWeekLow  float64 `json:"52_week_low"`
	FiftyDayAvg      float64 `json:"50_day_avg"`
	TwoHundredDayAvg float64 `json:"200_day_avg"`
}

// PortfolioSummary aggregates current quotes for a set of symbols.
type PortfolioSummary struct {
	TotalStocks int     `json:"total_stocks"`
	Gainers     int     `json:"gainers"`
	Losers      int     `json:"losers"`
	Unchanged   int     `json:"unchanged"`
	Stocks      []Quote `json:"stocks"`
}
