// Package entity defines the domain models for the portfolio feature.
package entity

import "time"

// Holding is one position in the tracked portfolio. Monetary fields are in
// USD unless the name says otherwise; the portfolio is evaluated in USD to
// strip out lira inflation.
type Holding struct {
	Ticker          string // plain BIST code, e.g. "THYAO"
	Name            string // company name, e.g. "Turkish Airlines"
	Sector          string
	InvestmentDate  time.Time
	InvPriceTRY     float64 // purchase price per share, TRY
	InvPriceUSD     float64 // purchase price per share, USD
	ShareholdingPct float64 // free-float stake, percent
	InvestmentUSD   float64 // total amount invested, USD
	DividendsUSD    float64 // dividends collected so far, USD
}

// Shares returns the implied share count for the holding.
func (h Holding) Shares() float64 {
	if h.InvPriceUSD <= 0 {
		return 0
	}
	return h.InvestmentUSD / h.InvPriceUSD
}
