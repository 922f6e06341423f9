// Package entity defines the domain models for the quotes feature.
package entity

import (
	"strings"
	"time"
)

// Symbols tracked alongside the portfolio for USD conversion and benchmarking.
const (
	// IndexSymbol is the BIST 100 index on Yahoo Finance.
	IndexSymbol = "XU100.IS"
	// FXSymbol is the USD/TRY exchange rate on Yahoo Finance.
	FXSymbol = "TRY=X"
)

// Candle represents OHLCV (Open, High, Low, Close, Volume) data for a
// symbol at a specific time interval.
type Candle struct {
	Symbol   string    // Yahoo symbol (e.g. "THYAO.IS", "TRY=X")
	Interval string    // Time interval (e.g. "1day", "1week", "1month")
	Time     time.Time // Start of the candle period
	Open     float64
	High     float64
	Low      float64
	Close    float64
	Volume   int64
}

// NormalizeSymbol converts a user-supplied ticker to the Yahoo Finance
// form: uppercase, IST:/BIST: prefixes removed, .IS suffix appended.
// Index and FX symbols (containing '^' or '=') pass through untouched.
func NormalizeSymbol(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if strings.ContainsAny(s, "^=") {
		return s
	}
	s = strings.TrimPrefix(s, "IST:")
	s = strings.TrimPrefix(s, "BIST:")
	if !strings.HasSuffix(s, ".IS") {
		s += ".IS"
	}
	return s
}

// DisplaySymbol strips the Yahoo suffix for UI-facing output.
func DisplaySymbol(symbol string) string {
	return strings.TrimSuffix(symbol, ".IS")
}
