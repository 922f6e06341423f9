// Package yahoo provides the Yahoo Finance market data client.
package yahoo

import (
	"os"
	"time"
)

// Config holds the Yahoo Finance client settings.
type Config struct {
	BaseURL string        // API base URL (e.g. "https://query1.finance.yahoo.com")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig reads the Yahoo Finance settings from the environment,
// falling back to the public endpoint. No API key is required.
func LoadConfig() Config {
	base := os.Getenv("YAHOO_BASE_URL")
	if base == "" {
		base = "https://query1.finance.yahoo.com"
	}
	return Config{
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
