// Package di provides dependency injection factories for creating application components.
package di

import (
	"finance_backend/internal/platform/externalapi/yahoo"
	platformhttp "finance_backend/internal/platform/http"
)

// Yahoo's unauthenticated endpoints throttle aggressive clients; stay well
// under the observed limit.
const (
	yahooRPS   = 2.0
	yahooBurst = 5
)

// NewMarket creates a fully configured YahooMarket with a rate-limited HTTP client.
func NewMarket() *yahoo.YahooMarket {
	cfg := yahoo.LoadConfig()
	client := platformhttp.NewRateLimitedClient(platformhttp.NewHTTPClient(cfg.Timeout), yahooRPS, yahooBurst)
	return yahoo.NewYahooMarket(cfg, client)
}
