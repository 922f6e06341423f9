package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// Ticker describes one portfolio symbol from the YAML config.
type Ticker struct {
	Code   string `yaml:"code"`
	Name   string `yaml:"name"`
	Sector string `yaml:"sector"`
}

// HoldingSeed describes one portfolio position used to seed the holdings
// table on first start. Prices are as of the investment date; current
// prices and risk metrics come from ingested market data.
type HoldingSeed struct {
	Ticker           string  `yaml:"ticker"`
	Name             string  `yaml:"name"`
	Sector           string  `yaml:"sector"`
	InvestmentDate   string  `yaml:"investment_date"` // YYYY-MM-DD
	InvPriceTRY      float64 `yaml:"inv_price_try"`
	InvPriceUSD      float64 `yaml:"inv_price_usd"`
	ShareholdingPct  float64 `yaml:"shareholding_pct"`
	InvestmentAmount float64 `yaml:"investment_amount"` // USD
	DividendsUSD     float64 `yaml:"dividends_usd"`
}

// AppConfig is the YAML application config: the BIST ticker universe,
// the named system prompts for the assistant, and the holdings seed.
type AppConfig struct {
	Tickers  []Ticker          `yaml:"tickers"`
	Prompts  map[string]string `yaml:"prompts"`
	Holdings []HoldingSeed     `yaml:"holdings"`
}

// LoadAppConfig reads and parses the YAML app config from path.
func LoadAppConfig(path string) (*AppConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read app config: %w", err)
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse app config: %w", err)
	}
	if len(cfg.Tickers) == 0 {
		return nil, fmt.Errorf("app config %q has no tickers", path)
	}
	if _, ok := cfg.Prompts["default"]; !ok {
		return nil, fmt.Errorf("app config %q has no default prompt", path)
	}
	return &cfg, nil
}

// TickerCodes returns the plain BIST codes in config order.
func (c *AppConfig) TickerCodes() []string {
	codes := make([]string, 0, len(c.Tickers))
	for _, t := range c.Tickers {
		codes = append(codes, t.Code)
	}
	return codes
}

// Prompt returns the named system prompt with the {tickers} placeholder
// filled in. Unknown names fall back to the default prompt.
func (c *AppConfig) Prompt(name string) string {
	p, ok := c.Prompts[name]
	if !ok {
		p = c.Prompts["default"]
	}

	lines := make([]string, 0, len(c.Tickers))
	for _, t := range c.Tickers {
		lines = append(lines, fmt.Sprintf("- %s (%s)", t.Code, t.Name))
	}
	return strings.ReplaceAll(p, "{tickers}", strings.Join(lines, "\n"))
}

// PromptNames lists the configured prompt names.
func (c *AppConfig) PromptNames() []string {
	names := make([]string, 0, len(c.Prompts))
	for n := range c.Prompts {
		names = append(names, n)
	}
	return names
}
