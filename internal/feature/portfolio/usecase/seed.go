package usecase

import (
	"fmt"
	"time"

	"finance_backend/internal/feature/portfolio/domain/entity"
	"finance_backend/internal/platform/config"
)

// HoldingsFromSeeds converts the YAML holding seeds into domain entities,
// parsing the investment dates.
func HoldingsFromSeeds(seeds []config.HoldingSeed) ([]entity.Holding, error) {
	out := make([]entity.Holding, 0, len(seeds))
	for _, s := range seeds {
		d, err := time.Parse("2006-01-02", s.InvestmentDate)
		if err != nil {
			return nil, fmt.Errorf("holding %s: bad investment_date %q: %w", s.Ticker, s.InvestmentDate, err)
		}
		out = append(out, entity.Holding{
			Ticker:          s.Ticker,
			Name:            s.Name,
			Sector:          s.Sector,
			InvestmentDate:  d.UTC(),
			InvPriceTRY:     s.InvPriceTRY,
			InvPriceUSD:     s.InvPriceUSD,
			ShareholdingPct: s.ShareholdingPct,
			InvestmentUSD:   s.InvestmentAmount,
			DividendsUSD:    s.DividendsUSD,
		})
	}
	return out, nil
}
