package usecase

import (
	"fmt"

	"finance_backend/internal/feature/portfolio/domain/entity"
)

// Thresholds for the rule-based insights.
const (
	strongReturnPct     = 200
	highBeta            = 1.15
	excellentSharpe     = 2.0
	sectorConcentration = 30.0
	aggressivePortfolio = 1.05
	healthySharpe       = 0.5
)

// buildInsights derives plain-language observations from the computed
// dashboard. Rules only; no model involved.
func buildInsights(dash *entity.Dashboard) []entity.Insight {
	var out []entity.Insight

	for _, m := range dash.Holdings {
		switch {
		case m.TotalReturnPct > strongReturnPct:
			out = append(out, entity.Insight{
				Severity: "positive",
				Text:     fmt.Sprintf("%s is a strong performer with a %.0f%% total USD return", m.Ticker, m.TotalReturnPct),
			})
		case m.TotalReturnPct < 0:
			out = append(out, entity.Insight{
				Severity: "warning",
				Text:     fmt.Sprintf("%s has a negative USD return (%.1f%%)", m.Ticker, m.TotalReturnPct),
			})
		}
		if m.Beta > highBeta {
			out = append(out, entity.Insight{
				Severity: "neutral",
				Text:     fmt.Sprintf("%s is a high-beta position (%.2f vs the BIST 100)", m.Ticker, m.Beta),
			})
		}
		if m.Sharpe < 0 {
			out = append(out, entity.Insight{
				Severity: "warning",
				Text:     fmt.Sprintf("%s has a negative risk-adjusted return (Sharpe %.2f)", m.Ticker, m.Sharpe),
			})
		} else if m.Sharpe > excellentSharpe {
			out = append(out, entity.Insight{
				Severity: "positive",
				Text:     fmt.Sprintf("%s shows excellent risk-adjusted returns (Sharpe %.2f)", m.Ticker, m.Sharpe),
			})
		}
	}

	for _, s := range dash.Sectors {
		if s.Weight > sectorConcentration {
			out = append(out, entity.Insight{
				Severity: "warning",
				Text:     fmt.Sprintf("%.0f%% of the portfolio is concentrated in %s", s.Weight, s.Sector),
			})
		}
	}

	if dash.Totals.Beta > aggressivePortfolio {
		out = append(out, entity.Insight{
			Severity: "neutral",
			Text:     fmt.Sprintf("the portfolio tilts aggressive with a beta of %.2f", dash.Totals.Beta),
		})
	}
	if dash.Totals.Sharpe > healthySharpe {
		out = append(out, entity.Insight{
			Severity: "positive",
			Text:     fmt.Sprintf("portfolio-level risk-adjusted return is positive (Sharpe %.2f)", dash.Totals.Sharpe),
		})
	}

	return out
}
