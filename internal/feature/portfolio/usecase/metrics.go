package usecase

import (
	"math"
	"time"
)

// tradingDaysPerYear annualizes daily-return statistics.
const tradingDaysPerYear = 252

// daysPerYear converts calendar holding periods to years for CAGR.
const daysPerYear = 365.25

// dailyReturns converts a price series into simple daily returns. Zero or
// negative prices break the ratio and are skipped.
func dailyReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return nil
	}
	out := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] <= 0 {
			continue
		}
		out = append(out, prices[i]/prices[i-1]-1)
	}
	return out
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stddev is the sample standard deviation.
func stddev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}

// covariance is the sample covariance of two equal-length series.
func covariance(xs, ys []float64) float64 {
	n := len(xs)
	if n < 2 || n != len(ys) {
		return 0
	}
	mx, my := mean(xs), mean(ys)
	var ss float64
	for i := range xs {
		ss += (xs[i] - mx) * (ys[i] - my)
	}
	return ss / float64(n-1)
}

// annualizedVolatility converts daily-return stddev to a yearly percentage.
func annualizedVolatility(returns []float64) float64 {
	return stddev(returns) * math.Sqrt(tradingDaysPerYear) * 100
}

// beta regresses asset returns on benchmark returns. Both series must be
// aligned to the same dates by the caller.
func beta(asset, benchmark []float64) float64 {
	v := covariance(benchmark, benchmark)
	if v == 0 {
		return 0
	}
	return covariance(asset, benchmark) / v
}

// sharpeRatio computes the annualized Sharpe ratio from daily returns and an
// annual risk-free rate.
func sharpeRatio(returns []float64, riskFree float64) float64 {
	sd := stddev(returns)
	if sd == 0 {
		return 0
	}
	excess := mean(returns)*tradingDaysPerYear - riskFree
	return excess / (sd * math.Sqrt(tradingDaysPerYear))
}

// sortinoRatio is the Sharpe variant that only penalizes downside moves.
func sortinoRatio(returns []float64, riskFree float64) float64 {
	var downside []float64
	for _, r := range returns {
		if r < 0 {
			downside = append(downside, r)
		}
	}
	dd := stddev(downside)
	if dd == 0 {
		return 0
	}
	excess := mean(returns)*tradingDaysPerYear - riskFree
	return excess / (dd * math.Sqrt(tradingDaysPerYear))
}

// maxDrawdown returns the deepest peak-to-trough decline of a price series
// as a negative percentage.
func maxDrawdown(prices []float64) float64 {
	var peak, worst float64
	for _, p := range prices {
		if p > peak {
			peak = p
		}
		if peak > 0 {
			dd := (p - peak) / peak * 100
			if dd < worst {
				worst = dd
			}
		}
	}
	return worst
}

// drawdownSeries returns the running decline from the previous peak, in
// percent, one value per price.
func drawdownSeries(prices []float64) []float64 {
	out := make([]float64, len(prices))
	var peak float64
	for i, p := range prices {
		if p > peak {
			peak = p
		}
		if peak > 0 {
			out[i] = (p - peak) / peak * 100
		}
	}
	return out
}

// cagr annualizes the growth from start to end over the given holding
// period, returned in percent. Periods under a day fall back to the plain
// return to avoid exploding exponents.
func cagr(start, end float64, from, to time.Time) float64 {
	if start <= 0 || end <= 0 {
		return 0
	}
	days := to.Sub(from).Hours() / 24
	if days < 1 {
		return (end/start - 1) * 100
	}
	years := days / daysPerYear
	return (math.Pow(end/start, 1/years) - 1) * 100
}

// indexTo100 rebases a price series so the first positive value is 100.
func indexTo100(prices []float64) []float64 {
	var base float64
	for _, p := range prices {
		if p > 0 {
			base = p
			break
		}
	}
	if base == 0 {
		return make([]float64, len(prices))
	}
	out := make([]float64, len(prices))
	for i, p := range prices {
		out[i] = p / base * 100
	}
	return out
}
