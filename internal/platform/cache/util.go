package cache

import (
	"time"
)

// Borsa Istanbul continuous trading closes at 18:00 local time; 18:10
// leaves slack for delayed closing prints.
const (
	marketCloseHour   = 18
	marketCloseMinute = 10
)

// TimeUntilNextMarketClose returns the duration until the next Borsa
// Istanbul close. Dashboard snapshots stay valid until then, since daily
// candles only change at the close.
func TimeUntilNextMarketClose() time.Duration {
	loc, err := time.LoadLocation("Europe/Istanbul")
	if err != nil {
		loc = time.FixedZone("TRT", 3*60*60)
	}
	now := time.Now().In(loc)

	next := time.Date(now.Year(), now.Month(), now.Day(), marketCloseHour, marketCloseMinute, 0, 0, loc)
	if now.After(next) {
		next = next.Add(24 * time.Hour)
	}

	return next.Sub(now)
}
