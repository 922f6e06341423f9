package cache

import (
	"testing"
	"time"
)

func TestTimeUntilNextMarketClose(t *testing.T) {
	t.Parallel()

	duration := TimeUntilNextMarketClose()

	// Duration should always be positive and less than 24 hours
	if duration <= 0 {
		t.Errorf("expected positive duration, got %v", duration)
	}
	if duration > 24*time.Hour {
		t.Errorf("expected duration less than 24 hours, got %v", duration)
	}
}

func TestTimeUntilNextMarketClose_ReturnsValidDuration(t *testing.T) {
	t.Parallel()

	duration := TimeUntilNextMarketClose()

	// Recompute the next close independently
	loc, err := time.LoadLocation("Europe/Istanbul")
	if err != nil {
		t.Fatalf("failed to load Europe/Istanbul timezone: %v", err)
	}
	now := time.Now().In(loc)

	nextClose := time.Date(now.Year(), now.Month(), now.Day(), marketCloseHour, marketCloseMinute, 0, 0, loc)
	if now.After(nextClose) {
		nextClose = nextClose.Add(24 * time.Hour)
	}

	expectedDuration := nextClose.Sub(now)
	diff := duration - expectedDuration
	if diff < 0 {
		diff = -diff
	}

	// Allow 1 second tolerance for test execution time
	if diff > time.Second {
		t.Errorf("duration %v differs from expected %v by more than 1 second", duration, expectedDuration)
	}
}
