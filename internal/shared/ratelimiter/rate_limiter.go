// Package ratelimiter throttles repeated operations such as external API calls.
package ratelimiter

import (
	"log"
	"time"
)

// RateLimiterInterface limits how often an operation may run.
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiter enforces a fixed-window call budget.
type RateLimiter struct {
	limit     int           // calls allowed per interval
	interval  time.Duration // window length
	count     int
	lastReset time.Time
}

// NewRateLimiter creates a new RateLimiter.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// WaitIfNeeded blocks until the current window has room for another call.
func (rl *RateLimiter) WaitIfNeeded() {
	now := time.Now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count > rl.limit {
		sleep := rl.interval - now.Sub(rl.lastReset)
		if sleep > 0 {
			log.Printf("[RATE LIMIT] hit %d calls, sleeping for %v...", rl.limit, sleep)
			time.Sleep(sleep)
		}
		rl.count = 1
		rl.lastReset = time.Now()
	}
}
