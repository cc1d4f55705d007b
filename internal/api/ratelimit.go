package api

import (
	"log"
	"time"
)

// RateLimiter throttles outbound API calls to stay inside the YouTube quota.
// It counts requests and backs off for a full minute once the budget is
// spent. The sleep function is swappable so tests don't actually wait.
type RateLimiter struct {
	maxRequests int
	count       int
	sleep       func(time.Duration)
}

// NewRateLimiter creates a limiter allowing maxRequests calls before it
// backs off.
func NewRateLimiter(maxRequests int) *RateLimiter {
	return &RateLimiter{
		maxRequests: maxRequests,
		sleep:       time.Sleep,
	}
}

// Wait records one request and blocks for a minute when the request budget
// is exhausted, then resets the counter.
func (r *RateLimiter) Wait() {
	r.count++
	if r.count >= r.maxRequests {
		log.Printf("Rate limit reached, waiting 60 seconds...")
		r.sleep(time.Minute)
		r.count = 0
	}
}
