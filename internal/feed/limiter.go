package feed

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter spaces requests at least 1/rps seconds apart. One instance is
// shared by every concurrent discovery in a session, so the aggregate
// request rate stays bounded no matter how many sites run in parallel.
type Limiter struct {
	rl *rate.Limiter
}

func NewLimiter(requestsPerSecond float64) *Limiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 2.0
	}
	return &Limiter{rl: rate.NewLimiter(rate.Limit(requestsPerSecond), 1)}
}

// Wait blocks until the next request slot is available.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.rl.Wait(ctx)
}
