package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter paces outbound inference calls with a single token bucket
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a limiter with the given rate and burst
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// Wait blocks until a call is allowed or ctx is done
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Allow reports whether a call is allowed right now without waiting
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}
