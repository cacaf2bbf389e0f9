// Package ratelimit provides client-side request pacing so a burst of
// endpoint calls does not trip the venue's rate limits.
package ratelimit

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Limiter paces outgoing requests at a configured rate.
type Limiter struct {
	limiter *rate.Limiter
	metrics Metrics
}

// Metrics tracks limiter usage.
type Metrics struct {
	totalRequests   atomic.Int64
	allowedRequests atomic.Int64
	deniedRequests  atomic.Int64
}

// Snapshot is a point-in-time copy of the limiter metrics.
type Snapshot struct {
	TotalRequests   int64
	AllowedRequests int64
	DeniedRequests  int64
}

// New creates a Limiter allowing the specified number of requests per period,
// with a burst of the full allowance.
func New(requests int, period time.Duration) *Limiter {
	rps := float64(requests) / period.Seconds()
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(rps), requests),
	}
}

// Wait blocks until the limiter allows a request or the context is cancelled.
func (l *Limiter) Wait(ctx context.Context) error {
	l.metrics.totalRequests.Add(1)
	if err := l.limiter.Wait(ctx); err != nil {
		l.metrics.deniedRequests.Add(1)
		return err
	}
	l.metrics.allowedRequests.Add(1)
	return nil
}

// Allow reports whether a request may proceed right now without waiting.
func (l *Limiter) Allow() bool {
	l.metrics.totalRequests.Add(1)
	if l.limiter.Allow() {
		l.metrics.allowedRequests.Add(1)
		return true
	}
	l.metrics.deniedRequests.Add(1)
	return false
}

// Metrics returns a snapshot of the limiter counters.
func (l *Limiter) Metrics() Snapshot {
	return Snapshot{
		TotalRequests:   l.metrics.totalRequests.Load(),
		AllowedRequests: l.metrics.allowedRequests.Load(),
		DeniedRequests:  l.metrics.deniedRequests.Load(),
	}
}
