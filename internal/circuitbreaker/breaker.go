// Package circuitbreaker stops hammering the venue after repeated transport
// failures. Order placement errors from the venue are not failures in this
// sense; only the executor's dispatch outcome feeds the breaker.
package circuitbreaker

import (
	"sync"
	"time"
)

// State is the breaker state.
type State int

const (
	// StateClosed lets all requests through.
	StateClosed State = iota
	// StateOpen rejects requests until the cooldown elapses.
	StateOpen
	// StateHalfOpen lets a probe request through after the cooldown.
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// Breaker is a minimal three-state circuit breaker. A run of FailThreshold
// consecutive failures opens it; after Cooldown a single probe is allowed,
// and one success closes it again.
type Breaker struct {
	mu           sync.Mutex
	state        State
	failures     int
	threshold    int
	cooldown     time.Duration
	lastFailTime time.Time
}

// New creates a Breaker with the given failure threshold and cooldown.
func New(threshold int, cooldown time.Duration) *Breaker {
	return &Breaker{
		state:     StateClosed,
		threshold: threshold,
		cooldown:  cooldown,
	}
}

// Allow reports whether a request may proceed.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed, StateHalfOpen:
		return true
	case StateOpen:
		if time.Since(b.lastFailTime) >= b.cooldown {
			b.state = StateHalfOpen
			return true
		}
		return false
	}
	return false
}

// Record feeds a request outcome into the breaker.
func (b *Breaker) Record(success bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if success {
		b.failures = 0
		b.state = StateClosed
		return
	}

	b.lastFailTime = time.Now()
	switch b.state {
	case StateHalfOpen:
		b.state = StateOpen
	case StateClosed:
		b.failures++
		if b.failures >= b.threshold {
			b.state = StateOpen
		}
	}
}

// State returns the current breaker state.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}
