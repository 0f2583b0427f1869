package usecase

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Latency simulates backend response time by sleeping for a random
// duration in [min, max] before an operation proceeds. The platform has no
// real network boundary; this keeps the API's timing behavior close to the
// system it stands in for.
type Latency struct {
	min time.Duration
	max time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewLatency creates a Latency with the given bounds. A nil *Latency or a
// non-positive max disables the delay entirely, which is what tests want.
func NewLatency(min, max time.Duration) *Latency {
	if max < min {
		max = min
	}
	return &Latency{
		min: min,
		max: max,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Wait sleeps for a random duration within the configured bounds,
// returning early with the context's error if it is canceled.
func (l *Latency) Wait(ctx context.Context) error {
	if l == nil || l.max <= 0 {
		return ctx.Err()
	}

	l.mu.Lock()
	d := l.min
	if span := l.max - l.min; span > 0 {
		d += time.Duration(l.rng.Int63n(int64(span)))
	}
	l.mu.Unlock()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
