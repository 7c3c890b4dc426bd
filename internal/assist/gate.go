package assist

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// ErrBusy is returned when every upstream slot stays taken for the whole
// wait period.
var ErrBusy = errors.New("assistant is busy")

// gate caps the number of upstream calls in flight. The token bucket in
// Assistant bounds the rate; the gate bounds concurrency, so a slow model
// cannot pile up request goroutines.
type gate struct {
	slots   chan struct{}
	maxWait time.Duration
	active  atomic.Int64
}

func newGate(size int, maxWait time.Duration) *gate {
	return &gate{
		slots:   make(chan struct{}, max(1, size)),
		maxWait: maxWait,
	}
}

// acquire takes a slot, waiting at most maxWait. The caller must release
// it exactly once.
func (g *gate) acquire(ctx context.Context) error {
	timer := time.NewTimer(g.maxWait)
	defer timer.Stop()

	select {
	case g.slots <- struct{}{}:
		g.active.Add(1)
		return nil
	case <-timer.C:
		return ErrBusy
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *gate) release() {
	g.active.Add(-1)
	<-g.slots
}

// drain blocks until no call is in flight or ctx ends.
func (g *gate) drain(ctx context.Context) error {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for g.active.Load() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
