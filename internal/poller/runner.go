// internal/poller/runner.go
package poller

import (
	"context"
	"time"
)

// Run polls once immediately, then on every tick, and emits each PollResult
// on out in the order requests complete.
// Each poll runs in its own goroutine: a slow request never delays the next
// tick, and overlapping polls are neither merged nor cancelled.
// No retries, no backoff.
func (p *Poller) Run(ctx context.Context, out chan<- PollResult) {
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	p.emit(ctx, out)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.emit(ctx, out)
		}
	}
}

func (p *Poller) emit(ctx context.Context, out chan<- PollResult) {
	go func() {
		res := p.PollOnce(ctx)
		select {
		case out <- res:
		case <-ctx.Done():
		}
	}()
}
