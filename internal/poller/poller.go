// internal/poller/poller.go
package poller

import (
	"context"
	"errors"
	"time"

	"github.com/tamzrod/loadpanel/internal/status"
)

// Client abstracts the status endpoint the poller depends on.
type Client interface {
	Status(ctx context.Context) (status.Snapshot, error)
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	Interval time.Duration
}

// Poller is a dumb, clock-driven reader.
type Poller struct {
	cfg    Config
	client Client
}

// New creates a poller with immutable config.
func New(cfg Config, client Client) (*Poller, error) {
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if client == nil {
		return nil, errors.New("poller: client required")
	}
	return &Poller{cfg: cfg, client: client}, nil
}

// PollOnce performs exactly one status request.
func (p *Poller) PollOnce(ctx context.Context) PollResult {
	snap, err := p.client.Status(ctx)
	if err != nil {
		return PollResult{At: time.Now(), Err: err}
	}
	return PollResult{At: time.Now(), Snapshot: snap}
}
