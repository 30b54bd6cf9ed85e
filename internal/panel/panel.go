// internal/panel/panel.go
package panel

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/tamzrod/loadpanel/internal/poller"
	"github.com/tamzrod/loadpanel/internal/service"
	"github.com/tamzrod/loadpanel/internal/status"
)

// Service is the remote load-test service as the panel sees it.
type Service interface {
	Command(ctx context.Context, ep service.Endpoint) (service.CommandResult, error)
	Status(ctx context.Context) (status.Snapshot, error)
}

// Config is the panel runtime config.
type Config struct {
	PollInterval time.Duration
}

// Panel is the control panel client. It owns the board and, once started,
// the polling loop.
type Panel struct {
	svc    Service
	board  *Board
	poller *poller.Poller
	log    *log.Entry

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New creates a panel writing to the given sinks. Polling starts with Start.
func New(cfg Config, svc Service, sinks ...Sink) (*Panel, error) {
	if svc == nil {
		return nil, errors.New("panel: service required")
	}

	p, err := poller.New(poller.Config{Interval: cfg.PollInterval}, svc)
	if err != nil {
		return nil, errors.Wrap(err, "panel")
	}

	return &Panel{
		svc:    svc,
		board:  NewBoard(sinks...),
		poller: p,
		log:    log.WithField("component", "panel"),
	}, nil
}

// View returns the current display model.
func (p *Panel) View() View {
	return p.board.View()
}

// Start refreshes once immediately and then on every poll interval until
// Close. Failed polls never stop the loop.
func (p *Panel) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return errors.New("panel: already started")
	}
	p.started = true

	ctx, p.cancel = context.WithCancel(ctx)
	out := make(chan poller.PollResult)

	p.wg.Add(2)
	go func() {
		defer p.wg.Done()
		p.poller.Run(ctx, out)
	}()
	go func() {
		defer p.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case res := <-out:
				_ = p.apply(res)
			}
		}
	}()

	return nil
}

// Close stops polling and closes the board. Requests still in flight are
// abandoned; their results are dropped.
func (p *Panel) Close() error {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.mu.Unlock()

	p.wg.Wait()
	p.board.Close()
	return nil
}

// StartMemoryLoad starts the memory stressor.
func (p *Panel) StartMemoryLoad(ctx context.Context) error { return p.run(ctx, startMemory) }

// StopMemoryLoad stops the memory stressor.
func (p *Panel) StopMemoryLoad(ctx context.Context) error { return p.run(ctx, stopMemory) }

// StartCPULoad starts the CPU stressor.
func (p *Panel) StartCPULoad(ctx context.Context) error { return p.run(ctx, startCPU) }

// StopCPULoad stops the CPU stressor.
func (p *Panel) StopCPULoad(ctx context.Context) error { return p.run(ctx, stopCPU) }

// run issues one command, shows its message and refreshes.
// A failed command shows its fixed error text and skips the refresh.
func (p *Panel) run(ctx context.Context, c command) error {
	p.board.SetMessage(c.pending, StylePlain)

	res, err := p.svc.Command(ctx, c.endpoint)
	if err != nil {
		p.log.WithError(err).WithField("endpoint", c.endpoint).Warnf("%s failed", c.name)
		p.board.SetMessage(c.failure, StylePlain)
		return errors.Wrap(err, c.name)
	}

	p.board.SetMessage(res.Message, StylePlain)
	return p.RefreshStatus(ctx)
}

// StopAllTests stops both stressors concurrently. It reports success only
// when both calls succeed; the first failure is reported as soon as it
// happens and no refresh follows.
func (p *Panel) StopAllTests(ctx context.Context) error {
	p.board.SetMessage(stopAllPending, StylePlain)

	endpoints := []service.Endpoint{service.StopCPULoad, service.StopMemoryLoad}

	// buffered so late finishers never block after an early failure
	errc := make(chan error, len(endpoints))
	for _, ep := range endpoints {
		go func(ep service.Endpoint) {
			_, err := p.svc.Command(ctx, ep)
			errc <- errors.Wrapf(err, "GET %s", ep)
		}(ep)
	}

	for range endpoints {
		if err := <-errc; err != nil {
			p.log.WithError(err).Warn("stop all failed")
			p.board.SetMessage(stopAllFailure, StylePlain)
			return errors.Wrap(err, "stop all")
		}
	}

	p.board.SetMessage(stopAllDone, StylePlain)
	return p.RefreshStatus(ctx)
}

// RefreshStatus polls the status endpoint once and applies the result.
func (p *Panel) RefreshStatus(ctx context.Context) error {
	return p.apply(p.poller.PollOnce(ctx))
}

// apply renders a poll result. Failures leave gauges and indicators as they
// were and only replace the message.
func (p *Panel) apply(res poller.PollResult) error {
	if res.Err != nil {
		p.log.WithError(res.Err).Error("Error fetching status")
		p.board.SetMessage(statusFailure, StylePlain)
		return errors.Wrap(res.Err, "refresh status")
	}

	p.board.ApplyFrame(status.Render(res.Snapshot))
	return nil
}
