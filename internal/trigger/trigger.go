// internal/trigger/trigger.go
package trigger

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/tamzrod/loadpanel/internal/service"
)

// Class is the style class of the result element.
type Class string

const (
	ClassLoading Class = "loading"
	ClassSuccess Class = "success"
	ClassError   Class = "error"
)

const (
	loadingText = "Running load test..."
	failureText = "Error triggering load test!"
)

// Commander is the single endpoint this variant needs.
type Commander interface {
	Command(ctx context.Context, ep service.Endpoint) (service.CommandResult, error)
}

// View is the variant's display: a loading indicator and a result element.
type View struct {
	Loading bool
	Message string
	Class   Class
}

// Sink receives every view change, synchronously.
type Sink interface {
	WriteTrigger(v View) error
}

// Trigger fires one generic load test and shows the outcome.
// It shares nothing with the multi-endpoint panel.
type Trigger struct {
	svc   Commander
	sinks []Sink
	log   *log.Entry

	mu   sync.Mutex
	view View
}

// New creates a trigger.
func New(svc Commander, sinks ...Sink) *Trigger {
	return &Trigger{
		svc:   svc,
		sinks: sinks,
		log:   log.WithField("component", "trigger"),
	}
}

// View returns the current view.
func (t *Trigger) View() View {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.view
}

// Run shows the loading indicator, calls the trigger endpoint, then replaces
// the indicator with the result message styled by outcome.
func (t *Trigger) Run(ctx context.Context) error {
	t.set(View{Loading: true, Message: loadingText, Class: ClassLoading})

	res, err := t.svc.Command(ctx, service.TriggerLoad)
	if err != nil {
		t.log.WithError(err).Warn("trigger load failed")
		t.set(View{Message: failureText, Class: ClassError})
		return errors.Wrap(err, "trigger load")
	}

	t.set(View{Message: res.Message, Class: ClassSuccess})
	return nil
}

func (t *Trigger) set(v View) {
	t.mu.Lock()
	t.view = v
	t.mu.Unlock()

	for _, s := range t.sinks {
		if err := s.WriteTrigger(v); err != nil {
			t.log.WithError(err).Warn("sink write failed")
		}
	}
}
