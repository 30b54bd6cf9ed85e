// internal/panel/board.go
package panel

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/tamzrod/loadpanel/internal/status"
)

// Sink receives views after the board changes.
type Sink interface {
	Write(v View) error
}

// Board is the process-wide display state. Writes are atomic per call and
// last-write-wins; nothing orders concurrent writers.
//
// Sinks are fed by a single dispatcher goroutine that always delivers the
// latest view. Intermediate views may be skipped, never reordered.
type Board struct {
	mu     sync.Mutex
	view   View
	closed bool

	sinks   []Sink
	wake    chan struct{}
	done    chan struct{}
	stopped chan struct{}

	log *log.Entry
}

// NewBoard creates a board and starts its dispatcher.
// Close must be called to stop it.
func NewBoard(sinks ...Sink) *Board {
	b := &Board{
		view:    initialView(),
		sinks:   sinks,
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		log:     log.WithField("component", "board"),
	}
	go b.dispatch()
	return b
}

// View returns a copy of the current view.
func (b *Board) View() View {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.view
}

// SetMessage overwrites the message element.
func (b *Board) SetMessage(text string, style Style) {
	b.update(func(v *View) {
		v.Message = Message{Text: text, Style: style}
	})
}

// ApplyFrame overwrites gauges and indicators from a rendered poll.
// When the frame carries the memory warning, the message element is
// overwritten too, superseding whatever it showed.
func (b *Board) ApplyFrame(f status.Frame) {
	b.update(func(v *View) {
		v.CPU = Bar{Value: f.CPU.Text, Width: f.CPU.Width, Color: f.CPU.Color}
		v.Memory = Bar{Value: f.Memory.Text, Width: f.Memory.Width, Color: f.Memory.Color}
		v.CPUTest = Indicator{Label: f.CPUTest.Label, Color: f.CPUTest.Color}
		v.MemoryTest = Indicator{Label: f.MemoryTest.Label, Color: f.MemoryTest.Color}

		if f.Warning {
			v.Message = Message{Text: status.WarningMessage, Style: StyleAttention}
		}

		frame := f
		v.Frame = &frame
	})
}

// Close stops the dispatcher after a final delivery. Later writes are dropped.
func (b *Board) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	b.mu.Unlock()

	close(b.done)
	<-b.stopped
}

func (b *Board) update(fn func(v *View)) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	fn(&b.view)
	b.view.Revision++
	b.mu.Unlock()

	select {
	case b.wake <- struct{}{}:
	default:
	}
}

func (b *Board) dispatch() {
	defer close(b.stopped)

	var delivered uint64
	for {
		select {
		case <-b.wake:
			delivered = b.deliver(delivered)
		case <-b.done:
			b.deliver(delivered)
			return
		}
	}
}

func (b *Board) deliver(delivered uint64) uint64 {
	v := b.View()
	if v.Revision == delivered {
		return delivered
	}
	for _, s := range b.sinks {
		if err := s.Write(v); err != nil {
			b.log.WithError(err).Warn("sink write failed")
		}
	}
	return v.Revision
}
