// internal/writer/console/console.go
package console

import (
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	"github.com/olekukonko/tablewriter"

	"github.com/tamzrod/loadpanel/internal/panel"
	"github.com/tamzrod/loadpanel/internal/status"
	"github.com/tamzrod/loadpanel/internal/trigger"
)

const (
	clearScreen = "\033[H\033[2J"
	barCells    = 20
)

// Console renders views as text tables.
// It implements panel.Sink and trigger.Sink.
type Console struct {
	mu    sync.Mutex
	w     io.Writer
	clear bool
}

// New returns a console writing to w. With clear set, every render
// starts by clearing the terminal.
func New(w io.Writer, clear bool) *Console {
	return &Console{w: w, clear: clear}
}

// Write renders the panel view.
func (c *Console) Write(v panel.View) error {
	var b strings.Builder

	if c.clear {
		b.WriteString(clearScreen)
	}

	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"Gauge", "Value", "Bar", "Color"})
	table.SetAutoFormatHeaders(false)
	table.Append([]string{"CPU", v.CPU.Value, bar(v.Frame, true), v.CPU.Color})
	table.Append([]string{"Memory", v.Memory.Value, bar(v.Frame, false), v.Memory.Color})
	table.Append([]string{"CPU test", v.CPUTest.Label, "", v.CPUTest.Color})
	table.Append([]string{"Memory test", v.MemoryTest.Label, "", v.MemoryTest.Color})
	table.Render()

	if v.Message.Text != "" {
		if v.Message.Style == panel.StyleAttention {
			fmt.Fprintf(&b, "[!] %s\n", v.Message.Text)
		} else {
			fmt.Fprintf(&b, "%s\n", v.Message.Text)
		}
	}

	return c.flush(b.String())
}

// WriteTrigger renders the single-action variant.
func (c *Console) WriteTrigger(v trigger.View) error {
	return c.flush(fmt.Sprintf("[%s] %s\n", v.Class, v.Message))
}

func (c *Console) flush(s string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := io.WriteString(c.w, s)
	return err
}

// bar draws a gauge as text. The drawn bar is clamped to its cells;
// the Value column keeps the unclamped number.
func bar(f *status.Frame, cpu bool) string {
	if f == nil {
		return "[" + strings.Repeat(".", barCells) + "]"
	}

	g := f.Memory
	if cpu {
		g = f.CPU
	}

	r := g.Value.Float() / 100 * barCells
	var cells int
	switch {
	case math.IsNaN(r) || r < 0:
		cells = 0
	case r > barCells:
		cells = barCells
	default:
		cells = int(r)
	}

	fill := "#"
	if g.Danger {
		fill = "!"
	}
	return "[" + strings.Repeat(fill, cells) + strings.Repeat(".", barCells-cells) + "]"
}
