// internal/panel/view.go
package panel

import "github.com/tamzrod/loadpanel/internal/status"

// Style is how the message element is rendered.
type Style int

const (
	StylePlain Style = iota
	StyleAttention
)

// Message is the status-message element.
type Message struct {
	Text  string
	Style Style
}

// Bar is a value element plus its bar element.
type Bar struct {
	Value string // e.g. "82.3%"
	Width string
	Color string
}

// Indicator is a run-state label element.
type Indicator struct {
	Label string
	Color string
}

// View is the full display model of the panel.
// Each element is overwritten independently; there is no history.
type View struct {
	// Revision increases by one on every write.
	Revision uint64

	Message    Message
	CPU        Bar
	Memory     Bar
	CPUTest    Indicator
	MemoryTest Indicator

	// Frame is the last successfully applied poll, nil until the first one.
	Frame *status.Frame
}

func initialView() View {
	return View{
		CPU:        Bar{Value: "0%", Width: "0%", Color: status.ColorCPU},
		Memory:     Bar{Value: "0%", Width: "0%", Color: status.ColorMemory},
		CPUTest:    Indicator{Label: status.LabelUnknown},
		MemoryTest: Indicator{Label: status.LabelUnknown},
	}
}
