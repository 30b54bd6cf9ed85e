// internal/status/render.go
package status

// Gauge is one rendered percentage bar.
type Gauge struct {
	Value  Percent
	Text   string // value element, e.g. "82.3%"
	Width  string // bar width, not clamped
	Color  string
	Danger bool
}

// Indicator is one rendered run-state label.
type Indicator struct {
	Running bool
	Label   string
	Color   string
}

// Frame is everything a successful poll puts on screen.
type Frame struct {
	Snapshot   Snapshot
	CPU        Gauge
	Memory     Gauge
	CPUTest    Indicator
	MemoryTest Indicator

	// Warning is true when memory is above WarningPercent while any test runs.
	Warning bool
}

// Render converts a Snapshot into display values.
// No IO. No side effects.
func Render(s Snapshot) Frame {
	cpu := renderGauge(s.CPUPercent, ColorCPU)
	memory := renderGauge(s.MemoryPercent, ColorMemory)

	return Frame{
		Snapshot:   s,
		CPU:        cpu,
		Memory:     memory,
		CPUTest:    renderIndicator(s.CPUTestRunning),
		MemoryTest: renderIndicator(s.MemoryTestRunning),
		Warning:    memory.Value.Above(WarningPercent) && s.AnyTestRunning(),
	}
}

func renderGauge(v float64, normal string) Gauge {
	p := FormatPercent(v)
	g := Gauge{
		Value: p,
		Text:  p.WithUnit(),
		Width: p.WithUnit(),
		Color: normal,
	}
	if p.Above(DangerPercent) {
		g.Color = ColorDanger
		g.Danger = true
	}
	return g
}

func renderIndicator(running bool) Indicator {
	if running {
		return Indicator{Running: true, Label: LabelRunning, Color: ColorRunning}
	}
	return Indicator{Running: false, Label: LabelStopped, Color: ColorStopped}
}
