// internal/writer/console/console_test.go
package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/loadpanel/internal/panel"
	"github.com/tamzrod/loadpanel/internal/status"
	"github.com/tamzrod/loadpanel/internal/trigger"
)

func TestWrite_RendersElements(t *testing.T) {
	var out bytes.Buffer
	c := New(&out, false)

	f := status.Render(status.Snapshot{CPUPercent: 82.34, MemoryPercent: 40, CPUTestRunning: true})
	v := panel.View{
		Message:    panel.Message{Text: status.WarningMessage, Style: panel.StyleAttention},
		CPU:        panel.Bar{Value: f.CPU.Text, Width: f.CPU.Width, Color: f.CPU.Color},
		Memory:     panel.Bar{Value: f.Memory.Text, Width: f.Memory.Width, Color: f.Memory.Color},
		CPUTest:    panel.Indicator{Label: f.CPUTest.Label, Color: f.CPUTest.Color},
		MemoryTest: panel.Indicator{Label: f.MemoryTest.Label, Color: f.MemoryTest.Color},
		Frame:      &f,
	}

	require.NoError(t, c.Write(v))

	s := out.String()
	assert.Contains(t, s, "82.3%")
	assert.Contains(t, s, "40.0%")
	assert.Contains(t, s, status.ColorDanger)
	assert.Contains(t, s, "Running")
	assert.Contains(t, s, "Stopped")
	assert.Contains(t, s, "[!] "+status.WarningMessage)
	assert.Contains(t, s, "[!!!!!!!!!!!!!!!!....]")
	assert.False(t, strings.HasPrefix(s, clearScreen))
}

func TestWrite_ClearsScreen(t *testing.T) {
	var out bytes.Buffer
	c := New(&out, true)

	require.NoError(t, c.Write(panel.View{}))
	assert.True(t, strings.HasPrefix(out.String(), clearScreen))
}

func TestBar_ClampsDrawingOnly(t *testing.T) {
	f := status.Render(status.Snapshot{CPUPercent: 250, MemoryPercent: -4})

	assert.Equal(t, "["+strings.Repeat("!", barCells)+"]", bar(&f, true))
	assert.Equal(t, "["+strings.Repeat(".", barCells)+"]", bar(&f, false))
	assert.Equal(t, "["+strings.Repeat(".", barCells)+"]", bar(nil, true))
}

func TestWriteTrigger(t *testing.T) {
	var out bytes.Buffer
	c := New(&out, false)

	require.NoError(t, c.WriteTrigger(trigger.View{Message: "Load test triggered.", Class: trigger.ClassSuccess}))
	assert.Equal(t, "[success] Load test triggered.\n", out.String())
}
