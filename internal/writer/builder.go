// internal/writer/builder.go
package writer

import (
	"time"

	cfg "github.com/tamzrod/loadpanel/internal/config"
	"github.com/tamzrod/loadpanel/internal/status"
	wmodbus "github.com/tamzrod/loadpanel/internal/writer/modbus"
)

// BuildStatusPlan converts the mirror config into a StatusPlan.
// Assumes config has already passed validation.
func BuildStatusPlan(m cfg.MirrorConfig, panelName string) StatusPlan {
	return StatusPlan{
		Endpoint:  m.Endpoint,
		UnitID:    m.UnitID,
		BaseSlot:  m.BaseSlot,
		PanelName: panelName,
	}
}

// BuildStatusWriter connects to the mirror endpoint and returns a ready
// status writer with its closer.
func BuildStatusWriter(m cfg.MirrorConfig, panelName string) (*StatusWriter, func() error, error) {
	plan := BuildStatusPlan(m, panelName)

	b, err := wmodbus.Open(wmodbus.Config{
		Endpoint: plan.Endpoint,
		UnitID:   plan.UnitID,
		Start:    plan.Start(),
		Size:     status.SlotsPerPanel,
		Timeout:  time.Duration(m.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}

	return NewStatusWriter(plan, b), b.Close, nil
}
