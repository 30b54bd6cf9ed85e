// internal/writer/types.go
package writer

import "github.com/tamzrod/loadpanel/internal/status"

// StatusPlan locates one panel status block inside a Modbus memory.
type StatusPlan struct {
	Endpoint  string
	UnitID    uint8
	BaseSlot  uint16 // block index
	PanelName string
}

// Start is the first register of the plan's block.
func (p StatusPlan) Start() uint16 {
	return p.BaseSlot * status.SlotsPerPanel
}

// registerBlock is the exact contract the status writer uses: writes
// addressed from the start of the panel's block.
type registerBlock interface {
	Write(offset uint16, values ...uint16) error
}
