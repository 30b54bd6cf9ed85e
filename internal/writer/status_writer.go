// internal/writer/status_writer.go
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/loadpanel/internal/panel"
	"github.com/tamzrod/loadpanel/internal/status"
)

// StatusWriter mirrors the panel's last applied poll into a Modbus status
// block. It implements panel.Sink.
// Views without a poll yet are skipped; message-only changes write nothing.
type StatusWriter struct {
	plan  StatusPlan
	block registerBlock

	needFull bool
	last     []uint16 // live slots as last delivered
	nameRegs []uint16
}

// NewStatusWriter builds a status writer for plan.
func NewStatusWriter(plan StatusPlan, block registerBlock) *StatusWriter {
	return &StatusWriter{
		plan:     plan,
		block:    block,
		needFull: true, // full re-assert on first write
		nameRegs: encodePanelNameRegs(plan.PanelName),
	}
}

// Write delivers the frame carried by v.
// On any write failure, the next call re-asserts the full block.
func (sw *StatusWriter) Write(v panel.View) error {
	if sw.block == nil {
		return fmt.Errorf("status writer: no register block for endpoint %s", sw.plan.Endpoint)
	}
	if v.Frame == nil {
		return nil
	}

	regs := status.Encode(*v.Frame)

	if sw.needFull {
		full := sw.fullBlockRegs(regs)

		if err := sw.block.Write(0, full...); err != nil {
			sw.needFull = true
			return fmt.Errorf("status writer: full block write failed: %w", err)
		}

		sw.needFull = false
		sw.last = regs[:status.SlotReservedStart]
		return nil
	}

	var errs []string

	// Live slots only; each one is written on change.
	for slot := 0; slot < status.SlotReservedStart; slot++ {
		if sw.last[slot] == regs[slot] {
			continue
		}
		if err := sw.block.Write(uint16(slot), regs[slot]); err != nil {
			errs = append(errs, fmt.Sprintf("slot%d write failed: %v", slot, err))
			continue
		}
		sw.last[slot] = regs[slot]
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt; re-assert on next write.
		sw.needFull = true
		return errors.New("status writer: " + strings.Join(errs, " | "))
	}

	return nil
}

func (sw *StatusWriter) fullBlockRegs(live []uint16) []uint16 {
	regs := make([]uint16, status.SlotsPerPanel)

	// Live status slots
	copy(regs[:status.SlotReservedStart], live[:status.SlotReservedStart])

	// Reserved slots stay zero

	// Panel name always lives at the end of the block
	for i := 0; i < status.SlotPanelNameSlots && i < len(sw.nameRegs); i++ {
		regs[status.SlotPanelNameStart+i] = sw.nameRegs[i]
	}

	return regs
}

// encodePanelNameRegs packs up to 16 ASCII characters into 8 uint16 registers.
// Each register stores two ASCII bytes in big-endian order.
func encodePanelNameRegs(name string) []uint16 {
	out := make([]uint16, status.SlotPanelNameSlots)

	b := []byte(name)
	if len(b) > status.PanelNameMaxChars {
		b = b[:status.PanelNameMaxChars]
	}

	// sanitize to printable ASCII
	for i := 0; i < len(b); i++ {
		if b[i] < 0x20 || b[i] > 0x7E {
			b[i] = '?'
		}
	}

	for i := 0; i < status.PanelNameMaxChars; i += 2 {
		var hi, lo byte
		if i < len(b) {
			hi = b[i]
		}
		if i+1 < len(b) {
			lo = b[i+1]
		}
		out[i/2] = uint16(hi)<<8 | uint16(lo)
	}

	return out
}
