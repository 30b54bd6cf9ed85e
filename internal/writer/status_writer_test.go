// internal/writer/status_writer_test.go
package writer

import (
	"errors"
	"testing"

	cfg "github.com/tamzrod/loadpanel/internal/config"
	"github.com/tamzrod/loadpanel/internal/panel"
	"github.com/tamzrod/loadpanel/internal/status"
)

// ---- fake register block ----

type writeCall struct {
	offset uint16
	regs   []uint16
}

type fakeBlock struct {
	writes []writeCall
	fail   bool
}

func (f *fakeBlock) Write(offset uint16, values ...uint16) error {
	if f.fail {
		return errors.New("connection reset")
	}
	f.writes = append(f.writes, writeCall{
		offset: offset,
		regs:   append([]uint16(nil), values...),
	})
	return nil
}

func viewOf(s status.Snapshot) panel.View {
	f := status.Render(s)
	return panel.View{Frame: &f}
}

// ---- tests ----

func TestStatusWriter_SkipsUntilFirstPoll(t *testing.T) {
	cli := &fakeBlock{}
	sw := NewStatusWriter(StatusPlan{Endpoint: "ep", UnitID: 1}, cli)

	if err := sw.Write(panel.View{Message: panel.Message{Text: "Starting CPU load test..."}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cli.writes) != 0 {
		t.Fatalf("expected no writes before first poll, got %d", len(cli.writes))
	}
}

func TestStatusWriter_FullAssertThenIncremental(t *testing.T) {
	cli := &fakeBlock{}
	plan := StatusPlan{
		Endpoint:  "status-endpoint",
		UnitID:    7,
		BaseSlot:  2,
		PanelName: "LAB-01",
	}
	sw := NewStatusWriter(plan, cli)

	// ---- first write: FULL ASSERT ----
	first := viewOf(status.Snapshot{CPUPercent: 82.34, MemoryPercent: 40, CPUTestRunning: true})
	if err := sw.Write(first); err != nil {
		t.Fatalf("initial full assert failed: %v", err)
	}

	if len(cli.writes) != 1 {
		t.Fatalf("expected 1 write, got %d", len(cli.writes))
	}
	full := cli.writes[0]
	if full.offset != 0 {
		t.Fatalf("full block must start at offset 0, got %d", full.offset)
	}
	if len(full.regs) != status.SlotsPerPanel {
		t.Fatalf("expected full block (%d regs), got %d", status.SlotsPerPanel, len(full.regs))
	}
	if full.regs[status.SlotCPUTenths] != 823 || full.regs[status.SlotDanger] != status.DangerBitCPU {
		t.Fatalf("unexpected live slots %v", full.regs[:status.SlotReservedStart])
	}

	// Verify panel name encoding EXACTLY
	expectedNameRegs := encodePanelNameRegs(plan.PanelName)
	for i := 0; i < status.SlotPanelNameSlots; i++ {
		slot := status.SlotPanelNameStart + i
		if full.regs[slot] != expectedNameRegs[i] {
			t.Fatalf("panel name slot %d mismatch: got=%d want=%d", slot, full.regs[slot], expectedNameRegs[i])
		}
	}

	// ---- second write: INCREMENTAL ONLY ----
	second := viewOf(status.Snapshot{CPUPercent: 82.34, MemoryPercent: 41.5, CPUTestRunning: true})
	if err := sw.Write(second); err != nil {
		t.Fatalf("incremental write failed: %v", err)
	}

	if len(cli.writes) != 2 {
		t.Fatalf("expected exactly one incremental write, got %d total", len(cli.writes))
	}
	inc := cli.writes[1]
	if inc.offset != status.SlotMemoryTenths || len(inc.regs) != 1 || inc.regs[0] != 415 {
		t.Fatalf("unexpected incremental write %+v", inc)
	}

	// ---- unchanged: NO WRITE ----
	if err := sw.Write(second); err != nil {
		t.Fatalf("unchanged write failed: %v", err)
	}
	if len(cli.writes) != 2 {
		t.Fatalf("unchanged frame must not write, got %d total", len(cli.writes))
	}
}

func TestStatusWriter_FailureForcesFullReassert(t *testing.T) {
	cli := &fakeBlock{}
	sw := NewStatusWriter(StatusPlan{Endpoint: "ep", UnitID: 1}, cli)

	if err := sw.Write(viewOf(status.Snapshot{CPUPercent: 10, MemoryPercent: 20})); err != nil {
		t.Fatalf("initial write failed: %v", err)
	}

	cli.fail = true
	if err := sw.Write(viewOf(status.Snapshot{CPUPercent: 11, MemoryPercent: 20})); err == nil {
		t.Fatalf("expected write error, got nil")
	}

	cli.fail = false
	if err := sw.Write(viewOf(status.Snapshot{CPUPercent: 12, MemoryPercent: 20})); err != nil {
		t.Fatalf("recovery write failed: %v", err)
	}

	last := cli.writes[len(cli.writes)-1]
	if len(last.regs) != status.SlotsPerPanel {
		t.Fatalf("expected full block after failure, got %d regs", len(last.regs))
	}
}

func TestStatusWriter_MissingClient(t *testing.T) {
	sw := NewStatusWriter(StatusPlan{Endpoint: "ep"}, nil)
	if err := sw.Write(viewOf(status.Snapshot{})); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestBuildStatusPlan_BlockStart(t *testing.T) {
	plan := BuildStatusPlan(cfg.MirrorConfig{Endpoint: "127.0.0.1:502", UnitID: 7, BaseSlot: 2}, "LAB-01")

	if plan.UnitID != 7 || plan.PanelName != "LAB-01" {
		t.Fatalf("unexpected plan %+v", plan)
	}
	if plan.Start() != 2*status.SlotsPerPanel {
		t.Fatalf("block 2 should start at register %d, got %d", 2*status.SlotsPerPanel, plan.Start())
	}
}

func TestEncodePanelNameRegs(t *testing.T) {
	regs := encodePanelNameRegs("AB\x01")
	if regs[0] != uint16('A')<<8|uint16('B') {
		t.Fatalf("unexpected first register %#04x", regs[0])
	}
	if regs[1] != uint16('?')<<8 {
		t.Fatalf("control character not sanitized: %#04x", regs[1])
	}
	for i := 2; i < len(regs); i++ {
		if regs[i] != 0 {
			t.Fatalf("padding slot %d not zero", i)
		}
	}
}
