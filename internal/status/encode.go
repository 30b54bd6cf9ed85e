// internal/status/encode.go
package status

// Encode converts a Frame into the live part of a panel status block.
// Slots past SlotDanger are left zero; the writer owns the name block.
// No IO. No side effects.
func Encode(f Frame) []uint16 {
	regs := make([]uint16, SlotsPerPanel)

	regs[SlotCPUTenths] = f.CPU.Value.Tenths()
	regs[SlotMemoryTenths] = f.Memory.Value.Tenths()
	regs[SlotCPURunning] = boolReg(f.CPUTest.Running)
	regs[SlotMemoryRunning] = boolReg(f.MemoryTest.Running)
	regs[SlotWarning] = boolReg(f.Warning)

	var danger uint16
	if f.CPU.Danger {
		danger |= DangerBitCPU
	}
	if f.Memory.Danger {
		danger |= DangerBitMemory
	}
	regs[SlotDanger] = danger

	return regs
}

func boolReg(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}
