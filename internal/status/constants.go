// internal/status/constants.go
package status

// Display and mirror constants.
// These values define what the operator sees and MUST NOT be configurable.

// ---- THRESHOLDS ----

// DangerPercent is the gauge value above which a bar turns to the danger color.
const DangerPercent = 80

// WarningPercent is the memory value above which the warning is raised
// while any test is running.
const WarningPercent = 85

// ---- COLORS ----

// ColorDanger is used for bars above DangerPercent.
const ColorDanger = "#dc3545"

// ColorCPU is the normal CPU bar color.
const ColorCPU = "#0062cc"

// ColorMemory is the normal memory bar color.
const ColorMemory = "#28a745"

// ColorRunning and ColorStopped color the run-state labels.
const (
	ColorRunning = "#28a745"
	ColorStopped = "#dc3545"
)

// ---- LABELS ----

const (
	LabelRunning = "Running"
	LabelStopped = "Stopped"
	LabelUnknown = "Unknown"
)

// WarningMessage replaces the message area when memory is critical.
const WarningMessage = "WARNING: Memory usage is very high! Consider stopping tests to prevent pod crash."

// ---- MIRROR BLOCK GEOMETRY ----

// SlotsPerPanel is the fixed number of registers in a panel status block.
const SlotsPerPanel = 20

// ---- SLOT INDICES ----

// SlotCPUTenths holds the displayed CPU percentage times ten.
const SlotCPUTenths = 0

// SlotMemoryTenths holds the displayed memory percentage times ten.
const SlotMemoryTenths = 1

// SlotCPURunning is 1 while the CPU stressor is reported running.
const SlotCPURunning = 2

// SlotMemoryRunning is 1 while the memory stressor is reported running.
const SlotMemoryRunning = 3

// SlotWarning is 1 while the memory warning condition holds.
const SlotWarning = 4

// SlotDanger holds the danger bits (DangerBitCPU, DangerBitMemory).
const SlotDanger = 5

// ---- RESERVED RANGE ----

// Slots 6-11 are reserved for future use.
const SlotReservedStart = 6
const SlotReservedEnd = 11

// ---- PANEL NAME ----

// SlotPanelNameStart is the first slot used for the panel name.
// The name is always placed at the END of the block.
const SlotPanelNameStart = 12

// SlotPanelNameSlots is the number of slots reserved for the panel name.
const SlotPanelNameSlots = 8

// SlotPanelNameEnd is the last slot used for the panel name (inclusive).
const SlotPanelNameEnd = SlotPanelNameStart + SlotPanelNameSlots - 1

// PanelNameMaxChars is the maximum number of ASCII characters stored for the panel name.
const PanelNameMaxChars = 16

// ---- DANGER BITS ----

const (
	DangerBitCPU    uint16 = 1 << 0
	DangerBitMemory uint16 = 1 << 1
)
