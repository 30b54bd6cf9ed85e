// internal/status/snapshot.go
package status

// Snapshot is one poll response from the load-test service.
// It fully replaces whatever was displayed before; nothing carries over.
type Snapshot struct {
	CPUPercent        float64 `json:"cpu_percent"`
	MemoryPercent     float64 `json:"memory_percent"`
	CPUTestRunning    bool    `json:"cpu_test_running"`
	MemoryTestRunning bool    `json:"memory_test_running"`
}

// AnyTestRunning reports whether at least one stressor is running.
func (s Snapshot) AnyTestRunning() bool {
	return s.CPUTestRunning || s.MemoryTestRunning
}
