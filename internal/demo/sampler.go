// internal/demo/sampler.go
package demo

import (
	"sync"

	"github.com/henrylee2cn/goutil/calendar/cron"
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	log "github.com/sirupsen/logrus"
)

// Sampler reports host resource usage in percent.
type Sampler interface {
	CPUPercent() (float64, error)
	MemoryPercent() (float64, error)
}

// HostSampler samples the host with gopsutil. CPU usage needs two readings
// to mean anything, so a cron job refreshes it every second and
// CPUPercent returns the latest value.
type HostSampler struct {
	mu     sync.RWMutex
	cpu    float64
	cpuErr error

	cron *cron.Cron
}

// everySecond is the CPU sampling schedule.
const everySecond = "* * * * * *"

// NewHostSampler starts the 1 Hz CPU sampling job. Close stops it.
func NewHostSampler() (*HostSampler, error) {
	return newHostSampler(everySecond)
}

func newHostSampler(schedule string) (*HostSampler, error) {
	h := &HostSampler{
		cpuErr: errors.New("cpu not sampled yet"),
		cron:   cron.New(),
	}
	if err := h.cron.AddFunc(schedule, h.sample); err != nil {
		return nil, errors.Wrapf(err, "cpu sampling schedule %q", schedule)
	}

	// prime the counters so the first tick has a baseline
	h.sample()

	h.cron.Start()
	return h, nil
}

func (h *HostSampler) sample() {
	v, err := cpu.Percent(0, false)
	if err == nil && len(v) == 0 {
		err = errors.New("no cpu reading")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if err != nil {
		log.WithError(err).Debug("cpu sample failed")
		h.cpuErr = err
		return
	}
	h.cpu, h.cpuErr = v[0], nil
}

// CPUPercent returns the last sampled CPU usage.
func (h *HostSampler) CPUPercent() (float64, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cpu, h.cpuErr
}

// MemoryPercent returns the current virtual memory usage.
func (h *HostSampler) MemoryPercent() (float64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, errors.Wrap(err, "virtual memory")
	}
	return vm.UsedPercent, nil
}

// Close stops the sampling job.
func (h *HostSampler) Close() {
	h.cron.Stop()
}
