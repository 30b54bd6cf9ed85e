// internal/demo/service.go
package demo

import (
	"encoding/json"
	"net/http"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/tamzrod/loadpanel/internal/service"
	"github.com/tamzrod/loadpanel/internal/status"
)

// Service answers the load-test endpoints without running any stressor.
// It only tracks run-state flags and reports real host usage, which is
// enough to drive a panel end to end.
type Service struct {
	sampler Sampler
	log     *log.Entry

	mu            sync.Mutex
	cpuRunning    bool
	memoryRunning bool
}

// NewService creates a demo service reading usage from s.
func NewService(s Sampler) *Service {
	return &Service{
		sampler: s,
		log:     log.WithField("component", "demo"),
	}
}

// Handler returns the HTTP routes.
func (s *Service) Handler() http.Handler {
	mux := &http.ServeMux{}
	mux.HandleFunc(string(service.StartMemoryLoad), s.startMemory)
	mux.HandleFunc(string(service.StopMemoryLoad), s.stopMemory)
	mux.HandleFunc(string(service.StartCPULoad), s.startCPU)
	mux.HandleFunc(string(service.StopCPULoad), s.stopCPU)
	mux.HandleFunc(string(service.TriggerLoad), s.triggerLoad)
	mux.HandleFunc(string(service.Status), s.status)
	return mux
}

func (s *Service) startMemory(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	s.memoryRunning = true
	s.mu.Unlock()

	s.log.Info("memory load test marked running")
	writeMessage(w, "Memory load test started. Check the logs for details.")
}

func (s *Service) stopMemory(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	was := s.memoryRunning
	s.memoryRunning = false
	s.mu.Unlock()

	if !was {
		writeMessage(w, "No memory load test currently running.")
		return
	}
	s.log.Info("memory load test marked stopped")
	writeMessage(w, "Memory load test stopped.")
}

func (s *Service) startCPU(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	s.cpuRunning = true
	s.mu.Unlock()

	s.log.Info("cpu load test marked running")
	writeMessage(w, "CPU load test started targeting 60% utilization. Check the logs for details.")
}

func (s *Service) stopCPU(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	was := s.cpuRunning
	s.cpuRunning = false
	s.mu.Unlock()

	if !was {
		writeMessage(w, "No CPU load test currently running.")
		return
	}
	s.log.Info("cpu load test marked stopped")
	writeMessage(w, "CPU load test stopped.")
}

func (s *Service) triggerLoad(w http.ResponseWriter, _ *http.Request) {
	s.log.Info("load test triggered")
	writeMessage(w, "Load test triggered.")
}

func (s *Service) status(w http.ResponseWriter, _ *http.Request) {
	cpuPercent, err := s.sampler.CPUPercent()
	if err != nil {
		s.log.WithError(err).Warn("cpu sample unavailable")
		http.Error(w, "cpu sample unavailable", http.StatusServiceUnavailable)
		return
	}
	memoryPercent, err := s.sampler.MemoryPercent()
	if err != nil {
		s.log.WithError(err).Warn("memory sample unavailable")
		http.Error(w, "memory sample unavailable", http.StatusServiceUnavailable)
		return
	}

	s.mu.Lock()
	snap := status.Snapshot{
		CPUPercent:        cpuPercent,
		MemoryPercent:     memoryPercent,
		CPUTestRunning:    s.cpuRunning,
		MemoryTestRunning: s.memoryRunning,
	}
	s.mu.Unlock()

	writeJSON(w, snap)
}

func writeMessage(w http.ResponseWriter, msg string) {
	writeJSON(w, service.CommandResult{Message: msg})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	by, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).Error("marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(by)
}
