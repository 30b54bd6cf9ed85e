// internal/panel/commands.go
package panel

import "github.com/tamzrod/loadpanel/internal/service"

// command is one imperative call with its fixed message texts.
type command struct {
	name     string
	endpoint service.Endpoint
	pending  string
	failure  string
}

var (
	startMemory = command{
		name:     "start memory load",
		endpoint: service.StartMemoryLoad,
		pending:  "Starting memory load test...",
		failure:  "Error starting memory load test!",
	}
	stopMemory = command{
		name:     "stop memory load",
		endpoint: service.StopMemoryLoad,
		pending:  "Stopping memory load test...",
		failure:  "Error stopping memory load test!",
	}
	startCPU = command{
		name:     "start cpu load",
		endpoint: service.StartCPULoad,
		pending:  "Starting CPU load test...",
		failure:  "Error starting CPU load test!",
	}
	stopCPU = command{
		name:     "stop cpu load",
		endpoint: service.StopCPULoad,
		pending:  "Stopping CPU load test...",
		failure:  "Error stopping CPU load test!",
	}
)

const (
	stopAllPending = "EMERGENCY STOP: Stopping all load tests..."
	stopAllDone    = "All load tests have been stopped."
	stopAllFailure = "Error stopping tests! Server may be overloaded."

	statusFailure = "Error fetching status. Server may be overloaded."
)
