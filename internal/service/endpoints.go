// internal/service/endpoints.go
package service

// Endpoint is a fixed path on the load-test service.
// All endpoints are plain GETs without a body.
type Endpoint string

const (
	StartMemoryLoad Endpoint = "/start-memory-load"
	StopMemoryLoad  Endpoint = "/stop-memory-load"
	StartCPULoad    Endpoint = "/start-cpu-load"
	StopCPULoad     Endpoint = "/stop-cpu-load"
	Status          Endpoint = "/status"

	// TriggerLoad belongs to the single-action variant.
	TriggerLoad Endpoint = "/trigger-load"
)

// CommandResult is the body of every command endpoint.
type CommandResult struct {
	Message string `json:"message"`
}
