// internal/poller/types.go
package poller

import (
	"time"

	"github.com/tamzrod/loadpanel/internal/status"
)

// PollResult is the outcome of one status request.
type PollResult struct {
	At time.Time

	Snapshot status.Snapshot
	Err      error // non-nil means the poll failed; Snapshot is zero
}
