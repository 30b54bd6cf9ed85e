// internal/service/decode.go
package service

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/tamzrod/loadpanel/internal/status"
)

// undefinedText is shown for a message field the service did not send.
const undefinedText = "undefined"

// Running flags are read loosely: any JSON value is accepted and judged by
// truthiness, so 1 or "yes" count as running and null counts as stopped.
type snapshotWire struct {
	CPUPercent        *float64    `json:"cpu_percent"`
	MemoryPercent     *float64    `json:"memory_percent"`
	CPUTestRunning    interface{} `json:"cpu_test_running"`
	MemoryTestRunning interface{} `json:"memory_test_running"`
}

// DecodeCommandResult decodes a command response body and reads its
// message the way a browser reads data.message off the parsed body:
//   - a null body has no fields and is an error
//   - any other non-object body, or an object without message, shows "undefined"
//   - a null message shows as empty text
//   - other non-string messages are converted as JavaScript's String() does
func DecodeCommandResult(body []byte) (CommandResult, error) {
	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return CommandResult{}, errors.Wrap(err, "decode command result")
	}
	if data == nil {
		return CommandResult{}, errors.New("decode command result: body is null")
	}

	obj, ok := data.(map[string]interface{})
	if !ok {
		return CommandResult{Message: undefinedText}, nil
	}

	msg, ok := obj["message"]
	switch {
	case !ok:
		return CommandResult{Message: undefinedText}, nil
	case msg == nil:
		return CommandResult{}, nil
	}
	return CommandResult{Message: jsString(msg)}, nil
}

// DecodeSnapshot decodes a status response body.
// Both percentages are required; they cannot be formatted otherwise.
func DecodeSnapshot(body []byte) (status.Snapshot, error) {
	var w snapshotWire
	if err := json.Unmarshal(body, &w); err != nil {
		return status.Snapshot{}, errors.Wrap(err, "decode status")
	}
	if w.CPUPercent == nil {
		return status.Snapshot{}, errors.New("decode status: cpu_percent missing")
	}
	if w.MemoryPercent == nil {
		return status.Snapshot{}, errors.New("decode status: memory_percent missing")
	}

	return status.Snapshot{
		CPUPercent:        *w.CPUPercent,
		MemoryPercent:     *w.MemoryPercent,
		CPUTestRunning:    truthy(w.CPUTestRunning),
		MemoryTestRunning: truthy(w.MemoryTestRunning),
	}, nil
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		// objects and arrays
		return true
	}
}

// jsString converts a decoded JSON value to text with JavaScript String()
// rules: arrays join their elements with commas (null elements empty),
// objects become "[object Object]".
func jsString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return jsNumber(t)
	case []interface{}:
		parts := make([]string, len(t))
		for i, e := range t {
			parts[i] = jsString(e)
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}

// jsNumber prints the shortest round-trip digits, switching to exponent
// form outside [1e-6, 1e21) like Number.prototype.toString.
func jsNumber(f float64) string {
	if f == 0 {
		return "0"
	}

	e := strconv.FormatFloat(f, 'e', -1, 64)
	i := strings.IndexByte(e, 'e')
	exp, _ := strconv.Atoi(e[i+1:])
	if exp >= -6 && exp < 21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	sign := "+"
	if exp < 0 {
		sign = "-"
		exp = -exp
	}
	return e[:i] + "e" + sign + strconv.Itoa(exp)
}
