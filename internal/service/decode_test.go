// internal/service/decode_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCommandResult(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"string", `{"message":"CPU load test stopped."}`, "CPU load test stopped."},
		{"absent", `{}`, "undefined"},
		{"null", `{"message":null}`, ""},
		{"number", `{"message":42}`, "42"},
		{"fraction", `{"message":1.5}`, "1.5"},
		{"large number", `{"message":1e21}`, "1e+21"},
		{"small number", `{"message":0.0000001}`, "1e-7"},
		{"bool", `{"message":true}`, "true"},
		{"object", `{"message":{"a":1}}`, "[object Object]"},
		{"array", `{"message":[1,2]}`, "1,2"},
		{"nested array", `{"message":[1,[2,null],{"a":1}]}`, "1,2,,[object Object]"},

		// valid JSON without fields
		{"top-level array", `[]`, "undefined"},
		{"top-level string", `"ok"`, "undefined"},
		{"top-level number", `5`, "undefined"},
		{"top-level bool", `true`, "undefined"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := DecodeCommandResult([]byte(tc.body))
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Message)
		})
	}
}

func TestDecodeCommandResult_NullBody(t *testing.T) {
	_, err := DecodeCommandResult([]byte(`null`))
	assert.Error(t, err)
}

func TestDecodeCommandResult_NotJSON(t *testing.T) {
	_, err := DecodeCommandResult([]byte("Internal Server Error"))
	assert.Error(t, err)
}

func TestDecodeSnapshot_MissingPercent(t *testing.T) {
	_, err := DecodeSnapshot([]byte(`{"memory_percent":40,"cpu_test_running":true}`))
	assert.Error(t, err)

	_, err = DecodeSnapshot([]byte(`{"cpu_percent":40}`))
	assert.Error(t, err)
}

func TestDecodeSnapshot_NonNumericPercent(t *testing.T) {
	_, err := DecodeSnapshot([]byte(`{"cpu_percent":"40","memory_percent":40}`))
	assert.Error(t, err)
}

func TestDecodeSnapshot_RunningFlags(t *testing.T) {
	// Some services omit memory_test_running entirely.
	snap, err := DecodeSnapshot([]byte(`{"cpu_percent":1,"memory_percent":2,"cpu_test_running":true}`))
	require.NoError(t, err)
	assert.True(t, snap.CPUTestRunning)
	assert.False(t, snap.MemoryTestRunning)

	snap, err = DecodeSnapshot([]byte(`{"cpu_percent":1,"memory_percent":2,"cpu_test_running":1,"memory_test_running":""}`))
	require.NoError(t, err)
	assert.True(t, snap.CPUTestRunning)
	assert.False(t, snap.MemoryTestRunning)

	snap, err = DecodeSnapshot([]byte(`{"cpu_percent":1,"memory_percent":2,"cpu_test_running":null,"memory_test_running":"yes"}`))
	require.NoError(t, err)
	assert.False(t, snap.CPUTestRunning)
	assert.True(t, snap.MemoryTestRunning)
}
