// internal/service/client_test.go
package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/loadpanel/internal/status"
)

func newTestServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	for path, body := range routes {
		body := body
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(body))
		})
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	c, err := New(Config{BaseURL: baseURL + "/", Timeout: 2 * time.Second})
	require.NoError(t, err)
	return c
}

func TestClient_Command(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		string(StartCPULoad): `{"message":"CPU load test started targeting 60% utilization."}`,
	})
	c := newTestClient(t, srv.URL)

	res, err := c.Command(context.Background(), StartCPULoad)
	require.NoError(t, err)
	assert.Equal(t, "CPU load test started targeting 60% utilization.", res.Message)
}

func TestClient_CommandUndecodable(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		string(StopCPULoad): `<html>502 Bad Gateway</html>`,
	})
	c := newTestClient(t, srv.URL)

	_, err := c.Command(context.Background(), StopCPULoad)
	assert.Error(t, err)
}

func TestClient_StatusCodeIgnored(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(string(StopMemoryLoad), func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"still json"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv.URL)

	res, err := c.Command(context.Background(), StopMemoryLoad)
	require.NoError(t, err)
	assert.Equal(t, "still json", res.Message)
}

func TestClient_Status(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		string(Status): `{"cpu_percent":82.34,"memory_percent":40.0,"cpu_test_running":true,"memory_test_running":false}`,
	})
	c := newTestClient(t, srv.URL)

	snap, err := c.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, status.Snapshot{
		CPUPercent:        82.34,
		MemoryPercent:     40.0,
		CPUTestRunning:    true,
		MemoryTestRunning: false,
	}, snap)
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := newTestClient(t, url)

	_, err := c.Status(context.Background())
	assert.Error(t, err)
}

func TestClient_CommandNullBody(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		string(StartMemoryLoad): `null`,
	})
	c := newTestClient(t, srv.URL)

	_, err := c.Command(context.Background(), StartMemoryLoad)
	assert.Error(t, err)
}

func TestClientOptions_ZeroTimeoutIsUnbounded(t *testing.T) {
	opts := config.NewClientOptions(clientOptions(Config{BaseURL: "http://x"}))

	assert.Equal(t, time.Duration(0), opts.DialTimeout)
	assert.Equal(t, time.Duration(0), opts.ReadTimeout)
	require.NotNil(t, opts.RetryConfig)
	assert.Equal(t, uint(1), opts.RetryConfig.MaxAttemptTimes)
}

func TestClientOptions_TimeoutBoundsDialAndRead(t *testing.T) {
	opts := config.NewClientOptions(clientOptions(Config{BaseURL: "http://x", Timeout: 3 * time.Second}))

	assert.Equal(t, 3*time.Second, opts.DialTimeout)
	assert.Equal(t, 3*time.Second, opts.ReadTimeout)
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}
