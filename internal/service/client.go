// internal/service/client.go
package service

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/app/client/retry"
	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/pkg/errors"

	"github.com/tamzrod/loadpanel/internal/status"
)

// Config is minimal transport config.
type Config struct {
	BaseURL string

	// Timeout bounds dial and read time per request. Zero means no timeout
	// on either side: a hung request simply never returns.
	Timeout time.Duration
}

// Client talks to the load-test service over HTTP.
// One attempt per call, no retries. Response status codes are not inspected;
// only whether the body decodes matters.
type Client struct {
	base string
	hc   *client.Client
}

// New creates a client for the service at cfg.BaseURL.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("service client: base url required")
	}

	hc, err := client.NewClient(clientOptions(cfg)...)
	if err != nil {
		return nil, errors.Wrap(err, "service client: create http client")
	}

	return &Client{
		base: strings.TrimRight(cfg.BaseURL, "/"),
		hc:   hc,
	}, nil
}

// clientOptions maps Config onto hertz options. Hertz dials with a 1s
// default unless told otherwise, so a zero Timeout is passed through
// explicitly; its dialer treats zero as unbounded.
func clientOptions(cfg Config) []config.ClientOption {
	return []config.ClientOption{
		client.WithRetryConfig(retry.WithMaxAttemptTimes(1)),
		client.WithDialTimeout(cfg.Timeout),
		client.WithClientReadTimeout(cfg.Timeout),
	}
}

// Command calls a command endpoint and decodes its CommandResult.
func (c *Client) Command(ctx context.Context, ep Endpoint) (CommandResult, error) {
	body, err := c.get(ctx, ep)
	if err != nil {
		return CommandResult{}, err
	}
	res, err := DecodeCommandResult(body)
	if err != nil {
		return CommandResult{}, errors.Wrapf(err, "GET %s", ep)
	}
	return res, nil
}

// Status fetches one status snapshot.
func (c *Client) Status(ctx context.Context) (status.Snapshot, error) {
	body, err := c.get(ctx, Status)
	if err != nil {
		return status.Snapshot{}, err
	}
	snap, err := DecodeSnapshot(body)
	if err != nil {
		return status.Snapshot{}, errors.Wrapf(err, "GET %s", Status)
	}
	return snap, nil
}

func (c *Client) get(ctx context.Context, ep Endpoint) ([]byte, error) {
	_, body, err := c.hc.Get(ctx, nil, c.base+string(ep))
	if err != nil {
		return nil, errors.Wrapf(err, "GET %s", ep)
	}
	return body, nil
}
