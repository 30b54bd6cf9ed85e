// internal/config/normalize.go
package config

import (
	"strings"

	"github.com/tamzrod/loadpanel/internal/status"
)

// Defaults applied by Normalize.
const (
	DefaultBaseURL         = "http://127.0.0.1:5000"
	DefaultPollIntervalMs  = 2000
	DefaultLogLevel        = "info"
	DefaultMirrorTimeoutMs = 1000
	DefaultDemoListen      = "0.0.0.0:5000"
	DefaultPanelName       = "loadpanel"
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	p := &cfg.Panel

	if p.Service.BaseURL == "" {
		p.Service.BaseURL = DefaultBaseURL
	}
	p.Service.BaseURL = strings.TrimRight(p.Service.BaseURL, "/")

	if p.Poll.IntervalMs == 0 {
		p.Poll.IntervalMs = DefaultPollIntervalMs
	}
	if p.LogLevel == "" {
		p.LogLevel = DefaultLogLevel
	}

	// ASCII already validated; truncate to what the mirror block can hold.
	if p.Name == "" {
		p.Name = DefaultPanelName
	}
	if len(p.Name) > status.PanelNameMaxChars {
		p.Name = p.Name[:status.PanelNameMaxChars]
	}

	if p.Mirror != nil && p.Mirror.TimeoutMs == 0 {
		p.Mirror.TimeoutMs = DefaultMirrorTimeoutMs
	}

	if cfg.Demo.Listen == "" {
		cfg.Demo.Listen = DefaultDemoListen
	}
	if cfg.Demo.LogLevel == "" {
		cfg.Demo.LogLevel = DefaultLogLevel
	}
}
