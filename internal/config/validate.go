// internal/config/validate.go
package config

import (
	"fmt"
	"net"
	"net/url"

	log "github.com/sirupsen/logrus"

	"github.com/tamzrod/loadpanel/internal/status"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
// Zero values are allowed where Normalize supplies a default.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	p := cfg.Panel

	// ------------------------------------------------------------
	// SERVICE
	// ------------------------------------------------------------

	if p.Service.BaseURL != "" {
		u, err := url.Parse(p.Service.BaseURL)
		if err != nil {
			return fmt.Errorf("panel.service.base_url: %v", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("panel.service.base_url: scheme must be http or https, got %q", u.Scheme)
		}
		if u.Host == "" {
			return fmt.Errorf("panel.service.base_url: host required")
		}
	}

	if p.Service.TimeoutMs < 0 {
		return fmt.Errorf("panel.service.timeout_ms must be >= 0")
	}
	if p.Poll.IntervalMs < 0 {
		return fmt.Errorf("panel.poll.interval_ms must be >= 0")
	}

	if err := validateLogLevel("panel.log_level", p.LogLevel); err != nil {
		return err
	}

	// name sanity (ASCII only)
	for i := 0; i < len(p.Name); i++ {
		if p.Name[i] > 0x7F {
			return fmt.Errorf("panel.name must contain ASCII characters only")
		}
	}

	// ------------------------------------------------------------
	// MIRROR (OPT-IN)
	// ------------------------------------------------------------

	if m := p.Mirror; m != nil {
		if m.Endpoint == "" {
			return fmt.Errorf("panel.mirror: endpoint required")
		}
		if _, _, err := net.SplitHostPort(m.Endpoint); err != nil {
			return fmt.Errorf("panel.mirror.endpoint: %v", err)
		}
		if m.TimeoutMs < 0 {
			return fmt.Errorf("panel.mirror.timeout_ms must be >= 0")
		}

		// the whole block must be addressable
		last := uint32(m.BaseSlot)*status.SlotsPerPanel + status.SlotsPerPanel - 1
		if last > 0xFFFF {
			return fmt.Errorf(
				"panel.mirror.base_slot %d out of range: block ends at register %d",
				m.BaseSlot,
				last,
			)
		}
	}

	// ------------------------------------------------------------
	// ALERT (OPT-IN)
	// ------------------------------------------------------------

	if a := p.Alert; a != nil {
		if a.TelegramToken == "" {
			return fmt.Errorf("panel.alert: telegram_token required")
		}
		if a.ChatID == 0 {
			return fmt.Errorf("panel.alert: chat_id required")
		}
	}

	// ------------------------------------------------------------
	// DEMO
	// ------------------------------------------------------------

	if cfg.Demo.Listen != "" {
		if _, _, err := net.SplitHostPort(cfg.Demo.Listen); err != nil {
			return fmt.Errorf("demo.listen: %v", err)
		}
	}

	return validateLogLevel("demo.log_level", cfg.Demo.LogLevel)
}

func validateLogLevel(field, level string) error {
	if level == "" {
		return nil
	}
	if _, err := log.ParseLevel(level); err != nil {
		return fmt.Errorf("%s: %v", field, err)
	}
	return nil
}
