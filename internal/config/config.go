// internal/config/config.go
package config

type Config struct {
	Panel PanelConfig `yaml:"panel"`
	Demo  DemoConfig  `yaml:"demo"`
}

// ---- PANEL ----

type PanelConfig struct {
	// Name identifies this panel in the mirror block and in alerts.
	Name     string        `yaml:"name"`
	LogLevel string        `yaml:"log_level"`
	Service  ServiceConfig `yaml:"service"`
	Poll     PollConfig    `yaml:"poll"`

	// Optional sinks
	Mirror *MirrorConfig `yaml:"mirror"`
	Alert  *AlertConfig  `yaml:"alert"`
}

// ---- SERVICE ----

type ServiceConfig struct {
	BaseURL   string `yaml:"base_url"`
	TimeoutMs int    `yaml:"timeout_ms"` // 0 = no timeout
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`
}

// ---- MIRROR (Modbus status block, opt-in) ----

type MirrorConfig struct {
	Endpoint  string `yaml:"endpoint"`
	UnitID    uint8  `yaml:"unit_id"`
	BaseSlot  uint16 `yaml:"base_slot"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- ALERT (Telegram, opt-in) ----

type AlertConfig struct {
	TelegramToken string `yaml:"telegram_token"`
	ChatID        int64  `yaml:"chat_id"`
}

// ---- DEMO SERVICE ----

type DemoConfig struct {
	Listen   string `yaml:"listen"`
	LogLevel string `yaml:"log_level"`
}
