// internal/config/load.go
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file. An empty path yields an empty Config,
// which Normalize fills with defaults.
// Load does not validate.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	return cfg, nil
}
