package main

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Config holds optional defaults loaded from a TOML file via --config.
type Config struct {
	// Capacity is the default address-space size for commands that build a
	// tracker without a plan (demo).
	Capacity uint64 `toml:"capacity"`

	// Color enables colored layout bars unless --no-color overrides it.
	Color bool `toml:"color"`

	// Verbose mirrors the --verbose flag.
	Verbose bool `toml:"verbose"`
}

func defaultConfig() Config {
	return Config{Capacity: 64}
}

// loadConfig reads the TOML config at path, or returns defaults when path is
// empty.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if cfg.Capacity == 0 {
		return cfg, errors.Errorf("config %s: capacity must be non-zero", path)
	}
	return cfg, nil
}
