// Package config loads the runtime configuration from a YAML file over
// built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything the gridtown binary needs to wire up.
type Config struct {
	CityName      string `yaml:"city_name"`
	GridSize      int    `yaml:"grid_size"`
	StartingMoney int    `yaml:"starting_money"`
	Seed          int64  `yaml:"seed"`

	TickIntervalMs int `yaml:"tick_interval_ms"`
	APIPort        int `yaml:"api_port"`

	DataDir string `yaml:"data_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CityName:       "Gridtown",
		GridSize:       16,
		StartingMoney:  15000,
		Seed:           42,
		TickIntervalMs: 1000,
		APIPort:        8080,
		DataDir:        "data",
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("gridtown.yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("gridtown.yaml: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c *Config) Validate() error {
	if c.GridSize < 1 {
		return fmt.Errorf("grid_size must be positive, got %d", c.GridSize)
	}
	if c.StartingMoney < 0 {
		return fmt.Errorf("starting_money must not be negative, got %d", c.StartingMoney)
	}
	if c.TickIntervalMs < 1 {
		return fmt.Errorf("tick_interval_ms must be positive, got %d", c.TickIntervalMs)
	}
	if c.APIPort < 1 || c.APIPort > 65535 {
		return fmt.Errorf("api_port out of range: %d", c.APIPort)
	}
	return nil
}
