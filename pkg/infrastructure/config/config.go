package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/rackline/stockboard/pkg/domain/entities"
)

// Config holds the static deployment configuration: rack shapes, the
// per-cell constants and the listen address. It is consumed once at
// startup; nothing re-derives it at runtime.
type Config struct {
	ListenAddr         string         `mapstructure:"listen_addr"`
	FixedRows          int            `mapstructure:"fixed_rows"`
	CellCapacity       int            `mapstructure:"cell_capacity"`
	PackagingWeightKG  float64        `mapstructure:"packaging_weight_kg"`
	RackSpaces         map[string]int `mapstructure:"rack_spaces"`
}

// Load reads configuration from an optional YAML file and
// STOCKBOARD_* environment variables, on top of the shop-floor
// defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("fixed_rows", 3)
	v.SetDefault("cell_capacity", 25)
	v.SetDefault("packaging_weight_kg", 25.0)

	v.SetEnvPrefix("STOCKBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	// Viper merges nested map defaults key by key, which would mix
	// default racks into a file-configured rack set. Fall back in
	// code instead so a configured set replaces the default wholesale.
	if len(cfg.RackSpaces) == 0 {
		cfg.RackSpaces = map[string]int{
			"A": 9, "B": 15, "C": 12, "D": 6, "E": 24, "F": 57,
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration invariants
func (c *Config) Validate() error {
	if c.FixedRows < 1 {
		return fmt.Errorf("fixed_rows must be positive, got %d", c.FixedRows)
	}
	if c.CellCapacity < 1 {
		return fmt.Errorf("cell_capacity must be positive, got %d", c.CellCapacity)
	}
	if c.PackagingWeightKG < 0 {
		return fmt.Errorf("packaging_weight_kg cannot be negative, got %f", c.PackagingWeightKG)
	}
	if len(c.RackSpaces) == 0 {
		return fmt.Errorf("at least one rack must be configured")
	}
	for id, spaces := range c.RackSpaces {
		if spaces < 1 {
			return fmt.Errorf("rack %s: spaces must be positive, got %d", id, spaces)
		}
	}
	return nil
}

// RackIDs returns the configured rack spaces keyed by RackID
func (c *Config) RackIDs() map[entities.RackID]int {
	spaces := make(map[entities.RackID]int, len(c.RackSpaces))
	for id, n := range c.RackSpaces {
		spaces[entities.RackID(id)] = n
	}
	return spaces
}
