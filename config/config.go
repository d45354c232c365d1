// Package config aggregates subsystem configuration for the recordstore CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailored-agentic-units/recordstore/batch"
	"github.com/tailored-agentic-units/recordstore/observability"
	"github.com/tailored-agentic-units/recordstore/store"
	"gopkg.in/yaml.v3"
)

// Config holds initialization parameters for every subsystem. Each section
// is consumed by that subsystem's constructor.
type Config struct {
	Store         store.Config         `json:"store" yaml:"store"`
	Batch         batch.Config         `json:"batch" yaml:"batch"`
	Observability observability.Config `json:"observability" yaml:"observability"`
}

// DefaultConfig returns a Config populated with each subsystem's defaults.
func DefaultConfig() Config {
	return Config{
		Store:         store.DefaultConfig(),
		Batch:         batch.DefaultConfig(),
		Observability: observability.DefaultConfig(),
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	c.Store.Merge(&source.Store)
	c.Batch.Merge(&source.Batch)
	c.Observability.Merge(&source.Observability)
}

// Validate checks the merged configuration before any subsystem uses it.
func (c *Config) Validate() error {
	if err := c.Batch.Validate(); err != nil {
		return fmt.Errorf("invalid batch config: %w", err)
	}
	return nil
}

// LoadConfig reads a JSON or YAML config file, chosen by extension, and
// merges it over the defaults.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	unmarshal, err := decoderFor(filename)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}

func decoderFor(filename string) (func([]byte, any) error, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return json.Unmarshal, nil
	case ".yaml", ".yml":
		return yaml.Unmarshal, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
}
