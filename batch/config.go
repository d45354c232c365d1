package batch

import "fmt"

// Config holds batching parameters.
type Config struct {
	Size int `json:"size,omitempty" yaml:"size,omitempty"`
}

// DefaultConfig returns the default batch configuration.
func DefaultConfig() Config {
	return Config{Size: DefaultSize}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Size != 0 {
		c.Size = source.Size
	}
}

// Validate reports whether c describes a usable batch size.
func (c *Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: batch size must be positive, got %d", ErrInvalidArgument, c.Size)
	}
	return nil
}
