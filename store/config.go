package store

// Config holds store initialization parameters.
type Config struct {
	// Connection is an opaque descriptor for a future persistence backend.
	// The in-memory store keeps it but never connects to it.
	Connection string `json:"connection,omitempty" yaml:"connection,omitempty"`
}

// DefaultConfig returns the default store configuration.
func DefaultConfig() Config {
	return Config{}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Connection != "" {
		c.Connection = source.Connection
	}
}
