package observability

import "log/slog"

// Config selects the observer used by a component.
type Config struct {
	Observer string `json:"observer,omitempty" yaml:"observer,omitempty"`
}

// DefaultConfig returns the default observability configuration, which logs
// through slog.
func DefaultConfig() Config {
	return Config{Observer: "slog"}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Observer != "" {
		c.Observer = source.Observer
	}
}

// New resolves the configured observer. When the name is "slog" and logger
// is non-nil, the observer writes to logger instead of the registered
// default.
func New(cfg *Config, logger *slog.Logger) (Observer, error) {
	if cfg.Observer == "slog" && logger != nil {
		return NewSlogObserver(logger), nil
	}
	return GetObserver(cfg.Observer)
}
