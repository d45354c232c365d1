package config

import "errors"

// ErrUnsupportedFormat is returned by LoadConfig for file extensions other
// than .json, .yaml and .yml.
var ErrUnsupportedFormat = errors.New("unsupported config format")
