package batch

import "errors"

// ErrInvalidArgument is returned when a batch size is not positive.
var ErrInvalidArgument = errors.New("invalid argument")
