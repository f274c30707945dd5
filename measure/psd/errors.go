package psd

import "errors"

// ErrConfiguration is returned by NewCalculator for invalid parameters.
// Unlike per-segment estimation errors, configuration errors are fatal.
var ErrConfiguration = errors.New("invalid psd configuration")
