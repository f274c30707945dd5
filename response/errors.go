package response

import "errors"

// ErrResponseLookup is returned when the instrument response or sensitivity
// of a channel cannot be resolved.
var ErrResponseLookup = errors.New("response lookup failed")
