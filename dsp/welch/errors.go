package welch

import "errors"

// ErrDegenerateSegment is returned when a segment is too short or too
// sparsely sampled to yield a usable FFT size.
var ErrDegenerateSegment = errors.New("segment too short for spectral estimation")
