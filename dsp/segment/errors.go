package segment

import (
	"errors"
	"fmt"
)

// ErrInvalidWindow reports geometrically invalid windowing parameters.
var ErrInvalidWindow = errors.New("invalid window parameters")

func errOverlapTooLarge(n, noverlap int) error {
	return fmt.Errorf("%w: noverlap (%d) must be less than window length (%d)", ErrInvalidWindow, noverlap, n)
}

func errWindowTooSmall(n int) error {
	return fmt.Errorf("%w: window length must be >= 1: %d", ErrInvalidWindow, n)
}

func errWindowTooLong(n, size int) error {
	return fmt.Errorf("%w: window length (%d) exceeds input length (%d)", ErrInvalidWindow, n, size)
}

func errLengthMismatch(dst, src int) error {
	return fmt.Errorf("%w: detrend dst/src length mismatch: %d != %d", ErrInvalidWindow, dst, src)
}

func errUnknownDetrend(mode int) error {
	return fmt.Errorf("%w: unknown detrend mode: %d", ErrInvalidWindow, mode)
}
