package segment

// DetrendMode selects the trend removal applied to each window before
// tapering and transforming.
type DetrendMode int

const (
	DetrendNone DetrendMode = iota
	DetrendMean
	DetrendLinear
)

// Detrend writes src with its trend removed into dst.
//
// DetrendMean subtracts the window mean. DetrendLinear subtracts the
// ordinary least-squares line fitted against the sample index; the slope is
// obtained from the covariance of index and value rather than a full
// regression solve. dst and src must have equal length; dst may alias src.
func Detrend(dst, src []float64, mode DetrendMode) error {
	if len(dst) != len(src) {
		return errLengthMismatch(len(dst), len(src))
	}

	switch mode {
	case DetrendNone:
		copy(dst, src)
	case DetrendMean:
		detrendMean(dst, src)
	case DetrendLinear:
		detrendLinear(dst, src)
	default:
		return errUnknownDetrend(int(mode))
	}

	return nil
}

func detrendMean(dst, src []float64) {
	mean := 0.0
	for _, v := range src {
		mean += v
	}

	mean /= float64(len(src))
	for i, v := range src {
		dst[i] = v - mean
	}
}

func detrendLinear(dst, src []float64) {
	n := len(src)
	if n < 2 {
		for i := range dst {
			dst[i] = 0
		}

		return
	}

	// Index axis mean and variance have closed forms for 0..n-1.
	meanX := float64(n-1) / 2

	meanY := 0.0
	for _, v := range src {
		meanY += v
	}
	meanY /= float64(n)

	covXY := 0.0
	varX := 0.0

	for i, v := range src {
		dx := float64(i) - meanX
		covXY += dx * (v - meanY)
		varX += dx * dx
	}

	b := covXY / varX
	a := meanY - b*meanX

	for i, v := range src {
		dst[i] = v - (b*float64(i) + a)
	}
}
