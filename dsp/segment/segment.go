package segment

// Windows splits x into overlapping windows of length n with noverlap
// samples shared between adjacent windows (step n - noverlap).
//
// The returned windows are zero-copy sub-slices of x and must be treated as
// read-only; detrending and tapering write into caller-provided buffers
// instead of mutating the views. Trailing samples that do not fill a whole
// window are dropped.
func Windows(x []float64, n, noverlap int) ([][]float64, error) {
	if noverlap >= n {
		return nil, errOverlapTooLarge(n, noverlap)
	}

	if n < 1 {
		return nil, errWindowTooSmall(n)
	}

	// Degenerate single-sample windows: every sample is its own window.
	if n == 1 && noverlap == 0 {
		out := make([][]float64, len(x))
		for i := range x {
			out[i] = x[i : i+1]
		}

		return out, nil
	}

	if n > len(x) {
		return nil, errWindowTooLong(n, len(x))
	}

	step := n - noverlap
	count := (len(x) - noverlap) / step

	out := make([][]float64, count)
	for i := range out {
		out[i] = x[i*step : i*step+n]
	}

	return out, nil
}
