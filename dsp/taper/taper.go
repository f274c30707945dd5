package taper

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Cosine returns a half-cosine taper of length npts covering the fraction p
// of the window, split evenly between the two ends.
//
// The default used by the spectral estimator is p = 0.2, tapering 10% at
// each end. The taper equals zero at the outermost sample of each ramp and
// one across the flat middle. Very small windows or fractions can collapse
// the ramp indices onto each other; overlapping indices are pushed apart and
// the affected samples forced to zero so the ramps stay well defined.
func Cosine(npts int, p float64) ([]float64, error) {
	if npts <= 0 {
		return nil, fmt.Errorf("taper length must be > 0: %d", npts)
	}

	if p < 0 || p > 1 {
		return nil, fmt.Errorf("taper fraction must be in [0, 1]: %f", p)
	}

	var frac int
	if p == 0 || p == 1 {
		frac = int(float64(npts) * p / 2)
	} else {
		frac = int(float64(npts)*p/2 + 0.5)
	}

	idx1 := 0
	idx2 := frac - 1
	idx3 := npts - frac
	idx4 := npts - 1

	collapsedLeft := idx1 == idx2
	collapsedRight := idx3 == idx4

	if collapsedLeft {
		idx2++
	}

	if collapsedRight {
		idx3--
	}

	out := make([]float64, npts)

	for i := idx1; i <= idx2 && i < npts; i++ {
		out[i] = 0.5 * (1 - math.Cos(math.Pi*float64(i-idx1)/float64(idx2-idx1)))
	}

	for i := idx2 + 1; i < idx3; i++ {
		out[i] = 1
	}

	for i := idx3; i <= idx4 && i >= 0; i++ {
		out[i] = 0.5 * (1 + math.Cos(math.Pi*float64(idx3-i)/float64(idx4-idx3)))
	}

	if collapsedLeft {
		out[idx1] = 0
	}

	if collapsedRight && idx3 >= 0 {
		out[idx3] = 0
	}

	return out, nil
}

// Apply multiplies buf in place by a cosine taper of matching length.
func Apply(buf []float64, p float64) error {
	if len(buf) == 0 {
		return nil
	}

	coeffs, err := Cosine(len(buf), p)
	if err != nil {
		return err
	}

	vecmath.MulBlockInPlace(buf, coeffs)

	return nil
}

// ApplyCoefficients multiplies buf in place by precomputed taper weights.
func ApplyCoefficients(buf, coeffs []float64) error {
	if len(buf) != len(coeffs) {
		return fmt.Errorf("taper buf/coeffs length mismatch: %d != %d", len(buf), len(coeffs))
	}

	vecmath.MulBlockInPlace(buf, coeffs)

	return nil
}
