package response

import (
	"fmt"
	"math"
	"time"

	"github.com/seisqc/algo-seis/seis"
)

// PolesZeros is a Provider backed by a single poles-and-zeros response
// description applied to every channel it is asked about.
//
// The response at frequency f is evaluated on the imaginary axis,
// s = i*2*pi*f:
//
//	H(s) = Norm * Gain * prod(s - zeros) / prod(s - poles)
type PolesZeros struct {
	Poles []complex128
	Zeros []complex128
	// Gain is the overall stage gain (counts per ground motion unit).
	Gain float64
	// Norm is the A0 normalization factor. Zero means 1.
	Norm float64
	// Sens is the overall sensitivity reported for ring-laser handling.
	// Zero means Gain is used.
	Sens float64
}

// Response implements Provider. The description is time-invariant, so the
// epoch is ignored.
func (p PolesZeros) Response(_ seis.Channel, _ time.Time, freqs []float64) ([]complex128, error) {
	norm := p.Norm
	if norm == 0 {
		norm = 1
	}

	scale := complex(norm*p.Gain, 0)

	out := make([]complex128, len(freqs))
	for i, f := range freqs {
		s := complex(0, 2*math.Pi*f)

		h := scale
		for _, z := range p.Zeros {
			h *= s - z
		}

		for _, pole := range p.Poles {
			d := s - pole
			if d == 0 {
				return nil, fmt.Errorf("response evaluated exactly on pole at %g Hz", f)
			}

			h /= d
		}

		out[i] = h
	}

	return out, nil
}

// Sensitivity implements SensitivityProvider.
func (p PolesZeros) Sensitivity(_ seis.Channel, _ time.Time) (float64, error) {
	if p.Sens != 0 {
		return p.Sens, nil
	}

	if p.Gain != 0 {
		return p.Gain, nil
	}

	return 0, fmt.Errorf("poles-zeros response has no sensitivity")
}

// Flat is a Provider with a constant real response, for data that is already
// corrected up to a scalar gain.
type Flat struct {
	Gain float64
}

// Response implements Provider.
func (p Flat) Response(_ seis.Channel, _ time.Time, freqs []float64) ([]complex128, error) {
	if p.Gain == 0 {
		return nil, fmt.Errorf("flat response gain must be nonzero")
	}

	out := make([]complex128, len(freqs))
	for i := range out {
		out[i] = complex(p.Gain, 0)
	}

	return out, nil
}

// Sensitivity implements SensitivityProvider.
func (p Flat) Sensitivity(_ seis.Channel, _ time.Time) (float64, error) {
	if p.Gain == 0 {
		return 0, fmt.Errorf("flat response gain must be nonzero")
	}

	return p.Gain, nil
}
