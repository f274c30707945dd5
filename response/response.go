package response

import (
	"fmt"
	"math"
	"time"

	"github.com/cwbudde/algo-vecmath"

	"github.com/seisqc/algo-seis/dsp/spectrum"
	"github.com/seisqc/algo-seis/seis"
)

// Provider resolves instrument responses from channel metadata.
type Provider interface {
	// Response returns the complex frequency response of the channel
	// valid at the given instant, evaluated at the given frequencies in
	// Hz. The result has one entry per frequency. Station metadata is
	// epoch-dependent, so the segment start time selects the epoch.
	Response(ch seis.Channel, at time.Time, freqs []float64) ([]complex128, error)
}

// SensitivityProvider is implemented by providers that can resolve the
// overall scalar sensitivity of a channel. Ring-laser data is corrected with
// the sensitivity alone instead of the full frequency response.
type SensitivityProvider interface {
	Sensitivity(ch seis.Channel, at time.Time) (float64, error)
}

// SpecialHandling selects the response removal variant for non-standard
// instruments.
type SpecialHandling int

const (
	// HandlingNormal removes the full response and differentiates, so
	// displacement and velocity inputs both end up as acceleration power.
	HandlingNormal SpecialHandling = iota
	// HandlingHydrophone removes the full response without differentiation.
	HandlingHydrophone
	// HandlingRingLaser divides by the squared overall sensitivity only.
	HandlingRingLaser
)

func (h SpecialHandling) String() string {
	switch h {
	case HandlingNormal:
		return "normal"
	case HandlingHydrophone:
		return "hydrophone"
	case HandlingRingLaser:
		return "ringlaser"
	default:
		return fmt.Sprintf("SpecialHandling(%d)", int(h))
	}
}

// Valid reports whether h is one of the defined handling modes.
func (h SpecialHandling) Valid() bool {
	switch h {
	case HandlingNormal, HandlingHydrophone, HandlingRingLaser:
		return true
	}

	return false
}

// Deconvolver removes instrument responses from power spectra.
type Deconvolver struct {
	Provider Provider
	Handling SpecialHandling
}

// Apply removes the channel's instrument response from spec in place and
// converts it to decibels.
//
// spec and freqs must be frequency-ascending with the zero-frequency bin
// already discarded. On return spec is period-ascending and the matching
// ascending period axis is returned. Power values are floored to the
// smallest positive normalized float64 before the dB step.
func (d Deconvolver) Apply(ch seis.Channel, at time.Time, spec, freqs []float64) ([]float64, error) {
	if len(spec) != len(freqs) {
		return nil, fmt.Errorf("response: spectrum/frequency length mismatch: %d != %d", len(spec), len(freqs))
	}

	periods := make([]float64, len(freqs))
	for i, f := range freqs {
		periods[len(periods)-1-i] = 1 / f
	}

	spectrum.Reverse(spec)

	switch d.Handling {
	case HandlingRingLaser:
		sp, ok := d.Provider.(SensitivityProvider)
		if !ok {
			return nil, fmt.Errorf("%w: provider cannot resolve sensitivity for %s", ErrResponseLookup, ch)
		}

		sens, err := sp.Sensitivity(ch, at)
		if err != nil {
			return nil, fmt.Errorf("%w: sensitivity for %s: %v", ErrResponseLookup, ch, err)
		}

		inv := 1 / (sens * sens)
		vecmath.ScaleBlock(spec, spec, inv)
	case HandlingNormal, HandlingHydrophone:
		resp, err := d.Provider.Response(ch, at, freqs)
		if err != nil {
			return nil, fmt.Errorf("%w: response for %s: %v", ErrResponseLookup, ch, err)
		}

		if len(resp) != len(freqs) {
			return nil, fmt.Errorf("%w: provider returned %d bins for %d frequencies", ErrResponseLookup, len(resp), len(freqs))
		}

		respAmp := spectrum.Power(resp)
		spectrum.Reverse(respAmp)

		if d.Handling == HandlingNormal {
			// Differentiate in the frequency domain: multiply by omega^2.
			for i, p := range periods {
				w := 2 * math.Pi / p
				spec[i] *= w * w
			}
		}

		for i := range spec {
			spec[i] /= respAmp[i]
		}
	default:
		return nil, fmt.Errorf("response: unknown special handling %d", int(d.Handling))
	}

	spectrum.ToDB(spec)

	return periods, nil
}
