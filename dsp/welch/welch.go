package welch

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/seisqc/algo-seis/dsp/segment"
	"github.com/seisqc/algo-seis/dsp/taper"
)

// Scaling selects how the averaged power is normalized.
type Scaling int

const (
	// ScalingDensity divides by sample rate and the summed squared taper
	// weights, yielding a power spectral density in units of 1/Hz.
	ScalingDensity Scaling = iota
	// ScalingSpectrum divides by the squared summed taper weights,
	// preserving power per segment instead of density.
	ScalingSpectrum
)

// Sides selects one- or two-sided output.
type Sides int

const (
	// OneSided keeps bins from above DC up to Nyquist, doubling interior
	// bins to conserve total power. The zero-frequency bin is discarded.
	OneSided Sides = iota
	// TwoSided returns the full spectrum with frequencies centered on zero.
	TwoSided
)

// Config holds Welch estimation parameters.
type Config struct {
	SampleRate    float64
	FFTSize       int
	Overlap       int
	Detrend       segment.DetrendMode
	TaperFraction float64
	Scaling       Scaling
	Sides         Sides
}

// DefaultConfig returns the estimator configuration used for feature
// extraction: linear detrending, 20% cosine taper, one-sided density.
func DefaultConfig(sampleRate float64, fftSize int) Config {
	return Config{
		SampleRate:    sampleRate,
		FFTSize:       fftSize,
		Overlap:       Overlap75(fftSize),
		Detrend:       segment.DetrendLinear,
		TaperFraction: 0.2,
	}
}

// SegmentFFTSize derives the FFT size from segment duration and sampling
// rate: the total sample count is divided by four (emulating 13 windows at
// 75% overlap) and truncated to the next lower power of two.
func SegmentFFTSize(durationSec, sampleRate float64) (int, error) {
	v := durationSec * sampleRate / 4
	if !(v >= 1) {
		return 0, fmt.Errorf("%w: %g s at %g Hz", ErrDegenerateSegment, durationSec, sampleRate)
	}

	return 1 << int(math.Floor(math.Log2(v))), nil
}

// Overlap75 returns the 75% overlap sample count for an FFT size.
func Overlap75(fftSize int) int {
	return int(0.75 * float64(fftSize))
}

// Estimate computes the averaged Welch periodogram of x and its frequency
// axis.
//
// Each window of cfg.FFTSize samples (stepping by FFTSize-Overlap) is
// detrended, tapered, and transformed; squared magnitudes are averaged
// across windows. Inputs shorter than the FFT size are zero padded to one
// full window. In one-sided mode the zero-frequency bin is discarded and
// frequencies run from the first positive bin to Nyquist; in two-sided mode
// the full spectrum is returned with frequencies ascending from -Nyquist.
func Estimate(x []float64, cfg Config) (power, freqs []float64, err error) {
	nfft := cfg.FFTSize
	if nfft <= 0 {
		return nil, nil, fmt.Errorf("%w: fft size %d", ErrDegenerateSegment, nfft)
	}

	if cfg.SampleRate <= 0 {
		return nil, nil, fmt.Errorf("welch: sample rate must be > 0: %f", cfg.SampleRate)
	}

	if len(x) < nfft {
		padded := make([]float64, nfft)
		copy(padded, x)
		x = padded
	}

	windows, err := segment.Windows(x, nfft, cfg.Overlap)
	if err != nil {
		return nil, nil, err
	}

	coeffs, err := taper.Cosine(nfft, cfg.TaperFraction)
	if err != nil {
		return nil, nil, err
	}

	numFreqs := nfft/2 + 1
	if nfft%2 != 0 {
		numFreqs = (nfft + 1) / 2
	}

	if cfg.Sides == TwoSided {
		numFreqs = nfft
	}

	plan, err := algofft.NewPlan64(nfft)
	if err != nil {
		return nil, nil, fmt.Errorf("welch: failed to create FFT plan: %w", err)
	}

	buf := make([]float64, nfft)
	in := make([]complex128, nfft)
	out := make([]complex128, nfft)
	acc := make([]float64, numFreqs)

	for _, win := range windows {
		if err := segment.Detrend(buf, win, cfg.Detrend); err != nil {
			return nil, nil, err
		}

		if err := taper.ApplyCoefficients(buf, coeffs); err != nil {
			return nil, nil, err
		}

		for i, v := range buf {
			in[i] = complex(v, 0)
		}

		if err := plan.Forward(out, in); err != nil {
			return nil, nil, fmt.Errorf("welch: forward FFT: %w", err)
		}

		for i := 0; i < numFreqs; i++ {
			re := real(out[i])
			im := imag(out[i])
			acc[i] += re*re + im*im
		}
	}

	invCount := 1 / float64(len(windows))
	for i := range acc {
		acc[i] *= invCount
	}

	scale(acc, coeffs, cfg, nfft)

	if cfg.Sides == TwoSided {
		freqs = fftFreqs(nfft, cfg.SampleRate)
		center := rollCenter(nfft)
		roll(acc, center)
		roll(freqs, center)

		return acc, freqs, nil
	}

	freqs = make([]float64, numFreqs)
	for i := range freqs {
		freqs[i] = float64(i) * cfg.SampleRate / float64(nfft)
	}

	// Discard the DC bin: the pipeline works with periods, and 0 Hz has none.
	return acc[1:], freqs[1:], nil
}

// scale applies one-sided doubling and the configured normalization.
func scale(acc, coeffs []float64, cfg Config, nfft int) {
	if cfg.Sides == OneSided {
		// Double everything except DC and, for even sizes, Nyquist.
		hi := len(acc)
		if nfft%2 == 0 {
			hi--
		}

		for i := 1; i < hi; i++ {
			acc[i] *= 2
		}
	}

	switch cfg.Scaling {
	case ScalingSpectrum:
		sum := 0.0
		for _, c := range coeffs {
			sum += c
		}

		norm := sum * sum
		if norm > 0 {
			for i := range acc {
				acc[i] /= norm
			}
		}
	default:
		sumSq := 0.0
		for _, c := range coeffs {
			sumSq += c * c
		}

		norm := cfg.SampleRate * sumSq
		if norm > 0 {
			for i := range acc {
				acc[i] /= norm
			}
		}
	}
}

func fftFreqs(nfft int, fs float64) []float64 {
	out := make([]float64, nfft)
	step := fs / float64(nfft)

	half := (nfft + 1) / 2
	for i := 0; i < half; i++ {
		out[i] = float64(i) * step
	}

	for i := half; i < nfft; i++ {
		out[i] = float64(i-nfft) * step
	}

	return out
}

func rollCenter(nfft int) int {
	if nfft%2 != 0 {
		return (nfft-1)/2 + 1
	}

	return nfft / 2
}

// roll rotates x left by k positions.
func roll(x []float64, k int) {
	n := len(x)
	if n == 0 {
		return
	}

	k %= n
	if k == 0 {
		return
	}

	tmp := make([]float64, k)
	copy(tmp, x[:k])
	copy(x, x[k:])
	copy(x[n-k:], tmp)
}
