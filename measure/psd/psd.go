package psd

import (
	"fmt"
	"math"

	"github.com/seisqc/algo-seis/dsp/segment"
	"github.com/seisqc/algo-seis/dsp/smooth"
	"github.com/seisqc/algo-seis/dsp/welch"
	"github.com/seisqc/algo-seis/response"
	"github.com/seisqc/algo-seis/seis"
)

const (
	defaultSmoothingWidthOctaves = 1.0
	defaultPeriodStepOctaves     = 0.125
	defaultTaperFraction         = 0.2
)

// defaultPeriods is the single period used for amplitude anomaly features.
var defaultPeriods = []float64{5.0}

// Config holds PSD computation parameters.
type Config struct {
	// Provider resolves instrument responses. Required.
	Provider response.Provider

	// Periods are the target periods in seconds at which the smoothed dB
	// spectrum is evaluated. Must be strictly ascending and positive.
	// Nil means the default single period of 5 s.
	Periods []float64

	// SmoothAllPeriods selects global ladder smoothing with interpolation
	// instead of one independent octave band per target period.
	SmoothAllPeriods bool

	// SmoothingWidthOctaves is the smoothing band width. Zero means 1.
	SmoothingWidthOctaves float64

	// PeriodStepOctaves is the ladder step for global smoothing.
	// Zero means 1/8.
	PeriodStepOctaves float64

	// SpecialHandling selects the response removal variant.
	SpecialHandling response.SpecialHandling

	// TaperFraction is the cosine taper fraction per window.
	// Zero means 0.2.
	TaperFraction float64
}

// Calculator computes smoothed power spectral densities of waveform
// segments. Safe for concurrent use.
type Calculator struct {
	cfg      Config
	deconv   response.Deconvolver
	smoother smooth.Smoother
}

// NewCalculator validates cfg and creates a calculator. Configuration
// problems are fatal and reported as ErrConfiguration.
func NewCalculator(cfg Config) (*Calculator, error) {
	if cfg.Provider == nil {
		return nil, fmt.Errorf("%w: response provider is required", ErrConfiguration)
	}

	if !cfg.SpecialHandling.Valid() {
		return nil, fmt.Errorf("%w: unknown special handling %d", ErrConfiguration, int(cfg.SpecialHandling))
	}

	if cfg.Periods == nil {
		cfg.Periods = defaultPeriods
	}

	for i, p := range cfg.Periods {
		if !(p > 0) || math.IsInf(p, 1) {
			return nil, fmt.Errorf("%w: period %g must be positive and finite", ErrConfiguration, p)
		}

		if i > 0 && !(p > cfg.Periods[i-1]) {
			return nil, fmt.Errorf("%w: periods must be strictly ascending: %g followed by %g",
				ErrConfiguration, cfg.Periods[i-1], p)
		}
	}

	if cfg.SmoothingWidthOctaves == 0 {
		cfg.SmoothingWidthOctaves = defaultSmoothingWidthOctaves
	}

	if cfg.PeriodStepOctaves == 0 {
		cfg.PeriodStepOctaves = defaultPeriodStepOctaves
	}

	if cfg.SmoothingWidthOctaves < 0 || cfg.PeriodStepOctaves < 0 {
		return nil, fmt.Errorf("%w: octave widths must be positive", ErrConfiguration)
	}

	if cfg.TaperFraction == 0 {
		cfg.TaperFraction = defaultTaperFraction
	}

	if cfg.TaperFraction < 0 || cfg.TaperFraction > 1 {
		return nil, fmt.Errorf("%w: taper fraction %g outside [0, 1]", ErrConfiguration, cfg.TaperFraction)
	}

	var smoother smooth.Smoother
	if cfg.SmoothAllPeriods {
		smoother = smooth.GlobalInterp{
			WidthOctaves: cfg.SmoothingWidthOctaves,
			StepOctaves:  cfg.PeriodStepOctaves,
		}
	} else {
		smoother = smooth.NearTarget{WidthOctaves: cfg.SmoothingWidthOctaves}
	}

	return &Calculator{
		cfg: cfg,
		deconv: response.Deconvolver{
			Provider: cfg.Provider,
			Handling: cfg.SpecialHandling,
		},
		smoother: smoother,
	}, nil
}

// Compute is a one-shot PSD evaluation of a single segment.
func Compute(seg seis.Segment, cfg Config) ([]float64, error) {
	c, err := NewCalculator(cfg)
	if err != nil {
		return nil, err
	}

	return c.Trace(seg)
}

// Trace computes the smoothed, response-corrected dB spectrum of seg,
// evaluated at the configured target periods.
//
// The returned slice has one value per configured period; targets the
// spectrum cannot resolve are NaN.
func (c *Calculator) Trace(seg seis.Segment) ([]float64, error) {
	spec, periods, err := c.Raw(seg)
	if err != nil {
		return nil, err
	}

	return c.smoother.Smooth(periods, spec, c.cfg.Periods)
}

// Raw computes the full response-corrected dB spectrum of seg without
// smoothing. The spectrum and its period axis are both period-ascending.
func (c *Calculator) Raw(seg seis.Segment) (spec, periods []float64, err error) {
	nfft, err := welch.SegmentFFTSize(seg.Duration(), seg.SampleRate)
	if err != nil {
		return nil, nil, err
	}

	wcfg := welch.DefaultConfig(seg.SampleRate, nfft)
	wcfg.TaperFraction = c.cfg.TaperFraction
	wcfg.Detrend = segment.DetrendLinear

	power, freqs, err := welch.Estimate(seg.Samples(), wcfg)
	if err != nil {
		return nil, nil, err
	}

	periods, err = c.deconv.Apply(seg.Channel, seg.Start, power, freqs)
	if err != nil {
		return nil, nil, err
	}

	return power, periods, nil
}

// Periods returns the target periods the calculator evaluates, in ascending
// order.
func (c *Calculator) Periods() []float64 {
	out := make([]float64, len(c.cfg.Periods))
	copy(out, c.cfg.Periods)

	return out
}
