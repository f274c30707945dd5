package signal

import (
	"fmt"
	"math"
	"math/rand"
)

// Generator creates deterministic test signals from a shared configuration.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSampleRate sets the sampling rate in Hz.
func WithSampleRate(fs float64) Option {
	return func(g *Generator) {
		g.sampleRate = fs
	}
}

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator. The default is a
// 100 Hz sampling rate with seed 1.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		sampleRate: 100,
		seed:       1,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// SampleRate returns the generator sampling rate in Hz.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if g.sampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", g.sampleRate)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Ricker generates a Ricker wavelet with the given peak frequency, centered
// in the output window. It approximates an impulsive seismic arrival.
func (g *Generator) Ricker(peakFreqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("ricker samples must be > 0: %d", samples)
	}
	if g.sampleRate <= 0 {
		return nil, fmt.Errorf("ricker sample rate must be > 0: %f", g.sampleRate)
	}
	if peakFreqHz <= 0 {
		return nil, fmt.Errorf("ricker peak frequency must be > 0: %f", peakFreqHz)
	}
	out := make([]float64, samples)
	center := float64(samples-1) / 2 / g.sampleRate
	for i := range out {
		t := float64(i)/g.sampleRate - center
		a := math.Pi * math.Pi * peakFreqHz * peakFreqHz * t * t
		out[i] = amplitude * (1 - 2*a) * math.Exp(-a)
	}
	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
