package testutil

import (
	"math"
	"math/rand"
	"time"

	"github.com/seisqc/algo-seis/seis"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// TestChannel is the channel code used for synthetic segments.
var TestChannel = seis.Channel{
	Network:  "XX",
	Station:  "TST",
	Location: "",
	Channel:  "HHZ",
}

// MakeSegment wraps samples in a segment with a consistent time span for the
// given sampling rate, starting at a fixed epoch.
func MakeSegment(data []float64, sampleRate float64) seis.Segment {
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	dur := time.Duration(float64(len(data)) / sampleRate * float64(time.Second))
	return seis.Segment{
		Data:       data,
		SampleRate: sampleRate,
		Start:      start,
		End:        start.Add(dur),
		Channel:    TestChannel,
	}
}
