package seis

import "time"

// Channel identifies a recording channel by its SEED codes.
type Channel struct {
	Network  string
	Station  string
	Location string
	Channel  string
}

// String returns the dotted SEED identifier, e.g. "GE.APE..BHZ".
func (c Channel) String() string {
	return c.Network + "." + c.Station + "." + c.Location + "." + c.Channel
}

// Segment is a uniformly sampled, real-valued waveform segment.
//
// Data holds the amplitude samples in recording order. Mask, when non-nil,
// flags invalid samples (true = invalid); invalid samples are replaced with
// zero amplitude before spectral estimation so that sample count and FFT
// sizing are preserved. Start and End bound the recorded interval and
// determine the segment duration. A Segment is a value type owned by the
// caller; the library never retains references to it.
type Segment struct {
	Data       []float64
	Mask       []bool
	SampleRate float64
	Start      time.Time
	End        time.Time
	Channel    Channel
}

// Duration returns the segment length in seconds.
func (s Segment) Duration() float64 {
	return s.End.Sub(s.Start).Seconds()
}

// Samples returns the amplitude series with masked samples zero-filled.
// When no mask is present (or no sample is masked) the original Data slice
// is returned without copying.
func (s Segment) Samples() []float64 {
	if len(s.Mask) != len(s.Data) {
		return s.Data
	}

	masked := false
	for _, m := range s.Mask {
		if m {
			masked = true
			break
		}
	}

	if !masked {
		return s.Data
	}

	out := make([]float64, len(s.Data))
	copy(out, s.Data)
	for i, m := range s.Mask {
		if m {
			out[i] = 0
		}
	}

	return out
}
