package spectrum

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// tinyNormal is the smallest positive normalized float64. Power values are
// floored to it before the log step so that deconvolved spectra never map
// to -Inf dB.
const tinyNormal = 2.2250738585072014e-308

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Power returns |X[k]|^2 for each complex spectrum bin.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// PowerFromParts computes |X[k]|^2 = re[k]^2 + im[k]^2 into dst.
//
// This is the zero-allocation fast path for callers that already have real
// and imaginary parts in separate slices.
func PowerFromParts(dst, re, im []float64) {
	vecmath.Power(dst, re, im)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// ToDB converts power values in place to decibels (10*log10).
//
// Values below the smallest positive normalized float64 are floored to it
// first, so the result is finite for every non-negative input.
func ToDB(power []float64) {
	for i, v := range power {
		if v < tinyNormal {
			v = tinyNormal
		}

		power[i] = 10 * math.Log10(v)
	}
}

// Reverse reverses a slice in place. The estimator produces
// frequency-ascending bins; response removal and smoothing operate
// period-ascending, which is the same data walked backwards.
func Reverse(x []float64) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}
