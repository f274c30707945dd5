package smooth

import (
	"fmt"
	"math"
	"sort"
)

// Smoother reduces a period-ascending dB spectrum to values at the given
// target periods.
//
// periods and spec must have equal length and periods must be ascending.
// The result has one entry per target; targets that cannot be resolved
// against the spectrum are NaN.
type Smoother interface {
	Smooth(periods, spec, targets []float64) ([]float64, error)
}

// NearTarget averages the spectrum over one octave band centered on each
// target period, independently per target.
type NearTarget struct {
	// WidthOctaves is the band width in octaves (default 1.0).
	WidthOctaves float64
}

// Smooth returns, for each target period P, the mean of spec over the closed
// period interval [P/2^(w/2), P*2^(w/2)]. Targets whose interval contains no
// spectrum sample map to NaN.
func (s NearTarget) Smooth(periods, spec, targets []float64) ([]float64, error) {
	if err := checkAxes(periods, spec); err != nil {
		return nil, err
	}

	widthFactor := math.Pow(2, s.widthOctaves())
	widthSqrt := math.Sqrt(widthFactor)

	out := make([]float64, len(targets))
	for i, t := range targets {
		left := t / widthSqrt
		right := left * widthFactor
		out[i] = bandMean(periods, spec, left, right)
	}

	return out, nil
}

func (s NearTarget) widthOctaves() float64 {
	if s.WidthOctaves > 0 {
		return s.WidthOctaves
	}

	return 1.0
}

// GlobalInterp smooths the whole spectrum on a geometric ladder of octave
// bands spanning the spectrum's period range, then linearly interpolates the
// smoothed values at the target periods in log10(period) space.
//
// Targets must be strictly ascending. Targets outside the range of computed
// band centers map to NaN.
type GlobalInterp struct {
	// WidthOctaves is the band width in octaves (default 1.0).
	WidthOctaves float64
	// StepOctaves is the ladder step between band centers (default 0.125).
	StepOctaves float64
}

// Smooth implements Smoother.
func (s GlobalInterp) Smooth(periods, spec, targets []float64) ([]float64, error) {
	if err := checkAxes(periods, spec); err != nil {
		return nil, err
	}

	for i := 1; i < len(targets); i++ {
		if !(targets[i] > targets[i-1]) {
			return nil, fmt.Errorf("%w: %g followed by %g", ErrInvalidTargets, targets[i-1], targets[i])
		}
	}

	out := make([]float64, len(targets))
	for i := range out {
		out[i] = math.NaN()
	}

	if len(periods) == 0 || len(targets) == 0 {
		return out, nil
	}

	centers, values := s.binLadder(periods, spec, targets)
	if len(centers) < 2 {
		return out, nil
	}

	logCenters := make([]float64, len(centers))
	for i, c := range centers {
		logCenters[i] = math.Log10(c)
	}

	for i, t := range targets {
		if t < centers[0] || t > centers[len(centers)-1] {
			continue
		}

		out[i] = interpLog(logCenters, values, math.Log10(t))
	}

	return out, nil
}

// binLadder walks octave bands from the spectrum's shortest period upward in
// geometric steps. For each target it emits the pair of bands whose centers
// bracket the target, averaging the spectrum over each band. Consecutive
// duplicate centers (a band closing one bracket and opening the next) are
// collapsed.
func (s GlobalInterp) binLadder(periods, spec, targets []float64) (centers, values []float64) {
	widthFactor := math.Pow(2, s.widthOctaves())
	stepFactor := math.Pow(2, s.stepOctaves())

	perLeft := periods[0] / math.Sqrt(widthFactor)
	perRight := perLeft * widthFactor
	perCenter := math.Sqrt(perLeft * perRight)

	prevLeft, prevCenter, prevRight := perLeft, perCenter, perRight

	idx := 0
	for idx < len(targets) && targets[idx] <= perCenter {
		idx++
	}

	limit := periods[len(periods)-1]
	emit := func(left, center, right float64) {
		if n := len(centers); n > 0 && centers[n-1] == center {
			return
		}

		centers = append(centers, center)
		values = append(values, bandMean(periods, spec, left, right))
	}

	for perCenter < limit && idx < len(targets) {
		perLeft *= stepFactor
		perRight = perLeft * widthFactor
		perCenter = math.Sqrt(perLeft * perRight)

		if prevCenter <= targets[idx] && perCenter >= targets[idx] {
			emit(prevLeft, prevCenter, prevRight)
			emit(perLeft, perCenter, perRight)
			idx++
		}

		prevLeft, prevCenter, prevRight = perLeft, perCenter, perRight
	}

	return centers, values
}

func (s GlobalInterp) widthOctaves() float64 {
	if s.WidthOctaves > 0 {
		return s.WidthOctaves
	}

	return 1.0
}

func (s GlobalInterp) stepOctaves() float64 {
	if s.StepOctaves > 0 {
		return s.StepOctaves
	}

	return 0.125
}

func checkAxes(periods, spec []float64) error {
	if len(periods) != len(spec) {
		return fmt.Errorf("%w: %d periods, %d values", ErrAxisMismatch, len(periods), len(spec))
	}

	return nil
}

// bandMean averages spec over the closed period interval [left, right].
// An empty interval yields NaN.
func bandMean(periods, spec []float64, left, right float64) float64 {
	lo := sort.SearchFloat64s(periods, left)
	hi := lo
	for hi < len(periods) && periods[hi] <= right {
		hi++
	}

	if hi == lo {
		return math.NaN()
	}

	sum := 0.0
	for _, v := range spec[lo:hi] {
		sum += v
	}

	return sum / float64(hi-lo)
}

// interpLog linearly interpolates values over ascending log-period knots lx.
// x must lie within [lx[0], lx[len(lx)-1]].
func interpLog(lx, values []float64, x float64) float64 {
	i := sort.SearchFloat64s(lx, x)
	if i < len(lx) && lx[i] == x {
		return values[i]
	}

	// SearchFloat64s returns the first knot >= x; x is inside the range, so
	// i-1 and i both exist here.
	x0, x1 := lx[i-1], lx[i]
	y0, y1 := values[i-1], values[i]

	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}
