package smooth

import (
	"errors"
	"math"
	"testing"

	"github.com/seisqc/algo-seis/internal/testutil"
)

// geometricPeriods returns n ascending periods from lo, stepping by ratio.
func geometricPeriods(lo, ratio float64, n int) []float64 {
	out := make([]float64, n)
	p := lo
	for i := range out {
		out[i] = p
		p *= ratio
	}
	return out
}

func constSpec(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestNearTargetConstantSpectrum(t *testing.T) {
	periods := geometricPeriods(0.1, 1.05, 200)
	spec := constSpec(200, -120)

	got, err := NearTarget{}.Smooth(periods, spec, []float64{1, 5, 10})
	if err != nil {
		t.Fatalf("Smooth() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{-120, -120, -120}, 1e-12)
}

func TestNearTargetBandSelection(t *testing.T) {
	// One octave around 4 s covers [4/sqrt(2), 4*sqrt(2)] ~ [2.83, 5.66].
	periods := []float64{1, 2, 3, 4, 5, 6, 8}
	spec := []float64{10, 20, 30, 40, 50, 60, 70}

	got, err := NearTarget{}.Smooth(periods, spec, []float64{4})
	if err != nil {
		t.Fatalf("Smooth() error = %v", err)
	}
	if math.Abs(got[0]-40) > 1e-12 {
		t.Fatalf("got = %v, want 40 (mean of 30, 40, 50)", got[0])
	}
}

func TestNearTargetEmptyBand(t *testing.T) {
	periods := []float64{1, 2, 4}
	spec := []float64{10, 20, 30}

	got, err := NearTarget{}.Smooth(periods, spec, []float64{1000})
	if err != nil {
		t.Fatalf("Smooth() error = %v", err)
	}
	testutil.RequireAllNaN(t, got)
}

func TestNearTargetUnorderedTargets(t *testing.T) {
	// Independent bands make target order irrelevant.
	periods := geometricPeriods(0.1, 1.05, 200)
	spec := constSpec(200, -100)

	got, err := NearTarget{}.Smooth(periods, spec, []float64{10, 1})
	if err != nil {
		t.Fatalf("Smooth() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{-100, -100}, 1e-12)
}

func TestGlobalInterpConstantSpectrum(t *testing.T) {
	periods := geometricPeriods(0.1, 1.05, 200)
	spec := constSpec(200, -120)

	got, err := GlobalInterp{}.Smooth(periods, spec, []float64{1, 5, 10})
	if err != nil {
		t.Fatalf("Smooth() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{-120, -120, -120}, 1e-9)
}

func TestGlobalInterpAgreesWithNearTarget(t *testing.T) {
	// On a constant spectrum both modes reduce to the same band mean.
	periods := geometricPeriods(0.05, 1.03, 400)
	spec := constSpec(400, -87.5)
	targets := []float64{0.5, 2, 5}

	a, err := NearTarget{}.Smooth(periods, spec, targets)
	if err != nil {
		t.Fatalf("NearTarget error = %v", err)
	}
	b, err := GlobalInterp{}.Smooth(periods, spec, targets)
	if err != nil {
		t.Fatalf("GlobalInterp error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, a, b, 0.1)
}

func TestGlobalInterpExactAtLadderCenters(t *testing.T) {
	// Ladder centers sit at periods[0] * 2^(k/8). A one octave band around
	// such a center is identical to the near-target band, so at exact
	// centers the two modes agree even on a sloped spectrum.
	periods := geometricPeriods(0.5, 1.02, 600)
	spec := make([]float64, len(periods))
	for i, p := range periods {
		spec[i] = -140 + 25*math.Log10(p/periods[0])
	}

	targets := []float64{
		0.5 * math.Pow(2, 0.25),
		0.5 * math.Pow(2, 1),
		0.5 * math.Pow(2, 2.125),
	}

	a, err := NearTarget{}.Smooth(periods, spec, targets)
	if err != nil {
		t.Fatalf("NearTarget error = %v", err)
	}
	b, err := GlobalInterp{}.Smooth(periods, spec, targets)
	if err != nil {
		t.Fatalf("GlobalInterp error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, a, b, 1e-6)
}

func TestGlobalInterpOutsideRange(t *testing.T) {
	periods := geometricPeriods(1, 1.05, 50)
	spec := constSpec(50, -100)

	got, err := GlobalInterp{}.Smooth(periods, spec, []float64{0.001, 2, 1e6})
	if err != nil {
		t.Fatalf("Smooth() error = %v", err)
	}
	if !math.IsNaN(got[0]) {
		t.Fatalf("got[0] = %v, want NaN below range", got[0])
	}
	if math.IsNaN(got[1]) {
		t.Fatal("got[1] = NaN, want a value inside range")
	}
	if !math.IsNaN(got[2]) {
		t.Fatalf("got[2] = %v, want NaN above range", got[2])
	}
}

func TestGlobalInterpNoTargetAboveFirstCenter(t *testing.T) {
	periods := geometricPeriods(100, 1.05, 50)
	spec := constSpec(50, -100)

	// All targets below the spectrum's period range: no bins, all NaN.
	got, err := GlobalInterp{}.Smooth(periods, spec, []float64{0.1, 0.2})
	if err != nil {
		t.Fatalf("Smooth() error = %v", err)
	}
	testutil.RequireAllNaN(t, got)
}

func TestGlobalInterpRejectsUnsortedTargets(t *testing.T) {
	periods := geometricPeriods(1, 1.05, 50)
	spec := constSpec(50, -100)

	_, err := GlobalInterp{}.Smooth(periods, spec, []float64{5, 1})
	if !errors.Is(err, ErrInvalidTargets) {
		t.Fatalf("error = %v, want ErrInvalidTargets", err)
	}

	_, err = GlobalInterp{}.Smooth(periods, spec, []float64{5, 5})
	if !errors.Is(err, ErrInvalidTargets) {
		t.Fatalf("error = %v, want ErrInvalidTargets", err)
	}
}

func TestSmoothAxisMismatch(t *testing.T) {
	_, err := NearTarget{}.Smooth(make([]float64, 3), make([]float64, 4), []float64{1})
	if !errors.Is(err, ErrAxisMismatch) {
		t.Fatalf("error = %v, want ErrAxisMismatch", err)
	}

	_, err = GlobalInterp{}.Smooth(make([]float64, 3), make([]float64, 4), []float64{1})
	if !errors.Is(err, ErrAxisMismatch) {
		t.Fatalf("error = %v, want ErrAxisMismatch", err)
	}
}

func TestGlobalInterpEmptySpectrum(t *testing.T) {
	got, err := GlobalInterp{}.Smooth(nil, nil, []float64{1, 2})
	if err != nil {
		t.Fatalf("Smooth() error = %v", err)
	}
	testutil.RequireAllNaN(t, got)
}
