package anomaly

import (
	"fmt"
	"math"
	"testing"
)

// meanScorer scores each row with the mean of its values, for testing.
type meanScorer struct{}

func (meanScorer) Score(rows [][]float64) ([]float64, error) {
	out := make([]float64, len(rows))
	for i, row := range rows {
		sum := 0.0
		for _, v := range row {
			sum += v
		}
		out[i] = sum / float64(len(row))
	}
	return out, nil
}

type failScorer struct{}

func (failScorer) Score([][]float64) ([]float64, error) {
	return nil, fmt.Errorf("model unavailable")
}

type badWidthScorer struct{}

func (badWidthScorer) Score(rows [][]float64) ([]float64, error) {
	return make([]float64, len(rows)+1), nil
}

func TestScoresMasksNaNRows(t *testing.T) {
	rows := [][]float64{
		{0.2, 0.4},
		{0.1, math.NaN()},
		{0.6, 0.8},
	}

	got, err := Scores(meanScorer{}, rows)
	if err != nil {
		t.Fatalf("Scores() error = %v", err)
	}
	if got[0] != 0.3 || got[2] != 0.7 {
		t.Fatalf("scores = %v", got)
	}
	if !math.IsNaN(got[1]) {
		t.Fatalf("got[1] = %v, want NaN", got[1])
	}
}

func TestScoresAllMasked(t *testing.T) {
	rows := [][]float64{{math.NaN()}, {}}

	got, err := Scores(failScorer{}, rows)
	if err != nil {
		t.Fatalf("Scores() error = %v", err)
	}
	// The scorer must never be called when no row is valid.
	for i, s := range got {
		if !math.IsNaN(s) {
			t.Fatalf("got[%d] = %v, want NaN", i, s)
		}
	}
}

func TestScoresScorerFailure(t *testing.T) {
	if _, err := Scores(failScorer{}, [][]float64{{1}}); err == nil {
		t.Fatal("expected scorer error")
	}
}

func TestScoresWidthMismatch(t *testing.T) {
	if _, err := Scores(badWidthScorer{}, [][]float64{{1}}); err == nil {
		t.Fatal("expected error for mismatched scorer output")
	}
}

func TestScoresEmpty(t *testing.T) {
	got, err := Scores(meanScorer{}, nil)
	if err != nil {
		t.Fatalf("Scores() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestFlag(t *testing.T) {
	scores := []float64{0.2, 0.75, math.NaN(), 0.5}
	got := Flag(scores, 0.5)
	want := []bool{false, true, false, true}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
