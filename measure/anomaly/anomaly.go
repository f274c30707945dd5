package anomaly

import (
	"fmt"
	"math"
)

// Scorer assigns anomaly scores to feature rows. Implementations map each
// row to a score in [0, 1], where values toward 1 indicate anomalies.
type Scorer interface {
	Score(rows [][]float64) ([]float64, error)
}

// Scores applies scorer to rows, masking rows that contain NaN.
//
// Masked rows (failed segments) receive a NaN score and are never passed to
// the scorer; the remaining rows are scored in one batch. The result is
// aligned with the input rows.
func Scores(scorer Scorer, rows [][]float64) ([]float64, error) {
	out := make([]float64, len(rows))

	valid := make([][]float64, 0, len(rows))
	validIdx := make([]int, 0, len(rows))

	for i, row := range rows {
		if hasNaN(row) {
			out[i] = math.NaN()
			continue
		}

		valid = append(valid, row)
		validIdx = append(validIdx, i)
	}

	if len(valid) == 0 {
		return out, nil
	}

	scored, err := scorer.Score(valid)
	if err != nil {
		return nil, err
	}

	if len(scored) != len(valid) {
		return nil, fmt.Errorf("anomaly: scorer returned %d scores for %d rows", len(scored), len(valid))
	}

	for i, idx := range validIdx {
		out[idx] = scored[i]
	}

	return out, nil
}

// Flag marks scores at or above threshold. NaN scores are never flagged.
func Flag(scores []float64, threshold float64) []bool {
	out := make([]bool, len(scores))
	for i, s := range scores {
		out[i] = s >= threshold
	}

	return out
}

func hasNaN(row []float64) bool {
	if len(row) == 0 {
		return true
	}

	for _, v := range row {
		if math.IsNaN(v) {
			return true
		}
	}

	return false
}
