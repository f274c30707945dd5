package feature

import (
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/seisqc/algo-seis/measure/psd"
	"github.com/seisqc/algo-seis/seis"
)

// Option configures an Extractor.
type Option func(*Extractor)

// WithWorkers sets the number of segments processed concurrently.
// Values below 1 fall back to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(e *Extractor) {
		e.workers = n
	}
}

// Extractor computes amplitude feature vectors from waveform segments.
//
// Each segment yields one row of features: the smoothed PSD values at the
// calculator's target periods. Segments that cannot be processed (too short,
// missing response metadata) yield all-NaN rows instead of failing the
// batch. Safe for concurrent use.
type Extractor struct {
	calc    *psd.Calculator
	workers int
}

// NewExtractor creates an extractor around a configured calculator.
func NewExtractor(calc *psd.Calculator, opts ...Option) *Extractor {
	e := &Extractor{calc: calc}
	for _, opt := range opts {
		opt(e)
	}

	if e.workers < 1 {
		e.workers = runtime.GOMAXPROCS(0)
	}

	return e
}

// Result holds one segment's feature vector, tagged with the segment's
// channel and time span so rows stay attributable after batch processing.
type Result struct {
	Channel seis.Channel
	Start   time.Time
	End     time.Time
	Values  []float64
	Err     error
}

// ExtractOne computes the feature vector of a single segment.
func (e *Extractor) ExtractOne(seg seis.Segment) ([]float64, error) {
	return e.calc.Trace(seg)
}

// Extract computes one feature row per segment, in input order.
//
// Failed segments produce rows of NaN with the same width as successful
// ones, so the output is always rectangular.
func (e *Extractor) Extract(segs []seis.Segment) [][]float64 {
	results := e.ExtractResults(segs)

	rows := make([][]float64, len(results))
	for i, r := range results {
		rows[i] = r.Values
	}

	return rows
}

// ExtractResults computes tagged results for every segment, in input order.
// Failed segments carry the error alongside an all-NaN value row.
func (e *Extractor) ExtractResults(segs []seis.Segment) []Result {
	results := make([]Result, len(segs))

	workers := e.workers
	if workers > len(segs) {
		workers = len(segs)
	}

	if workers <= 1 {
		for i := range segs {
			results[i] = e.one(segs[i])
		}

		return results
	}

	indices := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range indices {
				results[i] = e.one(segs[i])
			}
		}()
	}

	for i := range segs {
		indices <- i
	}

	close(indices)
	wg.Wait()

	return results
}

func (e *Extractor) one(seg seis.Segment) Result {
	res := Result{
		Channel: seg.Channel,
		Start:   seg.Start,
		End:     seg.End,
	}

	values, err := e.calc.Trace(seg)
	if err != nil {
		res.Err = err
		res.Values = nanRow(len(e.calc.Periods()))

		return res
	}

	res.Values = values

	return res
}

func nanRow(n int) []float64 {
	row := make([]float64, n)
	for i := range row {
		row[i] = math.NaN()
	}

	return row
}
