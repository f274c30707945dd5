// Command psdinfo prints smoothed power spectral density values of a
// synthetic waveform segment.
//
// Usage:
//
//	psdinfo [flags]
//
// Examples:
//
//	psdinfo -signal sine -freq 0.2 -duration 3600
//	psdinfo -signal noise -periods 1,5,10
//	psdinfo -signal ricker -freq 2 -raw
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/seisqc/algo-seis/dsp/signal"
	"github.com/seisqc/algo-seis/measure/psd"
	"github.com/seisqc/algo-seis/response"
	"github.com/seisqc/algo-seis/seis"
)

func main() {
	rate := flag.Float64("rate", 100, "sampling rate in Hz")
	duration := flag.Float64("duration", 3600, "segment duration in seconds")
	kind := flag.String("signal", "noise", "signal type: sine, noise, ricker")
	freq := flag.Float64("freq", 0.2, "signal frequency in Hz (sine, ricker)")
	amp := flag.Float64("amp", 1000, "signal amplitude in counts")
	seed := flag.Int64("seed", 1, "random seed for noise")
	gain := flag.Float64("gain", 1, "flat instrument gain (counts per m/s)")
	periodsFlag := flag.String("periods", "5", "comma-separated target periods in seconds")
	smoothAll := flag.Bool("smooth-all", false, "smooth the whole spectrum and interpolate")
	raw := flag.Bool("raw", false, "print the full unsmoothed dB spectrum")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: psdinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints smoothed PSD values of a synthetic waveform segment.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  psdinfo -signal sine -freq 0.2 -duration 3600\n")
		fmt.Fprintf(os.Stderr, "  psdinfo -signal noise -periods 1,5,10 -smooth-all\n")
		fmt.Fprintf(os.Stderr, "  psdinfo -signal ricker -freq 2 -raw\n")
	}
	flag.Parse()

	periods, err := parsePeriods(*periodsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	samples := int(*duration * *rate)
	gen := signal.NewGenerator(signal.WithSampleRate(*rate), signal.WithSeed(*seed))

	var data []float64
	switch *kind {
	case "sine":
		data, err = gen.Sine(*freq, *amp, samples)
	case "noise":
		data, err = gen.WhiteNoise(*amp, samples)
	case "ricker":
		data, err = gen.Ricker(*freq, *amp, samples)
	default:
		err = fmt.Errorf("unknown signal type %q", *kind)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	start := time.Now().UTC().Truncate(time.Second)
	seg := seis.Segment{
		Data:       data,
		SampleRate: *rate,
		Start:      start,
		End:        start.Add(time.Duration(*duration * float64(time.Second))),
		Channel:    seis.Channel{Network: "XX", Station: "SYN", Channel: "HHZ"},
	}

	calc, err := psd.NewCalculator(psd.Config{
		Provider:         response.Flat{Gain: *gain},
		Periods:          periods,
		SmoothAllPeriods: *smoothAll,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *raw {
		printRaw(calc, seg)
		return
	}

	values, err := calc.Trace(seg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printSmoothed(periods, values)
}

func parsePeriods(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid period %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}

func printSmoothed(periods, values []float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Period [s]\tPSD [dB]\n")
	fmt.Fprintf(tw, "----------\t--------\n")
	for i, p := range periods {
		fmt.Fprintf(tw, "%.3f\t%.2f\n", p, values[i])
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printRaw(calc *psd.Calculator, seg seis.Segment) {
	spec, periods, err := calc.Raw(seg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Period [s]\tPSD [dB]\n")
	fmt.Fprintf(tw, "----------\t--------\n")
	for i, p := range periods {
		fmt.Fprintf(tw, "%.6f\t%.2f\n", p, spec[i])
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
