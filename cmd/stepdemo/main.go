// Command stepdemo runs the three smoothing filters over a step-like
// test signal and prints their responses as a table.
//
// Usage:
//
//	stepdemo [flags]
//
// The input alternates between a high and a low level the way a noisy
// power or alarm reading would, optionally with white noise mixed in.
//
// Examples:
//
//	stepdemo
//	stepdemo -alpha 0.5 -init 25
//	stepdemo -alpha-up 0.0625 -alpha-down 0.00390625
//	stepdemo -noise 5 -seed 7
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/signal"
	"github.com/cwbudde/algo-smooth/dsp/smooth"
)

// demoPattern alternates between a high and a low plateau.
func demoPattern(high, low float64) []signal.Segment {
	return []signal.Segment{
		{Level: high, Duration: 2},
		{Level: low, Duration: 2},
		{Level: high, Duration: 6},
		{Level: low, Duration: 5},
		{Level: high, Duration: 5},
	}
}

func main() {
	alpha := flag.Float64("alpha", 0.25, "smoothing coefficient for the EMA and RMS filters")
	alphaUp := flag.Float64("alpha-up", 0.05, "asymmetric filter coefficient for rising inputs")
	alphaDown := flag.Float64("alpha-down", 0.005, "asymmetric filter coefficient for falling inputs")
	initial := flag.Float64("init", 25, "initial filter state")
	rate := flag.Float64("rate", 10, "sample rate in samples per second")
	high := flag.Float64("high", 100, "high input level")
	low := flag.Float64("low", 25, "low input level")
	noise := flag.Float64("noise", 0, "white noise amplitude mixed into the input")
	seed := flag.Int64("seed", 1, "noise seed")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stepdemo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Runs EMA, RMS and asymmetric smoothing filters over a step signal\n")
		fmt.Fprintf(os.Stderr, "and prints the responses sample by sample.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(*alpha, *alphaUp, *alphaDown, *initial, *rate, *high, *low, *noise, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(alpha, alphaUp, alphaDown, initial, rate, high, low, noise float64, seed int64) error {
	ema, err := smooth.NewEMA(alpha, smooth.WithInitialValue(initial))
	if err != nil {
		return err
	}

	rms, err := smooth.NewRMS(alpha, smooth.WithInitialValue(initial))
	if err != nil {
		return err
	}

	asym, err := smooth.NewAsymmetric(alphaUp, alphaDown, smooth.WithInitialValue(initial))
	if err != nil {
		return err
	}

	gen := signal.NewGeneratorWithOptions(
		[]core.StreamOption{core.WithSampleRate(rate)},
		signal.WithSeed(seed),
	)

	input, err := gen.Piecewise(demoPattern(high, low))
	if err != nil {
		return err
	}

	if noise > 0 {
		n, err := gen.WhiteNoise(noise, len(input))
		if err != nil {
			return err
		}

		input, err = signal.Mix(input, n)
		if err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tw, "Time [s]\tInput\tEMA\tRMS\tAsym\t\n"); err != nil {
		return err
	}

	dt := 1 / gen.Config().SampleRate
	for i, x := range input {
		_, err := fmt.Fprintf(tw, "%.2f\t%.3f\t%.3f\t%.3f\t%.3f\t\n",
			float64(i)*dt, x, ema.Update(x), rms.Update(x), asym.Update(x))
		if err != nil {
			return err
		}
	}

	return tw.Flush()
}
