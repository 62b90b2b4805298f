// Package signal generates deterministic test and demo signals for
// feeding smoothing filters one sample at a time.
package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// maxPiecewiseSamples bounds the total length of a generated piecewise
// signal, well below where float-to-int conversion wraps.
const maxPiecewiseSamples = 1 << 31

// Segment describes one constant-valued span of a piecewise signal.
type Segment struct {
	Level    float64
	Duration float64 // seconds
}

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.StreamConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.StreamOption) *Generator {
	return &Generator{
		cfg:  core.ApplyStreamOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with
// signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.StreamOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyStreamOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator stream configuration.
func (g *Generator) Config() core.StreamConfig {
	return g.cfg
}

// SetSeed replaces the noise seed.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

// Seed returns the current noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Piecewise generates a staircase signal from constant-valued segments,
// each held for its duration at the configured sample rate. Segment
// boundaries round down to whole samples.
func (g *Generator) Piecewise(segments []Segment) ([]float64, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("piecewise needs at least one segment")
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("piecewise sample rate must be > 0: %f", g.cfg.SampleRate)
	}

	total := 0
	counts := make([]int, len(segments))
	for i, seg := range segments {
		if seg.Duration < 0 || math.IsNaN(seg.Duration) || math.IsInf(seg.Duration, 0) {
			return nil, fmt.Errorf("segment %d duration must be non-negative and finite: %f", i, seg.Duration)
		}
		// Conversions beyond the int range are implementation-defined and
		// would wrap negative; reject before converting.
		samples := seg.Duration * g.cfg.SampleRate
		if samples > maxPiecewiseSamples {
			return nil, fmt.Errorf("segment %d spans too many samples: %f", i, samples)
		}
		counts[i] = int(samples)
		total += counts[i]
		if total > maxPiecewiseSamples {
			return nil, fmt.Errorf("piecewise signal spans too many samples: %d", total)
		}
	}
	if total == 0 {
		return nil, fmt.Errorf("piecewise segments span zero samples")
	}

	out := make([]float64, 0, total)
	for i, seg := range segments {
		for j := 0; j < counts[i]; j++ {
			out = append(out, seg.Level)
		}
	}
	return out, nil
}

// Step generates samples holding before until pos, then after.
func (g *Generator) Step(before, after float64, pos, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("step samples must be > 0: %d", samples)
	}
	if pos < 0 || pos > samples {
		return nil, fmt.Errorf("step position must be in [0, %d]: %d", samples, pos)
	}
	out := make([]float64, samples)
	for i := range out {
		if i < pos {
			out[i] = before
		} else {
			out[i] = after
		}
	}
	return out, nil
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Mix sums two equal-length signals element-wise into a new slice.
func Mix(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("mix length mismatch: %d vs %d", len(a), len(b))
	}
	if len(a) == 0 {
		return nil, fmt.Errorf("mix input must not be empty")
	}

	out := make([]float64, len(a))
	vecmath.AddBlock(out, a, b)
	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := vecmath.MaxAbs(data)

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	vecmath.ScaleBlock(out, data, targetPeak/maxAbs)
	return out, nil
}
