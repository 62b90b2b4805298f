package smooth

import "math"

// RMS is an exponential filter operating in the power domain:
//
//	value = sqrt(alpha*sample² + (1-alpha)*value²)
//
// Smoothing squared magnitude instead of raw amplitude matches how
// energy-like quantities behave; averaging amplitude directly
// understates energy-significant excursions. The output is non-negative
// for any real input, positive or negative. alpha = 1 collapses the
// filter to |sample|.
type RMS struct {
	alpha float64
	value float64
}

var _ Filter = (*RMS)(nil)

// NewRMS returns an RMS filter with the given smoothing coefficient.
// alpha must lie in [0, 1].
func NewRMS(alpha float64, opts ...Option) (*RMS, error) {
	if err := validateCoefficient("alpha", alpha); err != nil {
		return nil, err
	}

	s := applyOptions(opts)

	return &RMS{alpha: alpha, value: s.initial}, nil
}

// Update consumes one sample and returns the new filter state. If
// non-finite upstream values drive the radicand negative, the NaN from
// math.Sqrt propagates rather than being corrected.
func (f *RMS) Update(sample float64) float64 {
	f.value = math.Sqrt(f.alpha*sample*sample + (1-f.alpha)*f.value*f.value)
	return f.value
}

// Value returns the current filter state.
func (f *RMS) Value() float64 {
	return f.value
}

// Alpha returns the smoothing coefficient.
func (f *RMS) Alpha() float64 {
	return f.alpha
}
