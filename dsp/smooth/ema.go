package smooth

// EMA is an exponential moving average low-pass filter:
//
//	value = alpha*sample + (1-alpha)*value
//
// alpha = 1 makes the filter track the input exactly (one sample of
// lag); alpha = 0 freezes the state at its initial value.
type EMA struct {
	alpha float64
	value float64
}

var _ Filter = (*EMA)(nil)

// NewEMA returns an EMA filter with the given smoothing coefficient.
// alpha must lie in [0, 1]; higher means faster response.
func NewEMA(alpha float64, opts ...Option) (*EMA, error) {
	if err := validateCoefficient("alpha", alpha); err != nil {
		return nil, err
	}

	s := applyOptions(opts)

	return &EMA{alpha: alpha, value: s.initial}, nil
}

// Update consumes one sample and returns the new filter state. The
// result is a convex combination of the sample and the previous state,
// so for finite inputs it lies between the two. Non-finite samples
// propagate through the arithmetic unchecked.
func (f *EMA) Update(sample float64) float64 {
	f.value = f.alpha*sample + (1-f.alpha)*f.value
	return f.value
}

// Value returns the current filter state.
func (f *EMA) Value() float64 {
	return f.value
}

// Alpha returns the smoothing coefficient.
func (f *EMA) Alpha() float64 {
	return f.alpha
}
