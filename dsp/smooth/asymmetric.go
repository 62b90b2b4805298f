package smooth

// Asymmetric is an exponential filter with separate smoothing rates for
// rising and falling signals, the same detector shape as an envelope
// follower with distinct attack and release coefficients:
//
//	alpha = alphaUp   if sample > value
//	alpha = alphaDown otherwise
//	value = alpha*sample + (1-alpha)*value
//
// Equality routes to alphaDown. The strict comparison is deliberate and
// observable, not an approximation.
type Asymmetric struct {
	alphaUp   float64
	alphaDown float64
	value     float64
}

var _ Filter = (*Asymmetric)(nil)

// NewAsymmetric returns a filter that smooths rising inputs with alphaUp
// and falling inputs with alphaDown. Both coefficients must lie in
// [0, 1]; each is validated independently and the error names the one
// that failed.
func NewAsymmetric(alphaUp, alphaDown float64, opts ...Option) (*Asymmetric, error) {
	if err := validateCoefficient("alphaUp", alphaUp); err != nil {
		return nil, err
	}

	if err := validateCoefficient("alphaDown", alphaDown); err != nil {
		return nil, err
	}

	s := applyOptions(opts)

	return &Asymmetric{alphaUp: alphaUp, alphaDown: alphaDown, value: s.initial}, nil
}

// Update consumes one sample and returns the new filter state.
func (f *Asymmetric) Update(sample float64) float64 {
	alpha := f.alphaDown
	if sample > f.value {
		alpha = f.alphaUp
	}

	f.value = alpha*sample + (1-alpha)*f.value

	return f.value
}

// Value returns the current filter state.
func (f *Asymmetric) Value() float64 {
	return f.value
}

// AlphaUp returns the smoothing coefficient used when the input exceeds
// the current state.
func (f *Asymmetric) AlphaUp() float64 {
	return f.alphaUp
}

// AlphaDown returns the smoothing coefficient used when the input is at
// or below the current state.
func (f *Asymmetric) AlphaDown() float64 {
	return f.alphaDown
}
