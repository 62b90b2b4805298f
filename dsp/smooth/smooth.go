package smooth

import "fmt"

// Filter is a single-input, single-output recursive smoother. Update
// consumes one sample and returns the new state; Value reads the current
// state without mutating it.
//
// A Filter is not safe for concurrent use by multiple goroutines; each
// instance expects one sequential sample stream.
type Filter interface {
	Update(sample float64) float64
	Value() float64
}

// Option configures filter construction.
type Option func(*settings)

type settings struct {
	initial float64
}

// WithInitialValue seeds the filter state. Without this option the state
// starts at 0.
func WithInitialValue(v float64) Option {
	return func(s *settings) {
		s.initial = v
	}
}

func applyOptions(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// validateCoefficient rejects smoothing coefficients outside the closed
// unit interval. The negated comparison also rejects NaN.
func validateCoefficient(name string, alpha float64) error {
	if !(alpha >= 0 && alpha <= 1) {
		return fmt.Errorf("%s must be in [0, 1]: %f", name, alpha)
	}
	return nil
}
