// Package core provides configuration and numeric helpers shared by
// algo-smooth packages.
package core

// StreamConfig defines common settings for sample-stream collaborators.
// The smoothing filters themselves are time-step agnostic; the sample
// rate only gives generated signals a time axis.
type StreamConfig struct {
	SampleRate float64
}

// StreamOption mutates a StreamConfig.
type StreamOption func(*StreamConfig)

// DefaultStreamConfig returns defaults suited to slow sensor streams.
func DefaultStreamConfig() StreamConfig {
	return StreamConfig{
		SampleRate: 10,
	}
}

// WithSampleRate sets the stream sample rate in samples per second.
func WithSampleRate(sampleRate float64) StreamOption {
	return func(cfg *StreamConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// ApplyStreamOptions applies zero or more options to the default config.
func ApplyStreamOptions(opts ...StreamOption) StreamConfig {
	cfg := DefaultStreamConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
