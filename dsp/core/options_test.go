package core

import "testing"

func TestDefaultStreamConfig(t *testing.T) {
	cfg := DefaultStreamConfig()
	if cfg.SampleRate != 10 {
		t.Fatalf("SampleRate = %v, want 10", cfg.SampleRate)
	}
}

func TestApplyStreamOptions(t *testing.T) {
	cfg := ApplyStreamOptions(WithSampleRate(250))
	if cfg.SampleRate != 250 {
		t.Fatalf("SampleRate = %v, want 250", cfg.SampleRate)
	}
}

func TestWithSampleRateIgnoresNonPositive(t *testing.T) {
	cfg := ApplyStreamOptions(WithSampleRate(0), WithSampleRate(-48000))
	if cfg.SampleRate != DefaultStreamConfig().SampleRate {
		t.Fatalf("SampleRate = %v, want default", cfg.SampleRate)
	}
}

func TestApplyStreamOptionsNilOption(t *testing.T) {
	cfg := ApplyStreamOptions(nil, WithSampleRate(100))
	if cfg.SampleRate != 100 {
		t.Fatalf("SampleRate = %v, want 100", cfg.SampleRate)
	}
}
