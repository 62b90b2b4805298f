package testutil

import "testing"

func TestDC(t *testing.T) {
	sig := DC(2.5, 4)
	for i, v := range sig {
		if v != 2.5 {
			t.Fatalf("index %d: got %v, want 2.5", i, v)
		}
	}
}

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %v != %v for same seed", i, a[i], b[i])
		}
	}
}

func TestDeterministicNoiseBounded(t *testing.T) {
	for _, v := range DeterministicNoise(7, 0.5, 256) {
		if v < -0.5 || v > 0.5 {
			t.Fatalf("sample %v outside [-0.5, 0.5]", v)
		}
	}
}
