package smooth

import "testing"

func BenchmarkEMAUpdate(b *testing.B) {
	f, err := NewEMA(0.25)
	if err != nil {
		b.Fatal(err)
	}

	x := 1.0
	for b.Loop() {
		x = f.Update(x)
	}
	_ = x
}

func BenchmarkRMSUpdate(b *testing.B) {
	f, err := NewRMS(0.25)
	if err != nil {
		b.Fatal(err)
	}

	x := 1.0
	for b.Loop() {
		x = f.Update(x)
	}
	_ = x
}

func BenchmarkAsymmetricUpdate(b *testing.B) {
	f, err := NewAsymmetric(0.05, 0.005)
	if err != nil {
		b.Fatal(err)
	}

	x := 1.0
	for b.Loop() {
		x = f.Update(x + 0.5)
	}
	_ = x
}
