package testutil

import "testing"

func TestRequireNearlyEqualPasses(t *testing.T) {
	RequireNearlyEqual(t, 1.0, 1.0+1e-10, 1e-9)
}

func TestRequireSliceNearlyEqualPasses(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2, 3}, []float64{1, 2, 3 + 1e-12}, 1e-9)
}

func TestRequireFinitePasses(t *testing.T) {
	RequireFinite(t, []float64{0, -1.5, 1e300})
}
