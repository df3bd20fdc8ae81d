package contour

import (
	"math"
	"testing"
)

// TestLineIntensityOnLine verifies elevation exactly on a spacing
// multiple yields full intensity for any positive gradient
func TestLineIntensityOnLine(t *testing.T) {
	gradients := []float64{0.001, 0.1, 1.0, 10.0}
	for _, g := range gradients {
		for k := 0; k <= 10; k++ {
			e := float64(k) * 0.1
			got := LineIntensity(e, g, 0.1, 0.01)
			if math.Abs(got-1.0) > 1e-9 {
				t.Errorf("LineIntensity(%f, grad=%f) = %f, want 1.0 on a contour line", e, g, got)
			}
		}
	}
}

// TestLineIntensityMidpoint verifies intensity trends to zero at the
// interval midpoint
func TestLineIntensityMidpoint(t *testing.T) {
	got := LineIntensity(0.05, 1.0, 0.1, 0.01)
	if got > 1e-9 {
		t.Errorf("LineIntensity at interval midpoint = %f, want ~0", got)
	}
}

// TestLineIntensityScenario covers the spacing=0.1, thickness=0.001,
// gradient=1.0 reference points
func TestLineIntensityScenario(t *testing.T) {
	on := LineIntensity(0.1, 1.0, 0.1, 0.001)
	if math.Abs(on-1.0) > 1e-9 {
		t.Errorf("LineIntensity(0.1, 1, 0.1, 0.001) = %f, want ~1.0", on)
	}

	off := LineIntensity(0.15, 1.0, 0.1, 0.001)
	if off > 1e-9 {
		t.Errorf("LineIntensity(0.15, 1, 0.1, 0.001) = %f, want ~0.0", off)
	}
}

// TestLineIntensityMonotone verifies output never increases as the
// distance to the nearest line grows, for fixed gradient and thickness
func TestLineIntensityMonotone(t *testing.T) {
	const spacing = 0.2
	prev := math.Inf(1)
	for i := 0; i <= 1000; i++ {
		e := float64(i) / 1000 * spacing / 2 // walk from line to midpoint
		v := LineIntensity(e, 1.0, spacing, 0.05)
		if v > prev {
			t.Errorf("LineIntensity not monotone: intensity rose to %f at elevation %f (prev %f)", v, e, prev)
		}
		prev = v
	}
}

// TestLineIntensityFlatTerrain verifies the epsilon floor keeps flat
// terrain from collapsing to zero-width lines
func TestLineIntensityFlatTerrain(t *testing.T) {
	got := LineIntensity(0.1, 0.0, 0.1, 0.01)
	if got != 1.0 {
		t.Errorf("LineIntensity with zero gradient on a line = %f, want 1.0", got)
	}

	// Slightly off the line but inside the epsilon-floored width.
	near := LineIntensity(0.1+0.01*gradEpsilon*0.25, 0.0, 0.1, 0.01)
	if near <= 0 {
		t.Errorf("LineIntensity just off a line on flat terrain = %f, want > 0", near)
	}
}

// TestLineIntensityNegativeElevation verifies the modulo handles the
// slight negative overshoot styles can produce
func TestLineIntensityNegativeElevation(t *testing.T) {
	got := LineIntensity(-0.1, 1.0, 0.1, 0.001)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("LineIntensity(-0.1) = %f, want ~1.0 (negative multiples are lines too)", got)
	}

	v := LineIntensity(-0.05, 1.0, 0.1, 0.001)
	if v > 1e-9 {
		t.Errorf("LineIntensity(-0.05) = %f, want ~0 at midpoint", v)
	}
}

// TestLineIntensityRange verifies output stays in [0,1]
func TestLineIntensityRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		e := float64(i)*0.0037 - 1.85
		v := LineIntensity(e, 0.5, 0.15, 0.02)
		if v < 0 || v > 1 {
			t.Errorf("LineIntensity(%f) = %f, expected in [0,1]", e, v)
		}
	}
}
