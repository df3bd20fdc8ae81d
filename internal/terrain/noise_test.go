package terrain

import (
	"math"
	"math/rand"
	"testing"
)

// TestHash2Deterministic verifies Hash2 produces identical results for same inputs
func TestHash2Deterministic(t *testing.T) {
	var results [100]float64
	for i := range results {
		results[i] = Hash2(13.7, -42.1)
	}

	first := results[0]
	for i := 1; i < len(results); i++ {
		if results[i] != first {
			t.Errorf("Hash2 not deterministic: results[0]=%v, results[%d]=%v", first, i, results[i])
		}
	}
}

// TestHash2Range verifies Hash2 outputs are in [0,1)
func TestHash2Range(t *testing.T) {
	rng := rand.New(rand.NewSource(12345)) // deterministic test RNG

	for i := 0; i < 1000; i++ {
		x := rng.Float64()*2000 - 1000
		y := rng.Float64()*2000 - 1000

		v := Hash2(x, y)
		if v < 0.0 || v >= 1.0 {
			t.Errorf("Hash2(%f, %f) = %f, expected in [0,1)", x, y, v)
		}
	}
}

// TestHash2DifferentInputs verifies nearby lattice points decorrelate
func TestHash2DifferentInputs(t *testing.T) {
	h1 := Hash2(1, 0)
	h2 := Hash2(2, 0)
	if h1 == h2 {
		t.Errorf("Hash2 should differ for different X: Hash2(1,0)=%v == Hash2(2,0)=%v", h1, h2)
	}

	h1 = Hash2(0, 1)
	h2 = Hash2(0, 2)
	if h1 == h2 {
		t.Errorf("Hash2 should differ for different Y: Hash2(0,1)=%v == Hash2(0,2)=%v", h1, h2)
	}

	// Axis swap (ensures axes aren't interchangeable)
	h1 = Hash2(3, 7)
	h2 = Hash2(7, 3)
	if h1 == h2 {
		t.Errorf("Hash2 should differ for axis swap: Hash2(3,7)=%v == Hash2(7,3)=%v", h1, h2)
	}
}

// TestNoise2MatchesHashAtLatticePoints verifies the noise field reduces
// exactly to the corner hash on integer coordinates
func TestNoise2MatchesHashAtLatticePoints(t *testing.T) {
	for x := -10; x <= 10; x++ {
		for y := -10; y <= 10; y++ {
			fx, fy := float64(x), float64(y)
			n := Noise2(fx, fy)
			h := Hash2(fx, fy)
			if n != h {
				t.Errorf("Noise2(%d, %d) = %v, want Hash2 value %v", x, y, n, h)
			}
		}
	}
}

// TestNoise2Range verifies Noise2 outputs are in [0,1]
func TestNoise2Range(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))

	for i := 0; i < 1000; i++ {
		x := rng.Float64()*200 - 100
		y := rng.Float64()*200 - 100

		v := Noise2(x, y)
		if v < 0.0 || v > 1.0 {
			t.Errorf("Noise2(%f, %f) = %f, expected in [0,1]", x, y, v)
		}
	}
}

// TestNoise2Continuity verifies smooth interpolation (no random jumps)
func TestNoise2Continuity(t *testing.T) {
	v1 := Noise2(1.0, 1.0)
	v2 := Noise2(1.01, 1.0)

	diff := math.Abs(v1 - v2)
	if diff >= 0.1 {
		t.Errorf("Noise2 not continuous: Noise2(1.0,1.0)=%f, Noise2(1.01,1.0)=%f, diff=%f >= 0.1", v1, v2, diff)
	}
}

// TestFBMSingleOctave verifies one octave equals 0.5 x base-frequency noise
func TestFBMSingleOctave(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 100; i++ {
		x := rng.Float64()*40 - 20
		y := rng.Float64()*40 - 20

		got := FBM(x, y, 1)
		want := 0.5 * Noise2(x, y)
		if got != want {
			t.Errorf("FBM(%f, %f, 1) = %v, want 0.5*Noise2 = %v", x, y, got, want)
		}
	}
}

// TestFBMAmplitudeCeiling verifies the theoretical ceiling 1-0.5^n never
// decreases with octave count, and output stays under it
func TestFBMAmplitudeCeiling(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	prevCeiling := 0.0
	for oct := 1; oct <= MaxOctaves; oct++ {
		ceiling := 1 - math.Pow(0.5, float64(oct))
		if ceiling < prevCeiling {
			t.Errorf("amplitude ceiling decreased at octaves=%d: %f < %f", oct, ceiling, prevCeiling)
		}
		prevCeiling = ceiling

		for i := 0; i < 200; i++ {
			x := rng.Float64()*100 - 50
			y := rng.Float64()*100 - 50
			v := FBM(x, y, oct)
			if v < 0 || v > ceiling {
				t.Errorf("FBM(%f, %f, %d) = %f, expected in [0, %f]", x, y, oct, v, ceiling)
			}
		}
	}
}

// TestFBMOctaveClamp verifies requests above MaxOctaves clamp instead of
// silently undersampling or failing
func TestFBMOctaveClamp(t *testing.T) {
	x, y := 3.7, -1.2

	atMax := FBM(x, y, MaxOctaves)
	beyond := FBM(x, y, MaxOctaves+4)
	if beyond != atMax {
		t.Errorf("FBM with %d octaves = %v, want clamp to MaxOctaves value %v", MaxOctaves+4, beyond, atMax)
	}

	below := FBM(x, y, 0)
	want := FBM(x, y, 1)
	if below != want {
		t.Errorf("FBM with 0 octaves = %v, want clamp to 1 octave value %v", below, want)
	}
}

// TestFBMDeterministic verifies FBM produces identical results
func TestFBMDeterministic(t *testing.T) {
	var results [100]float64
	for i := range results {
		results[i] = FBM(1.5, 2.7, 6)
	}

	first := results[0]
	for i := 1; i < len(results); i++ {
		if results[i] != first {
			t.Errorf("FBM not deterministic: results[0]=%v, results[%d]=%v", first, i, results[i])
		}
	}
}

func BenchmarkNoise2(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Noise2(float64(i)*0.01, float64(i)*0.013)
	}
}

func BenchmarkFBM6(b *testing.B) {
	for i := 0; i < b.N; i++ {
		FBM(float64(i)*0.01, float64(i)*0.013, 6)
	}
}
