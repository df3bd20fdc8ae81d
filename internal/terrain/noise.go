package terrain

import (
	"math"
)

// Deterministic 2D value noise in the classic fragment-shader style:
// a sine-based coordinate hash under a smoothed bilinear lattice blend.
// Everything here is a pure function so the GLSL port stays bit-comparable.

const (
	hashKx    = 12.9898
	hashKy    = 78.233
	hashScale = 43758.5453
)

// MaxOctaves caps how many noise layers FBM will sum; requests above it
// are clamped rather than rejected.
const MaxOctaves = 8

func fract(v float64) float64 {
	return v - math.Floor(v)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// fade is the cubic smoothing curve 3t^2 - 2t^3 applied to cell offsets.
func fade(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Hash2 maps a 2D coordinate to a pseudo-random scalar in [0,1).
// Stable across runs for the same inputs. At very large coordinate
// magnitudes the sine loses precision and the pattern turns visibly
// periodic; that is a known property of this hash, not a bug.
func Hash2(x, y float64) float64 {
	return fract(math.Sin(x*hashKx+y*hashKy) * hashScale)
}

// Noise2 returns smooth value noise in [0,1]. The position is split into
// an integer cell and a fractional offset; the four corner hashes are
// blended bilinearly under the fade curve. A position landing exactly on
// a lattice point returns that corner's hash value.
func Noise2(x, y float64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)

	fx := fade(x - x0)
	fy := fade(y - y0)

	v00 := Hash2(x0, y0)
	v10 := Hash2(x0+1, y0)
	v01 := Hash2(x0, y0+1)
	v11 := Hash2(x0+1, y0+1)

	i0 := lerp(v00, v10, fx)
	i1 := lerp(v01, v11, fx)
	return lerp(i0, i1, fy)
}

// FBM sums octaves of Noise2, doubling frequency and halving amplitude
// per octave, starting at frequency 1 and amplitude 0.5. The sum is not
// normalized; its ceiling is 1 - 0.5^octaves. Octave counts are clamped
// to [1, MaxOctaves].
func FBM(x, y float64, octaves int) float64 {
	if octaves < 1 {
		octaves = 1
	}
	if octaves > MaxOctaves {
		octaves = MaxOctaves
	}

	amplitude := 0.5
	frequency := 1.0
	sum := 0.0
	for i := 0; i < octaves; i++ {
		sum += Noise2(x*frequency, y*frequency) * amplitude
		amplitude *= 0.5
		frequency *= 2
	}
	return sum
}
