package terrain

import (
	"math"
)

// Style selects one of the terrain elevation generators.
type Style int

const (
	StyleMountains Style = iota
	StyleHills
	StyleAbstract
)

func (s Style) String() string {
	switch s {
	case StyleMountains:
		return "mountains"
	case StyleHills:
		return "hills"
	case StyleAbstract:
		return "abstract"
	default:
		return "unknown"
	}
}

// ParseStyle maps a config/CLI name to a Style.
func ParseStyle(name string) (Style, bool) {
	switch name {
	case "mountains":
		return StyleMountains, true
	case "hills":
		return StyleHills, true
	case "abstract":
		return StyleAbstract, true
	}
	return StyleMountains, false
}

// Band returns the numeric selector band the fragment shader dispatches
// on: values below 0.5 route to mountains, below 1.5 to hills, and
// anything above to abstract. Only the GLSL boundary uses this; Go code
// dispatches on the enum directly.
func (s Style) Band() float32 {
	return float32(s)
}

// Per-style drift velocities. Animation works by sliding the sample
// position through noise space, which keeps consecutive frames continuous.
var (
	mountainDrift = [2]float64{0.03, 0.02}
	hillsDrift    = [2]float64{0.02, -0.015}
	abstractDrift = [3][2]float64{
		{0.05, 0.03},
		{-0.04, 0.06},
		{0.07, -0.02},
	}
)

// smoothstep is the GLSL ramp: 0 below e0, 1 above e1, smooth in between.
func smoothstep(e0, e1, v float64) float64 {
	if e0 >= e1 {
		if v < e0 {
			return 0
		}
		return 1
	}
	t := (v - e0) / (e1 - e0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

// Mountains: six fBm octaves sharpened by a power curve, blended 0.7/0.3
// with a ridge term (higher-frequency noise folded around its midpoint
// and raised to a higher power so the crest stays thin).
func mountains(x, y, t float64) float64 {
	sx := x + mountainDrift[0]*t
	sy := y + mountainDrift[1]*t

	base := math.Pow(FBM(sx, sy, 6), 1.5)

	ridge := 1 - math.Abs(2*Noise2(sx*3, sy*3)-1)
	ridge = math.Pow(ridge, 4)

	return base*0.7 + ridge*0.3
}

// Hills: four octaves at reduced frequency pushed through a smooth
// threshold to flatten the mid-range, plus a very-low-frequency term for
// broad undulation.
func hills(x, y, t float64) float64 {
	sx := x*0.5 + hillsDrift[0]*t
	sy := y*0.5 + hillsDrift[1]*t

	base := smoothstep(0.2, 0.8, FBM(sx, sy, 4))
	broad := FBM(x*0.12+hillsDrift[0]*t, y*0.12+hillsDrift[1]*t, 2)

	return base*0.7 + broad*0.3
}

// Abstract: three independently scaled and drifting fBm layers combined
// linearly, then wrapped by fract. The wrap introduces hard seams where
// the sum crosses an integer; that discontinuity is the intended look,
// so it is not smoothed away.
func abstract(x, y, t float64) float64 {
	l1 := FBM(x*1.7+abstractDrift[0][0]*t, y*1.7+abstractDrift[0][1]*t, 5)
	l2 := FBM(x*0.8+abstractDrift[1][0]*t, y*0.8+abstractDrift[1][1]*t, 3)
	l3 := FBM(x*3.1+abstractDrift[2][0]*t, y*3.1+abstractDrift[2][1]*t, 4)

	return fract(l1*0.45 + l2*0.35 + l3*0.35)
}

// Elevation evaluates the selected style at a terrain-space position and
// time. Pure function: identical inputs always yield identical output.
// The nominal range is [0,1] but style blends may slightly exceed it;
// consumers must tolerate that.
func Elevation(s Style, x, y, t float64) float64 {
	switch s {
	case StyleHills:
		return hills(x, y, t)
	case StyleAbstract:
		return abstract(x, y, t)
	default:
		return mountains(x, y, t)
	}
}
