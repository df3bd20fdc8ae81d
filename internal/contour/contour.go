// Package contour holds the CPU reference implementation of the per-pixel
// contour program. The GLSL in internal/graphics/shaders mirrors these
// functions; tests exercise this side.
package contour

import "math"

// gradEpsilon floors the gradient magnitude so perfectly flat terrain
// still produces a nonzero line width instead of dividing the ramp away.
const gradEpsilon = 1e-4

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

// LineIntensity converts an elevation and its local gradient magnitude
// into a contour line intensity in [0,1]: 1 exactly on a contour line,
// falling to 0 between lines. The base thickness is scaled by the
// gradient so the projected screen-space width stays visually constant
// on steep and flat terrain alike; the smooth ramp around the adaptive
// width anti-aliases the edge.
func LineIntensity(elevation, gradient, spacing, thickness float64) float64 {
	if spacing <= 0 {
		return 0
	}

	m := math.Mod(elevation, spacing)
	if m < 0 {
		m += spacing
	}
	dist := m
	if spacing-m < dist {
		dist = spacing - m
	}

	g := gradient
	if g < gradEpsilon {
		g = gradEpsilon
	}
	width := thickness * g

	return 1 - smoothstep(0, width, dist)
}
