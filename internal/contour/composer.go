package contour

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"topoflow/internal/terrain"
)

// Params are the per-frame tunables the composer reads; the frame loop
// snapshots them from config once per frame and passes them down.
type Params struct {
	Style     terrain.Style
	Spacing   float64
	Scale     float64
	Thickness float64
}

var (
	backgroundColor = mgl32.Vec3{0, 0, 0}
	lineColor       = mgl32.Vec3{1, 1, 1}
)

// TerrainPos maps a pixel coordinate to terrain space: normalize to
// [0,1], recenter to [-0.5,0.5], stretch the horizontal axis by the
// aspect ratio so terrain is not distorted on wide viewports, then zoom.
func TerrainPos(px, py float64, width, height int, scale float64) (x, y float64) {
	u := px / float64(width)
	v := py / float64(height)
	x = (u - 0.5) * (float64(width) / float64(height)) * scale
	y = (v - 0.5) * scale
	return
}

// ComposePixel runs the per-pixel program once: elevation at the pixel's
// terrain position, screen-space gradient via forward differences across
// the two adjacent pixels, contour intensity, and a black-to-white blend.
// It mirrors the fragment shader's main() and exists so the pipeline can
// be unit tested without a GL context.
func ComposePixel(px, py float64, width, height int, p Params, t float64) mgl32.Vec3 {
	x, y := TerrainPos(px, py, width, height, p.Scale)
	e := terrain.Elevation(p.Style, x, y, t)

	// dFdx/dFdy stand-in: difference against the neighboring pixels in
	// the same row and column.
	xr, yr := TerrainPos(px+1, py, width, height, p.Scale)
	xd, yd := TerrainPos(px, py+1, width, height, p.Scale)
	dex := terrain.Elevation(p.Style, xr, yr, t) - e
	dey := terrain.Elevation(p.Style, xd, yd, t) - e
	grad := math.Hypot(dex, dey)

	intensity := LineIntensity(e, grad, p.Spacing, p.Thickness)

	return mix(backgroundColor, lineColor, float32(intensity))
}

func mix(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}
