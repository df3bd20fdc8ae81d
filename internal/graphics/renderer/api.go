package renderer

import (
	"topoflow/internal/terrain"
)

// RenderContext provides shared per-frame state for all renderables.
type RenderContext struct {
	// Session time in seconds, already scaled by the speed multiplier.
	Time float64

	// Framebuffer dimensions in pixels.
	Width  int
	Height int

	Style     terrain.Style
	Spacing   float64
	Scale     float64
	Thickness float64
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
