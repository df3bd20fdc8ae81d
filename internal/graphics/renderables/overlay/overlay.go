// Package overlay draws the developer tuning readout in the top-left
// corner. It is only wired into the renderer when the tuner opt-in flag
// is set; without it the package is never initialized.
package overlay

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"topoflow/internal/graphics"
	"topoflow/internal/graphics/renderer"
)

var textColor = mgl32.Vec3{0.6, 0.9, 0.6}

// Overlay renders the live parameter readout
type Overlay struct {
	font *graphics.FontRenderer

	width  int
	height int
}

// NewOverlay creates the overlay; Init must run on the GL thread.
func NewOverlay(width, height int) *Overlay {
	return &Overlay{width: width, height: height}
}

// Init bakes the font atlas and compiles the text shader
func (o *Overlay) Init() error {
	atlas, err := graphics.BuildFontAtlas(18)
	if err != nil {
		return fmt.Errorf("tuner overlay font: %w", err)
	}
	font, err := graphics.NewFontRenderer(atlas, o.width, o.height)
	if err != nil {
		return fmt.Errorf("tuner overlay font renderer: %w", err)
	}
	o.font = font
	return nil
}

// Render draws the current parameter values
func (o *Overlay) Render(ctx renderer.RenderContext) {
	lines := []string{
		fmt.Sprintf("style     %s  (1/2/3)", ctx.Style),
		fmt.Sprintf("spacing   %.3f  (-/=)", ctx.Spacing),
		fmt.Sprintf("scale     %.2f  ([/])", ctx.Scale),
		fmt.Sprintf("thickness %.3f  (;/')", ctx.Thickness),
		fmt.Sprintf("time      %.1fs  (,/. speed)", ctx.Time),
	}
	o.font.RenderLines(lines, 12, 24, 22, 1.0, textColor)
}

// SetViewport updates the text projection after a resize
func (o *Overlay) SetViewport(width, height int) {
	o.width = width
	o.height = height
	if o.font != nil {
		o.font.SetViewport(width, height)
	}
}

// Dispose releases GL objects
func (o *Overlay) Dispose() {
	if o.font != nil {
		o.font.Dispose()
	}
}
