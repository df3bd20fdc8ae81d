// Package topo draws the animated contour terrain as a single fullscreen
// fragment pass. All terrain math runs in the shader; the Go side only
// feeds uniforms.
package topo

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"topoflow/internal/graphics"
	"topoflow/internal/graphics/renderer"
)

// Topo renders the contour terrain pass
type Topo struct {
	shader *graphics.Shader
	vao    uint32

	width  int
	height int
}

// NewTopo creates the contour pass; Init must run on the GL thread.
func NewTopo(width, height int) *Topo {
	return &Topo{width: width, height: height}
}

// Init compiles the contour program and creates the empty VAO the
// fullscreen triangle is drawn from.
func (t *Topo) Init() error {
	shader, err := graphics.NewShader(graphics.TopoVertSource, graphics.TopoFragSource)
	if err != nil {
		return fmt.Errorf("contour program: %w", err)
	}
	t.shader = shader

	// Core profile requires a bound VAO even with no vertex attributes;
	// the vertex shader derives positions from gl_VertexID.
	gl.GenVertexArrays(1, &t.vao)
	return nil
}

// Render draws one frame of the contour terrain
func (t *Topo) Render(ctx renderer.RenderContext) {
	t.shader.Use()
	t.shader.SetFloat("uTime", float32(ctx.Time))
	t.shader.SetVector2("uResolution", float32(ctx.Width), float32(ctx.Height))
	t.shader.SetFloat("uStyle", ctx.Style.Band())
	t.shader.SetFloat("uSpacing", float32(ctx.Spacing))
	t.shader.SetFloat("uScale", float32(ctx.Scale))
	t.shader.SetFloat("uThickness", float32(ctx.Thickness))

	gl.BindVertexArray(t.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

// SetViewport records the framebuffer size
func (t *Topo) SetViewport(width, height int) {
	t.width = width
	t.height = height
}

// Dispose releases GL objects
func (t *Topo) Dispose() {
	if t.shader != nil {
		t.shader.Dispose()
	}
	gl.DeleteVertexArrays(1, &t.vao)
}
