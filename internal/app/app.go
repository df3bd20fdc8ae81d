package app

import (
	"log/slog"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"topoflow/internal/config"
	"topoflow/internal/graphics/renderer"
	"topoflow/internal/profiling"
)

// App owns the frame loop: one frame is submitted, display sync waited
// on, then the next — frame N+1 never overlaps frame N.
type App struct {
	window   *glfw.Window
	renderer *renderer.Renderer
	session  *Session
	log      *slog.Logger

	// Framebuffer size; written only by the resize callback and read by
	// tick, both on the main thread.
	width  int
	height int

	fpsLimiter *FPSLimiter
	lastTime   time.Time
}

// NewApp wires the frame loop and installs the resize handler.
func NewApp(window *glfw.Window, r *renderer.Renderer, session *Session, log *slog.Logger) *App {
	width, height := window.GetFramebufferSize()

	a := &App{
		window:     window,
		renderer:   r,
		session:    session,
		log:        log,
		width:      width,
		height:     height,
		fpsLimiter: NewFPSLimiter(),
		lastTime:   time.Now(),
	}

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		if w == 0 || h == 0 {
			return // minimized; keep last known size
		}
		a.width = w
		a.height = h
		a.renderer.UpdateViewport(w, h)
	})

	return a
}

// Run drives the frame loop until the window closes.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	a.session.Advance(dt, config.GetSpeed())

	ctx := renderer.RenderContext{
		Time:      a.session.Time(),
		Width:     a.width,
		Height:    a.height,
		Style:     config.GetStyle(),
		Spacing:   config.GetSpacing(),
		Scale:     config.GetScale(),
		Thickness: config.GetThickness(),
	}

	func() { defer profiling.Track("renderer.Render")(); a.renderer.Render(ctx) }()

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	if d := time.Since(startTick); d > 16*time.Millisecond {
		a.log.Warn("slow frame", "took", d, "top", profiling.TopN(3))
	}

	a.fpsLimiter.Wait()
}
