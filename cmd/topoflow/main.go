package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"

	"topoflow/internal/app"
	"topoflow/internal/config"
	"topoflow/internal/graphics"
	"topoflow/internal/graphics/renderables/overlay"
	"topoflow/internal/graphics/renderables/topo"
	"topoflow/internal/graphics/renderer"
	"topoflow/internal/terrain"
	"topoflow/internal/tuner"
)

const (
	winWidth  = 900
	winHeight = 600
)

var (
	configPath string
	logLevel   string
	styleName  string
	spacing    float64
	scale      float64
	thickness  float64
	speed      float64
	fpsLimit   int
	tunerFlag  bool
	version    = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:     "topoflow",
	Short:   "topoflow - animated GPU contour terrain",
	Long:    "topoflow renders a continuously animated topographic contour image\nentirely on the GPU, with three procedural terrain styles.",
	Version: version,
	Run:     runApp,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("topoflow v%s\n", version)
	},
}

func init() {
	runtime.LockOSThread()

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "topoflow.toml", "path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&styleName, "style", "mountains", "terrain style (mountains, hills, abstract)")
	rootCmd.Flags().Float64Var(&spacing, "spacing", 0.12, "contour spacing in elevation units")
	rootCmd.Flags().Float64Var(&scale, "scale", 3.0, "terrain zoom factor")
	rootCmd.Flags().Float64Var(&thickness, "thickness", 0.01, "base contour line thickness")
	rootCmd.Flags().Float64Var(&speed, "speed", 1.0, "animation speed multiplier")
	rootCmd.Flags().IntVar(&fpsLimit, "fps-limit", 60, "frame rate cap, 0 to disable")
	rootCmd.Flags().BoolVar(&tunerFlag, "tuner", false, "enable the developer tuning panel")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runApp(cmd *cobra.Command, args []string) {
	log := newLogger()

	// Config file first, explicit flags on top.
	tunerEnabled := tunerFlag
	if f, err := config.LoadFile(configPath); err != nil {
		if !config.IsNotExist(err) || cmd.Flags().Changed("config") {
			log.Error("config", "error", err)
			os.Exit(1)
		}
	} else if f.Render.Tuner {
		tunerEnabled = true
	}
	applyFlags(cmd, log)

	if err := glfw.Init(); err != nil {
		log.Error("glfw init", "error", err)
		os.Exit(1)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		log.Error("window setup", "error", err)
		os.Exit(1)
	}

	// The contour program needs screen-space derivatives; refuse to run
	// degraded if the context cannot provide them.
	if err := graphics.CheckCapabilities(); err != nil {
		log.Error("capability check", "error", err)
		os.Exit(1)
	}

	width, height := window.GetFramebufferSize()
	renderables := []renderer.Renderable{topo.NewTopo(width, height)}
	if tunerEnabled {
		renderables = append(renderables, overlay.NewOverlay(width, height))
	}

	r, err := renderer.NewRenderer(renderables...)
	if err != nil {
		log.Error("renderer init", "error", err)
		os.Exit(1)
	}
	defer r.Dispose()
	r.UpdateViewport(width, height)

	if tunerEnabled {
		tuner.Attach(window, log)
	} else {
		window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
			if key == glfw.KeyEscape && action == glfw.Press {
				w.SetShouldClose(true)
			}
		})
	}

	session := app.NewSession()
	log.Info("session start",
		"id", session.ID,
		"gl", graphics.ContextVersion(),
		"style", config.GetStyle().String(),
		"tuner", tunerEnabled,
	)

	app.NewApp(window, r, session, log).Run()
	log.Info("session end", "id", session.ID)
}

// applyFlags copies explicitly set flags over whatever the config file
// loaded; defaults only apply when neither source set a value.
func applyFlags(cmd *cobra.Command, log *slog.Logger) {
	if cmd.Flags().Changed("style") {
		s, ok := terrain.ParseStyle(styleName)
		if !ok {
			log.Error("unknown style", "style", styleName)
			os.Exit(1)
		}
		config.SetStyle(s)
	}
	if cmd.Flags().Changed("spacing") {
		config.SetSpacing(spacing)
	}
	if cmd.Flags().Changed("scale") {
		config.SetScale(scale)
	}
	if cmd.Flags().Changed("thickness") {
		config.SetThickness(thickness)
	}
	if cmd.Flags().Changed("speed") {
		config.SetSpeed(speed)
	}
	if cmd.Flags().Changed("fps-limit") {
		config.SetFPSLimit(fpsLimit)
	}
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(winWidth, winHeight, "topoflow", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, err
	}

	// Disable V-Sync; the FPS limiter owns frame pacing
	glfw.SwapInterval(0)

	return window, nil
}
