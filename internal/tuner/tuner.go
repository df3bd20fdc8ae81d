// Package tuner installs the developer-only live tuning bindings. The
// CLI only imports-and-attaches it behind the --tuner opt-in; a normal
// run never initializes this package's state.
package tuner

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"topoflow/internal/config"
	"topoflow/internal/terrain"
)

// Step sizes per key press; key repeat makes holding a key sweep a range.
const (
	spacingStep   = 0.01
	scaleStep     = 0.25
	thicknessStep = 0.002
	speedStep     = 0.25
)

// Attach installs the tuning key callback on the window. Bindings:
// 1/2/3 style, -/= spacing, [/] scale, ;/' thickness, ,/. speed.
func Attach(window *glfw.Window, log *slog.Logger) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press && action != glfw.Repeat {
			return
		}

		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)

		case glfw.Key1:
			config.SetStyle(terrain.StyleMountains)
		case glfw.Key2:
			config.SetStyle(terrain.StyleHills)
		case glfw.Key3:
			config.SetStyle(terrain.StyleAbstract)

		case glfw.KeyMinus:
			config.SetSpacing(config.GetSpacing() - spacingStep)
		case glfw.KeyEqual:
			config.SetSpacing(config.GetSpacing() + spacingStep)

		case glfw.KeyLeftBracket:
			config.SetScale(config.GetScale() - scaleStep)
		case glfw.KeyRightBracket:
			config.SetScale(config.GetScale() + scaleStep)

		case glfw.KeySemicolon:
			config.SetThickness(config.GetThickness() - thicknessStep)
		case glfw.KeyApostrophe:
			config.SetThickness(config.GetThickness() + thicknessStep)

		case glfw.KeyComma:
			config.SetSpeed(config.GetSpeed() - speedStep)
		case glfw.KeyPeriod:
			config.SetSpeed(config.GetSpeed() + speedStep)

		default:
			return
		}

		log.Debug("tuner",
			"style", config.GetStyle().String(),
			"spacing", config.GetSpacing(),
			"scale", config.GetScale(),
			"thickness", config.GetThickness(),
			"speed", config.GetSpeed(),
		)
	})
}
