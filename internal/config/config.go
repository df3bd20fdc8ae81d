package config

import (
	"sync"

	"topoflow/internal/terrain"
)

// RenderSettings holds the live render tunables. The tuner mutates them
// from GLFW key callbacks while the frame loop reads a snapshot each
// frame, so access goes through the RWMutex.
type RenderSettings struct {
	mu        sync.RWMutex
	style     terrain.Style
	spacing   float64
	scale     float64
	thickness float64
	speed     float64
	fpsLimit  int
}

// Tunable ranges; setters clamp rather than reject.
const (
	MinSpacing   = 0.05
	MaxSpacing   = 0.5
	MinScale     = 0.5
	MaxScale     = 10.0
	MinThickness = 0.001
	MaxThickness = 0.2
	MinSpeed     = 0.0
	MaxSpeed     = 5.0
)

var globalRenderSettings = &RenderSettings{
	style:     terrain.StyleMountains,
	spacing:   0.12,
	scale:     3.0,
	thickness: 0.01,
	speed:     1.0,
	fpsLimit:  60,
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// GetStyle returns the current terrain style
func GetStyle() terrain.Style {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.style
}

// SetStyle sets the terrain style
func SetStyle(s terrain.Style) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.style = s
}

// GetSpacing returns the contour spacing in elevation units
func GetSpacing() float64 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.spacing
}

// SetSpacing sets the contour spacing, clamped to [MinSpacing, MaxSpacing]
func SetSpacing(v float64) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.spacing = clamp(v, MinSpacing, MaxSpacing)
}

// GetScale returns the terrain zoom factor
func GetScale() float64 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.scale
}

// SetScale sets the terrain zoom factor, clamped to [MinScale, MaxScale]
func SetScale(v float64) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.scale = clamp(v, MinScale, MaxScale)
}

// GetThickness returns the base contour line thickness
func GetThickness() float64 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.thickness
}

// SetThickness sets the base line thickness, clamped to [MinThickness, MaxThickness]
func SetThickness(v float64) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.thickness = clamp(v, MinThickness, MaxThickness)
}

// GetSpeed returns the animation speed multiplier
func GetSpeed() float64 {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.speed
}

// SetSpeed sets the animation speed multiplier, clamped to [MinSpeed, MaxSpeed]
func SetSpeed(v float64) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.speed = clamp(v, MinSpeed, MaxSpeed)
}

// GetFPSLimit returns the frame rate cap; 0 disables the limiter
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap; values at or below 0 disable the limiter
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	if limit < 0 {
		limit = 0
	}
	if limit > 480 {
		limit = 480
	}
	globalRenderSettings.fpsLimit = limit
}
