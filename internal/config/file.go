package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"topoflow/internal/terrain"
)

// File is the on-disk TOML shape. Zero values mean "keep the default";
// CLI flags are applied on top of whatever the file sets.
type File struct {
	Render RenderConfig `toml:"render"`
}

type RenderConfig struct {
	Style     string  `toml:"style"`
	Spacing   float64 `toml:"spacing"`
	Scale     float64 `toml:"scale"`
	Thickness float64 `toml:"thickness"`
	Speed     float64 `toml:"speed"`
	FPSLimit  int     `toml:"fps_limit"`
	Tuner     bool    `toml:"tuner"`
}

// LoadFile reads a TOML config and applies it to the live settings.
// A missing file at the default path is not an error; the caller decides
// whether absence matters by checking os.IsNotExist on the wrapped error.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if f.Render.Style != "" {
		s, ok := terrain.ParseStyle(f.Render.Style)
		if !ok {
			return nil, fmt.Errorf("config %s: unknown style %q", path, f.Render.Style)
		}
		SetStyle(s)
	}
	if f.Render.Spacing != 0 {
		SetSpacing(f.Render.Spacing)
	}
	if f.Render.Scale != 0 {
		SetScale(f.Render.Scale)
	}
	if f.Render.Thickness != 0 {
		SetThickness(f.Render.Thickness)
	}
	if f.Render.Speed != 0 {
		SetSpeed(f.Render.Speed)
	}
	if f.Render.FPSLimit != 0 {
		SetFPSLimit(f.Render.FPSLimit)
	}

	return &f, nil
}

// IsNotExist reports whether a LoadFile error was just a missing file.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
