package config

import (
	"os"
	"path/filepath"
	"testing"

	"topoflow/internal/terrain"
)

// TestSettersClamp verifies out-of-range tunables clamp to their bounds
func TestSettersClamp(t *testing.T) {
	SetSpacing(10)
	if got := GetSpacing(); got != MaxSpacing {
		t.Errorf("SetSpacing(10): got %f, want clamp to %f", got, MaxSpacing)
	}
	SetSpacing(0)
	if got := GetSpacing(); got != MinSpacing {
		t.Errorf("SetSpacing(0): got %f, want clamp to %f", got, MinSpacing)
	}

	SetScale(100)
	if got := GetScale(); got != MaxScale {
		t.Errorf("SetScale(100): got %f, want clamp to %f", got, MaxScale)
	}

	SetThickness(-1)
	if got := GetThickness(); got != MinThickness {
		t.Errorf("SetThickness(-1): got %f, want clamp to %f", got, MinThickness)
	}

	SetSpeed(99)
	if got := GetSpeed(); got != MaxSpeed {
		t.Errorf("SetSpeed(99): got %f, want clamp to %f", got, MaxSpeed)
	}

	SetFPSLimit(-5)
	if got := GetFPSLimit(); got != 0 {
		t.Errorf("SetFPSLimit(-5): got %d, want 0", got)
	}

	// restore defaults for other tests
	SetSpacing(0.12)
	SetScale(3.0)
	SetThickness(0.01)
	SetSpeed(1.0)
	SetFPSLimit(60)
}

// TestLoadFile verifies a TOML file applies to the live settings
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "topoflow.toml")
	content := `
[render]
style = "abstract"
spacing = 0.2
scale = 4.5
thickness = 0.02
speed = 2.0
fps_limit = 120
tuner = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if !f.Render.Tuner {
		t.Error("expected tuner opt-in from file")
	}
	if got := GetStyle(); got != terrain.StyleAbstract {
		t.Errorf("style: got %v, want abstract", got)
	}
	if got := GetSpacing(); got != 0.2 {
		t.Errorf("spacing: got %f, want 0.2", got)
	}
	if got := GetFPSLimit(); got != 120 {
		t.Errorf("fps_limit: got %d, want 120", got)
	}

	// restore defaults
	SetStyle(terrain.StyleMountains)
	SetSpacing(0.12)
	SetScale(3.0)
	SetThickness(0.01)
	SetSpeed(1.0)
	SetFPSLimit(60)
}

// TestLoadFileUnknownStyle verifies a bad style name is rejected
func TestLoadFileUnknownStyle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("[render]\nstyle = \"volcano\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile should reject unknown style names")
	}
}

// TestLoadFileMissing verifies a missing file reports as not-exist
func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !IsNotExist(err) {
		t.Errorf("IsNotExist(%v) = false, want true", err)
	}
}
