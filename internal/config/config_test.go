package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveClassic(t *testing.T) {
	cfg := Default()
	spec, plan, err := cfg.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if spec.Cols != 11 || spec.Rows != 10 {
		t.Errorf("classic grid = %dx%d, want 11x10", spec.Cols, spec.Rows)
	}
	if len(plan.ColGroups) != 3 || len(plan.RowGroups) != 3 {
		t.Errorf("classic plan = %v / %v, want 3x3 sections", plan.ColGroups, plan.RowGroups)
	}
}

func TestResolveAllPresets(t *testing.T) {
	for _, name := range presetNames() {
		cfg := Default()
		cfg.Preset = name
		if _, _, err := cfg.Resolve(); err != nil {
			t.Errorf("preset %s does not resolve: %v", name, err)
		}
	}
}

func TestResolveUnknownPreset(t *testing.T) {
	cfg := Default()
	cfg.Preset = "gigantic"
	_, _, err := cfg.Resolve()
	if err == nil {
		t.Fatal("unknown preset: expected error")
	}
	if !strings.Contains(err.Error(), "classic") {
		t.Errorf("error %q does not list known presets", err)
	}
}

func TestLoadFileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := `
out_dir: custom
parts: [frame]
grid:
  cols: 2
  rows: 2
  pitch: 40
  cutout: 30
  wall: 2
  thickness: 2
split:
  cols: [2]
  rows: [2]
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := Default()
	if err := LoadFile(cfg, path); err != nil {
		t.Fatal(err)
	}
	if cfg.OutDir != "custom" {
		t.Errorf("OutDir = %q, want custom", cfg.OutDir)
	}
	if len(cfg.Parts) != 1 || cfg.Parts[0] != "frame" {
		t.Errorf("Parts = %v, want [frame]", cfg.Parts)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	// Untouched keys keep their defaults.
	if !cfg.SVG || !cfg.DXF {
		t.Error("merge clobbered unrelated defaults")
	}

	spec, plan, err := cfg.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if spec.Cols != 2 || spec.Pitch != 40 {
		t.Errorf("override grid = %+v", spec)
	}
	if len(plan.ColGroups) != 1 || plan.ColGroups[0] != 2 {
		t.Errorf("override plan = %+v", plan)
	}
}

func TestResolveRejectsInvalidOverride(t *testing.T) {
	cfg := Default()
	cfg.Grid = &Grid{Cols: 2, Rows: 2, Pitch: 40, Cutout: 50, Wall: 2, Thickness: 2}
	cfg.Split = &Split{Cols: []int{2}, Rows: []int{2}}
	if _, _, err := cfg.Resolve(); err == nil {
		t.Error("cutout wider than pitch: expected error")
	}

	cfg = Default()
	cfg.Split = &Split{Cols: []int{4}, Rows: []int{4}}
	if _, _, err := cfg.Resolve(); err == nil {
		t.Error("split not covering the classic grid: expected error")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if err := LoadFile(Default(), filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing file: expected error")
	}
}
