// Package config resolves generation settings with the precedence
// defaults < preset < config file < command line flags.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gridcase/gridcase"
)

// Config holds one generation run's settings.
type Config struct {
	Preset  string   `yaml:"preset"`
	OutDir  string   `yaml:"out_dir"`
	Parts   []string `yaml:"parts"` // "frame" and/or "grid"
	SVG     bool     `yaml:"svg"`
	DXF     bool     `yaml:"dxf"`
	Preview bool     `yaml:"preview"`
	Logging Logging  `yaml:"logging"`
	// Grid and Split, when present, replace the preset's values
	// entirely.
	Grid  *Grid  `yaml:"grid"`
	Split *Split `yaml:"split"`
}

// Logging holds log settings.
type Logging struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Grid mirrors gridcase.GridSpec for YAML loading.
type Grid struct {
	Cols              int     `yaml:"cols"`
	Rows              int     `yaml:"rows"`
	Pitch             float64 `yaml:"pitch"`
	Cutout            float64 `yaml:"cutout"`
	Wall              float64 `yaml:"wall"`
	Thickness         float64 `yaml:"thickness"`
	WallHeight        float64 `yaml:"wall_height"`
	Border            float64 `yaml:"border"`
	NotchWidth        float64 `yaml:"notch_width"`
	NotchHeight       float64 `yaml:"notch_height"`
	MountInset        float64 `yaml:"mount_inset"`
	MountDiameter     float64 `yaml:"mount_diameter"`
	CornerDotDiameter float64 `yaml:"corner_dot_diameter"`
}

// Split mirrors gridcase.SplitPlan for YAML loading.
type Split struct {
	Cols []int `yaml:"cols"`
	Rows []int `yaml:"rows"`
}

// Default returns the baseline configuration.
func Default() *Config {
	return &Config{
		Preset: "classic",
		OutDir: "out",
		Parts:  []string{"frame", "grid"},
		SVG:    true,
		DXF:    true,
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadFile merges the YAML file at path into cfg.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return nil
}

// Resolve produces the grid spec and split plan for the run, starting
// from the named preset and applying any grid/split override. The
// result is validated.
func (c *Config) Resolve() (gridcase.GridSpec, gridcase.SplitPlan, error) {
	preset, ok := presets[c.Preset]
	if !ok {
		return gridcase.GridSpec{}, gridcase.SplitPlan{}, fmt.Errorf("config: unknown preset %q (have %v)", c.Preset, presetNames())
	}
	spec := preset.Grid
	plan := preset.Split
	if c.Grid != nil {
		spec = gridcase.GridSpec{
			Cols: c.Grid.Cols, Rows: c.Grid.Rows,
			Pitch: c.Grid.Pitch, Cutout: c.Grid.Cutout,
			Wall: c.Grid.Wall, Thickness: c.Grid.Thickness,
			WallHeight: c.Grid.WallHeight, Border: c.Grid.Border,
			NotchWidth: c.Grid.NotchWidth, NotchHeight: c.Grid.NotchHeight,
			MountInset: c.Grid.MountInset, MountDiameter: c.Grid.MountDiameter,
			CornerDotDiameter: c.Grid.CornerDotDiameter,
		}
	}
	if c.Split != nil {
		plan = gridcase.SplitPlan{ColGroups: c.Split.Cols, RowGroups: c.Split.Rows}
	}
	if err := spec.Validate(); err != nil {
		return gridcase.GridSpec{}, gridcase.SplitPlan{}, err
	}
	if err := plan.Validate(spec); err != nil {
		return gridcase.GridSpec{}, gridcase.SplitPlan{}, err
	}
	return spec, plan, nil
}
