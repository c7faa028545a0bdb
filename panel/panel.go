// Package panel builds the per-section solid geometry of the grid
// enclosure: the flat front frame with its window grid, and the 3D
// cell enclosure with notched divider walls. Every shape is composed
// from additive boxes and rings; windows, notches and holes are the
// gaps left between strips, never subtracted material.
package panel

import (
	"fmt"

	"github.com/gridcase/gridcase"
	"github.com/gridcase/gridcase/render"
)

// Interlocking tab dimensions. Tabs protrude tabDepth beyond an
// internal section edge and are tabWidth long along it; their height
// equals the sheet thickness of the part they are attached to.
const (
	tabWidth = 12.0
	tabDepth = 5.0
)

// ringSegments is the side quad count of mount hole ring markers.
const ringSegments = 32

// box is one axis-aligned additive solid, the unit of all panel
// geometry.
type box struct {
	x, y, z float64
	w, d, h float64
}

func (b box) emit(m *render.Mesh) error {
	return m.AddBox(b.x, b.y, b.z, b.w, b.d, b.h)
}

// Result is one generated section solid. Width and Depth are the final
// local footprint including any border, used for reporting; tabs
// protrude beyond it into the neighboring section's nominal area.
type Result struct {
	Section gridcase.Section
	Mesh    *render.Mesh
	Width   float64
	Depth   float64
}

// BuildFrame generates the front frame panel, one mesh per section of
// the split plan, strictly sequentially. Each section's strip math is
// local, starting at its own origin; border extensions are attached
// only on true outer edges.
func BuildFrame(g gridcase.GridSpec, plan gridcase.SplitPlan) ([]Result, error) {
	if err := validate(g, plan); err != nil {
		return nil, err
	}
	sections := plan.Sections()
	results := make([]Result, 0, len(sections))
	for _, sec := range sections {
		m := render.NewMesh("frame_" + sec.Label())
		w, d, err := buildFrameSection(m, g, sec)
		if err != nil {
			return nil, fmt.Errorf("panel: frame section %s: %w", sec.Label(), err)
		}
		results = append(results, Result{Section: sec, Mesh: m, Width: w, Depth: d})
	}
	return results, nil
}

// BuildCellGrid generates the 3D cell enclosure, one mesh per section:
// a solid base sheet carrying divider walls with wiring notches and
// corner pillars. The spec must have a positive wall height.
func BuildCellGrid(g gridcase.GridSpec, plan gridcase.SplitPlan) ([]Result, error) {
	if err := validate(g, plan); err != nil {
		return nil, err
	}
	if g.WallHeight <= 0 {
		return nil, fmt.Errorf("panel: cell grid requires a positive wall height, got %g", g.WallHeight)
	}
	sections := plan.Sections()
	results := make([]Result, 0, len(sections))
	for _, sec := range sections {
		m := render.NewMesh("cells_" + sec.Label())
		w, d, err := buildCellSection(m, g, sec)
		if err != nil {
			return nil, fmt.Errorf("panel: cell section %s: %w", sec.Label(), err)
		}
		results = append(results, Result{Section: sec, Mesh: m, Width: w, Depth: d})
	}
	return results, nil
}

func validate(g gridcase.GridSpec, plan gridcase.SplitPlan) error {
	if err := g.Validate(); err != nil {
		return err
	}
	return plan.Validate(g)
}

// addTabs attaches protruding interlocking tabs on internal section
// edges: the right edge when a column neighbor exists to the right,
// the top edge when a row neighbor exists above. Mating is one-sided;
// no recess is generated on the neighboring section.
func addTabs(m *render.Mesh, sec gridcase.Section, width, depth, thickness float64) error {
	fractions := [2]float64{1.0 / 3.0, 2.0 / 3.0}
	if !sec.Rightmost {
		for _, f := range fractions {
			if err := m.AddBox(width, f*depth-tabWidth/2, 0, tabDepth, tabWidth, thickness); err != nil {
				return err
			}
		}
	}
	if !sec.Topmost {
		for _, f := range fractions {
			if err := m.AddBox(f*width-tabWidth/2, depth, 0, tabWidth, tabDepth, thickness); err != nil {
				return err
			}
		}
	}
	return nil
}
