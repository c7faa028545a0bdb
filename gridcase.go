// Package gridcase holds the shared data model for the grid enclosure
// generators: the grid parameters, the split plan that partitions the
// grid into printable sections, and the sections themselves.
//
// All dimensions are millimeters. The packages under this module build
// purely additive triangle geometry from these values; nothing here is
// mutated after a generation run starts.
package gridcase

import "fmt"

// MinFeature is the minimum emitted feature size in millimeters.
// Computed strips or boxes with any dimension below this tolerance are
// suppressed rather than emitted as degenerate or negative geometry.
const MinFeature = 0.01

// GridSpec describes one rectangular grid of square cells and the
// solid features built around it. A zero WallHeight means the spec
// describes a flat frame panel only.
type GridSpec struct {
	// Cols and Rows are the cell counts of the full grid.
	Cols int
	Rows int
	// Pitch is the center-to-center cell spacing. Cutout is the square
	// window opening per cell and must be smaller than Pitch.
	Pitch  float64
	Cutout float64
	// Wall is the divider wall thickness of the cell enclosure.
	Wall float64
	// Thickness is the sheet thickness of the frame panel and of the
	// cell enclosure base.
	Thickness float64
	// WallHeight is the divider wall height above the base. Zero for
	// flat frame panels.
	WallHeight float64
	// Border is the solid bezel width surrounding the window grid on
	// true outer panel edges.
	Border float64
	// NotchWidth and NotchHeight size the wiring relief at the base of
	// interior divider walls.
	NotchWidth  float64
	NotchHeight float64
	// MountInset and MountDiameter place the panel mount drills,
	// measured from the outer panel corner. CornerDotDiameter sizes
	// the engraved alignment dots at the window grid corners.
	MountInset        float64
	MountDiameter     float64
	CornerDotDiameter float64
}

// Margin returns the solid margin between a cell window and its cell
// boundary, (Pitch-Cutout)/2.
func (g GridSpec) Margin() float64 { return (g.Pitch - g.Cutout) / 2 }

// CellInner returns the clear wall run between two pillars of the cell
// enclosure, Pitch-Wall.
func (g GridSpec) CellInner() float64 { return g.Pitch - g.Wall }

// PanelWidth returns the full panel width including both borders.
func (g GridSpec) PanelWidth() float64 { return float64(g.Cols)*g.Pitch + 2*g.Border }

// PanelDepth returns the full panel depth including both borders.
func (g GridSpec) PanelDepth() float64 { return float64(g.Rows)*g.Pitch + 2*g.Border }

// Validate checks the spec invariants and returns a descriptive error
// for the first violation found. It must pass before any geometry is
// built.
func (g GridSpec) Validate() error {
	if g.Cols < 1 || g.Rows < 1 {
		return fmt.Errorf("gridcase: grid must have at least one cell, got %dx%d", g.Cols, g.Rows)
	}
	if g.Pitch <= 0 {
		return fmt.Errorf("gridcase: pitch must be positive, got %g", g.Pitch)
	}
	if g.Cutout <= 0 || g.Cutout >= g.Pitch {
		return fmt.Errorf("gridcase: cutout %g must be in (0, pitch=%g)", g.Cutout, g.Pitch)
	}
	if g.Wall <= 0 {
		return fmt.Errorf("gridcase: wall thickness must be positive, got %g", g.Wall)
	}
	if g.Thickness <= 0 {
		return fmt.Errorf("gridcase: sheet thickness must be positive, got %g", g.Thickness)
	}
	if g.Border < 0 {
		return fmt.Errorf("gridcase: border must not be negative, got %g", g.Border)
	}
	if g.WallHeight < 0 {
		return fmt.Errorf("gridcase: wall height must not be negative, got %g", g.WallHeight)
	}
	if g.WallHeight > 0 {
		if g.NotchWidth <= 0 || g.NotchWidth >= g.Pitch-g.Wall {
			return fmt.Errorf("gridcase: notch width %g must be in (0, pitch-wall=%g)", g.NotchWidth, g.Pitch-g.Wall)
		}
		if g.NotchHeight <= 0 || g.NotchHeight >= g.WallHeight {
			return fmt.Errorf("gridcase: notch height %g must be in (0, wall height=%g)", g.NotchHeight, g.WallHeight)
		}
	}
	if g.MountDiameter < 0 || g.MountInset < 0 {
		return fmt.Errorf("gridcase: mount hole inset/diameter must not be negative")
	}
	if g.MountDiameter > 0 && g.Border > 0 && g.MountInset+g.MountDiameter/2 > g.Border {
		return fmt.Errorf("gridcase: mount hole (inset %g, diameter %g) does not fit in border %g",
			g.MountInset, g.MountDiameter, g.Border)
	}
	return nil
}
