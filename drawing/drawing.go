// Package drawing emits the 2D fabrication drawings for the front
// panel: an SVG with cut and engrave layers for laser services, and a
// DXF exchange file restricted to line and circle entities, since many
// fabrication services reject embedded fonts and text.
//
// Drawings describe the uncut full panel; sectioning only applies to
// the printed solids.
package drawing

import (
	"fmt"

	"github.com/gridcase/gridcase"
)

// Params describes one panel drawing.
type Params struct {
	Spec gridcase.GridSpec
	// Name is the drawing title, engraved on the SVG only.
	Name string
	// Labels optionally holds one engrave label per cell, indexed
	// [row][col]. Missing rows or cells are skipped.
	Labels [][]string
}

// rect is one axis-aligned rectangle of the cut pattern.
type rect struct {
	x, y, w, h float64
}

// circle is one drill or dot of the pattern.
type circle struct {
	x, y, r float64
}

// label returns the engrave label for cell (c,r), or "".
func (p Params) label(c, r int) string {
	if r >= len(p.Labels) || c >= len(p.Labels[r]) {
		return ""
	}
	return p.Labels[r][c]
}

// outline returns the panel outline rectangle.
func outline(g gridcase.GridSpec) rect {
	return rect{0, 0, g.PanelWidth(), g.PanelDepth()}
}

// windows returns the cut rectangles of all cell windows in row-major
// order.
func windows(g gridcase.GridSpec) []rect {
	margin := g.Margin()
	out := make([]rect, 0, g.Cols*g.Rows)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			out = append(out, rect{
				x: g.Border + float64(c)*g.Pitch + margin,
				y: g.Border + float64(r)*g.Pitch + margin,
				w: g.Cutout,
				h: g.Cutout,
			})
		}
	}
	return out
}

// mountHoles returns the four mount drill circles, or nil when the
// spec carries no mount holes.
func mountHoles(g gridcase.GridSpec) []circle {
	if g.MountDiameter <= 0 {
		return nil
	}
	w, d := g.PanelWidth(), g.PanelDepth()
	in, r := g.MountInset, g.MountDiameter/2
	return []circle{
		{in, in, r},
		{w - in, in, r},
		{in, d - in, r},
		{w - in, d - in, r},
	}
}

// cornerDots returns the alignment dots at the window grid corners, or
// nil when the spec carries none.
func cornerDots(g gridcase.GridSpec) []circle {
	if g.CornerDotDiameter <= 0 {
		return nil
	}
	gw := float64(g.Cols) * g.Pitch
	gd := float64(g.Rows) * g.Pitch
	b, r := g.Border, g.CornerDotDiameter/2
	return []circle{
		{b, b, r},
		{b + gw, b, r},
		{b, b + gd, r},
		{b + gw, b + gd, r},
	}
}

// cellCenter returns the center of cell (c,r) in panel coordinates.
func cellCenter(g gridcase.GridSpec, c, r int) (x, y float64) {
	x = g.Border + (float64(c)+0.5)*g.Pitch
	y = g.Border + (float64(r)+0.5)*g.Pitch
	return x, y
}

func validate(p Params) error {
	if err := p.Spec.Validate(); err != nil {
		return fmt.Errorf("drawing: %w", err)
	}
	return nil
}
