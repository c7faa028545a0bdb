package panel

import (
	"github.com/gridcase/gridcase"
	"github.com/gridcase/gridcase/render"
)

// wallPos returns the start of divider band i out of count+1 bands
// across a span of count cells. Edge bands sit flush with the section
// edge; interior bands are centered on the cell boundary, so every
// interior wall run between two pillars is pitch-wall long.
func wallPos(i, count int, pitch, wall float64) float64 {
	switch {
	case i == 0:
		return 0
	case i == count:
		return float64(count)*pitch - wall
	default:
		return float64(i)*pitch - wall/2
	}
}

// notchSpans decomposes a wall run with a centered notch into the
// (start, length) spans of the flanking boxes below notch height.
// Runs too short to flank the notch report solid=true and must be
// emitted as one full-height box instead.
func notchSpans(run, notchWidth float64) (spans [2][2]float64, solid bool) {
	flank := (run - notchWidth) / 2
	if flank < gridcase.MinFeature {
		return spans, true
	}
	spans[0] = [2]float64{0, flank}
	spans[1] = [2]float64{flank + notchWidth, flank}
	return spans, false
}

// buildCellSection emits one section of the 3D cell enclosure: a base
// sheet, divider walls in both directions with wiring notches on
// interior walls, and full-height pillars at every divider crossing.
// A notch is never cut; the wall around it is reconstructed from a
// full box above notch height and two flanking boxes below.
func buildCellSection(m *render.Mesh, g gridcase.GridSpec, sec gridcase.Section) (width, depth float64, err error) {
	gw := sec.GridWidth(g)
	gd := sec.GridDepth(g)
	z0 := g.Thickness

	if err := m.AddBox(0, 0, 0, gw, gd, g.Thickness); err != nil {
		return 0, 0, err
	}

	// Vertical divider lines 0..ColCount, one wall run per cell row.
	for i := 0; i <= sec.ColCount; i++ {
		x := wallPos(i, sec.ColCount, g.Pitch, g.Wall)
		edge := i == 0 || i == sec.ColCount
		for j := 0; j < sec.RowCount; j++ {
			y0 := wallPos(j, sec.RowCount, g.Pitch, g.Wall) + g.Wall
			run := wallPos(j+1, sec.RowCount, g.Pitch, g.Wall) - y0
			if run < gridcase.MinFeature {
				continue
			}
			if err := emitWallRun(m, g, edge, x, y0, z0, run, true); err != nil {
				return 0, 0, err
			}
		}
	}

	// Horizontal divider lines 0..RowCount, mirrored across columns.
	for j := 0; j <= sec.RowCount; j++ {
		y := wallPos(j, sec.RowCount, g.Pitch, g.Wall)
		edge := j == 0 || j == sec.RowCount
		for i := 0; i < sec.ColCount; i++ {
			x0 := wallPos(i, sec.ColCount, g.Pitch, g.Wall) + g.Wall
			run := wallPos(i+1, sec.ColCount, g.Pitch, g.Wall) - x0
			if run < gridcase.MinFeature {
				continue
			}
			if err := emitWallRun(m, g, edge, y, x0, z0, run, false); err != nil {
				return 0, 0, err
			}
		}
	}

	// Pillars at every divider crossing, full height, regardless of
	// notch logic. They carry the structural continuity at T-junctions
	// and corners.
	for i := 0; i <= sec.ColCount; i++ {
		x := wallPos(i, sec.ColCount, g.Pitch, g.Wall)
		for j := 0; j <= sec.RowCount; j++ {
			y := wallPos(j, sec.RowCount, g.Pitch, g.Wall)
			if err := m.AddBox(x, y, z0, g.Wall, g.Wall, g.WallHeight); err != nil {
				return 0, 0, err
			}
		}
	}

	if err := addTabs(m, sec, gw, gd, g.Thickness); err != nil {
		return 0, 0, err
	}
	return gw, gd, nil
}

// emitWallRun emits one wall segment between two pillars. Edge walls
// are solid; interior walls carry a centered wiring notch at the base.
// vertical selects whether the run extends along y (true) or x
// (false); pos is the divider's cross-axis start.
func emitWallRun(m *render.Mesh, g gridcase.GridSpec, edge bool, pos, start, z0, run float64, vertical bool) error {
	wallBox := func(along, length, z, height float64) error {
		if vertical {
			return m.AddBox(pos, along, z, g.Wall, length, height)
		}
		return m.AddBox(along, pos, z, length, g.Wall, height)
	}
	if edge {
		return wallBox(start, run, z0, g.WallHeight)
	}
	spans, solid := notchSpans(run, g.NotchWidth)
	if solid {
		return wallBox(start, run, z0, g.WallHeight)
	}
	if err := wallBox(start, run, z0+g.NotchHeight, g.WallHeight-g.NotchHeight); err != nil {
		return err
	}
	for _, s := range spans {
		if err := wallBox(start+s[0], s[1], z0, g.NotchHeight); err != nil {
			return err
		}
	}
	return nil
}
