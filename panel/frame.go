package panel

import (
	"github.com/gridcase/gridcase"
	"github.com/gridcase/gridcase/render"
)

// buildFrameSection emits one section of the front frame: a solid
// sheet pierced by the window grid, built from additive strips, plus
// border extensions, mount hole markers and interlocking tabs. It
// returns the final footprint including borders.
func buildFrameSection(m *render.Mesh, g gridcase.GridSpec, sec gridcase.Section) (width, depth float64, err error) {
	lb, rb, bb, tb := frameBorders(g, sec)
	width = sec.GridWidth(g) + lb + rb
	depth = sec.GridDepth(g) + bb + tb

	for _, b := range frameStrips(g, sec) {
		if err := b.emit(m); err != nil {
			return 0, 0, err
		}
	}
	if err := addMountRings(m, g, sec, width, depth); err != nil {
		return 0, 0, err
	}
	if err := addTabs(m, sec, width, depth, g.Thickness); err != nil {
		return 0, 0, err
	}
	return width, depth, nil
}

// frameBorders returns the border widths attached to this section:
// nonzero only on true outer panel edges.
func frameBorders(g gridcase.GridSpec, sec gridcase.Section) (left, right, bottom, top float64) {
	if sec.Leftmost {
		left = g.Border
	}
	if sec.Rightmost {
		right = g.Border
	}
	if sec.Bottommost {
		bottom = g.Border
	}
	if sec.Topmost {
		top = g.Border
	}
	return left, right, bottom, top
}

// frameStrips computes the additive strip decomposition of one frame
// section: the inverse of the window punch pattern. Horizontal strips
// run the full grid width, one per row edge; vertical strips fill
// between windows and span only their window row's height, so the
// margins already covered horizontally are not double-filled. Strips
// thinner than the minimum feature size are suppressed; a collapsed
// remainder strip vanishes instead of going negative.
func frameStrips(g gridcase.GridSpec, sec gridcase.Section) []box {
	lb, rb, bb, tb := frameBorders(g, sec)
	gw := sec.GridWidth(g)
	gd := sec.GridDepth(g)
	margin := g.Margin()
	th := g.Thickness

	var out []box
	add := func(b box) {
		if b.w >= gridcase.MinFeature && b.d >= gridcase.MinFeature {
			out = append(out, b)
		}
	}

	// Horizontal strips, row edges 0..RowCount. The last strip fills
	// from its nominal start to the end of the grid, absorbing
	// accumulated rounding.
	for i := 0; i <= sec.RowCount; i++ {
		var y0, hgt float64
		switch {
		case i == 0:
			y0, hgt = bb, margin
		case i == sec.RowCount:
			y0 = bb + float64(i-1)*g.Pitch + margin + g.Cutout
			hgt = bb + gd - y0
		default:
			y0 = bb + float64(i-1)*g.Pitch + margin + g.Cutout
			hgt = g.Pitch - g.Cutout
		}
		add(box{lb, y0, 0, gw, hgt, th})
	}

	// Vertical strips between windows, per window row.
	for r := 0; r < sec.RowCount; r++ {
		y0 := bb + float64(r)*g.Pitch + margin
		for c := 0; c <= sec.ColCount; c++ {
			var x0, wid float64
			switch {
			case c == 0:
				x0, wid = lb, margin
			case c == sec.ColCount:
				x0 = lb + float64(c-1)*g.Pitch + margin + g.Cutout
				wid = lb + gw - x0
			default:
				x0 = lb + float64(c-1)*g.Pitch + margin + g.Cutout
				wid = g.Pitch - g.Cutout
			}
			add(box{x0, y0, 0, wid, g.Cutout, th})
		}
	}

	// Border extensions, only on true outer edges. Left/right borders
	// span the full depth including both corners; bottom/top span the
	// grid width, so each panel corner is filled exactly once.
	depth := gd + bb + tb
	if lb > 0 {
		add(box{0, 0, 0, lb, depth, th})
	}
	if rb > 0 {
		add(box{lb + gw, 0, 0, rb, depth, th})
	}
	if bb > 0 {
		add(box{lb, 0, 0, gw, bb, th})
	}
	if tb > 0 {
		add(box{lb, bb + gd, 0, gw, tb, th})
	}
	return out
}

// addMountRings marks the mount drill positions with uncapped ring
// walls on the panel corners this section owns. Rings are reference
// geometry for the drill, not cuts.
func addMountRings(m *render.Mesh, g gridcase.GridSpec, sec gridcase.Section, width, depth float64) error {
	if g.MountDiameter <= 0 || g.Border <= 0 {
		return nil
	}
	r := g.MountDiameter / 2
	in := g.MountInset
	corners := []struct {
		owned bool
		x, y  float64
	}{
		{sec.Leftmost && sec.Bottommost, in, in},
		{sec.Rightmost && sec.Bottommost, width - in, in},
		{sec.Leftmost && sec.Topmost, in, depth - in},
		{sec.Rightmost && sec.Topmost, width - in, depth - in},
	}
	for _, c := range corners {
		if !c.owned {
			continue
		}
		if err := m.AddHollowRing(c.x, c.y, 0, r, g.Thickness, ringSegments); err != nil {
			return err
		}
	}
	return nil
}
