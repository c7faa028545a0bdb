package panel

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/gridcase/gridcase"
)

func classicSpec() gridcase.GridSpec {
	return gridcase.GridSpec{
		Cols: 11, Rows: 10,
		Pitch: 45, Cutout: 37,
		Wall: 3, Thickness: 3,
		WallHeight: 16, Border: 25,
		NotchWidth: 8, NotchHeight: 6,
		MountInset: 12, MountDiameter: 4.2,
	}
}

func innerSection() gridcase.Section {
	// 4x4 cells, no outer edges: every border is zero and tabs go on
	// the right and top.
	return gridcase.Section{ColCount: 4, RowCount: 4, ColIndex: 1, RowIndex: 1}
}

func TestFrameBorders(t *testing.T) {
	g := classicSpec()
	l, r, b, tp := frameBorders(g, innerSection())
	if l != 0 || r != 0 || b != 0 || tp != 0 {
		t.Errorf("inner section borders = %g %g %g %g, want all zero", l, r, b, tp)
	}
	corner := gridcase.Section{ColCount: 4, RowCount: 4, Leftmost: true, Topmost: true}
	l, r, b, tp = frameBorders(g, corner)
	if l != g.Border || tp != g.Border || r != 0 || b != 0 {
		t.Errorf("corner section borders = %g %g %g %g", l, r, b, tp)
	}
}

func TestFrameStripHeights(t *testing.T) {
	g := classicSpec()
	sec := innerSection()
	strips := frameStrips(g, sec)

	// Horizontal strips sit at the row edges; with a 45 pitch and 37
	// cutout the edge strips are the 4 mm margin and the interior
	// strips the 8 mm between cutouts.
	margin := g.Margin()
	if !scalar.EqualWithinAbs(margin, 4, 1e-12) {
		t.Fatalf("margin = %g, want 4", margin)
	}
	var edges, interior int
	for _, b := range strips {
		if b.w != sec.GridWidth(g) {
			continue // vertical strip or border
		}
		switch {
		case scalar.EqualWithinAbs(b.d, margin, 1e-9):
			edges++
		case scalar.EqualWithinAbs(b.d, g.Pitch-g.Cutout, 1e-9):
			interior++
		default:
			t.Errorf("unexpected horizontal strip height %g", b.d)
		}
	}
	if edges != 2 {
		t.Errorf("edge strip count = %d, want 2", edges)
	}
	if interior != sec.RowCount-1 {
		t.Errorf("interior strip count = %d, want %d", interior, sec.RowCount-1)
	}
}

func TestFrameStripsCoverGrid(t *testing.T) {
	g := classicSpec()
	sec := innerSection()
	gw := sec.GridWidth(g)
	gd := sec.GridDepth(g)

	// The window area per row is RowCount ribbons of Cutout height; the
	// strips must fill exactly the remaining area of the grid.
	var filled float64
	for _, b := range frameStrips(g, sec) {
		filled += b.w * b.d
	}
	want := gw*gd - float64(sec.ColCount*sec.RowCount)*g.Cutout*g.Cutout
	if !scalar.EqualWithinAbs(filled, want, 1e-6) {
		t.Errorf("strip area = %g, want %g", filled, want)
	}
}
