package panel

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestWallPos(t *testing.T) {
	const pitch, wall = 45.0, 3.0
	if got := wallPos(0, 4, pitch, wall); got != 0 {
		t.Errorf("first band at %g, want 0", got)
	}
	if got := wallPos(4, 4, pitch, wall); got != 4*pitch-wall {
		t.Errorf("last band at %g, want %g", got, 4*pitch-wall)
	}
	if got := wallPos(2, 4, pitch, wall); got != 2*pitch-wall/2 {
		t.Errorf("interior band at %g, want %g", got, 2*pitch-wall/2)
	}

	// Interior wall runs between consecutive bands are pitch-wall long.
	for i := 1; i < 3; i++ {
		run := wallPos(i+1, 4, pitch, wall) - wallPos(i, 4, pitch, wall) - wall
		if !scalar.EqualWithinAbs(run, pitch-wall, 1e-12) {
			t.Errorf("run after band %d = %g, want %g", i, run, pitch-wall)
		}
	}
}

func TestNotchSpans(t *testing.T) {
	// 42 mm run with an 8 mm notch leaves 17 mm flanks.
	spans, solid := notchSpans(42, 8)
	if solid {
		t.Fatal("notchable run reported solid")
	}
	if spans[0] != [2]float64{0, 17} || spans[1] != [2]float64{25, 17} {
		t.Errorf("spans = %v", spans)
	}
	// Flanks and notch reassemble the full run with no gap.
	total := spans[0][1] + 8 + spans[1][1]
	if !scalar.EqualWithinAbs(total, 42, 1e-12) {
		t.Errorf("reassembled run = %g, want 42", total)
	}

	// A run barely wider than the notch cannot flank it.
	if _, solid := notchSpans(8.01, 8); !solid {
		t.Error("sub-feature flank not reported solid")
	}
	if _, solid := notchSpans(8, 8); !solid {
		t.Error("zero flank not reported solid")
	}
}
