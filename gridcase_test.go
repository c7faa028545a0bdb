package gridcase_test

import (
	"testing"

	"github.com/gridcase/gridcase"
)

func validSpec() gridcase.GridSpec {
	return gridcase.GridSpec{
		Cols: 11, Rows: 10,
		Pitch: 45, Cutout: 37,
		Wall: 3, Thickness: 3,
		WallHeight: 16, Border: 25,
		NotchWidth: 8, NotchHeight: 6,
		MountInset: 12, MountDiameter: 4.2,
		CornerDotDiameter: 2,
	}
}

func TestGridSpecValidate(t *testing.T) {
	if err := validSpec().Validate(); err != nil {
		t.Fatalf("valid spec rejected: %v", err)
	}
	cases := []struct {
		name   string
		mutate func(*gridcase.GridSpec)
	}{
		{"no cells", func(g *gridcase.GridSpec) { g.Cols = 0 }},
		{"cutout equals pitch", func(g *gridcase.GridSpec) { g.Cutout = g.Pitch }},
		{"cutout exceeds pitch", func(g *gridcase.GridSpec) { g.Cutout = g.Pitch + 1 }},
		{"zero wall", func(g *gridcase.GridSpec) { g.Wall = 0 }},
		{"zero thickness", func(g *gridcase.GridSpec) { g.Thickness = 0 }},
		{"negative border", func(g *gridcase.GridSpec) { g.Border = -1 }},
		{"notch wider than cell", func(g *gridcase.GridSpec) { g.NotchWidth = g.Pitch - g.Wall }},
		{"notch taller than wall", func(g *gridcase.GridSpec) { g.NotchHeight = g.WallHeight }},
		{"mount hole outside border", func(g *gridcase.GridSpec) { g.MountInset = g.Border }},
	}
	for _, tc := range cases {
		g := validSpec()
		tc.mutate(&g)
		if err := g.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestSplitPlanValidate(t *testing.T) {
	g := validSpec()
	good := gridcase.SplitPlan{ColGroups: []int{4, 4, 3}, RowGroups: []int{4, 3, 3}}
	if err := good.Validate(g); err != nil {
		t.Fatalf("valid plan rejected: %v", err)
	}
	bad := []gridcase.SplitPlan{
		{ColGroups: []int{4, 4}, RowGroups: []int{4, 3, 3}},    // cols sum 8 != 11
		{ColGroups: []int{4, 4, 3}, RowGroups: []int{4, 3, 4}}, // rows sum 11 != 10
		{ColGroups: []int{4, 4, 3}, RowGroups: nil},
		{ColGroups: []int{11, 0}, RowGroups: []int{4, 3, 3}}, // zero-size group
	}
	for i, p := range bad {
		if err := p.Validate(g); err == nil {
			t.Errorf("plan %d: expected validation error", i)
		}
	}
}

func TestSectionsClassicSplit(t *testing.T) {
	plan := gridcase.SplitPlan{ColGroups: []int{4, 4, 3}, RowGroups: []int{4, 3, 3}}
	if err := plan.Validate(validSpec()); err != nil {
		t.Fatal(err)
	}
	secs := plan.Sections()
	if len(secs) != 9 {
		t.Fatalf("expected 9 sections, got %d", len(secs))
	}
	// Row-major: first three sections share row group 0.
	for i := 0; i < 3; i++ {
		if secs[i].RowIndex != 0 {
			t.Errorf("section %d: RowIndex = %d, want 0", i, secs[i].RowIndex)
		}
		if secs[i].ColIndex != i {
			t.Errorf("section %d: ColIndex = %d, want %d", i, secs[i].ColIndex, i)
		}
	}
	first := secs[0]
	if !first.Leftmost || !first.Topmost || first.Rightmost || first.Bottommost {
		t.Errorf("section [0,0] flags = %+v, want leftmost+topmost only", first)
	}
	last := secs[8]
	if !last.Rightmost || !last.Bottommost || last.Leftmost || last.Topmost {
		t.Errorf("section [2,2] flags = %+v, want rightmost+bottommost only", last)
	}
	if last.ColStart != 8 || last.ColCount != 3 || last.RowStart != 7 || last.RowCount != 3 {
		t.Errorf("section [2,2] range = %+v", last)
	}

	// Cell counts per section match the plan.
	for _, s := range secs {
		if s.ColCount != plan.ColGroups[s.ColIndex] || s.RowCount != plan.RowGroups[s.RowIndex] {
			t.Errorf("section %s: counts %dx%d do not match plan", s.Label(), s.ColCount, s.RowCount)
		}
	}
}

func TestSectionsNominalTiling(t *testing.T) {
	g := validSpec()
	plan := gridcase.SplitPlan{ColGroups: []int{4, 4, 3}, RowGroups: []int{4, 3, 3}}
	secs := plan.Sections()
	// Within any row of sections the nominal grid widths sum to the
	// full grid width; same for depths within a column.
	for ri := range plan.RowGroups {
		var sum float64
		for _, s := range secs {
			if s.RowIndex == ri {
				sum += s.GridWidth(g)
			}
		}
		if want := float64(g.Cols) * g.Pitch; sum != want {
			t.Errorf("row %d: grid widths sum to %g, want %g", ri, sum, want)
		}
	}
	for ci := range plan.ColGroups {
		var sum float64
		for _, s := range secs {
			if s.ColIndex == ci {
				sum += s.GridDepth(g)
			}
		}
		if want := float64(g.Rows) * g.Pitch; sum != want {
			t.Errorf("col %d: grid depths sum to %g, want %g", ci, sum, want)
		}
	}
}
