package config

import (
	"sort"

	"github.com/gridcase/gridcase"
)

// Preset bundles a grid spec with the split plan that fits it on a
// common printer bed.
type Preset struct {
	Grid  gridcase.GridSpec
	Split gridcase.SplitPlan
}

// presets holds the built-in size presets. Dimensions in millimeters.
var presets = map[string]Preset{
	// classic is the full-size 11x10 panel. Sections stay under
	// 205x205 mm so they fit a 220 mm bed with borders and tabs.
	"classic": {
		Grid: gridcase.GridSpec{
			Cols: 11, Rows: 10,
			Pitch:             45,
			Cutout:            37,
			Wall:              3,
			Thickness:         3,
			WallHeight:        16,
			Border:            25,
			NotchWidth:        8,
			NotchHeight:       6,
			MountInset:        12,
			MountDiameter:     4.2,
			CornerDotDiameter: 2,
		},
		Split: gridcase.SplitPlan{
			ColGroups: []int{4, 4, 3},
			RowGroups: []int{4, 3, 3},
		},
	},
	// compact is a desk-sized 8x8 panel that splits into four
	// quadrants.
	"compact": {
		Grid: gridcase.GridSpec{
			Cols: 8, Rows: 8,
			Pitch:             30,
			Cutout:            24,
			Wall:              2.4,
			Thickness:         2.4,
			WallHeight:        12,
			Border:            16,
			NotchWidth:        6,
			NotchHeight:       5,
			MountInset:        8,
			MountDiameter:     3.4,
			CornerDotDiameter: 1.5,
		},
		Split: gridcase.SplitPlan{
			ColGroups: []int{4, 4},
			RowGroups: []int{4, 4},
		},
	},
}

func presetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
