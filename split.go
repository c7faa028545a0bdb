package gridcase

import "fmt"

// SplitPlan partitions the grid into bed-sized printable sections.
// ColGroups and RowGroups hold the per-section cell counts; their sums
// must equal the grid's Cols and Rows exactly. Row group 0 is the top
// row of the panel.
type SplitPlan struct {
	ColGroups []int
	RowGroups []int
}

// Validate checks that the plan covers the grid exactly.
func (p SplitPlan) Validate(g GridSpec) error {
	if len(p.ColGroups) == 0 || len(p.RowGroups) == 0 {
		return fmt.Errorf("gridcase: split plan must have at least one column and one row group")
	}
	if err := checkGroups("column", p.ColGroups, g.Cols); err != nil {
		return err
	}
	return checkGroups("row", p.RowGroups, g.Rows)
}

func checkGroups(kind string, groups []int, total int) error {
	sum := 0
	for i, n := range groups {
		if n < 1 {
			return fmt.Errorf("gridcase: %s group %d must be at least 1 cell, got %d", kind, i, n)
		}
		sum += n
	}
	if sum != total {
		return fmt.Errorf("gridcase: %s groups sum to %d, grid has %d", kind, sum, total)
	}
	return nil
}

// Section is one rectangular sub-range of the grid, independently
// fabricable. Border flags derive purely from the section's position
// in the split plan; RowIndex 0 is the topmost row of sections.
type Section struct {
	ColStart, ColCount int
	RowStart, RowCount int
	ColIndex, RowIndex int

	Leftmost, Rightmost bool
	Topmost, Bottommost bool
}

// Label identifies the section in file names and reports.
func (s Section) Label() string {
	return fmt.Sprintf("c%dr%d", s.ColIndex, s.RowIndex)
}

// GridWidth returns the section's window grid width, before borders.
func (s Section) GridWidth(g GridSpec) float64 { return float64(s.ColCount) * g.Pitch }

// GridDepth returns the section's window grid depth, before borders.
func (s Section) GridDepth(g GridSpec) float64 { return float64(s.RowCount) * g.Pitch }

// Sections expands the plan into sections in row-major order: the
// outer loop walks row groups from the top of the panel, the inner
// loop walks column groups from the left, accumulating running cell
// offsets. The plan must already be validated.
func (p SplitPlan) Sections() []Section {
	out := make([]Section, 0, len(p.ColGroups)*len(p.RowGroups))
	rowStart := 0
	for ri, rows := range p.RowGroups {
		colStart := 0
		for ci, cols := range p.ColGroups {
			out = append(out, Section{
				ColStart: colStart, ColCount: cols,
				RowStart: rowStart, RowCount: rows,
				ColIndex: ci, RowIndex: ri,
				Leftmost:   ci == 0,
				Rightmost:  ci == len(p.ColGroups)-1,
				Topmost:    ri == 0,
				Bottommost: ri == len(p.RowGroups)-1,
			})
			colStart += cols
		}
		rowStart += rows
	}
	return out
}
