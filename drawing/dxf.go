package drawing

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	dxfdrw "github.com/yofu/dxf/drawing"
)

// DXF layer names. Fabrication services key their operations off the
// layer, not the entity color.
const (
	layerCut     = "CUT"
	layerEngrave = "ENGRAVE"
)

// crossSize is the half-length of a cell center crosshair arm.
const crossSize = 2.0

// SaveDXF writes the panel drawing as a DXF file using line and circle
// entities only: no text entities, by policy. Rectangles are
// decomposed into four lines; cell labels are replaced by center
// crosshairs on the engrave layer.
func SaveDXF(path string, p Params) error {
	if err := validate(p); err != nil {
		return err
	}
	g := p.Spec
	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0

	if _, err := d.AddLayer(layerCut, color.Red, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("drawing: add layer %s: %w", layerCut, err)
	}
	if err := dxfRect(d, outline(g)); err != nil {
		return err
	}
	for _, win := range windows(g) {
		if err := dxfRect(d, win); err != nil {
			return err
		}
	}
	for _, c := range mountHoles(g) {
		if _, err := d.Circle(c.x, c.y, 0, c.r); err != nil {
			return fmt.Errorf("drawing: mount circle: %w", err)
		}
	}

	if _, err := d.AddLayer(layerEngrave, color.Cyan, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("drawing: add layer %s: %w", layerEngrave, err)
	}
	for _, c := range cornerDots(g) {
		if _, err := d.Circle(c.x, c.y, 0, c.r); err != nil {
			return fmt.Errorf("drawing: corner dot: %w", err)
		}
	}
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			x, y := cellCenter(g, c, r)
			if _, err := d.Line(x-crossSize, y, 0, x+crossSize, y, 0); err != nil {
				return fmt.Errorf("drawing: crosshair: %w", err)
			}
			if _, err := d.Line(x, y-crossSize, 0, x, y+crossSize, 0); err != nil {
				return fmt.Errorf("drawing: crosshair: %w", err)
			}
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("drawing: save %s: %w", path, err)
	}
	return nil
}

// dxfRect draws a rectangle as four lines on the current layer.
func dxfRect(d *dxfdrw.Drawing, r rect) error {
	lines := [4][4]float64{
		{r.x, r.y, r.x + r.w, r.y},
		{r.x + r.w, r.y, r.x + r.w, r.y + r.h},
		{r.x + r.w, r.y + r.h, r.x, r.y + r.h},
		{r.x, r.y + r.h, r.x, r.y},
	}
	for _, l := range lines {
		if _, err := d.Line(l[0], l[1], 0, l[2], l[3], 0); err != nil {
			return fmt.Errorf("drawing: rect line: %w", err)
		}
	}
	return nil
}
