package drawing

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"
)

const (
	cutStyle     = "fill:none;stroke:#ff0000;stroke-width:0.1"
	engraveStyle = "fill:#0000ff;stroke:none"
)

// WriteSVG writes the panel drawing as an SVG document in millimeter
// units with two logical layers: a "cut" group holding the outline,
// window and drill geometry, and an "engrave" group holding labels and
// alignment dots. Output is deterministic for a given Params.
func WriteSVG(w io.Writer, p Params) error {
	if err := validate(p); err != nil {
		return err
	}
	g := p.Spec
	canvas := svg.New(w)
	canvas.Startunit(g.PanelWidth(), g.PanelDepth(), "mm",
		fmt.Sprintf(`viewBox="0 0 %g %g"`, g.PanelWidth(), g.PanelDepth()))

	canvas.Gid("cut")
	o := outline(g)
	canvas.Rect(o.x, o.y, o.w, o.h, cutStyle)
	for _, win := range windows(g) {
		canvas.Rect(win.x, win.y, win.w, win.h, cutStyle)
	}
	for _, c := range mountHoles(g) {
		canvas.Circle(c.x, c.y, c.r, cutStyle)
	}
	canvas.Gend()

	canvas.Gid("engrave")
	for _, c := range cornerDots(g) {
		canvas.Circle(c.x, c.y, c.r, engraveStyle)
	}
	fontSize := g.Cutout * 0.6
	textStyle := fmt.Sprintf("font-family:sans-serif;font-size:%gpx;text-anchor:middle;dominant-baseline:central;fill:#0000ff", fontSize)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			label := p.label(c, r)
			if label == "" {
				continue
			}
			x, y := cellCenter(g, c, r)
			canvas.Text(x, y, label, textStyle)
		}
	}
	if p.Name != "" {
		canvas.Text(g.PanelWidth()/2, g.PanelDepth()-g.Border/4, p.Name,
			"font-family:sans-serif;font-size:4px;text-anchor:middle;fill:#0000ff")
	}
	canvas.Gend()

	canvas.End()
	return nil
}
