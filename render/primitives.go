package render

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// AddBox appends a closed rectangular prism with its minimum corner at
// (x,y,z) extending by (w,d,h). All six faces are wound outward, two
// triangles each. Dimensions must be positive; callers gate on the
// minimum feature size before invoking.
func (m *Mesh) AddBox(x, y, z, w, d, h float64) error {
	if w <= 0 || d <= 0 || h <= 0 {
		return fmt.Errorf("render: box dimensions must be positive, got %gx%gx%g", w, d, h)
	}
	var (
		p000 = r3.Vec{X: x, Y: y, Z: z}
		p100 = r3.Vec{X: x + w, Y: y, Z: z}
		p010 = r3.Vec{X: x, Y: y + d, Z: z}
		p110 = r3.Vec{X: x + w, Y: y + d, Z: z}
		p001 = r3.Vec{X: x, Y: y, Z: z + h}
		p101 = r3.Vec{X: x + w, Y: y, Z: z + h}
		p011 = r3.Vec{X: x, Y: y + d, Z: z + h}
		p111 = r3.Vec{X: x + w, Y: y + d, Z: z + h}
	)
	m.addQuad(p000, p010, p110, p100) // bottom, -z
	m.addQuad(p001, p101, p111, p011) // top, +z
	m.addQuad(p000, p100, p101, p001) // front, -y
	m.addQuad(p010, p011, p111, p110) // back, +y
	m.addQuad(p000, p001, p011, p010) // left, -x
	m.addQuad(p100, p110, p111, p101) // right, +x
	return nil
}

// AddHollowRing appends the inner wall of a cylindrical hole as
// `segments` side quads around the circle centered at (cx,cy) from z
// to z+h. The ring is deliberately uncapped: the output format cannot
// subtract material, so the ring is a reference marker for a hole
// position, not a cut.
func (m *Mesh) AddHollowRing(cx, cy, z, radius, h float64, segments int) error {
	if radius <= 0 || h <= 0 {
		return fmt.Errorf("render: ring radius and height must be positive, got r=%g h=%g", radius, h)
	}
	if segments < 3 {
		return fmt.Errorf("render: ring needs at least 3 segments, got %d", segments)
	}
	for i := 0; i < segments; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(segments)
		a1 := 2 * math.Pi * float64(i+1) / float64(segments)
		x0, y0 := cx+radius*math.Cos(a0), cy+radius*math.Sin(a0)
		x1, y1 := cx+radius*math.Cos(a1), cy+radius*math.Sin(a1)
		// Wound so the normals face the cylinder axis, like the inner
		// wall of a drilled hole.
		m.addQuad(
			r3.Vec{X: x0, Y: y0, Z: z},
			r3.Vec{X: x0, Y: y0, Z: z + h},
			r3.Vec{X: x1, Y: y1, Z: z + h},
			r3.Vec{X: x1, Y: y1, Z: z},
		)
	}
	return nil
}

// addQuad appends quad abcd as two triangles sharing the a-c diagonal.
func (m *Mesh) addQuad(a, b, c, d r3.Vec) {
	m.AddTriangle(a, b, c)
	m.AddTriangle(a, c, d)
}
