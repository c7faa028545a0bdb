// Package render accumulates triangle geometry and serializes it as
// ASCII STL solid bodies. The output format is a flat triangle list
// with per-facet normals; there is no boolean subtraction, so all
// callers build shapes additively.
package render

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// normTol is the minimum cross product norm accepted when computing a
// facet normal. Below it the triangle is considered degenerate.
const normTol = 1e-12

// Triangle3 is a 3D triangle. Vertex order defines the outward facing
// winding (right-hand rule).
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the unit normal vector of the triangle. Degenerate
// triangles with near-zero area return the zero vector instead of
// dividing by zero.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	n := r3.Cross(e1, e2)
	if r3.Norm(n) < normTol {
		return r3.Vec{}
	}
	return r3.Unit(n)
}

// Mesh accumulates the triangles of one solid body. A Mesh is built by
// exactly one section generator, serialized once and discarded; it is
// not safe for concurrent use.
type Mesh struct {
	name       string
	triangles  []Triangle3
	degenerate int
}

// NewMesh returns an empty mesh. name becomes the STL solid name.
func NewMesh(name string) *Mesh {
	return &Mesh{name: name}
}

// Name returns the solid name.
func (m *Mesh) Name() string { return m.name }

// AddTriangle appends one triangle with a computed outward normal.
// Vertex values are trusted as-is. Zero-area triangles are dropped and
// counted rather than emitted, since they corrupt downstream solid
// body validity.
func (m *Mesh) AddTriangle(v1, v2, v3 r3.Vec) {
	t := Triangle3{V: [3]r3.Vec{v1, v2, v3}}
	if r3.Norm(r3.Cross(r3.Sub(v2, v1), r3.Sub(v3, v1))) < normTol {
		m.degenerate++
		return
	}
	m.triangles = append(m.triangles, t)
}

// Triangles returns the accumulated triangles. The slice is owned by
// the mesh and must not be modified.
func (m *Mesh) Triangles() []Triangle3 { return m.triangles }

// Len returns the number of accumulated triangles.
func (m *Mesh) Len() int { return len(m.triangles) }

// Degenerate returns the count of rejected zero-area triangles.
func (m *Mesh) Degenerate() int { return m.degenerate }

// Bounds returns the axis-aligned bounding box of the mesh. An empty
// mesh returns the zero box.
func (m *Mesh) Bounds() r3.Box {
	if len(m.triangles) == 0 {
		return r3.Box{}
	}
	b := r3.Box{Min: m.triangles[0].V[0], Max: m.triangles[0].V[0]}
	for _, t := range m.triangles {
		for _, v := range t.V {
			b.Min = minElem(b.Min, v)
			b.Max = maxElem(b.Max, v)
		}
	}
	return b
}

func minElem(a, b r3.Vec) r3.Vec {
	if b.X < a.X {
		a.X = b.X
	}
	if b.Y < a.Y {
		a.Y = b.Y
	}
	if b.Z < a.Z {
		a.Z = b.Z
	}
	return a
}

func maxElem(a, b r3.Vec) r3.Vec {
	if b.X > a.X {
		a.X = b.X
	}
	if b.Y > a.Y {
		a.Y = b.Y
	}
	if b.Z > a.Z {
		a.Z = b.Z
	}
	return a
}
