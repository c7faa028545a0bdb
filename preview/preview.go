// Package preview renders generated section meshes to shaded PNG
// images for visual inspection. Previews are advisory output only;
// fabrication files never depend on them.
package preview

import (
	"errors"

	"github.com/fogleman/fauxgl"

	"github.com/gridcase/gridcase/render"
)

const (
	fovy = 30.0
	near = 1.0
	far  = 10.0
)

var (
	eye        = fauxgl.V(-3, -3, 2)
	center     = fauxgl.V(0, 0, 0)
	up         = fauxgl.V(0, 0, 1)
	light      = fauxgl.V(-0.75, -1, 0.5).Normalize()
	background = fauxgl.HexColor("#FFF8E3")
	object     = fauxgl.HexColor("#468966")
)

// SavePNG renders the mesh with a fixed isometric camera and Phong
// shading and writes it as a PNG of the given pixel size. Output is
// deterministic for a given mesh.
func SavePNG(path string, m *render.Mesh, width, height int) error {
	if m.Len() == 0 {
		return errors.New("preview: empty mesh")
	}
	tris := make([]*fauxgl.Triangle, 0, m.Len())
	for _, t := range m.Triangles() {
		tris = append(tris, fauxgl.NewTriangleForPoints(
			fauxgl.Vector{X: t.V[0].X, Y: t.V[0].Y, Z: t.V[0].Z},
			fauxgl.Vector{X: t.V[1].X, Y: t.V[1].Y, Z: t.V[1].Z},
			fauxgl.Vector{X: t.V[2].X, Y: t.V[2].Y, Z: t.V[2].Z},
		))
	}
	mesh := fauxgl.NewTriangleMesh(tris)
	mesh.BiUnitCube()

	ctx := fauxgl.NewContext(width, height)
	ctx.ClearColorBufferWith(background)
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, near, far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = object
	ctx.Shader = shader
	ctx.DrawMesh(mesh)

	return fauxgl.SavePNG(path, ctx.Image())
}
