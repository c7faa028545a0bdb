package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

// WriteSTL writes the mesh as an ASCII STL solid body. The field order
// per facet is normal, vertex1, vertex2, vertex3 with fixed
// exponential number formatting, so the output is byte-for-byte stable
// for consumers that parse the text.
func WriteSTL(w io.Writer, m *Mesh) error {
	if m.Len() == 0 {
		return errors.New("render: empty mesh")
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "solid %s\n", m.name)
	for i, t := range m.triangles {
		n := t.Normal()
		if badVec(n) || badVec(t.V[0]) || badVec(t.V[1]) || badVec(t.V[2]) {
			return fmt.Errorf("render: inf/NaN value in triangle %d of %q", i, m.name)
		}
		fmt.Fprintf(bw, "  facet normal %e %e %e\n", n.X, n.Y, n.Z)
		bw.WriteString("    outer loop\n")
		for _, v := range t.V {
			fmt.Fprintf(bw, "      vertex %e %e %e\n", v.X, v.Y, v.Z)
		}
		bw.WriteString("    endloop\n")
		bw.WriteString("  endfacet\n")
	}
	fmt.Fprintf(bw, "endsolid %s\n", m.name)
	return bw.Flush()
}

// CreateSTL writes the mesh to a new file at path.
func CreateSTL(path string, m *Mesh) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSTL(file, m); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// badVec reports whether the vector does not survive the float32
// round-trip STL consumers apply.
func badVec(v r3.Vec) bool {
	return bad32(float32(v.X)) || bad32(float32(v.Y)) || bad32(float32(v.Z))
}

func bad32(f float32) bool {
	return math32.IsNaN(f) || math32.IsInf(f, 0)
}
