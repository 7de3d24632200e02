// Package render implements renderable-buffer sinks and exporters for
// sculpted terrain: float32 mesh buffers, binary STL, glTF binary (GLB) and
// shaded PNG previews.
package render

import (
	"github.com/soypat/sculpt"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle is a terrain surface triangle with per-vertex shading normals.
type Triangle struct {
	V [3]r3.Vec
	N [3]r3.Vec
}

// Normal returns the face normal of the triangle.
func (t Triangle) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Triangles flattens the terrain's indexed mesh into a triangle soup.
func Triangles(t *sculpt.Terrain) []Triangle {
	verts := t.Vertices()
	normals := t.Normals()
	idx := t.Indices()
	tris := make([]Triangle, 0, len(idx)/3)
	for i := 0; i < len(idx); i += 3 {
		i0, i1, i2 := idx[i], idx[i+1], idx[i+2]
		tris = append(tris, Triangle{
			V: [3]r3.Vec{verts[i0], verts[i1], verts[i2]},
			N: [3]r3.Vec{normals[i0], normals[i1], normals[i2]},
		})
	}
	return tris
}
