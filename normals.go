package sculpt

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// recomputeNormals rebuilds the per-vertex shading normals from the current
// triangle geometry. Each vertex receives the unweighted average of the unit
// face normals of its incident triangles. The average is by triangle count,
// not by triangle area; on the near-uniform grid the difference is
// negligible and the original technique averages by count.
func (t *Terrain) recomputeNormals() {
	for k := range t.normals {
		t.normals[k] = r3.Vec{}
		t.ncount[k] = 0
	}
	for i := 0; i < len(t.indices); i += 3 {
		i0 := t.indices[i]
		i1 := t.indices[i+1]
		i2 := t.indices[i+2]
		v0 := t.vertices[i0]
		fn := r3.Unit(r3.Cross(r3.Sub(t.vertices[i1], v0), r3.Sub(t.vertices[i2], v0)))
		t.normals[i0] = r3.Add(t.normals[i0], fn)
		t.normals[i1] = r3.Add(t.normals[i1], fn)
		t.normals[i2] = r3.Add(t.normals[i2], fn)
		t.ncount[i0]++
		t.ncount[i1]++
		t.ncount[i2]++
	}
	for k := range t.normals {
		if t.ncount[k] == 0 {
			// Cannot happen on the fixed grid topology. Guard anyway so a
			// future topology change degrades to a flat normal instead of
			// dividing by zero.
			t.normals[k] = worldUp
			continue
		}
		t.normals[k] = r3.Scale(1/float64(t.ncount[k]), t.normals[k])
	}
}
