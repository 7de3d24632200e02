package sculpt

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/soypat/sculpt/internal/d3"
)

// BufferTarget consumes the terrain's renderable buffers. Implementations
// upload or snapshot the data; the slices are owned by the terrain and are
// only valid for the duration of the call.
type BufferTarget interface {
	SetBuffers(vertices, normals []r3.Vec, indices []uint32) error
}

// Terrain is a square triangulated heightfield. The grid of vertex X/Z
// positions and the triangle topology are fixed at construction; edits
// replace vertex heights (Y) and shading normals in place.
type Terrain struct {
	size     float64
	segments int
	vertices []r3.Vec
	normals  []r3.Vec
	indices  []uint32
	// scratch holds the next height field during an edit so that new
	// heights are always computed against the pre-edit vertex snapshot.
	scratch []float64
	ncount  []int
	target  BufferTarget
}

// NewTerrain builds a flat terrain of side length size world units with
// segments grid cells per side and commits its buffers to target, which may
// be nil when no renderable sink is attached.
func NewTerrain(size float64, segments int, target BufferTarget) (*Terrain, error) {
	if size <= 0 || !isFinite(size) {
		return nil, fmt.Errorf("terrain size %g: must be positive and finite", size)
	}
	if segments < 1 {
		return nil, errors.New("terrain needs at least 1 segment per side")
	}
	n1 := segments + 1
	t := &Terrain{
		size:     size,
		segments: segments,
		vertices: make([]r3.Vec, n1*n1),
		normals:  make([]r3.Vec, n1*n1),
		indices:  make([]uint32, 0, 6*segments*segments),
		scratch:  make([]float64, n1*n1),
		ncount:   make([]int, n1*n1),
		target:   target,
	}
	increment := size / float64(segments)
	for i := 0; i < n1; i++ {
		x := -size/2 + float64(i)*increment
		for j := 0; j < n1; j++ {
			z := -size/2 + float64(j)*increment
			t.vertices[i*n1+j] = r3.Vec{X: x, Z: z}
			t.normals[i*n1+j] = worldUp
		}
	}
	for i := 0; i < segments; i++ {
		for j := 0; j < segments; j++ {
			a := uint32(i*n1 + j)
			b := uint32(i*n1 + j + 1)
			c := uint32((i+1)*n1 + j)
			d := uint32((i+1)*n1 + j + 1)
			t.indices = append(t.indices, a, b, c)
			t.indices = append(t.indices, c, b, d)
		}
	}
	if err := t.commit(); err != nil {
		return nil, err
	}
	return t, nil
}

// Size returns the side length of the terrain footprint in world units.
func (t *Terrain) Size() float64 { return t.size }

// Segments returns the number of grid cells per side.
func (t *Terrain) Segments() int { return t.segments }

// Vertices returns the vertex positions in row-major grid order. The slice
// is the terrain's own storage and must not be modified by the caller.
func (t *Terrain) Vertices() []r3.Vec { return t.vertices }

// Normals returns the per-vertex shading normals, indexed like Vertices.
// The slice is the terrain's own storage and must not be modified.
func (t *Terrain) Normals() []r3.Vec { return t.normals }

// Indices returns the triangle index buffer, three entries per triangle.
// Topology never changes after construction.
func (t *Terrain) Indices() []uint32 { return t.indices }

// Bounds returns the axis aligned bounding box of the terrain surface.
func (t *Terrain) Bounds() r3.Box {
	return r3.Box(d3.BoxOf(t.vertices))
}

// VertexAt returns the vertex at grid row i (X axis) and column j (Z axis).
func (t *Terrain) VertexAt(i, j int) r3.Vec {
	return t.vertices[i*(t.segments+1)+j]
}

// TriangleAt returns the vertex indices of the triangle under the world
// position (x, z). Positions outside the terrain footprint return
// ErrOutOfBounds. A position exactly on a cell's diagonal may report either
// of the cell's two triangles.
func (t *Terrain) TriangleAt(x, z float64) ([3]uint32, error) {
	half := t.size / 2
	if x < -half || x > half || z < -half || z > half || !isFinite(x) || !isFinite(z) {
		return [3]uint32{}, fmt.Errorf("triangle lookup at (%g, %g): %w", x, z, ErrOutOfBounds)
	}
	i := int(math.Floor((x/t.size + 0.5) * float64(t.segments)))
	j := int(math.Floor((z/t.size + 0.5) * float64(t.segments)))
	// The +size/2 edges fold into the last cell.
	if i > t.segments-1 {
		i = t.segments - 1
	}
	if j > t.segments-1 {
		j = t.segments - 1
	}
	n1 := t.segments + 1
	a := uint32(i*n1 + j)
	b := uint32(i*n1 + j + 1)
	c := uint32((i+1)*n1 + j)
	d := uint32((i+1)*n1 + j + 1)
	// The cell diagonal runs from vertex b to vertex c. Pick the triangle on
	// the query point's side by comparing against the two opposite corners.
	va := t.vertices[a]
	vd := t.vertices[d]
	da := (x-va.X)*(x-va.X) + (z-va.Z)*(z-va.Z)
	dd := (x-vd.X)*(x-vd.X) + (z-vd.Z)*(z-vd.Z)
	if da <= dd {
		return [3]uint32{a, b, c}, nil
	}
	return [3]uint32{c, b, d}, nil
}

// commit pushes the current buffers to the renderable target, if any.
func (t *Terrain) commit() error {
	if t.target == nil {
		return nil
	}
	if err := t.target.SetBuffers(t.vertices, t.normals, t.indices); err != nil {
		return fmt.Errorf("buffer commit: %w", err)
	}
	return nil
}
