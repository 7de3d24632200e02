package render

import (
	"errors"
	"sync"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

// MeshBuffers is a sculpt.BufferTarget holding GPU-style float32 vertex and
// normal arrays plus a uint32 index array. Commits replace the stored arrays
// wholesale under a mutex, so a concurrent reader observes either the
// pre-edit or the post-edit mesh, never a mix.
type MeshBuffers struct {
	mu        sync.Mutex
	positions [][3]float32
	normals   [][3]float32
	indices   []uint32
	commits   int
}

// SetBuffers converts and stores the terrain buffers. Non-finite values are
// rejected so they never reach a renderer.
func (b *MeshBuffers) SetBuffers(vertices, normals []r3.Vec, indices []uint32) error {
	if len(vertices) != len(normals) {
		return errors.New("vertex and normal buffers differ in length")
	}
	positions := make([][3]float32, len(vertices))
	norms := make([][3]float32, len(normals))
	for i, v := range vertices {
		positions[i] = [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
		n := normals[i]
		norms[i] = [3]float32{float32(n.X), float32(n.Y), float32(n.Z)}
		if bad3F32(positions[i]) || bad3F32(norms[i]) {
			return errors.New("non-finite vertex data in buffer commit")
		}
	}
	idx := make([]uint32, len(indices))
	copy(idx, indices)

	b.mu.Lock()
	b.positions = positions
	b.normals = norms
	b.indices = idx
	b.commits++
	b.mu.Unlock()
	return nil
}

// Snapshot returns the buffers of the last commit. The returned slices are
// not written to again; a later commit swaps in fresh arrays.
func (b *MeshBuffers) Snapshot() (positions, normals [][3]float32, indices []uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.positions, b.normals, b.indices
}

// Commits returns how many buffer commits have been received.
func (b *MeshBuffers) Commits() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.commits
}

func bad3F32(f [3]float32) bool {
	return math32.IsNaN(f[0]) || math32.IsInf(f[0], 0) ||
		math32.IsNaN(f[1]) || math32.IsInf(f[1], 0) ||
		math32.IsNaN(f[2]) || math32.IsInf(f[2], 0)
}
