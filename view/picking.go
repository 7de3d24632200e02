package view

import (
	"github.com/soypat/sculpt"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// PickTerrain intersects the ray under the screen point p with the terrain
// surface and returns the nearest hit, typically used to anchor a stroke's
// start and end on the ground under the cursor. ok is false when the ray
// misses the terrain.
func PickTerrain(t *sculpt.Terrain, src sculpt.RaySource, p r2.Vec) (hit r3.Vec, ok bool) {
	ray := src.ScreenRay(p)
	verts := t.Vertices()
	idx := t.Indices()
	var minT float64
	for i := 0; i < len(idx); i += 3 {
		tt, hitTri := ray.IntersectTriangle(verts[idx[i]], verts[idx[i+1]], verts[idx[i+2]])
		if !hitTri {
			continue
		}
		if !ok || tt < minT {
			minT, ok = tt, true
		}
	}
	if !ok {
		return r3.Vec{}, false
	}
	return ray.At(minT), true
}
