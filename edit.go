package sculpt

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// influenceHalfWidth is the distance from the projection plane, in world
// units, at which a stroke stops affecting the terrain. It is a tunable
// design constant independent of the terrain size.
const influenceHalfWidth = 10.0

// falloff is the blend weight of a vertex at signed distance d from the
// projection plane: 1 on the plane, decaying quadratically, 0 at and beyond
// |d| == influenceHalfWidth.
func falloff(d float64) float64 {
	u := d / influenceHalfWidth
	w := 1 - u*u
	if w < 0 {
		return 0
	}
	return w
}

// Sculpt recomputes every vertex height from the silhouette curve. Each
// vertex blends its current height with the curve's height contribution at
// its closest point on the projection plane:
//
//	y' = w*h + (1-w)*y
//
// with w the falloff weight of the vertex's plane distance. Heights are
// computed against the pre-edit vertex snapshot and swapped in at once, so
// the edit is atomic; normals are then rebuilt and the renderable buffers
// committed.
//
// A curve with fewer than 2 points leaves the terrain untouched. Non-finite
// curve or plane geometry is rejected before any mutation.
func (t *Terrain) Sculpt(curve SilhouetteCurve, plane Plane) error {
	if len(curve) < 2 {
		return nil
	}
	if !vecFinite(plane.Point) || !vecFinite(plane.Normal) {
		return fmt.Errorf("projection plane: %w", ErrNotFinite)
	}
	if r3.Norm(plane.Normal) <= epsilon {
		return fmt.Errorf("projection plane: zero normal")
	}
	for _, p := range curve {
		if !vecFinite(p) {
			return fmt.Errorf("silhouette curve: %w", ErrNotFinite)
		}
	}
	for k, v := range t.vertices {
		d := plane.Distance(v)
		w := falloff(d)
		if w == 0 {
			t.scratch[k] = v.Y
			continue
		}
		h := curveHeight(plane.Closest(v), curve, plane)
		t.scratch[k] = w*h + (1-w)*v.Y
	}
	for k := range t.vertices {
		t.vertices[k].Y = t.scratch[k]
	}
	t.recomputeNormals()
	return t.commit()
}

// curveHeight maps a point on the projection plane to the curve's height
// contribution at that point: the curve's interpolated world height above
// the point, relative to the point's own height. It returns 0 when the
// point's plane-space x coordinate falls outside every curve segment.
//
// Segments are walked in stroke order and the first one covering the target
// wins. When the curve overlaps itself in plane-space this is order
// dependent rather than nearest-sample; kept as is for compatibility with
// the original technique.
func curveHeight(closest r3.Vec, curve SilhouetteCurve, plane Plane) float64 {
	if len(curve) < 2 {
		return 0
	}
	// 2D basis on the plane: Y is world up, X is along the stroke direction.
	planeX := r3.Unit(r3.Cross(worldUp, plane.Normal))
	origin := curve[0]
	xt := r3.Dot(r3.Sub(closest, origin), planeX)
	xPrev := 0.0 // plane-space x of curve[0] relative to itself.
	for i := 1; i < len(curve); i++ {
		xCur := r3.Dot(r3.Sub(curve[i], origin), planeX)
		covers := xCur != xPrev && (xt-xPrev)*(xt-xCur) <= 0
		if covers {
			alpha := (xt - xPrev) / (xCur - xPrev)
			y := lerp(curve[i-1].Y, curve[i].Y, alpha)
			return y - closest.Y
		}
		xPrev = xCur
	}
	return 0
}
