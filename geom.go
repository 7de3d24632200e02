package sculpt

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Plane is an infinite plane described by a point on it and its unit normal.
type Plane struct {
	Point  r3.Vec
	Normal r3.Vec
}

// NewPlane returns the plane through point with the direction of normal.
// The normal is unitized; a near-zero or non-finite normal is an error.
func NewPlane(point, normal r3.Vec) (Plane, error) {
	if !vecFinite(point) || !vecFinite(normal) {
		return Plane{}, ErrNotFinite
	}
	if r3.Norm(normal) <= epsilon {
		return Plane{}, ErrDegenerateStroke
	}
	return Plane{Point: point, Normal: r3.Unit(normal)}, nil
}

// Distance returns the signed distance of p from the plane, positive on the
// side the normal points to.
func (pl Plane) Distance(p r3.Vec) float64 {
	return r3.Dot(r3.Sub(p, pl.Point), pl.Normal)
}

// Closest returns the orthogonal projection of p onto the plane.
func (pl Plane) Closest(p r3.Vec) r3.Vec {
	return r3.Sub(p, r3.Scale(pl.Distance(p), pl.Normal))
}

// Ray is a half-line from Origin along the unit direction Dir.
type Ray struct {
	Origin r3.Vec
	Dir    r3.Vec
}

// IntersectPlane returns the point where the ray meets pl. ok is false when
// the ray is parallel to the plane or the intersection lies behind the ray
// origin.
func (r Ray) IntersectPlane(pl Plane) (p r3.Vec, ok bool) {
	denom := r3.Dot(r.Dir, pl.Normal)
	if denom > -epsilon && denom < epsilon {
		return r3.Vec{}, false
	}
	t := r3.Dot(r3.Sub(pl.Point, r.Origin), pl.Normal) / denom
	if t < 0 {
		return r3.Vec{}, false
	}
	return r3.Add(r.Origin, r3.Scale(t, r.Dir)), true
}

// IntersectTriangle returns the ray parameter t at which the ray crosses the
// triangle (a,b,c) using the Möller–Trumbore algorithm. ok is false when the
// ray misses, is parallel to the triangle plane, or hits behind the origin.
func (r Ray) IntersectTriangle(a, b, c r3.Vec) (t float64, ok bool) {
	const eps = 1e-9
	edge1 := r3.Sub(b, a)
	edge2 := r3.Sub(c, a)
	h := r3.Cross(r.Dir, edge2)
	det := r3.Dot(edge1, h)
	if det > -eps && det < eps {
		return 0, false
	}
	invDet := 1 / det
	s := r3.Sub(r.Origin, a)
	u := invDet * r3.Dot(s, h)
	if u < 0 || u > 1 {
		return 0, false
	}
	q := r3.Cross(s, edge1)
	v := invDet * r3.Dot(r.Dir, q)
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t = invDet * r3.Dot(edge2, q)
	if t < 0 {
		return 0, false
	}
	return t, true
}

// At returns the point on the ray at parameter t.
func (r Ray) At(t float64) r3.Vec {
	return r3.Add(r.Origin, r3.Scale(t, r.Dir))
}
