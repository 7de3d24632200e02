package sculpt

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// RaySource generates world-space rays from screen-space points. view.Camera
// implements it; tests substitute fakes.
type RaySource interface {
	ScreenRay(p r2.Vec) Ray
}

// Stroke is an ordered free-form path of screen points together with the
// ray source (camera) active while it was drawn.
type Stroke struct {
	Points []r2.Vec
	View   RaySource
}

// SilhouetteCurve is the stroke projected into world space: an ordered
// polyline on the projection plane describing the desired terrain profile
// along the stroke direction. It is transient to a single edit.
type SilhouetteCurve []r3.Vec

// ProjectStroke converts a stroke and its two ground anchor points (the
// terrain positions under the stroke's first and last screen points) into a
// silhouette curve on the stroke's projection plane.
//
// The plane contains start, the start-to-end direction and the world up
// axis' perpendicular. Coincident anchors return ErrDegenerateStroke and an
// up-parallel stroke direction returns ErrVerticalStroke; in both cases the
// plane is undefined and no curve is produced.
//
// Stroke points whose rays do not meet the plane are dropped. The surviving
// intersections keep stroke order. A curve with fewer than 2 points is a
// valid but degenerate result which Sculpt treats as a no-op.
func ProjectStroke(s Stroke, start, end r3.Vec) (SilhouetteCurve, Plane, error) {
	if !vecFinite(start) || !vecFinite(end) {
		return nil, Plane{}, ErrNotFinite
	}
	dir := r3.Sub(end, start)
	if r3.Norm(dir) <= epsilon {
		return nil, Plane{}, ErrDegenerateStroke
	}
	normal := r3.Cross(r3.Unit(dir), worldUp)
	if r3.Norm(normal) <= epsilon {
		return nil, Plane{}, ErrVerticalStroke
	}
	plane := Plane{Point: start, Normal: r3.Unit(normal)}
	curve := make(SilhouetteCurve, 0, len(s.Points))
	for _, p := range s.Points {
		hit, ok := s.View.ScreenRay(p).IntersectPlane(plane)
		if !ok {
			continue
		}
		curve = append(curve, hit)
	}
	return curve, plane, nil
}

// ApplyStroke projects the stroke between the two ground anchors and sculpts
// the terrain with the resulting silhouette curve.
func (t *Terrain) ApplyStroke(s Stroke, start, end r3.Vec) error {
	curve, plane, err := ProjectStroke(s, start, end)
	if err != nil {
		return err
	}
	return t.Sculpt(curve, plane)
}
