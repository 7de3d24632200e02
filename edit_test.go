package sculpt

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestFalloff(t *testing.T) {
	if w := falloff(0); w != 1 {
		t.Errorf("w(0) = %g, want 1", w)
	}
	for _, d := range []float64{10, -10, 20, -20, 1e6} {
		if w := falloff(d); w != 0 {
			t.Errorf("w(%g) = %g, want 0", d, w)
		}
	}
	// Monotonically non-increasing in |d| and bounded to [0, 1].
	prev := math.Inf(1)
	for d := 0.0; d <= 25; d += 0.25 {
		w := falloff(d)
		if w < 0 || w > 1 {
			t.Fatalf("w(%g) = %g outside [0,1]", d, w)
		}
		if w > prev {
			t.Fatalf("w(%g) = %g increased from %g", d, w, prev)
		}
		if w != falloff(-d) {
			t.Fatalf("w(%g) != w(%g)", d, -d)
		}
		prev = w
	}
}

var editPlane = Plane{Normal: r3.Vec{Z: 1}}

func TestCurveHeightMidpoint(t *testing.T) {
	curve := SilhouetteCurve{{X: -5, Y: 3}, {X: 5, Y: 7}}
	h := curveHeight(r3.Vec{}, curve, editPlane)
	if h != 5 {
		t.Errorf("h = %g, want 5 (interpolated 5 minus point height 0)", h)
	}
	// A raised query point gets the same curve height relative to itself.
	h = curveHeight(r3.Vec{Y: 2}, curve, editPlane)
	if h != 3 {
		t.Errorf("h = %g, want 3", h)
	}
}

func TestCurveHeightOutOfRange(t *testing.T) {
	curve := SilhouetteCurve{{X: -5, Y: 3}, {X: 5, Y: 7}}
	for _, x := range []float64{-5.001, 5.001, -100, 100} {
		if h := curveHeight(r3.Vec{X: x}, curve, editPlane); h != 0 {
			t.Errorf("x=%g outside curve range: h = %g, want 0", x, h)
		}
	}
	// Inclusive at the exact endpoints.
	if h := curveHeight(r3.Vec{X: -5}, curve, editPlane); h != 3 {
		t.Errorf("x at first endpoint: h = %g, want 3", h)
	}
	if h := curveHeight(r3.Vec{X: 5}, curve, editPlane); h != 7 {
		t.Errorf("x at last endpoint: h = %g, want 7", h)
	}
}

func TestCurveHeightDescending(t *testing.T) {
	// Stroke drawn right to left still covers the target.
	curve := SilhouetteCurve{{X: 5, Y: 7}, {X: -5, Y: 3}}
	if h := curveHeight(r3.Vec{}, curve, editPlane); h != 5 {
		t.Errorf("h = %g, want 5", h)
	}
}

func TestCurveHeightZeroLengthSegment(t *testing.T) {
	// The first segment collapses in plane-space and must be skipped, not
	// divided by.
	curve := SilhouetteCurve{{X: 0, Y: 1}, {X: 0, Y: 9}, {X: 5, Y: 9}}
	if h := curveHeight(r3.Vec{}, curve, editPlane); h != 9 {
		t.Errorf("h = %g, want 9 from the segment after the collapsed one", h)
	}
}

func TestCurveHeightFirstMatchWins(t *testing.T) {
	// Curve doubles back over itself in plane-space; the first covering
	// segment in stroke order wins, not the nearest sample.
	curve := SilhouetteCurve{{X: 0, Y: 1}, {X: 10, Y: 1}, {X: 0, Y: 9}}
	if h := curveHeight(r3.Vec{X: 5}, curve, editPlane); h != 1 {
		t.Errorf("h = %g, want 1 from the first covering segment", h)
	}
}

func TestCurveHeightShortCurve(t *testing.T) {
	if h := curveHeight(r3.Vec{}, nil, editPlane); h != 0 {
		t.Errorf("empty curve: h = %g, want 0", h)
	}
	if h := curveHeight(r3.Vec{}, SilhouetteCurve{{X: 1, Y: 4}}, editPlane); h != 0 {
		t.Errorf("single point curve: h = %g, want 0", h)
	}
}

func TestSculptEndToEnd(t *testing.T) {
	terr, err := NewTerrain(20, 4, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Straight horizontal silhouette at height 5 over the z=0 plane: the
	// signed plane distance of every vertex is its z coordinate.
	curve := SilhouetteCurve{{X: -10, Y: 5}, {X: 10, Y: 5}}
	plane := Plane{Point: r3.Vec{X: -10, Y: 5}, Normal: r3.Vec{Z: 1}}
	if err := terr.Sculpt(curve, plane); err != nil {
		t.Fatal(err)
	}
	for _, v := range terr.Vertices() {
		var want float64
		switch math.Abs(v.Z) {
		case 0:
			want = 5 // w=1, snapped to the curve height.
		case 5:
			want = 3.75 // w=0.75 blend of h=5 and old height 0.
		case 10:
			want = 0 // outside the influence half-width.
		default:
			t.Fatalf("unexpected vertex row z=%g", v.Z)
		}
		if v.Y != want {
			t.Errorf("vertex at (%g, %g): height %g, want %g", v.X, v.Z, v.Y, want)
		}
	}
}

func TestSculptConvexBound(t *testing.T) {
	terr, err := NewTerrain(20, 8, nil)
	if err != nil {
		t.Fatal(err)
	}
	// First pass shapes uneven ground, second pass must stay within the
	// convex combination of old height and curve contribution.
	arch := SilhouetteCurve{{X: -10, Y: 0}, {X: -2, Y: 6}, {X: 3, Y: 2}, {X: 10, Y: 4}}
	plane := Plane{Point: r3.Vec{X: -10}, Normal: r3.Vec{Z: 1}}
	if err := terr.Sculpt(arch, plane); err != nil {
		t.Fatal(err)
	}
	ridge := SilhouetteCurve{{X: -10, Y: 8}, {X: 10, Y: -3}}
	before := append([]r3.Vec(nil), terr.Vertices()...)
	if err := terr.Sculpt(ridge, plane); err != nil {
		t.Fatal(err)
	}
	for k, v := range terr.Vertices() {
		old := before[k].Y
		h := curveHeight(plane.Closest(before[k]), ridge, plane)
		lo, hi := math.Min(old, h), math.Max(old, h)
		if v.Y < lo-1e-9 || v.Y > hi+1e-9 {
			t.Fatalf("vertex %d: height %g overshoots [%g, %g] (old %g, h %g)", k, v.Y, lo, hi, old, h)
		}
	}
}

func TestSculptShortCurveNoop(t *testing.T) {
	rt := &recordingTarget{}
	terr, err := NewTerrain(20, 4, rt)
	if err != nil {
		t.Fatal(err)
	}
	plane := Plane{Normal: r3.Vec{Z: 1}}
	for _, curve := range []SilhouetteCurve{nil, {{X: 1, Y: 4}}} {
		if err := terr.Sculpt(curve, plane); err != nil {
			t.Fatal(err)
		}
	}
	if rt.commits != 1 {
		t.Errorf("degenerate curves recommitted buffers: %d commits, want 1", rt.commits)
	}
	for _, v := range terr.Vertices() {
		if v.Y != 0 {
			t.Fatal("degenerate curve modified the terrain")
		}
	}
}

func TestSculptRejectsBadGeometry(t *testing.T) {
	terr, err := NewTerrain(20, 4, nil)
	if err != nil {
		t.Fatal(err)
	}
	good := SilhouetteCurve{{X: -10, Y: 5}, {X: 10, Y: 5}}
	if err := terr.Sculpt(good, Plane{Normal: r3.Vec{}}); err == nil {
		t.Error("zero plane normal: expected error")
	}
	bad := SilhouetteCurve{{X: -10, Y: 5}, {X: math.NaN(), Y: 5}}
	if err := terr.Sculpt(bad, Plane{Normal: r3.Vec{Z: 1}}); err == nil {
		t.Error("NaN curve point: expected error")
	}
	for _, v := range terr.Vertices() {
		if v.Y != 0 {
			t.Fatal("rejected edit modified the terrain")
		}
	}
}

func TestSculptCommitsAfterEdit(t *testing.T) {
	rt := &recordingTarget{}
	terr, err := NewTerrain(20, 4, rt)
	if err != nil {
		t.Fatal(err)
	}
	curve := SilhouetteCurve{{X: -10, Y: 5}, {X: 10, Y: 5}}
	plane := Plane{Point: r3.Vec{X: -10}, Normal: r3.Vec{Z: 1}}
	if err := terr.Sculpt(curve, plane); err != nil {
		t.Fatal(err)
	}
	if rt.commits != 2 {
		t.Fatalf("got %d commits, want 2 (construction + edit)", rt.commits)
	}
	for k, v := range terr.Vertices() {
		if rt.vertices[k] != v {
			t.Fatal("committed vertices do not match post-edit terrain")
		}
		if rt.normals[k] != terr.Normals()[k] {
			t.Fatal("committed normals do not match post-edit terrain")
		}
	}
}
