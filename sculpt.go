// Package sculpt deforms a regular triangulated terrain surface in response
// to a free-form 2D stroke drawn over a 3D viewport, after the stroke-based
// terrain editing technique of Cohen et al. (Harold).
//
// The pipeline is: a stroke (screen points plus the camera active while
// drawing) is projected onto a vertical-ish plane containing the stroke
// direction, yielding a silhouette curve; every terrain vertex then blends
// its height toward the curve with a smooth falloff in distance from the
// plane; finally shading normals are rebuilt from the new geometry.
//
// Cameras, renderable buffer sinks and exports live in the view and render
// packages. The core here is synchronous and allocation-free after
// construction.
package sculpt

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// epsilon below which vector norms are considered degenerate.
	epsilon = 1e-12
)

// worldUp is the fixed up axis of the terrain coordinate system. The height
// field lives on Y; X and Z span the terrain footprint.
var worldUp = r3.Vec{Y: 1}

// lerp does a linear interpolation from x to y, a = [0,1].
func lerp(x, y, a float64) float64 {
	return x + a*(y-x)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func vecFinite(v r3.Vec) bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}
