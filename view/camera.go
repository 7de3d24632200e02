// Package view provides the perspective camera used to turn 2D viewport
// strokes into world-space rays, and picking of terrain ground anchors.
package view

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/soypat/sculpt"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Camera is a perspective viewport camera. It implements sculpt.RaySource:
// screen points in pixel coordinates (origin top-left, y down) unproject to
// world-space rays through the view frustum.
type Camera struct {
	// Eye is the camera position, Center the point looked at.
	Eye    r3.Vec
	Center r3.Vec
	// Up is the view up direction, usually world up.
	Up r3.Vec
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Near and Far clip distances.
	Near, Far float64
	// Width and Height of the viewport in pixels.
	Width, Height int
}

func mglVec(v r3.Vec) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func (c *Camera) viewProjection() mgl64.Mat4 {
	view := mgl64.LookAtV(mglVec(c.Eye), mglVec(c.Center), mglVec(c.Up))
	aspect := float64(c.Width) / float64(c.Height)
	proj := mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, c.Near, c.Far)
	return proj.Mul4(view)
}

// ScreenRay returns the world-space ray through the screen point p. The ray
// origin lies on the near clip plane and the direction is unit length.
func (c *Camera) ScreenRay(p r2.Vec) sculpt.Ray {
	// Pixel to normalized device coordinates, flipping y.
	x := 2*p.X/float64(c.Width) - 1
	y := 1 - 2*p.Y/float64(c.Height)

	inv := c.viewProjection().Inv()
	near := inv.Mul4x1(mgl64.Vec4{x, y, -1, 1})
	far := inv.Mul4x1(mgl64.Vec4{x, y, 1, 1})
	near = near.Mul(1 / near.W())
	far = far.Mul(1 / far.W())

	origin := r3.Vec{X: near.X(), Y: near.Y(), Z: near.Z()}
	dir := r3.Unit(r3.Vec{
		X: far.X() - near.X(),
		Y: far.Y() - near.Y(),
		Z: far.Z() - near.Z(),
	})
	return sculpt.Ray{Origin: origin, Dir: dir}
}
