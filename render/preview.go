package render

import (
	"image"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/sculpt"
	"github.com/soypat/sculpt/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// ViewConfig frames the preview render of a terrain.
type ViewConfig struct {
	// what position (point) to look at
	Lookat r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye located at (point)
	Eyepos r3.Vec
	Far    float64
	Near   float64
	// output image size in pixels
	Width, Height int
}

// DefaultView places the eye on a high diagonal looking at the model center.
// The terrain is fit to a bi-unit cube before rendering so the same view
// works for any terrain size.
func DefaultView() ViewConfig {
	return ViewConfig{
		Up:     r3.Vec{Y: 1},
		Eyepos: d3.Elem(3),
		Near:   1,
		Far:    10,
		Width:  1280,
		Height: 720,
	}
}

// PreviewImage renders a Phong-shaded view of the terrain.
func PreviewImage(t *sculpt.Terrain, view ViewConfig) image.Image {
	const (
		scale = 2  // supersampling factor
		fovy  = 30 // vertical field of view in degrees
	)
	tris := Triangles(t)
	fgl := make([]*fauxgl.Triangle, len(tris))
	for i, tri := range tris {
		ft := fauxgl.NewTriangleForPoints(
			fauxgl.V(tri.V[0].X, tri.V[0].Y, tri.V[0].Z),
			fauxgl.V(tri.V[1].X, tri.V[1].Y, tri.V[1].Z),
			fauxgl.V(tri.V[2].X, tri.V[2].Y, tri.V[2].Z),
		)
		ft.V1.Normal = fauxgl.V(tri.N[0].X, tri.N[0].Y, tri.N[0].Z)
		ft.V2.Normal = fauxgl.V(tri.N[1].X, tri.N[1].Y, tri.N[1].Z)
		ft.V3.Normal = fauxgl.V(tri.N[2].X, tri.N[2].Y, tri.N[2].Z)
		fgl[i] = ft
	}
	mesh := fauxgl.NewTriangleMesh(fgl)
	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()

	var (
		eye    = fauxgl.V(view.Eyepos.X, view.Eyepos.Y, view.Eyepos.Z)
		center = fauxgl.V(view.Lookat.X, view.Lookat.Y, view.Lookat.Z)
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
		color  = fauxgl.HexColor("#468966")
	)
	context := fauxgl.NewContext(view.Width*scale, view.Height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(view.Width) / float64(view.Height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	return resize.Resize(uint(view.Width), uint(view.Height), context.Image(), resize.Bilinear)
}

// SavePreviewPNG renders the terrain and writes the image to path.
func SavePreviewPNG(path string, t *sculpt.Terrain, view ViewConfig) error {
	return fauxgl.SavePNG(path, PreviewImage(t, view))
}
