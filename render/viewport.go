package render

import (
	"math"

	"github.com/lixenwraith/hero-scene/scene"
	"github.com/lixenwraith/hero-scene/vmath"
)

// Viewport maps normalized device coordinates onto a cell or pixel grid
// CellAspect is cell height over width (2 for terminals, 1 for pixels)
type Viewport struct {
	Width, Height int
	CellAspect    float64
}

// Projection is a projected point in grid coordinates
type Projection struct {
	X, Y float64
	// Depth is the distance along the camera's view axis
	Depth float64
	// Scale is grid rows per world unit at this depth
	Scale float64
}

// Project applies the camera's perspective, camera looks down -Z with +Y up
// Returns false when the point lies outside the near/far range
func (v Viewport) Project(cam scene.Camera, p vmath.Vec3F) (Projection, bool) {
	rel := vmath.V3FSub(p, cam.Position)
	depth := -rel.Z
	if depth < cam.Near || depth > cam.Far {
		return Projection{}, false
	}

	aspect := v.CellAspect
	if aspect <= 0 {
		aspect = 1
	}

	tanHalf := math.Tan(cam.FOV * math.Pi / 360)
	halfH := float64(v.Height) / 2
	// Rows per world unit, columns per world unit is this times the cell aspect
	scale := halfH / (depth * tanHalf)

	return Projection{
		X:     float64(v.Width)/2 + rel.X*scale*aspect,
		Y:     halfH - rel.Y*scale,
		Depth: depth,
		Scale: scale,
	}, true
}

// Contains reports whether a grid point is inside the viewport
func (v Viewport) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < v.Width && y < v.Height
}
