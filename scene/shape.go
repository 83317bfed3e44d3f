package scene

import (
	"math"

	perlin "github.com/aquilax/go-perlin"

	"github.com/lixenwraith/hero-scene/parameter"
	"github.com/lixenwraith/hero-scene/vmath"
)

// Perlin parameters for the distortion field
const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
)

// ShapeState is the accumulated self-rotation of the centerpiece
type ShapeState struct {
	RotationX float64
	RotationY float64
}

// Advance returns the state after delta seconds; additive, so one step of d1+d2 equals two steps
func (s ShapeState) Advance(delta float64) ShapeState {
	s.RotationX += parameter.ShapeSpinX * delta
	s.RotationY += parameter.ShapeSpinY * delta
	return s
}

// Euler returns the mesh rotation
func (s ShapeState) Euler() vmath.Euler {
	return vmath.Euler{X: s.RotationX, Y: s.RotationY}
}

// FloatPose is the bounded bob layered on top of the accumulated rotation
type FloatPose struct {
	Rotation vmath.Euler
	Lift     float64
}

// FloatAt derives the bob from absolute elapsed time, never accumulates
// Lift stays within ±0.1·ShapeFloatLift, rotation within ±(1/8)·ShapeFloatRotation
func FloatAt(elapsed float64) FloatPose {
	t := elapsed * parameter.ShapeFloatSpeed / 4
	s, c := math.Sincos(t)
	return FloatPose{
		Rotation: vmath.Euler{
			X: c / 8 * parameter.ShapeFloatRotation,
			Y: s / 8 * parameter.ShapeFloatRotation,
			Z: s / 20 * parameter.ShapeFloatRotation,
		},
		Lift: s / 10 * parameter.ShapeFloatLift,
	}
}

// ShapeTransform maps local knot vertices to world space: scale, mesh rotation, float rotation, lift
type ShapeTransform struct {
	Scale float64
	Mesh  vmath.Euler
	Float FloatPose
}

// Apply transforms a point
func (t ShapeTransform) Apply(v vmath.Vec3F) vmath.Vec3F {
	v = vmath.V3FScale(v, t.Scale)
	v = t.Mesh.Apply(v)
	v = t.Float.Rotation.Apply(v)
	v.Y += t.Float.Lift
	return v
}

// ApplyNormal rotates a direction, ignoring scale and lift
func (t ShapeTransform) ApplyNormal(n vmath.Vec3F) vmath.Vec3F {
	return t.Float.Rotation.Apply(t.Mesh.Apply(n))
}

// CenterShape is the deforming torus knot
type CenterShape struct {
	state ShapeState
	// floatPhase offsets elapsed for the bob so separate mounts do not move in lockstep
	floatPhase float64
	geometry   *KnotGeometry
	noise      *perlin.Perlin
	material   Material
}

// NewCenterShape builds the knot mesh and its distortion noise field
// floatPhase is added to elapsed time before deriving the float bob
func NewCenterShape(noiseSeed int64, floatPhase float64) *CenterShape {
	return &CenterShape{
		floatPhase: floatPhase,
		geometry: NewKnotGeometry(
			parameter.KnotRadius, parameter.KnotTube,
			parameter.KnotTubularSegments, parameter.KnotRadialSegments,
			parameter.KnotP, parameter.KnotQ,
		),
		noise: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, noiseSeed),
		material: Material{
			Color:             mustHex(parameter.ShapeColor),
			Emissive:          mustHex(parameter.ShapeEmissive),
			EmissiveIntensity: parameter.ShapeEmissiveIntensity,
			Metalness:         parameter.ShapeMetalness,
			Roughness:         parameter.ShapeRoughness,
			Opacity:           1,
			Distort:           parameter.ShapeDistort,
		},
	}
}

// Update accumulates rotation by delta
func (c *CenterShape) Update(delta float64) {
	c.state = c.state.Advance(delta)
}

func (c *CenterShape) State() ShapeState       { return c.state }
func (c *CenterShape) FloatPhase() float64     { return c.floatPhase }
func (c *CenterShape) Geometry() *KnotGeometry { return c.geometry }
func (c *CenterShape) Material() Material      { return c.material }

// Transform returns the world transform at elapsed for the current accumulated state
func (c *CenterShape) Transform(elapsed float64) ShapeTransform {
	return ShapeTransform{
		Scale: parameter.ShapeScale,
		Mesh:  c.state.Euler(),
		Float: FloatAt(elapsed + c.floatPhase),
	}
}

// Deform returns a fresh slice of distorted local vertices at elapsed
// Each vertex is scaled radially by 1 + noise·distort²; the amount is constant, only the noise phase moves
func (c *CenterShape) Deform(elapsed float64) []vmath.Vec3F {
	src := c.geometry.Vertices
	out := make([]vmath.Vec3F, len(src))
	phase := elapsed * parameter.ShapeDistortSpeed / 10
	k := c.material.Distort * c.material.Distort

	for i, v := range src {
		n := c.noise.Noise3D(v.X/2+phase, v.Y/2+phase, v.Z/2+phase)
		out[i] = vmath.V3FScale(v, 1+n*k)
	}
	return out
}
