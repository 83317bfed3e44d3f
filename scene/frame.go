package scene

import (
	"github.com/lixenwraith/hero-scene/vmath"
)

// Assets is the static content of one mount: generated once, read-only until unmount
type Assets struct {
	Particles       []Particle
	ParticleSize    float64
	ParticleOpacity float64

	Knot          *KnotGeometry
	ShapeMaterial Material

	Spheres        [SphereCount]OrbitSpec
	SphereSegments int

	Camera Camera
	Lights []Light
}

// Frame is the fully computed transform set of one tick
// Published whole through an atomic pointer; never mutated after publication
type Frame struct {
	Seq     uint64
	Elapsed float64
	Delta   float64

	FieldRotation vmath.Euler
	Shape         ShapeTransform
	// Surface holds distorted knot vertices in local space, parallel to Assets.Knot.Vertices
	Surface       []vmath.Vec3F
	GroupRotation float64
	Spheres       [SphereCount]vmath.Vec3F

	Assets *Assets
}

// ParticleWorld returns particle i after the field's rigid rotation
func (f *Frame) ParticleWorld(i int) vmath.Vec3F {
	return f.FieldRotation.Apply(f.Assets.Particles[i].Position)
}

// SurfaceWorld returns distorted knot vertex i and its normal in world space
func (f *Frame) SurfaceWorld(i int) (pos, normal vmath.Vec3F) {
	return f.Shape.Apply(f.Surface[i]), f.Shape.ApplyNormal(f.Assets.Knot.Normals[i])
}
