package scene

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/hero-scene/parameter"
	"github.com/lixenwraith/hero-scene/vmath"
)

// SphereCount is the fixed cardinality of the orbit table
const SphereCount = len(parameter.OrbitTable)

// OrbitSpec is the static descriptor of one orbiting sphere, never mutated after construction
type OrbitSpec struct {
	ID         string
	BaseRadius float64
	Size       float64
	// Phase is the fixed angular offset on the orbit, it does not advance with time
	Phase float64
	Color colorful.Color
}

// DefaultOrbits returns the five literal sphere descriptors
func DefaultOrbits() [SphereCount]OrbitSpec {
	var specs [SphereCount]OrbitSpec
	for i, row := range parameter.OrbitTable {
		specs[i] = OrbitSpec{
			ID:         row.ID,
			BaseRadius: row.Radius,
			Size:       row.Size,
			Phase:      row.Phase,
			Color:      mustHex(row.Color),
		}
	}
	return specs
}

// Local returns the sphere position inside the group before group rotation
func (s OrbitSpec) Local() vmath.Vec3F {
	return vmath.Vec3F{
		X: math.Cos(s.Phase) * s.BaseRadius,
		Y: math.Sin(s.Phase*0.5) * parameter.OrbitLift,
		Z: math.Sin(s.Phase) * s.BaseRadius,
	}
}

// World returns the sphere position after the group's Y rotation
func (s OrbitSpec) World(groupRotation float64) vmath.Vec3F {
	return vmath.RotateY(s.Local(), groupRotation)
}

// Material returns the self-lit sphere surface
func (s OrbitSpec) Material() Material {
	return Material{
		Color:             s.Color,
		Emissive:          s.Color,
		EmissiveIntensity: parameter.OrbitEmissiveIntensity,
		Metalness:         parameter.OrbitMetalness,
		Roughness:         parameter.OrbitRoughness,
		Opacity:           1,
	}
}

// GroupRotation is a pure function of absolute elapsed time
func GroupRotation(elapsed float64) float64 {
	return elapsed * parameter.OrbitGroupSpin
}

// OrbitingSpheres holds the fixed table and the rotation derived on the last update
type OrbitingSpheres struct {
	specs    [SphereCount]OrbitSpec
	rotation float64
}

func NewOrbitingSpheres() *OrbitingSpheres {
	return &OrbitingSpheres{specs: DefaultOrbits()}
}

// Update re-derives group rotation from elapsed; calling it twice with the same elapsed is a no-op
func (o *OrbitingSpheres) Update(elapsed float64) {
	o.rotation = GroupRotation(elapsed)
}

func (o *OrbitingSpheres) Rotation() float64             { return o.rotation }
func (o *OrbitingSpheres) Specs() [SphereCount]OrbitSpec { return o.specs }

// Positions returns world positions of all spheres for the current rotation
func (o *OrbitingSpheres) Positions() [SphereCount]vmath.Vec3F {
	var out [SphereCount]vmath.Vec3F
	for i, s := range o.specs {
		out[i] = s.World(o.rotation)
	}
	return out
}
