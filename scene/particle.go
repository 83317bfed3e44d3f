package scene

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/hero-scene/parameter"
	"github.com/lixenwraith/hero-scene/vmath"
)

// Rand is the random source used for procedural generation
// *vmath.FastRand and *math/rand.Rand both satisfy it
type Rand interface {
	Float64() float64
}

// Particle is one immutable colored point of the field
type Particle struct {
	Position vmath.Vec3F
	Color    colorful.Color
}

// GenerateParticles draws count points uniformly inside a box centered on the origin
// Each particle consumes four draws in order: x, y, z, color coin
func GenerateParticles(rng Rand, count int, boundsXY, boundsZ float64) []Particle {
	if count < 0 {
		count = 0
	}
	out := make([]Particle, count)
	for i := range out {
		p := &out[i]
		p.Position.X = (rng.Float64() - 0.5) * boundsXY
		p.Position.Y = (rng.Float64() - 0.5) * boundsXY
		p.Position.Z = (rng.Float64() - 0.5) * boundsZ

		if rng.Float64() > parameter.ParticleCyanThreshold {
			p.Color = Cyan
		} else {
			p.Color = Purple
		}
	}
	return out
}

// AdvanceField returns the field rotation after delta seconds
func AdvanceField(rot vmath.Euler, delta float64) vmath.Euler {
	rot.Y += parameter.ParticleSpinY * delta
	rot.X += parameter.ParticleSpinX * delta
	return rot
}

// ParticleField is the static point cloud plus its accumulated rigid-body rotation
type ParticleField struct {
	particles []Particle
	rotation  vmath.Euler
}

// NewParticleField generates the default 200-point field from rng
func NewParticleField(rng Rand) *ParticleField {
	return &ParticleField{
		particles: GenerateParticles(rng, parameter.ParticleCount, parameter.ParticleBoundsXY, parameter.ParticleBoundsZ),
	}
}

// Update accumulates rotation, the only per-frame mutation of the field
func (f *ParticleField) Update(delta float64) {
	f.rotation = AdvanceField(f.rotation, delta)
}

func (f *ParticleField) Rotation() vmath.Euler { return f.rotation }

// Particles returns the generated points, callers must not modify the slice
func (f *ParticleField) Particles() []Particle { return f.particles }

func (f *ParticleField) Len() int { return len(f.particles) }
