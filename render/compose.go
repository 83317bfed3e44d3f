package render

import (
	"slices"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/hero-scene/parameter"
	"github.com/lixenwraith/hero-scene/scene"
	"github.com/lixenwraith/hero-scene/vmath"
)

// SpriteKind identifies which scene element produced a sprite
type SpriteKind uint8

const (
	SpriteParticle SpriteKind = iota
	SpriteSurface
	SpriteSphere
)

// Sprite is one projected, shaded disc ready for rasterization
type Sprite struct {
	Kind  SpriteKind
	X, Y  float64
	Depth float64
	// Radius is in grid rows, columns are Radius·CellAspect
	Radius float64
	Color  colorful.Color
	Alpha  float64
	// Glow is the halo radius in rows, zero for none
	Glow float64
}

// Compose projects every visible element of f and returns sprites ordered far to near (painter's algorithm)
// Back-facing surface samples are culled
func Compose(f *scene.Frame, vp Viewport) []Sprite {
	if f == nil || f.Assets == nil {
		return nil
	}
	a := f.Assets
	cam := a.Camera
	sprites := make([]Sprite, 0, len(a.Particles)+len(f.Surface)/2+len(a.Spheres))

	for i, p := range a.Particles {
		proj, ok := vp.Project(cam, f.ParticleWorld(i))
		if !ok {
			continue
		}
		sprites = append(sprites, Sprite{
			Kind:   SpriteParticle,
			X:      proj.X,
			Y:      proj.Y,
			Depth:  proj.Depth,
			Radius: a.ParticleSize / 2 * proj.Scale,
			Color:  p.Color,
			Alpha:  a.ParticleOpacity,
		})
	}

	for i := range f.Surface {
		pos, normal := f.SurfaceWorld(i)
		if vmath.V3FDot(normal, vmath.V3FSub(cam.Position, pos)) <= 0 {
			continue
		}
		proj, ok := vp.Project(cam, pos)
		if !ok {
			continue
		}
		sprites = append(sprites, Sprite{
			Kind:   SpriteSurface,
			X:      proj.X,
			Y:      proj.Y,
			Depth:  proj.Depth,
			Radius: 0.5,
			Color:  Shade(a.ShapeMaterial, pos, normal, a.Lights, cam.Position),
			Alpha:  a.ShapeMaterial.Opacity,
		})
	}

	for i, s := range a.Spheres {
		proj, ok := vp.Project(cam, f.Spheres[i])
		if !ok {
			continue
		}
		r := s.Size * proj.Scale
		sprites = append(sprites, Sprite{
			Kind:   SpriteSphere,
			X:      proj.X,
			Y:      proj.Y,
			Depth:  proj.Depth,
			Radius: r,
			Color:  Emit(s.Material()),
			Alpha:  1,
			Glow:   max(r*parameter.GlowScale, 1),
		})
	}

	slices.SortStableFunc(sprites, func(x, y Sprite) int {
		switch {
		case x.Depth > y.Depth:
			return -1
		case x.Depth < y.Depth:
			return 1
		}
		return 0
	})
	return sprites
}
