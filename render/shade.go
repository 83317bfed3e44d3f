package render

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/hero-scene/parameter"
	"github.com/lixenwraith/hero-scene/scene"
	"github.com/lixenwraith/hero-scene/vmath"
)

func scale(c colorful.Color, s float64) colorful.Color {
	return colorful.Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

func add(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: a.R + b.R, G: a.G + b.G, B: a.B + b.B}
}

func modulate(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: a.R * b.R, G: a.G * b.G, B: a.B * b.B}
}

// Shade evaluates ambient + Lambert diffuse + Blinn-Phong specular + emissive at a surface point
// Point lights attenuate as intensity / (1 + k·d²); metals tint specular by base color
func Shade(mat scene.Material, pos, normal vmath.Vec3F, lights []scene.Light, eye vmath.Vec3F) colorful.Color {
	n := vmath.V3FNormalize(normal)
	view := vmath.V3FNormalize(vmath.V3FSub(eye, pos))

	var diffuse, specular colorful.Color
	exponent := parameter.SpecularPower * (1 - mat.Roughness)
	if exponent < 1 {
		exponent = 1
	}
	specTint := mat.Color.BlendRgb(colorful.Color{R: 1, G: 1, B: 1}, 1-mat.Metalness)

	for _, l := range lights {
		switch l.Kind {
		case scene.LightAmbient:
			diffuse = add(diffuse, scale(l.Color, l.Intensity))

		case scene.LightPoint:
			toLight := vmath.V3FSub(l.Position, pos)
			distSq := vmath.V3FMagSq(toLight)
			dir := vmath.V3FNormalize(toLight)
			att := l.Intensity / (1 + parameter.PointLightFalloff*distSq)

			ndl := vmath.V3FDot(n, dir)
			if ndl <= 0 {
				continue
			}
			diffuse = add(diffuse, scale(l.Color, ndl*att))

			half := vmath.V3FNormalize(vmath.V3FAdd(dir, view))
			ndh := math.Max(0, vmath.V3FDot(n, half))
			specular = add(specular, scale(modulate(l.Color, specTint), math.Pow(ndh, exponent)*att))
		}
	}

	base := scale(mat.Color, 1-mat.Metalness*0.5)
	out := add(modulate(base, diffuse), specular)
	out = add(out, scale(mat.Emissive, mat.EmissiveIntensity))
	return out.Clamped()
}

// Emit returns the self-lit color of an emissive surface, used for spheres whose emissive term dominates
func Emit(mat scene.Material) colorful.Color {
	return scale(mat.Emissive, mat.EmissiveIntensity*0.5).Clamped()
}
