package scene

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Particle color classes, exact triples with no interpolation between them
var (
	Cyan   = colorful.Color{R: 0.0, G: 0.9, B: 1.0}
	Purple = colorful.Color{R: 0.66, G: 0.33, B: 0.97}
)

// mustHex parses a #rrggbb literal from the parameter package
// Literals are constants, a parse failure is a programming error
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("scene: invalid color literal %q: %v", s, err))
	}
	return c
}

// Material describes surface shading inputs shared by all hosts
type Material struct {
	Color             colorful.Color
	Emissive          colorful.Color
	EmissiveIntensity float64
	Metalness         float64
	Roughness         float64
	Opacity           float64
	// Distort is the constant surface distortion amount, zero for rigid surfaces
	Distort float64
}
