package scene

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/hero-scene/parameter"
	"github.com/lixenwraith/hero-scene/vmath"
)

// Camera is a fixed perspective camera looking down -Z
type Camera struct {
	Position vmath.Vec3F
	// FOV is the vertical field of view in degrees
	FOV         float64
	Near, Far   float64
	Transparent bool
}

func DefaultCamera() Camera {
	return Camera{
		Position:    vmath.Vec3F{X: parameter.CameraX, Y: parameter.CameraY, Z: parameter.CameraZ},
		FOV:         parameter.CameraFOV,
		Near:        parameter.CameraNear,
		Far:         parameter.CameraFar,
		Transparent: parameter.CameraTransparent,
	}
}

type LightKind uint8

const (
	LightAmbient LightKind = iota
	LightPoint
)

// Light is an ambient fill or a point light; Position is ignored for ambient
type Light struct {
	Kind      LightKind
	Position  vmath.Vec3F
	Intensity float64
	Color     colorful.Color
}

// DefaultLights returns ambient fill, cyan key, purple fill and neutral overhead, in that order
func DefaultLights() []Light {
	return []Light{
		{
			Kind:      LightAmbient,
			Intensity: parameter.AmbientIntensity,
			Color:     mustHex(parameter.AmbientColor),
		},
		{
			Kind:      LightPoint,
			Position:  vmath.Vec3F{X: parameter.KeyLightX, Y: parameter.KeyLightY, Z: parameter.KeyLightZ},
			Intensity: parameter.KeyLightIntensity,
			Color:     mustHex(parameter.KeyLightColor),
		},
		{
			Kind:      LightPoint,
			Position:  vmath.Vec3F{X: parameter.FillLightX, Y: parameter.FillLightY, Z: parameter.FillLightZ},
			Intensity: parameter.FillLightIntensity,
			Color:     mustHex(parameter.FillLightColor),
		},
		{
			Kind:      LightPoint,
			Position:  vmath.Vec3F{X: parameter.TopLightX, Y: parameter.TopLightY, Z: parameter.TopLightZ},
			Intensity: parameter.TopLightIntensity,
			Color:     mustHex(parameter.TopLightColor),
		},
	}
}
