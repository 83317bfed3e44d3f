package parameter

import "math"

// Particle field
const (
	// ParticleCount is the number of points generated once per mount
	ParticleCount = 200
	// ParticleBoundsXY is the full width of the generation box on X and Y (centered on origin)
	ParticleBoundsXY = 20.0
	// ParticleBoundsZ is the full depth of the generation box on Z
	ParticleBoundsZ = 15.0
	// ParticleCyanThreshold: draws above it pick cyan, otherwise purple
	ParticleCyanThreshold = 0.5

	// ParticleSpinY/X are rigid-body rotation rates of the whole field (rad/s)
	ParticleSpinY = 0.04
	ParticleSpinX = 0.02

	// ParticleSize is the point sprite size in world units (size-attenuated)
	ParticleSize    = 0.06
	ParticleOpacity = 0.8
)

// Center shape (torus knot)
const (
	ShapeSpinX = 0.3
	ShapeSpinY = 0.5
	ShapeScale = 1.4

	// Knot geometry: radius, tube radius, segments, winding (p, q)
	KnotRadius          = 1.0
	KnotTube            = 0.3
	KnotTubularSegments = 128
	KnotRadialSegments  = 16
	KnotP               = 2
	KnotQ               = 3

	// ShapeFloatSpeed scales the bob phase, ShapeFloatRotation/ShapeFloatLift its amplitudes
	ShapeFloatSpeed    = 2.0
	ShapeFloatRotation = 0.5
	ShapeFloatLift     = 1.5
	// ShapeFloatPhaseRange bounds the random per-mount bob phase offset
	ShapeFloatPhaseRange = 10000.0

	// ShapeDistort is the constant surface distortion amount, ShapeDistortSpeed the noise phase rate
	ShapeDistort      = 0.15
	ShapeDistortSpeed = 2.0

	ShapeColor             = "#00d4e8"
	ShapeEmissive          = "#003d6e"
	ShapeEmissiveIntensity = 0.5
	ShapeMetalness         = 0.8
	ShapeRoughness         = 0.1
)

// Orbiting spheres
const (
	// OrbitGroupSpin is the group Y rotation rate, applied to absolute elapsed time (rad/s)
	OrbitGroupSpin = 0.4
	// OrbitLift is the vertical amplitude of the static local offset sin(phase/2)
	OrbitLift = 0.8
	// OrbitSphereSegments is width and height segment count of each sphere mesh
	OrbitSphereSegments = 16

	OrbitEmissiveIntensity = 2.0
	OrbitMetalness         = 0.5
	OrbitRoughness         = 0.1
)

// OrbitRow is one literal row of the sphere table
type OrbitRow struct {
	ID     string
	Radius float64
	Size   float64
	Phase  float64
	Color  string
}

// OrbitTable is the fixed five-sphere descriptor table
var OrbitTable = [5]OrbitRow{
	{ID: "s1", Radius: 3.5, Size: 0.12, Phase: 0, Color: "#00f5ff"},
	{ID: "s2", Radius: 3.5, Size: 0.12, Phase: math.Pi * 2 / 3, Color: "#a855f7"},
	{ID: "s3", Radius: 3.5, Size: 0.10, Phase: math.Pi * 4 / 3, Color: "#00f5ff"},
	{ID: "s4", Radius: 4.5, Size: 0.08, Phase: math.Pi / 4, Color: "#a855f7"},
	{ID: "s5", Radius: 4.5, Size: 0.08, Phase: math.Pi * 3 / 4, Color: "#00d4e8"},
}

// Camera
const (
	CameraX   = 0.0
	CameraY   = 0.0
	CameraZ   = 8.0
	CameraFOV = 60.0
	// CameraNear/Far clip distances along the view axis
	CameraNear = 0.1
	CameraFar  = 1000.0
	// CameraTransparent keeps the background unpainted so the host page shows through
	CameraTransparent = true
)

// Lights
const (
	AmbientIntensity = 0.3
	AmbientColor     = "#ffffff"

	KeyLightX, KeyLightY, KeyLightZ = 5.0, 5.0, 5.0
	KeyLightIntensity               = 2.0
	KeyLightColor                   = "#00f5ff"

	FillLightX, FillLightY, FillLightZ = -5.0, -3.0, -5.0
	FillLightIntensity                 = 1.5
	FillLightColor                     = "#a855f7"

	TopLightX, TopLightY, TopLightZ = 0.0, 8.0, 0.0
	TopLightIntensity               = 1.0
	TopLightColor                   = "#ffffff"
)
