package stream

import (
	"github.com/lixenwraith/hero-scene/parameter"
	"github.com/lixenwraith/hero-scene/scene"
	"github.com/lixenwraith/hero-scene/vmath"
)

// Message types sent to clients
const (
	TypeAssets  = "assets"
	TypeFrame   = "frame"
	TypeUnmount = "unmount"
)

type vec3 [3]float64

func toVec3(v vmath.Vec3F) vec3 { return vec3{v.X, v.Y, v.Z} }

func toEuler(e vmath.Euler) vec3 { return vec3{e.X, e.Y, e.Z} }

// AssetsMessage carries static scene content, sent on connect and after every remount
// Particle buffers are flat xyz/rgb arrays as a renderer would upload them
type AssetsMessage struct {
	Type      string        `json:"type"`
	Camera    CameraJSON    `json:"camera"`
	Lights    []LightJSON   `json:"lights"`
	Particles ParticlesJSON `json:"particles"`
	Knot      KnotJSON      `json:"knot"`
	Spheres   []SphereJSON  `json:"spheres"`
}

type CameraJSON struct {
	Position    vec3    `json:"position"`
	FOV         float64 `json:"fov"`
	Transparent bool    `json:"transparent"`
}

type LightJSON struct {
	Kind      string  `json:"kind"`
	Position  vec3    `json:"position"`
	Intensity float64 `json:"intensity"`
	Color     string  `json:"color"`
}

type ParticlesJSON struct {
	Positions []float32 `json:"positions"`
	Colors    []float32 `json:"colors"`
	Size      float64   `json:"size"`
	Opacity   float64   `json:"opacity"`
}

// KnotJSON describes the knot parametrically; clients rebuild geometry and run their own distortion
type KnotJSON struct {
	Radius   float64      `json:"radius"`
	Tube     float64      `json:"tube"`
	Tubular  int          `json:"tubular"`
	Radial   int          `json:"radial"`
	P        int          `json:"p"`
	Q        int          `json:"q"`
	Material MaterialJSON `json:"material"`
}

type MaterialJSON struct {
	Color             string  `json:"color"`
	Emissive          string  `json:"emissive"`
	EmissiveIntensity float64 `json:"emissiveIntensity"`
	Metalness         float64 `json:"metalness"`
	Roughness         float64 `json:"roughness"`
	Distort           float64 `json:"distort,omitempty"`
}

type SphereJSON struct {
	ID     string  `json:"id"`
	Radius float64 `json:"radius"`
	Size   float64 `json:"size"`
	Phase  float64 `json:"phase"`
	Color  string  `json:"color"`
}

// FrameMessage carries the per-frame transform set
type FrameMessage struct {
	Type          string  `json:"type"`
	Seq           uint64  `json:"seq"`
	Elapsed       float64 `json:"elapsed"`
	Delta         float64 `json:"delta"`
	FieldRotation vec3    `json:"fieldRotation"`
	ShapeRotation vec3    `json:"shapeRotation"`
	FloatRotation vec3    `json:"floatRotation"`
	FloatLift     float64 `json:"floatLift"`
	ShapeScale    float64 `json:"shapeScale"`
	GroupRotation float64 `json:"groupRotation"`
	Spheres       []vec3  `json:"spheres"`
}

type UnmountMessage struct {
	Type string `json:"type"`
}

func materialJSON(m scene.Material) MaterialJSON {
	return MaterialJSON{
		Color:             m.Color.Hex(),
		Emissive:          m.Emissive.Hex(),
		EmissiveIntensity: m.EmissiveIntensity,
		Metalness:         m.Metalness,
		Roughness:         m.Roughness,
		Distort:           m.Distort,
	}
}

// NewAssetsMessage flattens assets for the wire
func NewAssetsMessage(a *scene.Assets) AssetsMessage {
	msg := AssetsMessage{
		Type: TypeAssets,
		Camera: CameraJSON{
			Position:    toVec3(a.Camera.Position),
			FOV:         a.Camera.FOV,
			Transparent: a.Camera.Transparent,
		},
		Particles: ParticlesJSON{
			Positions: make([]float32, 0, len(a.Particles)*3),
			Colors:    make([]float32, 0, len(a.Particles)*3),
			Size:      a.ParticleSize,
			Opacity:   a.ParticleOpacity,
		},
		Knot: KnotJSON{
			Radius:   parameter.KnotRadius,
			Tube:     parameter.KnotTube,
			Tubular:  a.Knot.Tubular,
			Radial:   a.Knot.Radial,
			P:        parameter.KnotP,
			Q:        parameter.KnotQ,
			Material: materialJSON(a.ShapeMaterial),
		},
	}

	for _, l := range a.Lights {
		kind := "point"
		if l.Kind == scene.LightAmbient {
			kind = "ambient"
		}
		msg.Lights = append(msg.Lights, LightJSON{
			Kind:      kind,
			Position:  toVec3(l.Position),
			Intensity: l.Intensity,
			Color:     l.Color.Hex(),
		})
	}

	for _, p := range a.Particles {
		msg.Particles.Positions = append(msg.Particles.Positions,
			float32(p.Position.X), float32(p.Position.Y), float32(p.Position.Z))
		msg.Particles.Colors = append(msg.Particles.Colors,
			float32(p.Color.R), float32(p.Color.G), float32(p.Color.B))
	}

	for _, s := range a.Spheres {
		msg.Spheres = append(msg.Spheres, SphereJSON{
			ID:     s.ID,
			Radius: s.BaseRadius,
			Size:   s.Size,
			Phase:  s.Phase,
			Color:  s.Color.Hex(),
		})
	}
	return msg
}

// NewFrameMessage converts a frame's transforms for the wire
func NewFrameMessage(f *scene.Frame) FrameMessage {
	msg := FrameMessage{
		Type:          TypeFrame,
		Seq:           f.Seq,
		Elapsed:       f.Elapsed,
		Delta:         f.Delta,
		FieldRotation: toEuler(f.FieldRotation),
		ShapeRotation: toEuler(f.Shape.Mesh),
		FloatRotation: toEuler(f.Shape.Float.Rotation),
		FloatLift:     f.Shape.Float.Lift,
		ShapeScale:    f.Shape.Scale,
		GroupRotation: f.GroupRotation,
		Spheres:       make([]vec3, len(f.Spheres)),
	}
	for i, p := range f.Spheres {
		msg.Spheres[i] = toVec3(p)
	}
	return msg
}
