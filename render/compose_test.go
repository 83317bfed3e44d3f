package render

import (
	"math"
	"testing"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/hero-scene/engine"
	"github.com/lixenwraith/hero-scene/scene"
	"github.com/lixenwraith/hero-scene/vmath"
)

// mountedFrame mounts a composer on a manual loop and steps it once
func mountedFrame(t *testing.T) *scene.Frame {
	t.Helper()
	loop := engine.NewFrameLoop(engine.NewManualClock(time.Unix(0, 0)), time.Second)
	c := scene.New(vmath.NewFastRand(77))
	if err := c.Mount(loop, NewPool(0)); err != nil {
		t.Fatalf("mount: %v", err)
	}
	t.Cleanup(func() { _ = c.Unmount() })
	loop.Step(0.5)
	return c.Latest()
}

func TestProjectCenterAndRange(t *testing.T) {
	vp := Viewport{Width: 80, Height: 24, CellAspect: 2}
	cam := scene.DefaultCamera()

	tests := []struct {
		name  string
		p     vmath.Vec3F
		ok    bool
		x, y  float64
		depth float64
	}{
		{"origin", vmath.Vec3F{}, true, 40, 12, 8},
		{"behind camera", vmath.Vec3F{Z: 9}, false, 0, 0, 0},
		{"beyond far", vmath.Vec3F{Z: -1000}, false, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := vp.Project(cam, tt.p)
			if ok != tt.ok {
				t.Fatalf("ok: got %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if got.X != tt.x || got.Y != tt.y || got.Depth != tt.depth {
				t.Errorf("got %+v, want x=%v y=%v depth=%v", got, tt.x, tt.y, tt.depth)
			}
		})
	}
}

func TestProjectAxes(t *testing.T) {
	vp := Viewport{Width: 80, Height: 24, CellAspect: 2}
	cam := scene.DefaultCamera()

	right, _ := vp.Project(cam, vmath.Vec3F{X: 1})
	up, _ := vp.Project(cam, vmath.Vec3F{Y: 1})

	if right.X <= 40 {
		t.Errorf("+X should project right of center, got %v", right.X)
	}
	if up.Y >= 12 {
		t.Errorf("+Y should project above center, got %v", up.Y)
	}
	// Columns are half as tall as rows wide, so a unit step spans twice the columns
	if dx, dy := right.X-40, 12-up.Y; math.Abs(dx-2*dy) > 1e-9 {
		t.Errorf("cell aspect: dx=%v dy=%v", dx, dy)
	}
	// At depth 8 with 60° fov the half height covers 8·tan30° units
	if want := 12 / (8 * math.Tan(math.Pi/6)); math.Abs(up.Scale-want) > 1e-9 {
		t.Errorf("scale: got %v, want %v", up.Scale, want)
	}
}

func TestComposeOrdersFarToNear(t *testing.T) {
	f := mountedFrame(t)
	sprites := Compose(f, Viewport{Width: 160, Height: 48, CellAspect: 2})

	if len(sprites) == 0 {
		t.Fatal("no sprites")
	}
	kinds := map[SpriteKind]int{}
	for i, s := range sprites {
		kinds[s.Kind]++
		if i > 0 && s.Depth > sprites[i-1].Depth {
			t.Fatalf("sprite %d nearer than its successor: %v > %v", i, s.Depth, sprites[i-1].Depth)
		}
	}
	if kinds[SpriteSphere] != scene.SphereCount {
		t.Errorf("spheres: got %d, want %d", kinds[SpriteSphere], scene.SphereCount)
	}
	if kinds[SpriteSurface] == 0 || kinds[SpriteSurface] >= len(f.Surface) {
		t.Errorf("surface samples after culling: got %d of %d", kinds[SpriteSurface], len(f.Surface))
	}
	if kinds[SpriteParticle] == 0 {
		t.Error("no particles in front of the camera")
	}
}

func TestComposeNilFrame(t *testing.T) {
	if got := Compose(nil, Viewport{Width: 10, Height: 10}); got != nil {
		t.Errorf("nil frame: got %d sprites, want none", len(got))
	}
}

func TestShadeFacingLight(t *testing.T) {
	mat := scene.Material{Color: colorful.Color{R: 0.5, G: 0.5, B: 0.5}, Roughness: 0.5, Opacity: 1}
	lights := []scene.Light{{Kind: scene.LightPoint, Position: vmath.Vec3F{Z: 5}, Intensity: 1, Color: colorful.Color{R: 1, G: 1, B: 1}}}
	eye := vmath.Vec3F{Z: 8}

	lit := Shade(mat, vmath.Vec3F{}, vmath.Vec3F{Z: 1}, lights, eye)
	dark := Shade(mat, vmath.Vec3F{}, vmath.Vec3F{Z: -1}, lights, eye)

	if lit.R <= dark.R {
		t.Errorf("facing light should be brighter: lit=%v dark=%v", lit, dark)
	}
	if dark != (colorful.Color{}) {
		t.Errorf("unlit without ambient or emissive: got %v, want black", dark)
	}
}

func TestBlendModes(t *testing.T) {
	dst := colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	src := colorful.Color{R: 1, G: 0, B: 0}

	tests := []struct {
		name  string
		alpha float64
		mode  BlendMode
		want  colorful.Color
	}{
		{"zero alpha", 0, BlendAlpha, dst},
		{"full alpha", 1, BlendAlpha, src},
		{"screen", 1, BlendScreen, colorful.Color{R: 1, G: 0.5, B: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := blend(dst, src, tt.alpha, tt.mode)
			if math.Abs(got.R-tt.want.R) > 1e-9 || math.Abs(got.G-tt.want.G) > 1e-9 || math.Abs(got.B-tt.want.B) > 1e-9 {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
