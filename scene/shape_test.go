package scene

import (
	"math"
	"testing"

	"github.com/lixenwraith/hero-scene/parameter"
	"github.com/lixenwraith/hero-scene/vmath"
)

func TestShapeAdvanceAdditive(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
	}{
		{"halves", 0.05, 0.05},
		{"uneven", 0.013, 0.2},
		{"large", 3, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split := ShapeState{}.Advance(tt.a).Advance(tt.b)
			whole := ShapeState{}.Advance(tt.a + tt.b)
			if math.Abs(split.RotationX-whole.RotationX) > 1e-12 || math.Abs(split.RotationY-whole.RotationY) > 1e-12 {
				t.Errorf("split %+v != whole %+v", split, whole)
			}
		})
	}
}

func TestShapeAdvanceMonotonic(t *testing.T) {
	s := ShapeState{}
	for i := 0; i < 100; i++ {
		next := s.Advance(0.016)
		if next.RotationX <= s.RotationX || next.RotationY <= s.RotationY {
			t.Fatalf("step %d not increasing: %+v -> %+v", i, s, next)
		}
		s = next
	}
	if math.Abs(s.RotationY-0.5*1.6) > 1e-9 {
		t.Errorf("rotation Y after 1.6s: got %v, want %v", s.RotationY, 0.8)
	}
}

func TestFloatAtBounded(t *testing.T) {
	maxLift := 0.1 * parameter.ShapeFloatLift
	maxRot := parameter.ShapeFloatRotation / 8
	for e := 0.0; e < 200; e += 0.37 {
		p := FloatAt(e)
		if math.Abs(p.Lift) > maxLift+1e-12 {
			t.Fatalf("lift at %v: got %v, bound %v", e, p.Lift, maxLift)
		}
		if math.Abs(p.Rotation.X) > maxRot+1e-12 || math.Abs(p.Rotation.Y) > maxRot+1e-12 {
			t.Fatalf("rotation at %v: got %+v, bound %v", e, p.Rotation, maxRot)
		}
	}
	if FloatAt(3) != FloatAt(3) {
		t.Error("FloatAt not deterministic")
	}
}

func TestKnotGeometrySize(t *testing.T) {
	g := NewKnotGeometry(1, 0.3, 128, 16, 2, 3)

	if want := 129 * 17; g.Len() != want {
		t.Errorf("vertices: got %d, want %d", g.Len(), want)
	}
	if len(g.Normals) != g.Len() {
		t.Errorf("normals: got %d, want %d", len(g.Normals), g.Len())
	}
	if want := 128 * 16 * 6; len(g.Indices) != want {
		t.Errorf("indices: got %d, want %d", len(g.Indices), want)
	}
	for i, idx := range g.Indices {
		if int(idx) >= g.Len() {
			t.Fatalf("index %d out of range: %d", i, idx)
		}
	}
	for i, n := range g.Normals {
		if math.Abs(vmath.V3FMag(n)-1) > 1e-9 {
			t.Fatalf("normal %d not unit: %v", i, vmath.V3FMag(n))
		}
	}
}

func TestCenterShapeDeform(t *testing.T) {
	c := NewCenterShape(5, 0)
	src := c.Geometry().Vertices

	a := c.Deform(1.5)
	b := c.Deform(1.5)
	if len(a) != len(src) {
		t.Fatalf("deformed len: got %d, want %d", len(a), len(src))
	}

	// three octaves at alpha 2 sum to under twice a single octave's range
	limit := 2 * parameter.ShapeDistort * parameter.ShapeDistort
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("vertex %d differs for same elapsed", i)
		}
		m0, m1 := vmath.V3FMag(src[i]), vmath.V3FMag(a[i])
		if m0 == 0 {
			continue
		}
		if r := m1/m0 - 1; math.Abs(r) > limit+1e-9 {
			t.Fatalf("vertex %d scaled by %v, limit %v", i, r, limit)
		}
	}

	if &a[0] == &src[0] {
		t.Error("Deform must not alias the base geometry")
	}
}

func TestCenterShapeTransform(t *testing.T) {
	c := NewCenterShape(1, 0)
	c.Update(1)

	tr := c.Transform(0)
	if tr.Scale != parameter.ShapeScale {
		t.Errorf("scale: got %v, want %v", tr.Scale, parameter.ShapeScale)
	}
	if tr.Mesh.X != 0.3 || tr.Mesh.Y != 0.5 {
		t.Errorf("mesh rotation: got %+v, want (0.3, 0.5, 0)", tr.Mesh)
	}
	if tr.Float.Lift != 0 {
		t.Errorf("lift at elapsed 0: got %v, want 0", tr.Float.Lift)
	}
}

func TestClockTick(t *testing.T) {
	var c Clock
	c.Tick(0.1)
	c.Tick(-1)
	c.Tick(math.NaN())
	c.Tick(100)

	if math.Abs(c.Elapsed()-100.1) > 1e-9 {
		t.Errorf("elapsed: got %v, want 100.1", c.Elapsed())
	}
	if c.Delta() != 100 {
		t.Errorf("delta: got %v, want 100", c.Delta())
	}

	before := c.Elapsed()
	c.Tick(-5)
	if c.Delta() != 0 || c.Elapsed() != before {
		t.Errorf("negative delta: got elapsed=%v delta=%v", c.Elapsed(), c.Delta())
	}

	c.Reset()
	if c.Elapsed() != 0 || c.Delta() != 0 {
		t.Errorf("reset: got elapsed=%v delta=%v", c.Elapsed(), c.Delta())
	}
}

func TestCenterShapeFloatPhase(t *testing.T) {
	tests := []struct {
		name    string
		phase   float64
		elapsed float64
	}{
		{"zero phase", 0, 2},
		{"offset at mount", 1234.5, 0},
		{"offset later", 1234.5, 3.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCenterShape(1, tt.phase)
			got := c.Transform(tt.elapsed).Float
			if want := FloatAt(tt.elapsed + tt.phase); got != want {
				t.Errorf("float pose: got %+v, want %+v", got, want)
			}
		})
	}
}
