package scene

import (
	"math"
	"testing"

	"github.com/lixenwraith/hero-scene/vmath"
)

func TestDefaultOrbitsTable(t *testing.T) {
	tests := []struct {
		id     string
		radius float64
		size   float64
		phase  float64
		hex    string
	}{
		{"s1", 3.5, 0.12, 0, "#00f5ff"},
		{"s2", 3.5, 0.12, 2 * math.Pi / 3, "#a855f7"},
		{"s3", 3.5, 0.10, 4 * math.Pi / 3, "#00f5ff"},
		{"s4", 4.5, 0.08, math.Pi / 4, "#a855f7"},
		{"s5", 4.5, 0.08, 3 * math.Pi / 4, "#00d4e8"},
	}

	specs := DefaultOrbits()
	if len(specs) != len(tests) {
		t.Fatalf("sphere count: got %d, want %d", len(specs), len(tests))
	}
	for i, tt := range tests {
		s := specs[i]
		if s.ID != tt.id || s.BaseRadius != tt.radius || s.Size != tt.size || math.Abs(s.Phase-tt.phase) > 1e-12 {
			t.Errorf("spec %d: got %+v, want %s r=%v size=%v phase=%v", i, s, tt.id, tt.radius, tt.size, tt.phase)
		}
		if s.Color.Hex() != tt.hex {
			t.Errorf("spec %s color: got %s, want %s", tt.id, s.Color.Hex(), tt.hex)
		}
	}
}

func TestOrbitLocalPosition(t *testing.T) {
	specs := DefaultOrbits()

	s1 := specs[0].Local()
	if s1 != (vmath.Vec3F{X: 3.5}) {
		t.Errorf("s1 local: got %+v, want (3.5, 0, 0)", s1)
	}

	// φ = π/4: y = sin(π/8)·0.8
	s4 := specs[3].Local()
	if want := math.Sin(math.Pi/8) * 0.8; math.Abs(s4.Y-want) > 1e-12 {
		t.Errorf("s4 lift: got %v, want %v", s4.Y, want)
	}
}

func TestOrbitRadiusInvariant(t *testing.T) {
	specs := DefaultOrbits()
	for _, angle := range []float64{0, 0.4, 1, math.Pi, 17.3, -2.5} {
		for _, s := range specs {
			local := s.Local()
			world := s.World(angle)
			if math.Abs(vmath.V3FHorizontal(local)-s.BaseRadius) > 1e-6 {
				t.Errorf("%s local radius: got %v, want %v", s.ID, vmath.V3FHorizontal(local), s.BaseRadius)
			}
			if math.Abs(vmath.V3FHorizontal(world)-s.BaseRadius) > 1e-6 {
				t.Errorf("%s world radius at %v: got %v, want %v", s.ID, angle, vmath.V3FHorizontal(world), s.BaseRadius)
			}
			if world.Y != local.Y {
				t.Errorf("%s height changed by group rotation: got %v, want %v", s.ID, world.Y, local.Y)
			}
		}
	}
}

func TestGroupRotation(t *testing.T) {
	tests := []struct {
		elapsed float64
		want    float64
	}{
		{0, 0},
		{0.5, 0.2},
		{2.5, 1},
		{100, 40},
	}
	for _, tt := range tests {
		if got := GroupRotation(tt.elapsed); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("GroupRotation(%v): got %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestOrbitingSpheresUpdateIdempotent(t *testing.T) {
	o := NewOrbitingSpheres()

	o.Update(1.25)
	first := o.Positions()
	o.Update(1.25)
	second := o.Positions()

	if math.Abs(o.Rotation()-0.5) > 1e-12 {
		t.Errorf("rotation: got %v, want 0.5", o.Rotation())
	}
	if first != second {
		t.Errorf("repeated update changed positions: %v vs %v", first, second)
	}
}

func TestOrbitMaterialSelfLit(t *testing.T) {
	for _, s := range DefaultOrbits() {
		m := s.Material()
		if m.Emissive != s.Color {
			t.Errorf("%s emissive: got %v, want %v", s.ID, m.Emissive, s.Color)
		}
		if m.EmissiveIntensity != 2 {
			t.Errorf("%s emissive intensity: got %v, want 2", s.ID, m.EmissiveIntensity)
		}
	}
}
