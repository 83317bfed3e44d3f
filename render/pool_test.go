package render

import (
	"errors"
	"testing"

	"github.com/lixenwraith/hero-scene/scene"
)

func TestPoolAllocateRelease(t *testing.T) {
	p := NewPool(1000)

	a, err := p.Allocate(scene.ResourceDesc{Kind: scene.ResourceBuffer, Label: "a", Bytes: 600})
	if err != nil {
		t.Fatalf("allocate a: %v", err)
	}
	if _, err := p.Allocate(scene.ResourceDesc{Kind: scene.ResourceBuffer, Label: "b", Bytes: 500}); !errors.Is(err, ErrPoolExhausted) {
		t.Errorf("over budget: got %v, want ErrPoolExhausted", err)
	}
	b, err := p.Allocate(scene.ResourceDesc{Kind: scene.ResourceMaterial, Label: "b", Bytes: 400})
	if err != nil {
		t.Fatalf("allocate b: %v", err)
	}
	if a == b {
		t.Errorf("handles not unique: %d", a)
	}
	if p.Live() != 2 || p.Used() != 1000 {
		t.Errorf("after allocate: live=%d used=%d, want 2/1000", p.Live(), p.Used())
	}

	if err := p.Release(a); err != nil {
		t.Fatalf("release a: %v", err)
	}
	if err := p.Release(a); !errors.Is(err, ErrUnknownResource) {
		t.Errorf("double release: got %v, want ErrUnknownResource", err)
	}
	if p.Live() != 1 || p.Used() != 400 {
		t.Errorf("after release: live=%d used=%d, want 1/400", p.Live(), p.Used())
	}
}

func TestPoolUnlimited(t *testing.T) {
	p := NewPool(0)
	for i := 0; i < 100; i++ {
		if _, err := p.Allocate(scene.ResourceDesc{Bytes: 1 << 30}); err != nil {
			t.Fatalf("allocate %d: %v", i, err)
		}
	}
	if p.Live() != 100 {
		t.Errorf("live: got %d, want 100", p.Live())
	}
}
