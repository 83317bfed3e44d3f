// Package scene implements the animated hero scene: a rotating particle field, a deforming torus knot
// and five orbiting spheres, composed with a fixed camera and lights and driven by a host frame scheduler
package scene

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/hero-scene/parameter"
	"github.com/lixenwraith/hero-scene/vmath"
)

var (
	ErrAlreadyMounted = errors.New("scene already mounted")
	ErrNotMounted     = errors.New("scene not mounted")
	ErrNoDevice       = errors.New("render context unavailable")
	ErrNoScheduler    = errors.New("frame scheduler unavailable")
)

// Composer owns camera, lights, clock and the three scene elements
// Lifecycle: Unmounted -> Mounted -> Unmounted, no pause state
type Composer struct {
	// lifeMu serializes Mount/Unmount; mu guards tick state and is the only lock Tick takes
	lifeMu sync.Mutex
	mu     sync.Mutex

	rng Rand

	mounted   bool
	dev       Device
	cancel    func()
	resources []ResourceID

	clock  Clock
	field  *ParticleField
	shape  *CenterShape
	orbits *OrbitingSpheres
	assets *Assets
	seq    uint64

	frame atomic.Pointer[Frame]
}

// New creates an unmounted composer; nil rng seeds a FastRand from wall time
func New(rng Rand) *Composer {
	if rng == nil {
		rng = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	return &Composer{rng: rng}
}

// Mount generates scene content, allocates device resources and registers the frame callback
// On failure nothing stays allocated and the composer remains unmounted
func (c *Composer) Mount(sched Scheduler, dev Device) error {
	if dev == nil {
		return fmt.Errorf("mount: %w", ErrNoDevice)
	}
	if sched == nil {
		return fmt.Errorf("mount: %w", ErrNoScheduler)
	}

	c.lifeMu.Lock()
	defer c.lifeMu.Unlock()

	c.mu.Lock()
	mounted := c.mounted
	c.mu.Unlock()
	if mounted {
		return fmt.Errorf("mount: %w", ErrAlreadyMounted)
	}

	field := NewParticleField(c.rng)
	shape := NewCenterShape(
		int64(c.rng.Float64()*math.MaxInt32),
		c.rng.Float64()*parameter.ShapeFloatPhaseRange,
	)
	orbits := NewOrbitingSpheres()

	assets := &Assets{
		Particles:       field.Particles(),
		ParticleSize:    parameter.ParticleSize,
		ParticleOpacity: parameter.ParticleOpacity,
		Knot:            shape.Geometry(),
		ShapeMaterial:   shape.Material(),
		Spheres:         orbits.Specs(),
		SphereSegments:  parameter.OrbitSphereSegments,
		Camera:          DefaultCamera(),
		Lights:          DefaultLights(),
	}

	ids, err := allocate(dev, manifest(assets))
	if err != nil {
		return fmt.Errorf("mount: %w", err)
	}

	c.mu.Lock()
	c.dev = dev
	c.resources = ids
	c.field = field
	c.shape = shape
	c.orbits = orbits
	c.assets = assets
	c.clock.Reset()
	c.seq = 0
	c.mounted = true
	c.publishLocked()
	c.mu.Unlock()

	c.cancel = sched.Register(c.Tick)
	return nil
}

// Unmount stops frame delivery, then releases every resource in reverse allocation order
func (c *Composer) Unmount() error {
	c.lifeMu.Lock()
	defer c.lifeMu.Unlock()

	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return fmt.Errorf("unmount: %w", ErrNotMounted)
	}
	// Ticks that acquire mu after this point observe unmounted and return without mutation
	c.mounted = false
	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	c.mu.Lock()
	dev, ids := c.dev, c.resources
	c.dev = nil
	c.resources = nil
	c.field = nil
	c.shape = nil
	c.orbits = nil
	c.assets = nil
	c.frame.Store(nil)
	c.mu.Unlock()

	var errs []error
	for i := len(ids) - 1; i >= 0; i-- {
		if err := dev.Release(ids[i]); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("unmount: %w", errors.Join(errs...))
	}
	return nil
}

// Tick advances the scene by delta seconds and publishes a new frame
// Update order is fixed: field, shape, spheres. No-op while unmounted
func (c *Composer) Tick(delta float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.mounted {
		return
	}

	c.clock.Tick(delta)
	d := c.clock.Delta()

	c.field.Update(d)
	c.shape.Update(d)
	c.orbits.Update(c.clock.Elapsed())

	c.seq++
	c.publishLocked()
}

// publishLocked builds an immutable frame from current state and stores it atomically
func (c *Composer) publishLocked() {
	elapsed := c.clock.Elapsed()
	f := &Frame{
		Seq:           c.seq,
		Elapsed:       elapsed,
		Delta:         c.clock.Delta(),
		FieldRotation: c.field.Rotation(),
		Shape:         c.shape.Transform(elapsed),
		Surface:       c.shape.Deform(elapsed),
		GroupRotation: c.orbits.Rotation(),
		Spheres:       c.orbits.Positions(),
		Assets:        c.assets,
	}
	c.frame.Store(f)
}

// Latest returns the most recently published frame, nil while unmounted
// Safe to call from any goroutine
func (c *Composer) Latest() *Frame {
	return c.frame.Load()
}

// Mounted reports lifecycle state
func (c *Composer) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mounted
}

// Resources returns the number of device handles currently held
func (c *Composer) Resources() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.resources)
}
