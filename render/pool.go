package render

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lixenwraith/hero-scene/scene"
)

var (
	ErrPoolExhausted   = errors.New("device budget exhausted")
	ErrUnknownResource = errors.New("unknown resource")
)

// Pool is a budgeted resource ledger implementing scene.Device
// Hosts without a real GPU use it to account for every buffer and material a mount holds
type Pool struct {
	mu     sync.Mutex
	budget int
	used   int
	next   scene.ResourceID
	live   map[scene.ResourceID]scene.ResourceDesc
}

// NewPool creates a pool; budget <= 0 means unlimited
func NewPool(budget int) *Pool {
	return &Pool{
		budget: budget,
		live:   make(map[scene.ResourceID]scene.ResourceDesc),
	}
}

// Allocate reserves desc.Bytes and returns a fresh handle
func (p *Pool) Allocate(desc scene.ResourceDesc) (scene.ResourceID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.budget > 0 && p.used+desc.Bytes > p.budget {
		return 0, fmt.Errorf("%s %s (%d bytes): %w", desc.Kind, desc.Label, desc.Bytes, ErrPoolExhausted)
	}

	p.next++
	p.live[p.next] = desc
	p.used += desc.Bytes
	return p.next, nil
}

// Release frees a handle; releasing twice is an error
func (p *Pool) Release(id scene.ResourceID) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	desc, ok := p.live[id]
	if !ok {
		return fmt.Errorf("release %d: %w", id, ErrUnknownResource)
	}
	delete(p.live, id)
	p.used -= desc.Bytes
	return nil
}

// Live returns the number of outstanding handles
func (p *Pool) Live() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.live)
}

// Used returns outstanding bytes
func (p *Pool) Used() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.used
}
