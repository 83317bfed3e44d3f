package scene

import "fmt"

// ResourceKind classifies GPU-visible allocations
type ResourceKind uint8

const (
	ResourceBuffer ResourceKind = iota
	ResourceGeometry
	ResourceMaterial
)

func (k ResourceKind) String() string {
	switch k {
	case ResourceBuffer:
		return "buffer"
	case ResourceGeometry:
		return "geometry"
	case ResourceMaterial:
		return "material"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ResourceID is an opaque device handle
type ResourceID uint64

// ResourceDesc describes one allocation request
type ResourceDesc struct {
	Kind  ResourceKind
	Label string
	Bytes int
}

// Device is the rendering context that owns GPU-visible memory
type Device interface {
	Allocate(desc ResourceDesc) (ResourceID, error)
	Release(id ResourceID) error
}

// Scheduler is the host per-frame callback registry
// cancel must guarantee fn is not running and will never run again once it returns
type Scheduler interface {
	Register(fn func(delta float64)) (cancel func())
}

// materialBytes is the nominal uniform block size of one material
const materialBytes = 256

// sphereGeometryBytes returns float32 position+normal and uint32 index sizes of a UV sphere
func sphereGeometryBytes(segments int) int {
	verts := (segments + 1) * (segments + 1)
	indices := segments * segments * 6
	return verts*24 + indices*4
}

// manifest lists every allocation needed to draw assets, in allocation order
func manifest(a *Assets) []ResourceDesc {
	n := len(a.Particles)
	pos, nrm, idx := a.Knot.Bytes()

	out := []ResourceDesc{
		{Kind: ResourceBuffer, Label: "particles.position", Bytes: n * 12},
		{Kind: ResourceBuffer, Label: "particles.color", Bytes: n * 12},
		{Kind: ResourceMaterial, Label: "particles.material", Bytes: materialBytes},
		{Kind: ResourceBuffer, Label: "knot.position", Bytes: pos},
		{Kind: ResourceBuffer, Label: "knot.normal", Bytes: nrm},
		{Kind: ResourceBuffer, Label: "knot.index", Bytes: idx},
		{Kind: ResourceMaterial, Label: "knot.material", Bytes: materialBytes},
	}
	for _, s := range a.Spheres {
		out = append(out,
			ResourceDesc{Kind: ResourceGeometry, Label: "sphere." + s.ID + ".geometry", Bytes: sphereGeometryBytes(a.SphereSegments)},
			ResourceDesc{Kind: ResourceMaterial, Label: "sphere." + s.ID + ".material", Bytes: materialBytes},
		)
	}
	return out
}

// allocate requests every descriptor, rolling back on the first failure
func allocate(dev Device, descs []ResourceDesc) ([]ResourceID, error) {
	ids := make([]ResourceID, 0, len(descs))
	for _, d := range descs {
		id, err := dev.Allocate(d)
		if err != nil {
			for i := len(ids) - 1; i >= 0; i-- {
				_ = dev.Release(ids[i])
			}
			return nil, fmt.Errorf("allocate %s: %w", d.Label, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
