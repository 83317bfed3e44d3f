package scene

import (
	"math"

	"github.com/lixenwraith/hero-scene/vmath"
)

// KnotGeometry is an indexed (p, q) torus-knot tube mesh
// Vertex grid is (tubular+1) x (radial+1), seams duplicated for texture continuity
type KnotGeometry struct {
	Vertices []vmath.Vec3F
	Normals  []vmath.Vec3F
	Indices  []uint32
	Tubular  int
	Radial   int
}

// knotCurve returns the point on the knot centerline at parameter u
func knotCurve(u float64, p, q int, radius float64) vmath.Vec3F {
	cu, su := math.Cos(u), math.Sin(u)
	quOverP := float64(q) / float64(p) * u
	cs := math.Cos(quOverP)
	return vmath.Vec3F{
		X: radius * (2 + cs) * 0.5 * cu,
		Y: radius * (2 + cs) * su * 0.5,
		Z: radius * math.Sin(quOverP) * 0.5,
	}
}

// NewKnotGeometry sweeps a circle of radius tube along the (p, q) knot curve
// Frame per ring: T from a forward difference, N from P1+P2, B = T x N, N re-orthogonalized as B x T
func NewKnotGeometry(radius, tube float64, tubular, radial, p, q int) *KnotGeometry {
	g := &KnotGeometry{
		Vertices: make([]vmath.Vec3F, 0, (tubular+1)*(radial+1)),
		Normals:  make([]vmath.Vec3F, 0, (tubular+1)*(radial+1)),
		Indices:  make([]uint32, 0, tubular*radial*6),
		Tubular:  tubular,
		Radial:   radial,
	}

	for i := 0; i <= tubular; i++ {
		u := float64(i) / float64(tubular) * float64(p) * math.Pi * 2

		p1 := knotCurve(u, p, q, radius)
		p2 := knotCurve(u+0.01, p, q, radius)

		t := vmath.V3FSub(p2, p1)
		n := vmath.V3FAdd(p2, p1)
		b := vmath.V3FNormalize(vmath.V3FCross(t, n))
		n = vmath.V3FNormalize(vmath.V3FCross(b, t))

		for j := 0; j <= radial; j++ {
			v := float64(j) / float64(radial) * math.Pi * 2
			cx := -tube * math.Cos(v)
			cy := tube * math.Sin(v)

			vert := vmath.Vec3F{
				X: p1.X + cx*n.X + cy*b.X,
				Y: p1.Y + cx*n.Y + cy*b.Y,
				Z: p1.Z + cx*n.Z + cy*b.Z,
			}
			g.Vertices = append(g.Vertices, vert)
			g.Normals = append(g.Normals, vmath.V3FNormalize(vmath.V3FSub(vert, p1)))
		}
	}

	stride := uint32(radial + 1)
	for j := 1; j <= tubular; j++ {
		for i := 1; i <= radial; i++ {
			a := stride*uint32(j-1) + uint32(i-1)
			b := stride*uint32(j) + uint32(i-1)
			c := stride*uint32(j) + uint32(i)
			d := stride*uint32(j-1) + uint32(i)
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}

	return g
}

// Len returns vertex count
func (g *KnotGeometry) Len() int { return len(g.Vertices) }

// Bytes returns GPU buffer sizes for float32 positions, float32 normals and uint32 indices
func (g *KnotGeometry) Bytes() (positions, normals, indices int) {
	return len(g.Vertices) * 12, len(g.Normals) * 12, len(g.Indices) * 4
}
