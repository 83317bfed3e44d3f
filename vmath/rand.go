package vmath

// FastRand is a seedable xorshift64 generator
// Not safe for concurrent use; owners pass it explicitly instead of sharing a global source
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator, zero seed is remapped since xorshift has a fixed point at 0
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a uniform value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
