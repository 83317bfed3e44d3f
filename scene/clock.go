package scene

// Clock tracks elapsed time and last frame delta in seconds
// Owned and mutated only by Composer, one Tick per frame
type Clock struct {
	elapsed float64
	delta   float64
}

// Tick records delta and accumulates it into elapsed
// Negative and NaN deltas count as zero so elapsed never decreases; large deltas pass through unclamped
func (c *Clock) Tick(delta float64) {
	if !(delta > 0) {
		delta = 0
	}
	c.delta = delta
	c.elapsed += delta
}

// Reset returns the clock to mount state
func (c *Clock) Reset() {
	c.elapsed = 0
	c.delta = 0
}

func (c *Clock) Elapsed() float64 { return c.elapsed }
func (c *Clock) Delta() float64   { return c.delta }
