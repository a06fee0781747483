package scene

// FrameClock turns absolute timestamps into per-frame deltas.
type FrameClock struct {
	last float64
}

// Tick records now and returns the elapsed time and the time since the
// previous tick, in seconds. A clock that goes backwards yields a zero delta.
func (c *FrameClock) Tick(now float64) (elapsed, delta float32) {
	d := now - c.last
	c.last = now
	if d < 0 {
		d = 0
	}
	return float32(now), float32(d)
}
