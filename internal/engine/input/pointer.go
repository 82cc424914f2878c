package input

// PointerTracker turns absolute cursor positions into per-frame deltas.
// The first sample after creation or Reset only primes the tracker, so a
// cursor that starts far from the window center does not jerk the view.
type PointerTracker struct {
	lastX, lastY float64
	primed       bool
}

// Delta returns the movement since the previous sample.
func (p *PointerTracker) Delta(x, y float64) (dx, dy float32) {
	if !p.primed {
		p.primed = true
		p.lastX, p.lastY = x, y
		return 0, 0
	}
	dx = float32(x - p.lastX)
	dy = float32(y - p.lastY)
	p.lastX, p.lastY = x, y
	return dx, dy
}

// Reset makes the next sample a priming one again, e.g. after the
// cursor is released and recaptured.
func (p *PointerTracker) Reset() {
	p.primed = false
}
