// Package clock turns wall-clock timestamps into per-frame deltas.
package clock

import "time"

// DefaultMaxDelta caps a single frame delta, so a stall such as a window
// drag does not advance the animation in one jump.
const DefaultMaxDelta = 250 * time.Millisecond

// Frame measures the time between successive ticks.
type Frame struct {
	// MaxDelta caps each delta. Zero disables the cap.
	MaxDelta time.Duration

	last    time.Time
	started bool
	delta   time.Duration
	elapsed time.Duration
	frames  uint64
}

// New returns a frame clock with the default cap.
func New() *Frame {
	return &Frame{MaxDelta: DefaultMaxDelta}
}

// Tick records now and returns the seconds since the previous tick. The
// first tick returns 0, as does a timestamp earlier than the last one.
func (f *Frame) Tick(now time.Time) float64 {
	f.frames++
	if !f.started {
		f.started = true
		f.last = now
		f.delta = 0
		return 0
	}

	d := now.Sub(f.last)
	f.last = now
	if d < 0 {
		d = 0
	}
	if f.MaxDelta > 0 && d > f.MaxDelta {
		d = f.MaxDelta
	}
	f.delta = d
	f.elapsed += d
	return d.Seconds()
}

// Delta returns the last delta.
func (f *Frame) Delta() time.Duration {
	return f.delta
}

// Elapsed returns the sum of all deltas, so it excludes capped stalls.
func (f *Frame) Elapsed() time.Duration {
	return f.elapsed
}

// Frames returns the number of ticks so far.
func (f *Frame) Frames() uint64 {
	return f.frames
}

// Reset forgets the previous timestamp; the next tick returns 0.
func (f *Frame) Reset() {
	f.started = false
	f.delta = 0
}
