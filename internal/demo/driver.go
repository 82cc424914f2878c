// Package demo runs one frame of an animated scene: input, camera,
// animation, composition and draw submission, without touching GL.
package demo

import (
	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/engine/input"
	"github.com/Faultbox/orrery/internal/scene"
	"github.com/Faultbox/orrery/pkg/math"
)

// Renderer receives the composed frame. Draw is called once per body,
// parents before children.
type Renderer interface {
	BeginFrame(view, projection math.Mat4, eye math.Vec3)
	Draw(body int, world math.Mat4)
}

// Driver owns the per-frame state of a running demo.
type Driver struct {
	Scene      *scene.Scene
	Camera     *camera.FreeLook
	Projection *camera.Projection

	// Speed is camera units per second; Boost multiplies it while the
	// boost action is held.
	Speed float32
	Boost float32

	pointer input.PointerTracker
}

var moves = []struct {
	action input.Action
	dir    camera.Direction
}{
	{input.Forward, camera.Forward},
	{input.Back, camera.Back},
	{input.StrafeLeft, camera.StrafeLeft},
	{input.StrafeRight, camera.StrafeRight},
}

// Step advances the demo by dt seconds and submits the frame to r. It
// returns false without drawing when the user asked to quit.
func (d *Driver) Step(in *input.State, dt float64, r Renderer) bool {
	if in.QuitRequested() {
		return false
	}
	if dt < 0 {
		dt = 0
	}
	if in.Resized {
		d.Projection.Resize(in.Width, in.Height)
	}

	fdt := float32(dt)
	if in.FocusChanged && !in.Unfocused {
		d.ResetPointer()
	}
	if !in.Unfocused {
		dx, dy := d.pointer.Delta(in.CursorX, in.CursorY)
		d.Camera.UpdateLook(dx, dy, fdt)
	}

	speed := d.Speed
	if in.Held(input.Boost) && d.Boost > 0 {
		speed *= d.Boost
	}
	for _, m := range moves {
		if in.Held(m.action) {
			d.Camera.Move(m.dir, fdt, speed)
		}
	}

	d.Scene.Advance(dt)
	d.Scene.Compose()

	r.BeginFrame(d.Camera.ViewMatrix(), d.Projection.Matrix(), d.Camera.Position)
	for _, i := range d.Scene.Order() {
		r.Draw(i, d.Scene.World(i))
	}
	return true
}

// ResetPointer makes the next cursor sample a priming one. Step calls it
// when the window regains focus, since the cursor jumps while released.
func (d *Driver) ResetPointer() {
	d.pointer.Reset()
}
