// Package camera provides the first-person free-look camera and the
// projection used by the demos.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/orrery/pkg/math"
)

// DefaultMaxPitch keeps the look direction away from the up vector.
const DefaultMaxPitch = 85

// Convention selects how yaw maps onto the XZ plane.
type Convention int

const (
	// YawCounterClockwise: yaw 0 looks down +X and yaw 90 looks down -Z.
	YawCounterClockwise Convention = iota
	// YawClockwise: yaw 0 looks down +X and yaw -90 looks down -Z.
	YawClockwise
)

// Direction is a movement request relative to the view.
type Direction int

const (
	Forward Direction = iota
	Back
	StrafeLeft
	StrafeRight
)

// FreeLook is a position plus yaw and pitch in degrees. The look direction
// is derived on demand and never stored.
type FreeLook struct {
	Position math.Vec3
	Yaw      float32
	Pitch    float32

	Convention Convention

	// AngularSpeed is degrees per pointer pixel per second.
	AngularSpeed float32
	// MaxPitch bounds |Pitch|. Values outside (0, 90) fall back to
	// DefaultMaxPitch.
	MaxPitch float32
}

// Up is the fixed world up used for strafing and the view matrix.
var Up = math.UnitY

// NewFreeLook returns a camera at pos with the given orientation.
func NewFreeLook(pos math.Vec3, yaw, pitch float32, conv Convention) *FreeLook {
	c := &FreeLook{
		Position:     pos,
		Yaw:          yaw,
		Convention:   conv,
		AngularSpeed: 15,
		MaxPitch:     DefaultMaxPitch,
	}
	c.Pitch = math.Clamp(pitch, -c.maxPitch(), c.maxPitch())
	return c
}

func (c *FreeLook) maxPitch() float32 {
	if c.MaxPitch <= 0 || c.MaxPitch >= 90 {
		return DefaultMaxPitch
	}
	return c.MaxPitch
}

// UpdateLook turns the camera by a pointer delta in pixels. Moving the
// pointer right turns the view right; moving it up (negative dy, screen
// y grows downward) turns the view up.
func (c *FreeLook) UpdateLook(dx, dy, dt float32) {
	if dt < 0 {
		dt = 0
	}
	step := c.AngularSpeed * dt

	switch c.Convention {
	case YawClockwise:
		c.Yaw += dx * step
	default:
		c.Yaw -= dx * step
	}
	c.Yaw = math32.Mod(c.Yaw, 360)

	m := c.maxPitch()
	c.Pitch = math.Clamp(c.Pitch-dy*step, -m, m)
}

// Look returns the unit view direction.
func (c *FreeLook) Look() math.Vec3 {
	sy, cy := math32.Sincos(math.Radians(c.Yaw))
	sp, cp := math32.Sincos(math.Radians(c.Pitch))

	z := -cp * sy
	if c.Convention == YawClockwise {
		z = cp * sy
	}
	return math.V3(cp*cy, sp, z).Normalize()
}

// Side returns the unit vector pointing to the camera's right.
func (c *FreeLook) Side() math.Vec3 {
	return c.Look().Cross(Up).Normalize()
}

// Move translates the camera by speed*dt along dir.
func (c *FreeLook) Move(dir Direction, dt, speed float32) {
	if dt < 0 {
		return
	}
	d := speed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Look().Scale(d))
	case Back:
		c.Position = c.Position.Sub(c.Look().Scale(d))
	case StrafeRight:
		c.Position = c.Position.Add(c.Side().Scale(d))
	case StrafeLeft:
		c.Position = c.Position.Sub(c.Side().Scale(d))
	}
}

// ViewMatrix looks from Position along Look.
func (c *FreeLook) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Look()), Up)
}
