package camera

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/orrery/pkg/math"
)

func assertVec(t *testing.T, want, got math.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-5, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-5, "y")
	assert.InDelta(t, want.Z, got.Z, 1e-5, "z")
}

func TestLookDirection(t *testing.T) {
	tests := []struct {
		name  string
		yaw   float32
		pitch float32
		conv  Convention
		want  math.Vec3
	}{
		{"ccw yaw 0", 0, 0, YawCounterClockwise, math.V3(1, 0, 0)},
		{"ccw yaw 90", 90, 0, YawCounterClockwise, math.V3(0, 0, -1)},
		{"cw yaw 0", 0, 0, YawClockwise, math.V3(1, 0, 0)},
		{"cw yaw -90", -90, 0, YawClockwise, math.V3(0, 0, -1)},
		{"cw yaw 90", 90, 0, YawClockwise, math.V3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewFreeLook(math.Vec3{}, tt.yaw, tt.pitch, tt.conv)
			assertVec(t, tt.want, c.Look())
		})
	}
}

func TestMoveForward(t *testing.T) {
	for _, conv := range []Convention{YawCounterClockwise, YawClockwise} {
		yaw := float32(90)
		if conv == YawClockwise {
			yaw = -90
		}
		c := NewFreeLook(math.V3(0, 1, 5), yaw, 0, conv)
		c.Move(Forward, 1, 1)
		assertVec(t, math.V3(0, 1, 4), c.Position)
	}
}

func TestMoveStrafeAndBack(t *testing.T) {
	c := NewFreeLook(math.V3(0, 1, 5), -90, 0, YawClockwise)
	assertVec(t, math.V3(1, 0, 0), c.Side())

	c.Move(StrafeRight, 0.5, 2)
	assertVec(t, math.V3(1, 1, 5), c.Position)
	c.Move(StrafeLeft, 1, 2)
	assertVec(t, math.V3(-1, 1, 5), c.Position)
	c.Move(Back, 1, 3)
	assertVec(t, math.V3(-1, 1, 8), c.Position)
}

func TestPointerRightTurnsRight(t *testing.T) {
	for _, conv := range []Convention{YawCounterClockwise, YawClockwise} {
		c := NewFreeLook(math.Vec3{}, 0, 0, conv)
		right := c.Side()
		c.UpdateLook(10, 0, 0.1)
		if c.Look().Dot(right) <= 0 {
			t.Errorf("convention %d: pointer right turned view left", conv)
		}
	}
}

func TestPointerUpTurnsUp(t *testing.T) {
	c := NewFreeLook(math.Vec3{}, 0, 0, YawCounterClockwise)
	c.UpdateLook(0, -10, 0.1)
	if c.Pitch <= 0 || c.Look().Y <= 0 {
		t.Errorf("pointer up should raise the view, pitch = %v", c.Pitch)
	}
}

func TestPitchClampAndUnitLook(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, conv := range []Convention{YawCounterClockwise, YawClockwise} {
		c := NewFreeLook(math.V3(15, 1, 30), 90, 0, conv)
		for range 2000 {
			dx := float32(rng.NormFloat64() * 400)
			dy := float32(rng.NormFloat64() * 400)
			c.UpdateLook(dx, dy, float32(rng.Float64()*0.1))

			if c.Pitch < -85 || c.Pitch > 85 {
				t.Fatalf("pitch %v out of range", c.Pitch)
			}
			assert.InDelta(t, 1, c.Look().Length(), 1e-5)
		}
	}
}

func TestUpdateLookScalesWithTime(t *testing.T) {
	c := NewFreeLook(math.Vec3{}, 0, 0, YawClockwise)
	c.AngularSpeed = 6
	c.UpdateLook(10, 0, 0.5)
	assert.InDelta(t, 30, c.Yaw, 1e-5)

	c.UpdateLook(10, 10, 0)
	assert.InDelta(t, 30, c.Yaw, 1e-5)
	assert.InDelta(t, 0, c.Pitch, 1e-5)
}

func TestMaxPitchFallback(t *testing.T) {
	c := NewFreeLook(math.Vec3{}, 0, 120, YawCounterClockwise)
	c.MaxPitch = 90
	c.UpdateLook(0, -1e6, 1)
	assert.InDelta(t, DefaultMaxPitch, c.Pitch, 1e-5)
}

func TestViewMatrixMapsEyeToOrigin(t *testing.T) {
	c := NewFreeLook(math.V3(15, 1, 30), 37, -20, YawCounterClockwise)
	assertVec(t, math.Vec3{}, c.ViewMatrix().TransformPoint(c.Position))

	// a point straight ahead lands on -Z in view space
	ahead := c.ViewMatrix().TransformPoint(c.Position.Add(c.Look().Scale(3)))
	assertVec(t, math.V3(0, 0, -3), ahead)
}

func TestProjectionResize(t *testing.T) {
	p := NewProjection(45, 800, 600, 0.1, 100)
	assert.InDelta(t, 800.0/600.0, p.Aspect(), 1e-6)
	first := p.Matrix()

	p.Resize(600, 600)
	assert.InDelta(t, 1, p.Aspect(), 1e-6)
	assert.NotEqual(t, first, p.Matrix())

	p.Resize(100, 0)
	assert.InDelta(t, 100, p.Aspect(), 1e-6)
}
