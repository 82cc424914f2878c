package camera

import "github.com/Faultbox/orrery/pkg/math"

// Projection is a perspective frustum. The matrix is rebuilt only when
// the viewport changes.
type Projection struct {
	FOV  float32 // vertical, degrees
	Near float32
	Far  float32

	aspect float32
	matrix math.Mat4
}

// NewProjection builds a projection for a width x height viewport.
func NewProjection(fov float32, width, height int, near, far float32) *Projection {
	p := &Projection{FOV: fov, Near: near, Far: far}
	p.Resize(width, height)
	return p
}

// Resize updates the aspect ratio. A zero height is treated as one pixel.
func (p *Projection) Resize(width, height int) {
	if height <= 0 {
		height = 1
	}
	if width <= 0 {
		width = 1
	}
	p.aspect = float32(width) / float32(height)
	p.matrix = math.Perspective(math.Radians(p.FOV), p.aspect, p.Near, p.Far)
}

// Aspect returns width / height.
func (p *Projection) Aspect() float32 {
	return p.aspect
}

// Matrix returns the cached projection matrix.
func (p *Projection) Matrix() math.Mat4 {
	return p.matrix
}
