// Package scene holds the animated body hierarchy and composes the world
// matrix of every body once per frame.
package scene

import "github.com/Faultbox/orrery/pkg/math"

// Inherit selects which of a body's matrices its children are attached to.
type Inherit int

const (
	// InheritPlacement attaches children to the body's orbital placement
	// only, so a moon's orbit is not shrunk by its planet's scale.
	InheritPlacement Inherit = iota
	// InheritWorld attaches children to the full world matrix, including
	// spin, alignment and scale. Rigid limbs use this.
	InheritWorld
)

func (i Inherit) String() string {
	switch i {
	case InheritPlacement:
		return "placement"
	case InheritWorld:
		return "world"
	default:
		return "unknown"
	}
}

// Body is one drawable node of the hierarchy.
//
// Angles are radians and accumulate in float64; rates are radians per
// second and may be negative.
type Body struct {
	Name   string
	Parent string // empty for roots

	OrbitRadius float32 // distance from the parent along +X
	Lift        float32 // distance from the parent along +Y
	OrbitRate   float64
	OrbitAngle  float64

	SpinRate  float64
	SpinAngle float64

	// Align corrects the mesh's authored orientation. Zero means none.
	Align math.Quat
	// Scale is applied first. Zero means (1, 1, 1).
	Scale math.Vec3

	Inherit Inherit

	// Mesh and Texture are asset references handed to the renderer.
	Mesh    string
	Texture string
	// Color tints the texture in the lit shader. Zero means white.
	Color math.Vec3
}

// placementLocal is orbit rotation followed by the orbital offset.
func (b *Body) placementLocal() math.Mat4 {
	return math.RotateY(float32(b.OrbitAngle)).Mul(math.Translate(b.OrbitRadius, b.Lift, 0))
}

// modelLocal is spin, alignment and scale, applied under the placement.
func (b *Body) modelLocal() math.Mat4 {
	m := math.RotateY(float32(b.SpinAngle))
	if !b.Align.IsZero() {
		m = m.Mul(b.Align.ToMat4())
	}
	return m.Mul(math.ScaleVec(b.Scale))
}
