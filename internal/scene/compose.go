package scene

import "github.com/Faultbox/orrery/pkg/math"

// Compose recomputes the placement and world matrix of every body from
// the current angles, parents first. Call it once per frame after Advance.
//
//	placement = parentFrame * orbit * translate(radius, lift, 0)
//	world     = placement * spin * align * scale
func (s *Scene) Compose() {
	for _, i := range s.order {
		b := &s.bodies[i]
		parent := math.Identity()
		if p := s.parents[i]; p >= 0 {
			parent = s.frameOf(p)
		}
		s.placement[i] = parent.Mul(b.placementLocal())
		s.world[i] = s.placement[i].Mul(b.modelLocal())
	}
}

// frameOf is what children of body i attach to, from the current buffers.
func (s *Scene) frameOf(i int) math.Mat4 {
	if s.bodies[i].Inherit == InheritWorld {
		return s.world[i]
	}
	return s.placement[i]
}

// World returns the world matrix of body i from the last Compose.
func (s *Scene) World(i int) math.Mat4 {
	return s.world[i]
}

// Placement returns the orbital placement of body i from the last Compose.
func (s *Scene) Placement(i int) math.Mat4 {
	return s.placement[i]
}

// Position returns the world-space origin of body i from the last Compose.
func (s *Scene) Position(i int) math.Vec3 {
	return s.world[i].Translation()
}

// WorldMatrix computes the world matrix of body i directly from the live
// angles by walking its ancestors, without touching the frame buffers.
func (s *Scene) WorldMatrix(i int) math.Mat4 {
	b := &s.bodies[i]
	return s.attachFrame(s.parents[i]).Mul(b.placementLocal()).Mul(b.modelLocal())
}

// attachFrame returns the frame children of body i attach to, computed
// from live angles. i < 0 is the world origin.
func (s *Scene) attachFrame(i int) math.Mat4 {
	if i < 0 {
		return math.Identity()
	}
	b := &s.bodies[i]
	placement := s.attachFrame(s.parents[i]).Mul(b.placementLocal())
	if b.Inherit == InheritWorld {
		return placement.Mul(b.modelLocal())
	}
	return placement
}
