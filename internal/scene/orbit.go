package scene

import "github.com/Faultbox/orrery/pkg/math"

// Advance moves every orbit and spin angle forward by rate*dt. Negative dt
// is ignored. Angles are reduced modulo 2π so precision does not degrade
// over long sessions; they are only ever read through sin and cos.
func (s *Scene) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	for i := range s.bodies {
		b := &s.bodies[i]
		b.OrbitAngle = math.WrapAngle(b.OrbitAngle + b.OrbitRate*dt)
		b.SpinAngle = math.WrapAngle(b.SpinAngle + b.SpinRate*dt)
	}
}
