package scene

import "github.com/Faultbox/orrery/pkg/math"

// planet is one row of the solar system table.
type planet struct {
	name   string
	parent string
	radius float32
	orbit  float32 // degrees per second
	scale  float32
	color  math.Vec3 // tint, visible as is over the white placeholder
}

var planets = []planet{
	{"sun", "", 0, 0, 0.2, math.V3(1, 0.85, 0.3)},
	{"mercury", "", 4, 50, 0.03, math.V3(0.6, 0.58, 0.55)},
	{"venus", "", 7, 35, 0.05, math.V3(0.95, 0.8, 0.5)},
	{"earth", "", 10, 30, 0.05, math.V3(0.25, 0.5, 0.95)},
	{"moon", "earth", 0.5, 100, 0.015, math.V3(0.8, 0.8, 0.8)},
	{"mars", "", 12, 24, 0.04, math.V3(0.9, 0.4, 0.2)},
	{"jupiter", "", 15, 13, 0.15, math.V3(0.85, 0.7, 0.5)},
	{"saturn", "", 19, 9, 0.14, math.V3(0.95, 0.88, 0.6)},
	{"uranus", "", 23, 6, 0.07, math.V3(0.6, 0.9, 0.95)},
	{"neptune", "", 26, 5, 0.07, math.V3(0.3, 0.45, 1)},
}

// planetSpin is shared by every solar system body.
const planetSpin = 45 // degrees per second

// SolarSystem returns the sun, eight planets and the moon. The sphere
// mesh is authored with its poles on Z, so every body is tipped -90°
// about X to stand its texture upright.
func SolarSystem() []Body {
	align := math.QuatFromAxisAngle(math.UnitX, math.Radians(-90))
	bodies := make([]Body, 0, len(planets))
	for _, p := range planets {
		bodies = append(bodies, Body{
			Name:        p.name,
			Parent:      p.parent,
			OrbitRadius: p.radius,
			OrbitRate:   float64(math.Radians(p.orbit)),
			SpinRate:    float64(math.Radians(planetSpin)),
			Align:       align,
			Scale:       math.Splat(p.scale),
			Inherit:     InheritPlacement,
			Mesh:        "models/sphere.obj",
			Texture:     "textures/" + p.name + ".jpg",
			Color:       p.color,
		})
	}
	return bodies
}

// RobotArm returns a floor slab, a base block and two rotating links.
// Each link hangs off its parent's full world matrix, so the parent's
// spin and scale carry into the child.
func RobotArm() []Body {
	return []Body{
		{
			Name:    "floor",
			Lift:    -2,
			Scale:   math.V3(10, 0.1, 10),
			Inherit: InheritWorld,
			Mesh:    "builtin:cube",
			Texture: "builtin:stripes-gray",
		},
		{
			Name:    "base",
			Scale:   math.V3(1.5, 0.5, 1.5),
			Inherit: InheritWorld,
			Mesh:    "builtin:cube",
			Texture: "builtin:checker-red",
		},
		{
			Name:     "arm1",
			Parent:   "base",
			Lift:     1,
			SpinRate: 1,
			Scale:    math.V3(0.5, 1, 0.5),
			Inherit:  InheritWorld,
			Mesh:     "builtin:cube",
			Texture:  "builtin:stripes-bluegreen",
		},
		{
			Name:     "arm2",
			Parent:   "arm1",
			Lift:     1,
			SpinRate: 2,
			Scale:    math.V3(0.5, 1, 0.5),
			Inherit:  InheritWorld,
			Mesh:     "builtin:cube",
			Texture:  "builtin:checker-yellow",
		},
	}
}
