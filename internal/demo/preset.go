package demo

import (
	"fmt"

	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/scene"
	"github.com/Faultbox/orrery/pkg/math"
)

// Lighting describes the point light of a preset. A preset without
// lighting draws plain texture colors.
type Lighting struct {
	Enabled   bool
	Position  math.Vec3
	Color     math.Vec3
	Ambient   float32
	Specular  float32
	Shininess float32
}

// Preset is everything that distinguishes one demo from another.
type Preset struct {
	Name   string
	Bodies func() []scene.Body

	Clear    math.Vec3
	Lighting Lighting

	CameraPosition   math.Vec3
	CameraYaw        float32
	CameraPitch      float32
	CameraConvention camera.Convention

	// Tune adjusts the generic defaults for this demo.
	Tune func(*config.Config)
}

// Defaults returns the base configuration for this preset, before any
// config file or flag is applied.
func (p Preset) Defaults() *config.Config {
	cfg := config.Default()
	if p.Tune != nil {
		p.Tune(cfg)
	}
	return cfg
}

// NewDriver builds the scene and camera for a width x height viewport.
func (p Preset) NewDriver(cfg *config.Config, width, height int) (*Driver, error) {
	sc, err := scene.New(p.Bodies())
	if err != nil {
		return nil, fmt.Errorf("building %s scene: %w", p.Name, err)
	}

	cam := camera.NewFreeLook(p.CameraPosition, p.CameraYaw, p.CameraPitch, p.CameraConvention)
	cam.AngularSpeed = cfg.Camera.AngularSpeed
	cam.MaxPitch = cfg.Camera.MaxPitch

	return &Driver{
		Scene:      sc,
		Camera:     cam,
		Projection: camera.NewProjection(cfg.Camera.FOV, width, height, cfg.Camera.Near, cfg.Camera.Far),
		Speed:      cfg.Camera.Speed,
		Boost:      cfg.Camera.BoostFactor,
	}, nil
}

// SolarSystem is the sun, planets and moon seen from outside Neptune's
// orbit, unlit.
func SolarSystem() Preset {
	return Preset{
		Name:             "solar",
		Bodies:           scene.SolarSystem,
		CameraPosition:   math.V3(15, 1, 30),
		CameraYaw:        90,
		CameraConvention: camera.YawCounterClockwise,
		Tune: func(c *config.Config) {
			c.Window.Title = "Solar System"
			c.Camera.FOV = 70
			c.Camera.Near = 0.01
			c.Camera.Far = 100
			c.Camera.Speed = 1
			c.Camera.AngularSpeed = 15
			// planet textures are not shipped; draw placeholders without them
			c.Assets.Fallback = true
		},
	}
}

// RobotArm is the two-link arm on a floor slab under a Phong point light.
func RobotArm() Preset {
	return Preset{
		Name:   "robotarm",
		Bodies: scene.RobotArm,
		Clear:  math.V3(0.2, 0.3, 0.3),
		Lighting: Lighting{
			Enabled:   true,
			Position:  math.V3(0, 5, 0),
			Color:     math.Splat(1),
			Ambient:   0.1,
			Specular:  0.5,
			Shininess: 32,
		},
		CameraPosition:   math.V3(0, 1, 5),
		CameraYaw:        -90,
		CameraConvention: camera.YawClockwise,
		Tune: func(c *config.Config) {
			c.Window.Title = "Robot Arm"
			c.Camera.FOV = 45
			c.Camera.Near = 0.1
			c.Camera.Far = 100
			c.Camera.Speed = 2.5
			c.Camera.AngularSpeed = 6
		},
	}
}
