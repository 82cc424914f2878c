// Package config handles configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all settings of a demo.
type Config struct {
	Window  WindowConfig  `yaml:"window" toml:"window"`
	Camera  CameraConfig  `yaml:"camera" toml:"camera"`
	Assets  AssetsConfig  `yaml:"assets" toml:"assets"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Backend    string `yaml:"backend" toml:"backend"` // sdl or glfw
	Title      string `yaml:"title" toml:"title"`
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	Fullscreen bool   `yaml:"fullscreen" toml:"fullscreen"`
	VSync      bool   `yaml:"vsync" toml:"vsync"`
}

// CameraConfig holds projection and free-look tuning. Angles are degrees.
type CameraConfig struct {
	FOV          float32 `yaml:"fov" toml:"fov"`
	Near         float32 `yaml:"near" toml:"near"`
	Far          float32 `yaml:"far" toml:"far"`
	Speed        float32 `yaml:"speed" toml:"speed"`                 // units per second
	BoostFactor  float32 `yaml:"boost_factor" toml:"boost_factor"`   // speed multiplier while shift is held
	AngularSpeed float32 `yaml:"angular_speed" toml:"angular_speed"` // degrees per pixel per second
	MaxPitch     float32 `yaml:"max_pitch" toml:"max_pitch"`
}

// AssetsConfig holds asset lookup settings.
type AssetsConfig struct {
	Dirs           []string `yaml:"dirs" toml:"dirs"` // searched last to first
	Fallback       bool     `yaml:"fallback" toml:"fallback"`
	MaxTextureSize int      `yaml:"max_texture_size" toml:"max_texture_size"`
	ShaderDir      string   `yaml:"shader_dir" toml:"shader_dir"` // empty uses the embedded shaders
	HotReload      bool     `yaml:"hot_reload" toml:"hot_reload"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level" toml:"level"`
	File       string `yaml:"file" toml:"file"`
	Format     string `yaml:"format" toml:"format"` // console or json, for the file
	MaxSizeMB  int    `yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" toml:"max_age_days"`
	Compress   bool   `yaml:"compress" toml:"compress"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Backend: "sdl",
			Title:   "Orrery",
			Width:   800,
			Height:  600,
			VSync:   true,
		},
		Camera: CameraConfig{
			FOV:          45,
			Near:         0.1,
			Far:          100,
			Speed:        2.5,
			BoostFactor:  4,
			AngularSpeed: 15,
			MaxPitch:     85,
		},
		Assets: AssetsConfig{
			Dirs: []string{"assets"},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  20,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// Validate reports every setting that cannot work.
func (c *Config) Validate() error {
	var errs []error

	switch c.Window.Backend {
	case "sdl", "glfw":
	default:
		errs = append(errs, fmt.Errorf("window.backend: unknown backend %q", c.Window.Backend))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}

	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera.fov: %v outside (0, 180)", c.Camera.FOV))
	}
	if c.Camera.Near <= 0 {
		errs = append(errs, fmt.Errorf("camera.near: %v must be positive", c.Camera.Near))
	}
	if c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera.far: %v must exceed near %v", c.Camera.Far, c.Camera.Near))
	}
	if c.Camera.Speed < 0 || c.Camera.BoostFactor < 0 || c.Camera.AngularSpeed < 0 {
		errs = append(errs, errors.New("camera: speeds must not be negative"))
	}
	if c.Camera.MaxPitch <= 0 || c.Camera.MaxPitch >= 90 {
		errs = append(errs, fmt.Errorf("camera.max_pitch: %v outside (0, 90)", c.Camera.MaxPitch))
	}

	if c.Assets.MaxTextureSize < 0 {
		errs = append(errs, fmt.Errorf("assets.max_texture_size: %d is negative", c.Assets.MaxTextureSize))
	}
	if c.Assets.HotReload && c.Assets.ShaderDir == "" {
		errs = append(errs, errors.New("assets.hot_reload: needs assets.shader_dir"))
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level: unknown level %q", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format: unknown format %q", c.Logging.Format))
	}

	return errors.Join(errs...)
}
