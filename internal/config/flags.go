package config

import (
	"flag"
	"path/filepath"
	"strings"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file (.yaml, .yml or .toml)")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagBackend    = flag.String("backend", "", "Window backend: sdl or glfw")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagAssets     = flag.String("assets", "", "Extra asset directories, separated by the OS list separator")
	flagFallback   = flag.Bool("fallback", false, "Use placeholder assets when loading fails")
	flagHotReload  = flag.String("hot-reload", "", "Reload shaders from this directory when they change")
	flagSave       = flag.Bool("save-config", false, "Write the effective config to the user config dir and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether -save-config was given.
func SaveRequested() bool {
	return *flagSave
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagBackend != "" {
		cfg.Window.Backend = *flagBackend
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagAssets != "" {
		for _, dir := range strings.Split(*flagAssets, string(filepath.ListSeparator)) {
			if dir != "" {
				cfg.Assets.Dirs = append(cfg.Assets.Dirs, dir)
			}
		}
	}
	if *flagFallback {
		cfg.Assets.Fallback = true
	}
	if *flagHotReload != "" {
		cfg.Assets.ShaderDir = *flagHotReload
		cfg.Assets.HotReload = true
	}
}
