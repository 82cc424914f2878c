// Package app wires a demo preset to a window, the GPU and the asset
// manager, and runs the frame loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/assets"
	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/demo"
	"github.com/Faultbox/orrery/internal/engine/clock"
	"github.com/Faultbox/orrery/internal/engine/input"
	"github.com/Faultbox/orrery/internal/engine/renderer"
	"github.com/Faultbox/orrery/internal/engine/shader/glsl"
	"github.com/Faultbox/orrery/internal/engine/window"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/pkg/math"
)

// App is a running demo.
type App struct {
	config *config.Config
	preset demo.Preset

	window   window.Window
	renderer *renderer.Renderer
	assets   *assets.Manager
	watcher  *glsl.Watcher
	driver   *demo.Driver

	meshes   map[string]*renderer.Mesh
	textures map[string]*renderer.Texture
	items    []renderer.DrawItem

	input  input.State
	clock  *clock.Frame
	reload bool
}

// New opens the window and uploads everything the preset's scene needs.
func New(cfg *config.Config, preset demo.Preset) (*App, error) {
	logger.Info("initializing demo",
		zap.String("preset", preset.Name),
		zap.String("backend", cfg.Window.Backend),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	a := &App{
		config:   cfg,
		preset:   preset,
		meshes:   make(map[string]*renderer.Mesh),
		textures: make(map[string]*renderer.Texture),
		clock:    clock.New(),
	}

	var err error
	a.window, err = window.New(window.Config{
		Backend:    cfg.Window.Backend,
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	src, err := glsl.Load(cfg.Assets.ShaderDir)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to load shaders: %w", err)
	}

	// Renderer after the window: the GL context must be current.
	width, height := a.window.FramebufferSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: preset.Clear,
	}, src)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if cfg.Assets.HotReload && cfg.Assets.ShaderDir != "" {
		a.watcher, err = glsl.NewWatcher(cfg.Assets.ShaderDir)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to watch shaders: %w", err)
		}
		logger.Info("watching shaders", zap.String("dir", a.watcher.Dir()))
	}

	a.assets = assets.NewManager(assets.Options{
		Fallback:       cfg.Assets.Fallback,
		MaxTextureSize: cfg.Assets.MaxTextureSize,
	})
	for _, dir := range cfg.Assets.Dirs {
		if err := a.assets.AddDir(dir); err != nil {
			logger.Warn("skipping asset dir", zap.String("dir", dir), zap.Error(err))
		}
	}

	a.driver, err = preset.NewDriver(cfg, width, height)
	if err != nil {
		a.Close()
		return nil, err
	}

	if err := a.upload(); err != nil {
		a.Close()
		return nil, err
	}

	a.window.CaptureCursor(true)
	logger.Info("demo initialized", zap.Int("bodies", a.driver.Scene.Len()))
	return a, nil
}

// upload sends each distinct mesh and texture of the scene to the GPU
// once and prepares one draw item per body.
func (a *App) upload() error {
	sc := a.driver.Scene
	a.items = make([]renderer.DrawItem, sc.Len())

	for i := range a.items {
		b := sc.Body(i)

		m, ok := a.meshes[b.Mesh]
		if !ok {
			data, err := a.assets.Mesh(b.Mesh)
			if err != nil {
				return fmt.Errorf("body %q: %w", b.Name, err)
			}
			if m, err = renderer.UploadMesh(data); err != nil {
				return fmt.Errorf("body %q: %w", b.Name, err)
			}
			a.meshes[b.Mesh] = m
		}

		t, ok := a.textures[b.Texture]
		if !ok {
			img, err := a.assets.Texture(b.Texture)
			if err != nil {
				return fmt.Errorf("body %q: %w", b.Name, err)
			}
			if t, err = renderer.UploadTexture(img); err != nil {
				return fmt.Errorf("body %q: %w", b.Name, err)
			}
			w, h := t.Size()
			logger.Debug("texture uploaded",
				zap.String("ref", b.Texture),
				zap.Int("width", w),
				zap.Int("height", h),
			)
			a.textures[b.Texture] = t
		}

		a.items[i] = renderer.DrawItem{Color: b.Color, Mesh: m, Texture: t}
	}

	hits, misses := a.assets.Stats()
	logger.Debug("scene uploaded",
		zap.Int("meshes", len(a.meshes)),
		zap.Int("textures", len(a.textures)),
		zap.Int("cache_hits", hits),
		zap.Int("cache_misses", misses),
	)
	return nil
}

// Run starts the frame loop and returns when the user quits.
func (a *App) Run() error {
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for {
		dt := a.clock.Tick(time.Now())

		a.window.PollInput(&a.input)
		if a.input.FocusChanged {
			a.focus(!a.input.Unfocused)
		}

		a.reloadShaders()

		if a.input.Resized {
			a.renderer.Resize(a.input.Width, a.input.Height)
		}

		if !a.driver.Step(&a.input, dt, a) {
			break
		}
		a.renderer.EndFrame()
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.window.SetTitle(demo.StatusTitle(a.config.Window.Title, frameCount, a.clock.Delta()))
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	logger.Info("frame loop stopped",
		zap.Uint64("frames", a.clock.Frames()),
		zap.Duration("elapsed", a.clock.Elapsed()),
	)
	return nil
}

// focus releases the cursor while the window is in the background and
// recaptures it on return. The clock restarts so the time spent away is
// not replayed as one long frame.
func (a *App) focus(focused bool) {
	a.window.CaptureCursor(focused)
	if focused {
		a.clock.Reset()
	}
	logger.Debug("window focus changed", zap.Bool("focused", focused))
}

// reloadShaders rebuilds the program when the watched directory changed
// or the reload key was just pressed. A broken shader keeps the old
// program running.
func (a *App) reloadShaders() {
	pressed := a.input.Held(input.ReloadShaders)
	requested := pressed && !a.reload
	a.reload = pressed

	if a.watcher != nil && a.watcher.Changed() {
		requested = true
	}
	if !requested {
		return
	}

	src, err := glsl.Load(a.config.Assets.ShaderDir)
	if err == nil {
		err = a.renderer.Reload(src)
	}
	if err != nil {
		logger.Error("shader reload failed", zap.Error(err))
	}
}

// BeginFrame implements demo.Renderer.
func (a *App) BeginFrame(view, projection math.Mat4, eye math.Vec3) {
	l := a.preset.Lighting
	a.renderer.BeginFrame(renderer.FrameUniforms{
		View:       view,
		Projection: projection,
		Eye:        eye,
		Light: renderer.Light{
			Enabled:   l.Enabled,
			Position:  l.Position,
			Color:     l.Color,
			Ambient:   l.Ambient,
			Specular:  l.Specular,
			Shininess: l.Shininess,
		},
	})
}

// Draw implements demo.Renderer.
func (a *App) Draw(body int, world math.Mat4) {
	item := a.items[body]
	item.World = world
	a.renderer.Draw(item)
}

// Close releases GPU resources, the watcher and the window.
func (a *App) Close() {
	logger.Info("closing demo")

	for _, m := range a.meshes {
		m.Delete()
	}
	for _, t := range a.textures {
		t.Delete()
	}
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			logger.Warn("closing shader watcher", zap.Error(err))
		}
	}
	if a.assets != nil {
		a.assets.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
