package window

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/engine/input"
	"github.com/Faultbox/orrery/internal/logger"
)

var sdlBindings = []struct {
	code   sdl.Scancode
	action input.Action
}{
	{sdl.SCANCODE_W, input.Forward},
	{sdl.SCANCODE_UP, input.Forward},
	{sdl.SCANCODE_S, input.Back},
	{sdl.SCANCODE_DOWN, input.Back},
	{sdl.SCANCODE_A, input.StrafeLeft},
	{sdl.SCANCODE_LEFT, input.StrafeLeft},
	{sdl.SCANCODE_D, input.StrafeRight},
	{sdl.SCANCODE_RIGHT, input.StrafeRight},
	{sdl.SCANCODE_ESCAPE, input.Quit},
	{sdl.SCANCODE_F5, input.ReloadShaders},
}

type sdlWindow struct {
	window    *sdl.Window
	glContext sdl.GLContext
	captured  bool
}

func newSDL(cfg Config) (*sdlWindow, error) {
	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// OpenGL 4.1 Core Profile, the highest macOS supports
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	win, err := sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	ctx, err := win.GLCreateContext()
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		logger.Warn("failed to set swap interval", zap.Int("interval", interval), zap.Error(err))
	}

	logger.Info("window created",
		zap.String("backend", BackendSDL),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return &sdlWindow{window: win, glContext: ctx}, nil
}

func (w *sdlWindow) PollInput(s *input.State) {
	s.BeginFrame()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.Closed = true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				s.Resize(w.FramebufferSize())
			case sdl.WINDOWEVENT_FOCUS_GAINED:
				s.SetFocus(true)
			case sdl.WINDOWEVENT_FOCUS_LOST:
				s.SetFocus(false)
			}

		case *sdl.MouseMotionEvent:
			// relative mode pins the cursor, so integrate the motion
			if w.captured {
				s.CursorX += float64(e.XRel)
				s.CursorY += float64(e.YRel)
			} else {
				s.CursorX = float64(e.X)
				s.CursorY = float64(e.Y)
			}
		}
	}

	keys := sdl.GetKeyboardState()
	for _, b := range sdlBindings {
		s.Set(b.action, false)
	}
	for _, b := range sdlBindings {
		if keys[b.code] != 0 {
			s.Set(b.action, true)
		}
	}
	s.Set(input.Boost, keys[sdl.SCANCODE_LSHIFT] != 0 || keys[sdl.SCANCODE_RSHIFT] != 0)
}

func (w *sdlWindow) SwapBuffers() {
	w.window.GLSwap()
}

func (w *sdlWindow) FramebufferSize() (int, int) {
	width, height := w.window.GLGetDrawableSize()
	return int(width), int(height)
}

func (w *sdlWindow) SetTitle(title string) {
	w.window.SetTitle(title)
}

func (w *sdlWindow) CaptureCursor(captured bool) {
	w.captured = captured
	sdl.SetRelativeMouseMode(captured)
}

func (w *sdlWindow) Close() {
	logger.Info("closing window", zap.String("backend", BackendSDL))

	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.window != nil {
		w.window.Destroy()
	}
	sdl.Quit()
}
