package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/engine/input"
	"github.com/Faultbox/orrery/internal/logger"
)

var glfwBindings = []struct {
	key    glfw.Key
	action input.Action
}{
	{glfw.KeyW, input.Forward},
	{glfw.KeyUp, input.Forward},
	{glfw.KeyS, input.Back},
	{glfw.KeyDown, input.Back},
	{glfw.KeyA, input.StrafeLeft},
	{glfw.KeyLeft, input.StrafeLeft},
	{glfw.KeyD, input.StrafeRight},
	{glfw.KeyRight, input.StrafeRight},
	{glfw.KeyEscape, input.Quit},
	{glfw.KeyF5, input.ReloadShaders},
}

type glfwWindow struct {
	window *glfw.Window

	resized       bool
	width, height int

	focusChanged bool
	focused      bool
}

func newGLFW(cfg Config) (*glfwWindow, error) {
	logger.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw.Init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &glfwWindow{window: win}
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.resized = true
		w.width, w.height = width, height
	})
	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		w.focusChanged = true
		w.focused = focused
	})

	logger.Info("window created",
		zap.String("backend", BackendGLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

func (w *glfwWindow) PollInput(s *input.State) {
	s.BeginFrame()
	glfw.PollEvents()

	s.Closed = s.Closed || w.window.ShouldClose()
	if w.resized {
		w.resized = false
		s.Resize(w.width, w.height)
	}
	if w.focusChanged {
		w.focusChanged = false
		s.SetFocus(w.focused)
	}

	s.CursorX, s.CursorY = w.window.GetCursorPos()

	for _, b := range glfwBindings {
		s.Set(b.action, false)
	}
	for _, b := range glfwBindings {
		if w.window.GetKey(b.key) == glfw.Press {
			s.Set(b.action, true)
		}
	}
	s.Set(input.Boost, w.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		w.window.GetKey(glfw.KeyRightShift) == glfw.Press)
}

func (w *glfwWindow) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *glfwWindow) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *glfwWindow) SetTitle(title string) {
	w.window.SetTitle(title)
}

func (w *glfwWindow) CaptureCursor(captured bool) {
	if !captured {
		w.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		return
	}
	w.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	if glfw.RawMouseMotionSupported() {
		w.window.SetInputMode(glfw.RawMouseMotion, glfw.True)
	}
}

func (w *glfwWindow) Close() {
	logger.Info("closing window", zap.String("backend", BackendGLFW))

	w.window.Destroy()
	glfw.Terminate()
}
