// Package window creates the OS window and OpenGL 4.1 core context and
// feeds keyboard and pointer state into input.State.
package window

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/orrery/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names accepted by New.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds window configuration.
type Config struct {
	Backend    string
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window is an open window with a current GL context.
type Window interface {
	// PollInput pumps the event queue and updates s.
	PollInput(s *input.State)
	SwapBuffers()
	// FramebufferSize is the drawable size in pixels, which differs from
	// the window size on high-DPI displays.
	FramebufferSize() (int, int)
	SetTitle(title string)
	// CaptureCursor hides the cursor and reports unbounded motion.
	CaptureCursor(captured bool)
	Close()
}

// New opens a window with the configured backend. An empty backend
// selects SDL.
func New(cfg Config) (Window, error) {
	switch cfg.Backend {
	case "", BackendSDL:
		w, err := newSDL(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	case BackendGLFW:
		w, err := newGLFW(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
	}
}
