// Package input holds the backend-neutral per-frame input state.
package input

// Action is a bound control.
type Action int

const (
	Forward Action = iota
	Back
	StrafeLeft
	StrafeRight
	Boost
	Quit
	ReloadShaders
	numActions
)

var actionNames = [numActions]string{
	Forward:       "forward",
	Back:          "back",
	StrafeLeft:    "strafe_left",
	StrafeRight:   "strafe_right",
	Boost:         "boost",
	Quit:          "quit",
	ReloadShaders: "reload_shaders",
}

func (a Action) String() string {
	if a < 0 || a >= numActions {
		return "unknown"
	}
	return actionNames[a]
}

// State is what the window backend reports for one frame.
type State struct {
	held [numActions]bool

	// CursorX and CursorY are the raw pointer position in pixels. With a
	// captured cursor they grow without bound.
	CursorX, CursorY float64

	// Closed is set when the window system asked to close.
	Closed bool

	// Resized reports a framebuffer size change this frame.
	Resized       bool
	Width, Height int

	// Unfocused is set while the window does not have keyboard focus.
	// FocusChanged reports a transition this frame.
	Unfocused    bool
	FocusChanged bool
}

// BeginFrame clears per-frame flags. Held actions, focus and the cursor
// persist.
func (s *State) BeginFrame() {
	s.Resized = false
	s.FocusChanged = false
}

// SetFocus records whether the window has focus.
func (s *State) SetFocus(focused bool) {
	if s.Unfocused == !focused {
		return
	}
	s.Unfocused = !focused
	s.FocusChanged = true
}

// Set records whether an action is held.
func (s *State) Set(a Action, down bool) {
	if a >= 0 && a < numActions {
		s.held[a] = down
	}
}

// Held reports whether an action is held.
func (s *State) Held(a Action) bool {
	if a < 0 || a >= numActions {
		return false
	}
	return s.held[a]
}

// QuitRequested reports a window close or the quit key.
func (s *State) QuitRequested() bool {
	return s.Closed || s.held[Quit]
}

// Resize records a new framebuffer size.
func (s *State) Resize(width, height int) {
	s.Resized = true
	s.Width = width
	s.Height = height
}
