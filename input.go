package swiper

// Key represents a keyboard key the host understands.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeySpace
	KeyEscape
	KeyCount
)

// InputState holds pointer and key input for the current frame.
// Backends populate it from GLFW, Ebitengine or a terminal.
type InputState struct {
	// Pointer position
	PointerX, PointerY float32

	pointerDown     bool
	pointerPressed  bool // True on the frame the pointer went down
	pointerReleased bool // True on the frame the pointer went up

	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	s.pointerPressed = false
	s.pointerReleased = false
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
}

// SetPointerPos sets the pointer position.
func (s *InputState) SetPointerPos(x, y float32) {
	s.PointerX = x
	s.PointerY = y
}

// SetPointerDown sets the primary button or touch state.
func (s *InputState) SetPointerDown(down bool) {
	was := s.pointerDown
	s.pointerDown = down
	if down && !was {
		s.pointerPressed = true
	}
	if !down && was {
		s.pointerReleased = true
	}
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	if down && !s.keyDown[key] {
		s.keyPressed[key] = true
	}
	s.keyDown[key] = down
}

// PressKey records a press and release in the same frame, for terminals
// that only report key events.
func (s *InputState) PressKey(key Key) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	s.keyPressed[key] = true
}

// PointerDown returns true while the pointer is held.
func (s *InputState) PointerDown() bool { return s.pointerDown }

// PointerPressed returns true on the frame the pointer went down.
func (s *InputState) PointerPressed() bool { return s.pointerPressed }

// PointerReleased returns true on the frame the pointer went up.
func (s *InputState) PointerReleased() bool { return s.pointerReleased }

// KeyPressed returns true if a key was just pressed.
func (s *InputState) KeyPressed(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeySpace:
		return "Space"
	case KeyEscape:
		return "Esc"
	}
	return "--"
}
