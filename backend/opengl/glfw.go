package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/swiper"
)

// GLFWInputAdapter adapts GLFW input to swiper.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *swiper.InputState
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  swiper.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update starts a new input frame and returns the state collected since the
// last call. Call this right after glfw.PollEvents.
func (a *GLFWInputAdapter) Update() *swiper.InputState {
	x, y := a.window.GetCursorPos()
	a.input.SetPointerPos(float32(x), float32(y))
	return a.input
}

// EndFrame clears per-frame events once the host consumed them.
func (a *GLFWInputAdapter) EndFrame() {
	a.input.Reset()
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *swiper.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToSwiperKey(key)
	if k == swiper.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Repeat:
		a.input.PressKey(k)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	switch action {
	case glfw.Press:
		a.input.SetPointerDown(true)
	case glfw.Release:
		a.input.SetPointerDown(false)
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetPointerPos(float32(xpos), float32(ypos))
}

// glfwKeyToSwiperKey maps GLFW keys to swiper keys.
func glfwKeyToSwiperKey(key glfw.Key) swiper.Key {
	switch key {
	case glfw.KeyLeft:
		return swiper.KeyLeft
	case glfw.KeyRight:
		return swiper.KeyRight
	case glfw.KeyHome:
		return swiper.KeyHome
	case glfw.KeyEnd:
		return swiper.KeyEnd
	case glfw.KeySpace:
		return swiper.KeySpace
	case glfw.KeyEscape:
		return swiper.KeyEscape
	default:
		return swiper.KeyNone
	}
}
