package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/go-theft-auto/swiper"
)

// keyMap maps Ebitengine keys to swiper keys.
var keyMap = map[ebiten.Key]swiper.Key{
	ebiten.KeyArrowLeft:  swiper.KeyLeft,
	ebiten.KeyArrowRight: swiper.KeyRight,
	ebiten.KeyHome:       swiper.KeyHome,
	ebiten.KeyEnd:        swiper.KeyEnd,
	ebiten.KeySpace:      swiper.KeySpace,
	ebiten.KeyEscape:     swiper.KeyEscape,
}

// InputAdapter polls Ebitengine mouse, touch and keyboard state into a
// swiper.InputState. The first touch wins over the mouse while it is held.
type InputAdapter struct {
	input   *swiper.InputState
	touchID ebiten.TouchID
	touched bool
	ids     []ebiten.TouchID
}

// NewInputAdapter creates an input adapter.
func NewInputAdapter() *InputAdapter {
	return &InputAdapter{input: swiper.NewInputState()}
}

// Update polls input for the current tick. Call it once from Game.Update.
func (a *InputAdapter) Update() *swiper.InputState {
	a.input.Reset()

	if !a.touched {
		a.ids = inpututil.AppendJustPressedTouchIDs(a.ids[:0])
		if len(a.ids) > 0 {
			a.touchID = a.ids[0]
			a.touched = true
		}
	}

	if a.touched {
		if inpututil.IsTouchJustReleased(a.touchID) {
			a.touched = false
			a.input.SetPointerDown(false)
		} else {
			x, y := ebiten.TouchPosition(a.touchID)
			a.input.SetPointerPos(float32(x), float32(y))
			a.input.SetPointerDown(true)
		}
	} else {
		x, y := ebiten.CursorPosition()
		a.input.SetPointerPos(float32(x), float32(y))
		a.input.SetPointerDown(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	}

	for ek, k := range keyMap {
		switch {
		case inpututil.IsKeyJustPressed(ek):
			a.input.SetKey(k, true)
		case inpututil.IsKeyJustReleased(ek):
			a.input.SetKey(k, false)
		}
	}
	return a.input
}
