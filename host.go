package swiper

import (
	"math"
	"time"
)

// Host wires a Swiper to an in-process PagingSurface and a
// DrawListPresenter, so a backend only has to supply input, a frame delta
// and a Renderer.
type Host struct {
	swiper    *Swiper
	surface   *PagingSurface
	presenter *DrawListPresenter
	bounds    Rect
	drawOpts  []DrawOption

	tracking bool // Pointer went down inside the item area
}

// NewHost creates a host painting into bounds.
func NewHost(renderer Renderer, bounds Rect, items []any, opts ...Option) *Host {
	surface := NewPagingSurface()
	sw := New(surface, opts...)
	surface.SetListener(sw)

	h := &Host{
		swiper:    sw,
		surface:   surface,
		presenter: NewDrawListPresenter(renderer, bounds),
		bounds:    bounds,
	}
	sw.SetItems(items)
	h.layout()
	return h
}

// Swiper returns the controller.
func (h *Host) Swiper() *Swiper { return h.swiper }

// Surface returns the paging surface.
func (h *Host) Surface() *PagingSurface { return h.surface }

// Presenter returns the presenter.
func (h *Host) Presenter() *DrawListPresenter { return h.presenter }

// Bounds returns the viewport.
func (h *Host) Bounds() Rect { return h.bounds }

// SetDrawOptions sets options applied to every presented frame.
func (h *Host) SetDrawOptions(opts ...DrawOption) {
	h.drawOpts = opts
	h.presenter.opts = opts
}

// Resize moves or resizes the viewport.
func (h *Host) Resize(bounds Rect) {
	h.bounds = bounds
	h.presenter.SetBounds(bounds)
	h.layout()
}

// layout reports the container width and item height to the swiper.
func (h *Host) layout() {
	h.swiper.OnLayout(float64(h.bounds.W))
	area := ItemAreaHeight(h.swiper.Frame(), h.bounds, h.drawOpts...)
	h.swiper.OnItemLayout(float64(area))
}

// itemArea returns the part of the viewport that scrolls.
func (h *Host) itemArea() Rect {
	area := h.bounds
	area.H = ItemAreaHeight(h.swiper.Frame(), h.bounds, h.drawOpts...)
	return area
}

// Update handles input and advances the surface and timers.
func (h *Host) Update(in *InputState, dt time.Duration) {
	if in != nil {
		h.handleInput(in, dt)
	}
	h.surface.Update(dt)
	h.swiper.Update(dt)
}

// Draw presents the current frame.
func (h *Host) Draw() error {
	return h.presenter.Present(h.swiper.Frame())
}

// Frame runs Update then Draw.
func (h *Host) Frame(in *InputState, dt time.Duration) error {
	h.Update(in, dt)
	return h.Draw()
}

func (h *Host) handleInput(in *InputState, dt time.Duration) {
	x := float64(in.PointerX - h.bounds.X)
	pos := Vec2{X: in.PointerX, Y: in.PointerY}

	if in.PointerPressed() && h.itemArea().Contains(pos) {
		h.tracking = true
		h.surface.PointerDown(x)
	}
	if h.tracking && in.PointerDown() {
		h.surface.PointerMove(x, dt)
	}
	if h.tracking && in.PointerReleased() {
		h.tracking = false
		h.surface.PointerUp(x)
	}

	for _, key := range []Key{KeyLeft, KeyRight, KeyHome, KeyEnd, KeySpace} {
		if in.KeyPressed(key) {
			swiperLogger.Debug("key", "key", KeyName(key), "offset", h.swiper.Offset())
			h.handleKey(key)
			return
		}
	}
}

func (h *Host) handleKey(key Key) {
	switch key {
	case KeyLeft:
		h.Step(-1)
	case KeyRight:
		h.Step(1)
	case KeyHome:
		h.swiper.SetActiveItem(0, true)
	case KeyEnd:
		if seq := h.swiper.Sequence(); seq != nil {
			h.swiper.SetActiveItem(seq.SourceCount()-1, true)
		}
	case KeySpace:
		h.ToggleAutoplay()
	}
}

// Step scrolls delta items from the item nearest the current offset.
func (h *Host) Step(delta int) {
	index := int(math.Round(h.swiper.IndexAt(h.swiper.Offset())))
	h.swiper.ScrollTo(index+delta, true)
}

// ToggleAutoplay flips the autoplay option.
func (h *Host) ToggleAutoplay() {
	cfg := h.swiper.Config()
	cfg.Autoplay = !cfg.Autoplay
	if err := h.swiper.SetConfig(cfg); err != nil {
		swiperLogger.Warn("failed to toggle autoplay", "error", err)
	}
}

// Close stops the swiper's timers.
func (h *Host) Close() {
	h.swiper.Close()
}
