package swiper

import (
	"math"
	"sort"
)

// Renderer is the interface for rendering swiper draw data.
type Renderer interface {
	Render(dl *DrawList) error
	Resize(width, height int)
}

// Presenter receives a resolved frame after every host update.
type Presenter interface {
	Present(f Frame) error
}

// ItemFrame is one item as it should appear in a frame.
type ItemFrame struct {
	Item    *Item
	Virtual int
	Real    int
	X       float64 // Slot left edge relative to the viewport
	Style   ItemStyle
}

// Frame is everything a presenter needs to paint the swiper.
type Frame struct {
	Width      float64 // Slot width, equal to the container width
	ItemWidth  float64 // Visual item width
	ItemHeight float64 // 0 when the host has not reported it
	Offset     float64
	ItemAlign  Align
	ScaleAlign Align

	// Items are ordered back to front.
	Items []ItemFrame

	ShowPaginate bool
	Paginate     PaginateStyle
	ActiveIndex  int
	Total        int

	// Hidden is set while a rebuild waits for the content size to settle.
	Hidden bool
}

// frameRadius is how many slots around the viewport a frame includes.
// Translated neighbors can reach into the viewport from two slots away.
const frameRadius = windowRadius + 1

// Frame resolves every item near the viewport at the current offset.
func (s *Swiper) Frame() Frame {
	f := Frame{
		Width:        s.width,
		ItemWidth:    s.realItemWidth,
		ItemHeight:   s.itemHeight,
		Offset:       s.lastScrollPos,
		ItemAlign:    s.cfg.ItemAlign,
		ScaleAlign:   s.cfg.ScaleAlign,
		ShowPaginate: s.cfg.ShowPaginate,
		Paginate:     s.cfg.Paginate,
		ActiveIndex:  s.paginate.ActiveIndex(),
		Total:        s.paginate.Total(),
		Hidden:       s.waitingForSize,
	}
	if s.seq == nil || s.width <= 0 {
		return f
	}
	clipper := NewItemClipper(s.seq.Len(), s.seq.Width(), s.lastScrollPos, frameRadius)
	f.Items = make([]ItemFrame, 0, clipper.VisibleCount())
	for _, it := range s.seq.Items()[clipper.StartIdx:clipper.EndIdx] {
		if math.Abs(it.Distance(s.lastScrollPos, s.width)) > frameRadius {
			continue
		}
		v, _ := it.VirtualIndex()
		f.Items = append(f.Items, ItemFrame{
			Item:    it,
			Virtual: v,
			Real:    it.SourceIndex,
			X:       clipper.ItemX(v, s.lastScrollPos),
			Style:   it.Resolve(s.lastScrollPos),
		})
	}
	sort.SliceStable(f.Items, func(i, j int) bool {
		return f.Items[i].Style.ZIndex < f.Items[j].Style.ZIndex
	})
	return f
}

// ItemRenderer paints an item body into rect. Returning false falls back to
// the default body.
type ItemRenderer func(dl *DrawList, item ItemFrame, rect Rect) bool

// DrawListPresenter paints frames into a DrawList and hands it to a
// Renderer.
type DrawListPresenter struct {
	renderer Renderer
	style    Style
	bounds   Rect
	opts     []DrawOption
}

// NewDrawListPresenter creates a presenter painting into bounds.
func NewDrawListPresenter(renderer Renderer, bounds Rect, opts ...DrawOption) *DrawListPresenter {
	return &DrawListPresenter{
		renderer: renderer,
		style:    DefaultStyle(),
		bounds:   bounds,
		opts:     opts,
	}
}

// SetStyle sets the default item style.
func (p *DrawListPresenter) SetStyle(style Style) { p.style = style }

// SetBounds moves the viewport.
func (p *DrawListPresenter) SetBounds(bounds Rect) { p.bounds = bounds }

// Present implements Presenter.
func (p *DrawListPresenter) Present(f Frame) error {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	Draw(dl, f, p.bounds, p.style, p.opts...)
	if p.renderer == nil {
		return nil
	}
	return p.renderer.Render(dl)
}

// ItemAreaHeight returns the height left for items once the pagination
// strip is taken from bounds.
func ItemAreaHeight(f Frame, bounds Rect, opts ...DrawOption) float32 {
	if !f.ShowPaginate {
		return bounds.H
	}
	style := paginateStyleFor(f, applyDrawOptions(opts))
	return max(bounds.H-style.Height(), 0)
}

func paginateStyleFor(f Frame, o drawOptions) PaginateStyle {
	if HasOpt(o, OptPaginateStyle) {
		return GetOpt(o, OptPaginateStyle)
	}
	return f.Paginate
}

// Draw paints a frame into dl within bounds and finalizes it.
func Draw(dl *DrawList, f Frame, bounds Rect, style Style, opts ...DrawOption) {
	o := applyDrawOptions(opts)
	if bg := GetOpt(o, OptBackground); bg != 0 {
		dl.AddRect(bounds.X, bounds.Y, bounds.W, bounds.H, bg)
	} else if style.BackgroundColor != 0 {
		dl.AddRect(bounds.X, bounds.Y, bounds.W, bounds.H, style.BackgroundColor)
	}
	if colors := GetOpt(o, OptItemColors); len(colors) > 0 {
		style.ItemColors = colors
	}

	areaH := ItemAreaHeight(f, bounds, opts...)
	area := Rect{X: bounds.X, Y: bounds.Y, W: bounds.W, H: areaH}

	dl.PushClipRect(area.X, area.Y, area.X+area.W, area.Y+area.H)
	if !f.Hidden {
		render := GetOpt(o, OptItemRenderer)
		for _, it := range f.Items {
			rect := ItemRect(f, it, area)
			if !rect.Intersects(area) {
				continue
			}
			color := WithAlpha(style.itemColor(it.Real), float32(it.Style.Opacity))
			if render != nil && render(dl, it, rect) {
				continue
			}
			drawItemBody(dl, f, it, rect, style, color)
		}
	}
	dl.PopClipRect()

	if f.ShowPaginate && f.Total > 0 {
		ps := paginateStyleFor(f, o)
		strip := Rect{X: bounds.X, Y: bounds.Y + areaH, W: bounds.W, H: bounds.H - areaH}
		pg := &Paginate{total: f.Total, active: f.ActiveIndex}
		pg.Draw(dl, strip, ps, GetOpt(o, OptDotRenderer))
	}
	dl.Finalize()
}

// ItemRect returns the on-screen rectangle of an item's body after every
// animated transform.
func ItemRect(f Frame, it ItemFrame, area Rect) Rect {
	st := it.Style
	w := f.ItemWidth
	if w <= 0 {
		w = f.Width
	}
	h := f.ItemHeight
	if h <= 0 || h > float64(area.H) {
		h = float64(area.H)
	}

	// Unscaled body position inside the slot.
	var top float64
	switch f.ItemAlign {
	case AlignMiddle:
		top = (float64(area.H) - h) / 2
	case AlignBottom:
		top = float64(area.H) - h
	}
	cx := it.X + st.TranslateXContainer + f.Width/2
	cy := top + h/2

	// The body scale applies to its translations; the inner scale only to
	// the item itself.
	cx += st.Scale * st.TranslateX
	cy += st.Scale * st.TranslateY
	scale := st.Scale * st.InnerScale
	sw, sh := w*scale, h*scale

	return Rect{
		X: area.X + float32(cx-sw/2),
		Y: area.Y + float32(cy-sh/2),
		W: float32(sw),
		H: float32(sh),
	}
}

// drawItemBody paints the default body: a filled card with one marker bar
// per real index so items stay distinguishable without text.
func drawItemBody(dl *DrawList, f Frame, it ItemFrame, rect Rect, style Style, color uint32) {
	pad := style.ItemPadding
	body := Rect{X: rect.X + pad, Y: rect.Y + pad, W: rect.W - 2*pad, H: rect.H - 2*pad}
	if body.W <= 0 || body.H <= 0 {
		return
	}
	opacity := float32(it.Style.Opacity)
	dl.AddRect(body.X, body.Y, body.W, body.H, color)

	border := style.ItemBorderColor
	if it.Real == f.ActiveIndex {
		border = style.ActiveBorderColor
	}
	if style.BorderSize > 0 {
		dl.AddRectOutline(body.X, body.Y, body.W, body.H, WithAlpha(border, opacity), style.BorderSize)
	}
	if it.Real == f.ActiveIndex && body.W > 4*SpaceMD {
		y := body.Y + body.H - SpaceMD
		dl.AddLine(body.X+SpaceMD, y, body.X+body.W-SpaceMD, y, WithAlpha(border, opacity), SpaceXS)
	}

	marker := WithAlpha(style.MarkerColor, opacity)
	barW := max(body.W/24, 2)
	barH := body.H / 4
	x := body.X + SpaceMD
	for i := 0; i <= it.Real && x+barW < body.X+body.W-SpaceMD; i++ {
		dl.AddRect(x, body.Y+SpaceMD, barW, barH, marker)
		x += barW + SpaceXS*2
	}
}
