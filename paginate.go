package swiper

// DotStyle describes one pagination dot.
type DotStyle struct {
	Color   uint32  `yaml:"color"`
	Size    float32 `yaml:"size"`
	Spacing float32 `yaml:"spacing"` // Horizontal margin on each side
}

// PaginateStyle describes the pagination strip.
type PaginateStyle struct {
	Dot       DotStyle `yaml:"dot"`
	ActiveDot DotStyle `yaml:"activeDot"`
	Margin    float32  `yaml:"margin"`
}

// DefaultPaginateStyle returns small round-ish dots, the active one blue.
func DefaultPaginateStyle() PaginateStyle {
	return PaginateStyle{
		Dot:       DotStyle{Color: RGBA(0, 0, 0, 51), Size: 8, Spacing: 3},
		ActiveDot: DotStyle{Color: RGBA(5, 132, 242, 255), Size: 8, Spacing: 3},
		Margin:    10,
	}
}

// Height returns the height of the strip.
func (s PaginateStyle) Height() float32 {
	return s.Margin*2 + max(s.Dot.Size, s.ActiveDot.Size)
}

// DotRenderer overrides how one dot is painted. Returning false falls back
// to the default dot.
type DotRenderer func(dl *DrawList, index int, active bool, rect Rect) bool

// Paginate tracks the active dot of a pagination strip.
type Paginate struct {
	total  int
	active int
}

// NewPaginate creates a strip of total dots with the first one active.
func NewPaginate(total int) *Paginate {
	return &Paginate{total: max(total, 0)}
}

// Total returns the number of dots.
func (p *Paginate) Total() int { return p.total }

// SetTotal changes the number of dots, keeping the active index in range.
func (p *Paginate) SetTotal(total int) {
	p.total = max(total, 0)
	if p.active >= p.total {
		p.active = max(p.total-1, 0)
	}
}

// ActiveIndex returns the active dot.
func (p *Paginate) ActiveIndex() int { return p.active }

// SetActiveIndex activates a dot and reports whether it changed.
func (p *Paginate) SetActiveIndex(index int) bool {
	if p.active == index {
		return false
	}
	p.active = index
	return true
}

// Layout returns the rectangle of every dot, centered in bounds.
func (p *Paginate) Layout(bounds Rect, style PaginateStyle) []Rect {
	rects := make([]Rect, p.total)
	if p.total == 0 {
		return rects
	}
	var width float32
	for i := 0; i < p.total; i++ {
		d := p.dotStyle(i, style)
		width += d.Size + d.Spacing*2
	}
	x := bounds.X + (bounds.W-width)/2
	centerY := bounds.Y + bounds.H/2
	for i := range rects {
		d := p.dotStyle(i, style)
		x += d.Spacing
		rects[i] = Rect{X: x, Y: centerY - d.Size/2, W: d.Size, H: d.Size}
		x += d.Size + d.Spacing
	}
	return rects
}

// Draw paints the strip. render may be nil.
func (p *Paginate) Draw(dl *DrawList, bounds Rect, style PaginateStyle, render DotRenderer) {
	for i, r := range p.Layout(bounds, style) {
		active := i == p.active
		if render != nil && render(dl, i, active, r) {
			continue
		}
		c := r.Center()
		dl.AddCircle(c.X, c.Y, r.W/2, p.dotStyle(i, style).Color)
	}
}

func (p *Paginate) dotStyle(index int, style PaginateStyle) DotStyle {
	if index == p.active {
		return style.ActiveDot
	}
	return style.Dot
}
