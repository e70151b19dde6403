package swiper

import (
	"math"
	"time"
)

// Surface is the host scroll view the swiper drives.
type Surface interface {
	// ScrollTo moves the view to a horizontal offset. Non-animated moves
	// still report the new offset through ScrollListener.OnScroll.
	ScrollTo(offset float64, animated bool)
}

// ContentSizer is implemented by surfaces whose scrollable extent the swiper
// sets after every rebuild.
type ContentSizer interface {
	SetContentSize(size float64)
}

// ScrollListener receives the host scroll view's callbacks. *Swiper
// implements it.
type ScrollListener interface {
	OnScroll(offset float64)
	OnTouchStart()
	OnTouchEnd()
	OnDragBegin()
	OnDragEnd()
	OnContentSizeChanged(size float64)
}

// Platform describes the timing behavior of a host scroll view.
type Platform struct {
	Name string
	// OverlappingScrolls allows a scroll request while another scroll is in
	// flight. Without it, requests are queued until the view settles.
	OverlappingScrolls bool
	// SnapBackDelay is how long a settled clone waits before jumping to its
	// real item. Views that re-report offsets shortly after release need
	// the longer delay.
	SnapBackDelay time.Duration
	// SharedRangeTable lets non-identity animations use the shared
	// per-sequence input range table.
	SharedRangeTable bool
	// ImmediateContentOffset requests post-rebuild offsets as a content
	// offset jump right away instead of waiting for the host to report the
	// new content size. The surface still applies it on its next update.
	ImmediateContentOffset bool
}

// Platform profiles.
var (
	PlatformImmediate = Platform{
		Name:                   "immediate",
		OverlappingScrolls:     true,
		SnapBackDelay:          10 * time.Millisecond,
		ImmediateContentOffset: true,
	}
	PlatformDeferred = Platform{
		Name:             "deferred",
		SnapBackDelay:    100 * time.Millisecond,
		SharedRangeTable: true,
	}
)

// PagingSurface is an in-process paging scroll view. Hosts feed it pointer
// events and frame deltas; it reports offsets to its listener the way a
// native paging scroll view would.
type PagingSurface struct {
	listener ScrollListener

	offset      float64
	target      float64
	pageWidth   float64
	contentSize float64
	animating   bool

	pendingOffset bool // Report offset on next Update
	pendingSize   bool // Report content size on next Update

	drag pagingDrag
}

// pagingDrag tracks a pointer gesture.
type pagingDrag struct {
	down        bool
	dragging    bool
	startX      float64
	startOffset float64
	lastX       float64
	velocity    float64 // Pixels per second, positive to the right
}

// Paging tuning.
const (
	pagingSmoothSpeed = 15.0 // Higher = faster convergence
	pagingThreshold   = 0.5  // Stop animating when this close
	pagingDragSlop    = 4.0  // Pointer travel before a touch becomes a drag
	pagingFlickRatio  = 0.2  // Page fraction that advances on release
	pagingFlickSpeed  = 600.0
)

// NewPagingSurface creates a surface with no listener.
func NewPagingSurface() *PagingSurface {
	return &PagingSurface{}
}

// SetListener sets the callback receiver.
func (p *PagingSurface) SetListener(l ScrollListener) { p.listener = l }

// SetPageWidth sets the viewport width, which is also the paging step.
func (p *PagingSurface) SetPageWidth(w float64) {
	p.pageWidth = max(w, 0)
}

// SetContentSize sets the scrollable extent. The listener hears about it on
// the next Update.
func (p *PagingSurface) SetContentSize(size float64) {
	size = max(size, 0)
	if size == p.contentSize {
		return
	}
	p.contentSize = size
	p.pendingSize = true
}

// Offset returns the current scroll offset.
func (p *PagingSurface) Offset() float64 { return p.offset }

// ContentSize returns the scrollable extent.
func (p *PagingSurface) ContentSize() float64 { return p.contentSize }

// Animating reports whether an animated scroll is in progress.
func (p *PagingSurface) Animating() bool { return p.animating }

// Dragging reports whether the pointer is dragging the content.
func (p *PagingSurface) Dragging() bool { return p.drag.dragging }

// maxOffset is the largest reachable offset.
func (p *PagingSurface) maxOffset() float64 {
	return max(p.contentSize-p.pageWidth, 0)
}

func (p *PagingSurface) clamp(offset float64) float64 {
	return math.Min(math.Max(offset, 0), p.maxOffset())
}

// ScrollTo implements Surface.
func (p *PagingSurface) ScrollTo(offset float64, animated bool) {
	if p.drag.dragging {
		return
	}
	offset = p.clamp(offset)
	p.target = offset
	if animated {
		p.animating = p.offset != offset
		return
	}
	p.animating = false
	p.offset = offset
	p.pendingOffset = true
}

// PointerDown starts a touch at x.
func (p *PagingSurface) PointerDown(x float64) {
	p.drag = pagingDrag{down: true, startX: x, startOffset: p.offset, lastX: x}
	if p.listener != nil {
		p.listener.OnTouchStart()
	}
}

// PointerMove drags the content. dt is the time since the last move.
func (p *PagingSurface) PointerMove(x float64, dt time.Duration) {
	if !p.drag.down {
		return
	}
	if !p.drag.dragging {
		if math.Abs(x-p.drag.startX) < pagingDragSlop {
			return
		}
		p.drag.dragging = true
		p.animating = false
		p.drag.startOffset = p.offset
		p.drag.startX = x
		if p.listener != nil {
			p.listener.OnDragBegin()
		}
	}
	if sec := dt.Seconds(); sec > 0 {
		p.drag.velocity = (x - p.drag.lastX) / sec
	}
	p.drag.lastX = x
	p.setOffset(p.clamp(p.drag.startOffset - (x - p.drag.startX)))
}

// PointerUp ends the touch and pages to the nearest item, biased by the
// drag direction and speed.
func (p *PagingSurface) PointerUp(x float64) {
	if !p.drag.down {
		return
	}
	wasDragging := p.drag.dragging
	p.drag.down = false
	p.drag.dragging = false
	if wasDragging {
		p.target = p.pageTarget(x - p.drag.startX)
		p.animating = p.target != p.offset
		if p.listener != nil {
			p.listener.OnDragEnd()
		}
	}
	if p.listener != nil {
		p.listener.OnTouchEnd()
	}
}

// pageTarget picks the settle offset for a drag of dx pixels.
func (p *PagingSurface) pageTarget(dx float64) float64 {
	if p.pageWidth <= 0 {
		return p.offset
	}
	start := math.Round(p.drag.startOffset / p.pageWidth)
	page := math.Round(p.offset / p.pageWidth)
	flick := math.Abs(p.drag.velocity) > pagingFlickSpeed
	if page == start && (math.Abs(dx) > p.pageWidth*pagingFlickRatio || flick) {
		if dx < 0 {
			page++
		} else if dx > 0 {
			page--
		}
	}
	return p.clamp(page * p.pageWidth)
}

// Update advances animated scrolling and delivers pending reports.
func (p *PagingSurface) Update(dt time.Duration) {
	if p.pendingSize {
		p.pendingSize = false
		if p.listener != nil {
			p.listener.OnContentSizeChanged(p.contentSize)
		}
	}
	if p.pendingOffset {
		p.pendingOffset = false
		p.report()
	}
	if !p.animating || p.drag.dragging {
		return
	}
	diff := p.target - p.offset
	if math.Abs(diff) < pagingThreshold {
		p.animating = false
		p.setOffset(p.target)
		return
	}
	step := min(dt.Seconds()*pagingSmoothSpeed, 1)
	p.setOffset(p.offset + diff*step)
}

func (p *PagingSurface) setOffset(offset float64) {
	if offset == p.offset {
		return
	}
	p.offset = offset
	p.report()
}

func (p *PagingSurface) report() {
	if p.listener != nil {
		p.listener.OnScroll(p.offset)
	}
}
