package swiper

import (
	"math"
	"time"
)

// fractionDigits is the precision of IndexAt.
const fractionDigits = 5

// contentOffsetNudge moves a repeated content offset just enough for the
// host to report a scroll.
const contentOffsetNudge = 1e-11

// scrollRequest is a scroll queued until the current scroll settles.
type scrollRequest struct {
	index    int
	animated bool
}

// Swiper is the carousel controller. It owns the virtual sequence, the
// animation table, the pagination model and every timer, and turns the
// host's scroll offsets into index events and item styles.
//
// A Swiper is not safe for concurrent use: call it from the host's event
// loop only.
type Swiper struct {
	cfg      Config
	platform Platform
	surface  Surface
	store    StateStore
	id       string

	onChanging func(real int)
	onChanged  func(real int)

	anim     *Animation
	seq      *Sequence
	items    []any
	paginate *Paginate
	sched    *Scheduler

	mode InputRangeMode

	width         float64 // Container width; 0 until laid out
	realItemWidth float64 // Visual item width
	itemHeight    float64

	contentSize      float64
	lastScrollPos    float64
	lastExact        bool
	autoplayDelayed  bool
	lastChanged      int
	lastChanging     int
	scrolling        bool
	pending          *scrollRequest
	skipTo           int
	skipping         bool
	contentOffset    float64
	hasContentOffset bool
	sizeTarget       int
	waitingForSize   bool

	configured bool
	closed     bool
}

// New creates a swiper driving surface. The host must route the surface's
// callbacks to the returned Swiper.
func New(surface Surface, opts ...Option) *Swiper {
	s := &Swiper{
		cfg:       DefaultConfig(),
		platform:  PlatformImmediate,
		surface:   surface,
		anim:      NewAnimation(),
		paginate:  NewPaginate(0),
		sched:     NewScheduler(),
		lastExact: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.apply(s.cfg, nil)
	s.configured = true
	return s
}

// Config returns the active configuration.
func (s *Swiper) Config() Config { return s.cfg }

// Platform returns the platform profile.
func (s *Swiper) Platform() Platform { return s.platform }

// Sequence returns the virtual sequence, or nil when there are no items or
// the swiper has not been laid out.
func (s *Swiper) Sequence() *Sequence { return s.seq }

// Animation returns the shared interpolation table.
func (s *Swiper) Animation() *Animation { return s.anim }

// Paginate returns the pagination model.
func (s *Swiper) Paginate() *Paginate { return s.paginate }

// Width returns the container width.
func (s *Swiper) Width() float64 { return s.width }

// ItemWidth returns the resolved visual item width.
func (s *Swiper) ItemWidth() float64 { return s.realItemWidth }

// Offset returns the last reported scroll offset.
func (s *Swiper) Offset() float64 { return s.lastScrollPos }

// Scrolling reports whether a scroll is in flight.
func (s *Swiper) Scrolling() bool { return s.scrolling }

// ActiveIndex returns the last settled real index.
func (s *Swiper) ActiveIndex() int { return s.lastChanged }

// Pending reports whether a timer of the kind is waiting.
func (s *Swiper) Pending(kind TaskKind) bool { return s.sched.Pending(kind) }

// Remaining returns the time until the timer of the kind fires.
func (s *Swiper) Remaining(kind TaskKind) (time.Duration, bool) { return s.sched.Remaining(kind) }

// ContentSize returns the scroll extent the sequence needs.
func (s *Swiper) ContentSize() float64 {
	if s.seq == nil {
		return 0
	}
	return s.seq.ContentSize()
}

// IndexAt converts a scroll offset to a virtual index rounded to five
// fractional digits. The result is an integer exactly when the offset sits
// on an item.
func (s *Swiper) IndexAt(offset float64) float64 {
	if s.width <= 0 {
		return 0
	}
	return roundTo(offset/s.width, fractionDigits)
}

func isExact(index float64) bool {
	return index == math.Trunc(index)
}

// SetItems replaces the real items and rebuilds the sequence.
func (s *Swiper) SetItems(items []any) {
	s.items = items
	s.makeItems()
}

// SetConfig applies a new configuration. Only the parts that changed are
// recomputed.
func (s *Swiper) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	prev := s.cfg
	s.apply(cfg, &prev)
	return nil
}

// OnLayout reports the container width.
func (s *Swiper) OnLayout(width float64) {
	if width <= 0 || width == s.width {
		return
	}
	s.width = width
	s.anim.SetOutputRange(ChannelZIndex, NewOutputRange([windowSize]float64{1, 1, width, 1, 1}))
	s.resetTranslateX(false)
	if ps, ok := s.surface.(*PagingSurface); ok {
		ps.SetPageWidth(width)
	}
	s.makeItems()
}

// OnItemLayout reports the rendered item height, which positions scaled
// items for top and bottom scale alignment.
func (s *Swiper) OnItemLayout(height float64) {
	if height == s.itemHeight {
		return
	}
	s.itemHeight = height
	s.resetTranslateY(true)
}

// apply is the configuration diff: it recomputes ranges for changed options
// and rebuilds the sequence when its shape changes.
func (s *Swiper) apply(cfg Config, prev *Config) {
	s.cfg = cfg
	n := len(s.items)
	mode := s.selectMode(cfg, n)

	rebuild := mode != s.mode
	if prev != nil && prev.AutoplayDelay != cfg.AutoplayDelay {
		s.autoplayDelayed = false
	}
	if prev != nil && prev.LoopCloneCount != cfg.LoopCloneCount && CanLoop(cfg.Loop, cfg.LoopSingleItem, n) {
		if s.seq == nil || s.cloneCountFor(cfg, mode, n) != s.seq.CloneCount() {
			rebuild = true
		}
	}
	if prev == nil || prev.ItemWidth != cfg.ItemWidth || prev.Loop != cfg.Loop || prev.LoopSingleItem != cfg.LoopSingleItem {
		rebuild = true
	}
	if prev == nil || prev.ItemWidth != cfg.ItemWidth || prev.InactiveScale != cfg.InactiveScale || prev.InactiveOffset != cfg.InactiveOffset {
		s.resetTranslateX(!rebuild)
	}
	if prev == nil || prev.ActiveOpacity != cfg.ActiveOpacity || prev.InactiveOpacity != cfg.InactiveOpacity {
		s.resetOpacity(!rebuild)
	}
	if prev == nil || prev.ActiveScale != cfg.ActiveScale || prev.InactiveScale != cfg.InactiveScale {
		s.resetScale(!rebuild)
	}
	if prev == nil || prev.ScaleAlign != cfg.ScaleAlign || prev.ActiveScale != cfg.ActiveScale || prev.InactiveScale != cfg.InactiveScale {
		s.resetTranslateY(!rebuild)
	}
	if prev == nil || prev.Autoplay != cfg.Autoplay || prev.AutoplayDelay != cfg.AutoplayDelay || prev.AutoplayInterval != cfg.AutoplayInterval {
		if cfg.Autoplay {
			s.startAutoplay()
		} else {
			s.stopAutoplay()
		}
	}
	if rebuild && s.configured {
		s.makeItems()
	}
}

// selectMode picks the input range mode. Identity animations and a single
// item that cannot loop always use per-item windows.
func (s *Swiper) selectMode(cfg Config, n int) InputRangeMode {
	if forced, ok := parseInputRangeMode(cfg.InputRange); ok {
		return forced
	}
	if !s.platform.SharedRangeTable ||
		(n == 1 && !CanLoop(cfg.Loop, cfg.LoopSingleItem, n)) ||
		cfg.identityAnimation() {
		return InputRangeItem
	}
	return InputRangeSequence
}

func (s *Swiper) cloneCountFor(cfg Config, mode InputRangeMode, n int) int {
	if cfg.LoopCloneCount <= 0 {
		return 0
	}
	return CloneCountFor(cfg.LoopCloneCount, mode, n)
}

func (s *Swiper) resetOpacity(update bool) {
	c := s.cfg
	if c.ActiveOpacity == 1 && c.InactiveOpacity == 1 {
		s.anim.SetOutputRange(ChannelOpacity, NoRange)
	} else {
		i, a := c.InactiveOpacity, c.ActiveOpacity
		s.anim.SetOutputRange(ChannelOpacity, NewOutputRange([windowSize]float64{i, i, a, i, i}))
	}
	if update && s.seq != nil {
		s.seq.Recompute(ChannelOpacity)
	}
}

func (s *Swiper) resetScale(update bool) {
	c := s.cfg
	if c.ActiveScale == 1 && c.InactiveScale == 1 {
		s.anim.SetOutputRange(ChannelScale, NoRange)
		s.anim.SetOutputRange(ChannelInnerScale, NoRange)
	} else {
		a, i := c.ActiveScale, c.InactiveScale
		s.anim.SetOutputRange(ChannelScale, NewOutputRange([windowSize]float64{a * i, i, a * i, i, a * i}))
		s.anim.SetOutputRange(ChannelInnerScale, NewOutputRange([windowSize]float64{a / i, 1, a / i, 1, a / i}))
	}
	if update && s.seq != nil {
		s.seq.Recompute(ChannelScale, ChannelInnerScale)
	}
}

// resetTranslateX pulls inactive neighbors toward the container center so
// scaled-down items keep a constant gap.
func (s *Swiper) resetTranslateX(update bool) {
	if s.width <= 0 {
		return
	}
	c := s.cfg
	s.realItemWidth = c.ItemWidth.Resolve(s.width)
	if c.InactiveScale == 1 && c.InactiveOffset == 0 {
		s.anim.SetOutputRange(ChannelTranslateX, NoRange)
		s.anim.SetOutputRange(ChannelTranslateXContainer, NoRange)
	} else {
		t := (s.width - s.realItemWidth*c.InactiveScale) / 2 / c.InactiveScale
		o := c.InactiveOffset
		s.anim.SetOutputRange(ChannelTranslateX, NewOutputRange([windowSize]float64{-2 * t, -t, 0, t, 2 * t}))
		s.anim.SetOutputRange(ChannelTranslateXContainer, NewOutputRange([windowSize]float64{-2 * o, -o, 0, o, 2 * o}))
	}
	if update && s.seq != nil {
		s.seq.Recompute(ChannelTranslateX, ChannelTranslateXContainer)
	}
}

// resetTranslateY keeps scaled items flush with the top or bottom edge.
func (s *Swiper) resetTranslateY(update bool) {
	c := s.cfg
	h := s.itemHeight
	if c.ScaleAlign == AlignMiddle || h <= 0 {
		s.anim.SetOutputRange(ChannelTranslateY, NoRange)
	} else {
		a := (h - h*c.ActiveScale) / 2 / c.ActiveScale
		i := (h - h*c.InactiveScale) / 2 / c.InactiveScale
		if c.ScaleAlign == AlignTop {
			a, i = -a, -i
		}
		s.anim.SetOutputRange(ChannelTranslateY, NewOutputRange([windowSize]float64{i, i, a, i, i}))
	}
	if update && s.seq != nil {
		s.seq.Recompute(ChannelTranslateY)
	}
}

// makeItems rebuilds the virtual sequence and restores the active real
// index.
func (s *Swiper) makeItems() {
	if s.width <= 0 || s.closed {
		return
	}
	s.sched.Cancel(TaskSnapBack)
	if len(s.items) == 0 {
		s.reset()
		return
	}

	n := len(s.items)
	old := s.seq
	initIndex := s.initialIndex(old)
	if initIndex < 0 {
		initIndex = 0
	} else if initIndex >= n {
		initIndex = n - 1
	}

	mode := s.selectMode(s.cfg, n)
	clones := 0
	if CanLoop(s.cfg.Loop, s.cfg.LoopSingleItem, n) {
		clones = s.cloneCountFor(s.cfg, mode, n)
	}
	seq := BuildSequence(SequenceParams{
		Items:          s.items,
		Loop:           s.cfg.Loop,
		LoopSingleItem: s.cfg.LoopSingleItem,
		CloneCount:     clones,
		Width:          s.width,
		Mode:           mode,
	}, s.anim)
	s.seq = seq
	s.mode = mode
	// A pending SetActiveItem target indexed the old sequence.
	s.skipping = false
	s.paginate.SetTotal(n)

	initScrollIndex := seq.HomeIndex(initIndex)
	initScrollPos := seq.Offset(initScrollIndex)

	s.waitingForSize = false
	if !s.platform.ImmediateContentOffset {
		if old != nil && old.Len() != seq.Len() {
			s.waitingForSize = true
		} else if s.lastScrollPos != initScrollPos && initScrollPos > s.contentSize {
			s.waitingForSize = true
		}
		s.sizeTarget = initScrollIndex
	}
	if cs, ok := s.surface.(ContentSizer); ok {
		cs.SetContentSize(seq.ContentSize())
	}

	swiperLogger.Debug("swiper rebuilt",
		"items", n,
		"initIndex", initIndex,
		"offset", initScrollPos,
		"waitingForSize", s.waitingForSize)

	if s.lastScrollPos == initScrollPos {
		s.updateUI()
		return
	}
	switch {
	case s.scrolling:
		s.pending = &scrollRequest{index: initScrollIndex, animated: false}
	case s.platform.ImmediateContentOffset:
		// Only a request: the surface applies and reports it on its next
		// update, after the new content size.
		s.setContentOffset(initScrollPos)
	case !s.waitingForSize:
		s.sched.Schedule(TaskContentSync, 0, func() {
			if s.seq == seq {
				s.scrollTo(initScrollIndex, false)
			}
		})
	}
	if s.cfg.ShowPaginate {
		s.paginate.SetActiveIndex(initIndex)
	}
}

// initialIndex keeps the real item under the current offset across
// rebuilds; the first build uses persisted state or the configured index.
func (s *Swiper) initialIndex(old *Sequence) int {
	if old != nil && old.Len() > 0 && old.Width() > 0 {
		// The old offset is in the old item width.
		v := int(math.Round(s.lastScrollPos / old.Width()))
		if real, ok := old.RealIndex(v); ok {
			return real
		}
		return 0
	}
	if s.store != nil && s.id != "" {
		st := GetState(s.store, s.id, ActiveState{Index: -1})
		if isIndexIn(st.Index, len(s.items)) {
			return st.Index
		}
	}
	return s.cfg.InitialIndex
}

// reset clears all state when there are no items.
func (s *Swiper) reset() {
	s.sched.Cancel(TaskSnapBack)
	s.stopAutoplay()
	s.sched.Cancel(TaskContentSync)
	s.seq = nil
	s.contentSize = 0
	s.lastScrollPos = 0
	s.lastChanged = 0
	s.lastChanging = 0
	s.hasContentOffset = false
	s.waitingForSize = false
	s.pending = nil
	s.paginate.SetTotal(0)
	if cs, ok := s.surface.(ContentSizer); ok {
		cs.SetContentSize(0)
	}
	swiperLogger.Debug("swiper reset")
}

// setContentOffset jumps straight to x, nudging a repeated offset so the
// host reports it.
func (s *Swiper) setContentOffset(x float64) {
	if s.surface == nil {
		return
	}
	if s.hasContentOffset && s.contentOffset == x {
		x += contentOffsetNudge
	}
	s.contentOffset, s.hasContentOffset = x, true
	s.surface.ScrollTo(x, false)
}

// OnScroll implements ScrollListener.
func (s *Swiper) OnScroll(offset float64) {
	if s.closed || offset == s.lastScrollPos {
		return
	}
	s.lastScrollPos = offset
	s.updateUI()
}

// OnTouchStart implements ScrollListener.
func (s *Swiper) OnTouchStart() {
	s.skipping = false
}

// OnTouchEnd implements ScrollListener.
func (s *Swiper) OnTouchEnd() {
	if s.seq != nil && isExact(s.IndexAt(s.lastScrollPos)) {
		s.updateUI()
	}
}

// OnDragBegin implements ScrollListener.
func (s *Swiper) OnDragBegin() {
	if s.pending != nil {
		swiperLogger.Debug("dropped queued scroll", "index", s.pending.index)
		s.pending = nil
	}
	s.beginScrolling()
}

// OnDragEnd implements ScrollListener.
func (s *Swiper) OnDragEnd() {
	s.OnTouchEnd()
}

// OnContentSizeChanged implements ScrollListener.
func (s *Swiper) OnContentSizeChanged(size float64) {
	s.contentSize = size
	if !s.waitingForSize || s.seq == nil {
		return
	}
	if s.seq.Offset(s.sizeTarget) <= size {
		s.waitingForSize = false
		s.scrollTo(s.sizeTarget, false)
	}
}

// updateUI runs after every offset change: it emits index events, moves
// the pagination, and arms the snap-back and autoplay timers.
func (s *Swiper) updateUI() {
	seq := s.seq
	if seq == nil {
		return
	}
	index := s.IndexAt(s.lastScrollPos)
	exact := isExact(index)

	if exact {
		s.scrolling = false
		if req := s.pending; req != nil {
			s.pending = nil
			s.scrollTo(req.index, req.animated)
		}
		v := int(index)
		if real, ok := seq.RealIndex(v); ok {
			if s.skipping && s.skipTo == v {
				s.skipping = false
			}
			if real != s.lastChanged {
				s.lastChanged = real
				s.emitChanged(real)
			} else if !s.lastExact || s.lastChanging != real {
				s.lastChanging = real
				s.emitChanging(real)
			}
			if s.cfg.ShowPaginate {
				s.paginate.SetActiveIndex(real)
			}
		}
		s.lastExact = true
	} else {
		if !s.scrolling {
			s.beginScrolling()
		}
		near := int(math.Round(index))
		if real, ok := seq.RealIndex(near); ok && real != s.lastChanging {
			if s.cfg.ShowPaginate {
				s.paginate.SetActiveIndex(real)
			}
			if s.skipping && s.skipTo == near {
				s.skipping = false
			}
			s.lastChanging = real
			s.emitChanging(real)
		}
		s.lastExact = false
	}

	if exact {
		s.sched.Cancel(TaskSnapBack)
		if !s.scrolling && seq.Looping() {
			s.scheduleSnapBack(seq, int(index))
		}
		if s.cfg.Autoplay {
			s.startAutoplay()
		}
	}
}

// snapTarget returns where a settled clone jumps to, or false when it
// stays. With the shared table and one or two real items the clone may lie
// farther than the window reaches, so it jumps by four instead.
func snapTarget(seq *Sequence, v int) (int, bool) {
	it, ok := seq.Item(v)
	if !ok {
		return 0, false
	}
	home := seq.HomeIndex(it.SourceIndex)
	if v == home {
		return 0, false
	}
	if seq.Mode() == InputRangeItem || seq.SourceCount() > 2 {
		return home, true
	}
	switch {
	case it.EdgeDistance > 2:
		return v - 4, true
	case it.EdgeDistance < -2:
		return v + 4, true
	}
	return 0, false
}

func (s *Swiper) scheduleSnapBack(seq *Sequence, v int) {
	if _, ok := snapTarget(seq, v); !ok {
		return
	}
	s.sched.Schedule(TaskSnapBack, s.platform.SnapBackDelay, func() {
		if s.seq != seq || s.seq == nil {
			swiperLogger.Debug("dropped stale snap-back", "index", v)
			return
		}
		to, ok := snapTarget(seq, v)
		if !ok || !isIndexIn(to, seq.Len()) {
			swiperLogger.Debug("dropped stale snap-back", "index", v)
			return
		}
		swiperLogger.Debug("snap back", "from", v, "to", to)
		if s.platform.ImmediateContentOffset {
			s.setContentOffset(seq.Offset(to))
		} else {
			s.scrollTo(to, false)
		}
	})
}

func (s *Swiper) startAutoplay() {
	if s.closed {
		return
	}
	delay := s.cfg.AutoplayInterval
	if !s.autoplayDelayed {
		delay += s.cfg.AutoplayDelay
	}
	s.sched.Schedule(TaskAutoplay, delay, func() {
		s.autoplayDelayed = true
		index := s.IndexAt(s.lastScrollPos)
		if s.seq == nil || !isExact(index) {
			return
		}
		s.scrollTo((int(index)+1)%s.seq.Len(), true)
	})
}

func (s *Swiper) stopAutoplay() {
	s.sched.Cancel(TaskAutoplay)
}

func (s *Swiper) beginScrolling() {
	s.scrolling = true
	s.stopAutoplay()
	s.sched.Cancel(TaskSnapBack)
}

// ScrollTo scrolls to a virtual index. It does nothing when the offset is
// already current or the index lies outside the sequence, and queues the
// request when the platform cannot start a scroll while another is in
// flight. It ends any SetActiveItem event suppression.
func (s *Swiper) ScrollTo(virtual int, animated bool) {
	s.skipping = false
	s.scrollTo(virtual, animated)
}

// scrollTo reports whether it started or queued a scroll.
func (s *Swiper) scrollTo(index int, animated bool) bool {
	if s.surface == nil || s.seq == nil || s.closed {
		return false
	}
	x := s.seq.Offset(index)
	if !isIndexIn(index, s.seq.Len()) || x > s.contentSize {
		swiperLogger.Debug("ignored scroll beyond content", "index", index, "contentSize", s.contentSize)
		return false
	}
	if s.lastScrollPos == x {
		return false
	}
	if !s.platform.OverlappingScrolls && s.scrolling {
		swiperLogger.Debug("queued scroll", "index", index, "animated", animated)
		s.pending = &scrollRequest{index: index, animated: animated}
		return true
	}
	if animated {
		s.beginScrolling()
	} else {
		s.stopAutoplay()
		s.sched.Cancel(TaskSnapBack)
	}
	s.surface.ScrollTo(x, animated)
	return true
}

// SetActiveItem scrolls to a real item. Items passed on the way do not
// emit index events; a touch or a ScrollTo re-enables them.
func (s *Swiper) SetActiveItem(real int, animated bool) {
	if s.seq == nil || !isIndexIn(real, s.seq.SourceCount()) {
		return
	}
	target := s.seq.HomeIndex(real)
	// Set before scrolling: a surface may report synchronously.
	s.skipTo, s.skipping = target, animated
	if !s.scrollTo(target, animated) {
		s.skipping = false
	}
}

// Update advances the swiper's timers by the frame delta.
func (s *Swiper) Update(dt time.Duration) {
	if s.closed {
		return
	}
	s.sched.Advance(dt)
}

// Close stops every timer. The swiper ignores callbacks afterwards.
func (s *Swiper) Close() {
	s.sched.CancelAll()
	s.closed = true
}

func (s *Swiper) emitChanging(real int) {
	if s.skipping || s.onChanging == nil {
		return
	}
	s.onChanging(real)
}

func (s *Swiper) emitChanged(real int) {
	if s.store != nil && s.id != "" && s.seq != nil {
		SetState(s.store, s.id, ActiveState{Index: real, Total: s.seq.SourceCount()})
	}
	if s.skipping || s.onChanged == nil {
		return
	}
	s.onChanged(real)
}
