package swiper_test

import (
	"testing"
	"time"

	"github.com/go-theft-auto/swiper"
)

type scrollCall struct {
	offset   float64
	animated bool
}

// recordingSurface records scroll requests without reporting back; tests
// drive the swiper's listener methods by hand.
type recordingSurface struct {
	calls       []scrollCall
	contentSize float64
}

func (r *recordingSurface) ScrollTo(offset float64, animated bool) {
	r.calls = append(r.calls, scrollCall{offset, animated})
}

func (r *recordingSurface) SetContentSize(size float64) { r.contentSize = size }

func (r *recordingSurface) last() (scrollCall, bool) {
	if len(r.calls) == 0 {
		return scrollCall{}, false
	}
	return r.calls[len(r.calls)-1], true
}

// eventLog collects index callbacks.
type eventLog struct {
	changing []int
	changed  []int
}

func (e *eventLog) options() []swiper.Option {
	return []swiper.Option{
		swiper.WithOnIndexChanging(func(real int) { e.changing = append(e.changing, real) }),
		swiper.WithOnIndexChanged(func(real int) { e.changed = append(e.changed, real) }),
	}
}

func loopConfig() swiper.Config {
	cfg := swiper.DefaultConfig()
	cfg.Loop = true
	cfg.LoopCloneCount = 4
	return cfg
}

// newLaidOut builds a 100px wide swiper, delivers the content size and
// settles it on its initial offset.
func newLaidOut(t *testing.T, n int, cfg swiper.Config, opts ...swiper.Option) (*swiper.Swiper, *recordingSurface) {
	t.Helper()
	surface := &recordingSurface{}
	opts = append([]swiper.Option{swiper.WithConfig(cfg)}, opts...)
	sw := swiper.New(surface, opts...)
	sw.SetItems(items(n))
	sw.OnLayout(100)
	sw.OnContentSizeChanged(surface.contentSize)
	if call, ok := surface.last(); ok {
		sw.OnScroll(call.offset)
	}
	return sw, surface
}

func TestSwiperLoopLayout(t *testing.T) {
	sw, surface := newLaidOut(t, 5, loopConfig())

	seq := sw.Sequence()
	if seq == nil {
		t.Fatal("expected a sequence after layout")
	}
	if seq.Len() != 13 || seq.BaseOffset() != 4 {
		t.Errorf("len/base = %d/%d, want 13/4", seq.Len(), seq.BaseOffset())
	}
	if seq.Mode() != swiper.InputRangeItem {
		t.Errorf("mode = %s, want item", seq.Mode())
	}
	if surface.contentSize != 1300 {
		t.Errorf("content size = %v, want 1300", surface.contentSize)
	}
	call, _ := surface.last()
	if call != (scrollCall{400, false}) {
		t.Errorf("initial scroll = %+v, want {400 false}", call)
	}
	if sw.ActiveIndex() != 0 || sw.Paginate().Total() != 5 {
		t.Errorf("active/total = %d/%d, want 0/5", sw.ActiveIndex(), sw.Paginate().Total())
	}
}

func TestSwiperInitialIndex(t *testing.T) {
	cfg := loopConfig()
	cfg.InitialIndex = 3
	sw, surface := newLaidOut(t, 5, cfg)

	if call, _ := surface.last(); call.offset != 700 {
		t.Errorf("initial offset = %v, want 700", call.offset)
	}
	if sw.IndexAt(sw.Offset()) != 7 {
		t.Errorf("IndexAt = %v, want 7", sw.IndexAt(sw.Offset()))
	}

	cfg.InitialIndex = 12
	_, surface = newLaidOut(t, 5, cfg)
	if call, _ := surface.last(); call.offset != 800 {
		t.Errorf("clamped initial offset = %v, want 800", call.offset)
	}
}

func TestSwiperSnapsBackFromClone(t *testing.T) {
	var log eventLog
	sw, surface := newLaidOut(t, 5, loopConfig(), log.options()...)
	seq := sw.Sequence()

	// Drag onto the third left clone.
	sw.OnScroll(350)
	sw.OnScroll(250)
	sw.OnScroll(200)

	real, _ := seq.RealIndex(2)
	if real != 3 {
		t.Fatalf("virtual 2 maps to real %d, want 3", real)
	}
	if len(log.changed) != 1 || log.changed[0] != real {
		t.Errorf("changed = %v, want [%d]", log.changed, real)
	}
	if !sw.Pending(swiper.TaskSnapBack) {
		t.Fatal("expected a pending snap-back")
	}
	if rem, _ := sw.Remaining(swiper.TaskSnapBack); rem != swiper.PlatformImmediate.SnapBackDelay {
		t.Errorf("snap-back delay = %v, want %v", rem, swiper.PlatformImmediate.SnapBackDelay)
	}

	calls := len(surface.calls)
	sw.Update(9 * time.Millisecond)
	if len(surface.calls) != calls {
		t.Fatal("snapped back early")
	}
	sw.Update(time.Millisecond)
	call, ok := surface.last()
	want := seq.Offset(seq.HomeIndex(real))
	if !ok || call.offset != want || call.animated {
		t.Errorf("snap-back scroll = %+v, want {%v false}", call, want)
	}

	// The jump lands on the same real item: no new changed event.
	sw.OnScroll(call.offset)
	if len(log.changed) != 1 {
		t.Errorf("changed after snap-back = %v, want one event", log.changed)
	}
}

func TestSwiperSnapBackCancelledByDrag(t *testing.T) {
	sw, surface := newLaidOut(t, 5, loopConfig())
	sw.OnScroll(200)
	if !sw.Pending(swiper.TaskSnapBack) {
		t.Fatal("expected a pending snap-back")
	}
	sw.OnTouchStart()
	sw.OnDragBegin()
	if sw.Pending(swiper.TaskSnapBack) {
		t.Error("drag should cancel the snap-back")
	}
	calls := len(surface.calls)
	sw.Update(time.Second)
	if len(surface.calls) != calls {
		t.Error("cancelled snap-back scrolled")
	}
}

func TestSwiperNoSnapWithoutLoop(t *testing.T) {
	tests := []struct {
		name string
		n    int
		cfg  func() swiper.Config
	}{
		{"single item", 1, loopConfig},
		{"loop disabled", 3, swiper.DefaultConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sw, _ := newLaidOut(t, tt.n, tt.cfg())
			if sw.Sequence().Looping() {
				t.Fatal("sequence should not loop")
			}
			if sw.Sequence().Len() != tt.n {
				t.Errorf("len = %d, want %d", sw.Sequence().Len(), tt.n)
			}
			sw.OnScroll(0)
			sw.OnTouchEnd()
			if sw.Pending(swiper.TaskSnapBack) {
				t.Error("unexpected snap-back")
			}
		})
	}
}

func TestSwiperSequenceModeSnapForTwoItems(t *testing.T) {
	cfg := loopConfig()
	cfg.InactiveScale = 0.8
	sw, surface := newLaidOut(t, 2, cfg, swiper.WithPlatform(swiper.PlatformDeferred))
	seq := sw.Sequence()
	if seq.Mode() != swiper.InputRangeSequence || seq.Len() != 14 {
		t.Fatalf("mode/len = %s/%d, want sequence/14", seq.Mode(), seq.Len())
	}

	tests := []struct {
		virtual int
		snap    bool
		to      int
	}{
		{4, false, 0}, // Two from the edge stays
		{3, true, 7},
		{2, true, 6},
		{10, true, 6},
		{9, false, 0},
	}
	for _, tt := range tests {
		sw.OnScroll(seq.Offset(tt.virtual) + 50)
		sw.OnScroll(seq.Offset(tt.virtual))
		if got := sw.Pending(swiper.TaskSnapBack); got != tt.snap {
			t.Errorf("virtual %d: snap pending = %v, want %v", tt.virtual, got, tt.snap)
			continue
		}
		if !tt.snap {
			continue
		}
		sw.Update(swiper.PlatformDeferred.SnapBackDelay)
		call, _ := surface.last()
		if call.offset != seq.Offset(tt.to) || call.animated {
			t.Errorf("virtual %d: snapped to %+v, want offset %v", tt.virtual, call, seq.Offset(tt.to))
		}
		sw.OnScroll(call.offset)
	}
}

func TestSwiperAutoplay(t *testing.T) {
	cfg := loopConfig()
	cfg.Autoplay = true
	cfg.AutoplayDelay = time.Second
	cfg.AutoplayInterval = 3 * time.Second
	sw, surface := newLaidOut(t, 5, cfg)

	if rem, ok := sw.Remaining(swiper.TaskAutoplay); !ok || rem != 4*time.Second {
		t.Fatalf("first autoplay in %v, %v; want 4s", rem, ok)
	}
	calls := len(surface.calls)
	sw.Update(3999 * time.Millisecond)
	if len(surface.calls) != calls {
		t.Fatal("autoplay fired early")
	}
	sw.Update(time.Millisecond)
	call, _ := surface.last()
	if call != (scrollCall{500, true}) {
		t.Fatalf("autoplay scroll = %+v, want {500 true}", call)
	}
	if sw.Pending(swiper.TaskAutoplay) {
		t.Error("autoplay should pause while scrolling")
	}

	sw.OnScroll(450)
	sw.OnScroll(500)
	if rem, _ := sw.Remaining(swiper.TaskAutoplay); rem != 3*time.Second {
		t.Errorf("next autoplay in %v, want 3s", rem)
	}
	sw.Update(3 * time.Second)
	if call, _ := surface.last(); call != (scrollCall{600, true}) {
		t.Errorf("second autoplay scroll = %+v, want {600 true}", call)
	}
}

func TestSwiperAutoplayToggle(t *testing.T) {
	cfg := loopConfig()
	sw, _ := newLaidOut(t, 3, cfg)
	if sw.Pending(swiper.TaskAutoplay) {
		t.Fatal("autoplay pending while disabled")
	}

	cfg.Autoplay = true
	if err := sw.SetConfig(cfg); err != nil {
		t.Fatalf("SetConfig() error: %v", err)
	}
	if !sw.Pending(swiper.TaskAutoplay) {
		t.Error("enabling autoplay should schedule it")
	}

	cfg.Autoplay = false
	_ = sw.SetConfig(cfg)
	if sw.Pending(swiper.TaskAutoplay) {
		t.Error("disabling autoplay should cancel it")
	}
}

func TestSwiperOneChangedPerTransition(t *testing.T) {
	var log eventLog
	sw, _ := newLaidOut(t, 5, loopConfig(), log.options()...)

	sw.OnTouchStart()
	sw.OnScroll(420)
	sw.OnScroll(460)
	sw.OnScroll(480)
	sw.OnScroll(500)
	sw.OnScroll(500)
	sw.OnTouchEnd()

	if len(log.changed) != 1 || log.changed[0] != 1 {
		t.Errorf("changed = %v, want [1]", log.changed)
	}
	if len(log.changing) != 1 || log.changing[0] != 1 {
		t.Errorf("changing = %v, want [1]", log.changing)
	}
	if sw.Paginate().ActiveIndex() != 1 {
		t.Errorf("active dot = %d, want 1", sw.Paginate().ActiveIndex())
	}
}

func TestSwiperSettleOnSameItemEmitsChanging(t *testing.T) {
	var log eventLog
	sw, _ := newLaidOut(t, 5, loopConfig(), log.options()...)

	// Drag away and back without crossing the midpoint.
	sw.OnScroll(430)
	sw.OnScroll(400)

	if len(log.changed) != 0 {
		t.Errorf("changed = %v, want none", log.changed)
	}
	if len(log.changing) != 1 || log.changing[0] != 0 {
		t.Errorf("changing = %v, want [0]", log.changing)
	}
}

func TestSwiperSetActiveItemSuppressesIntermediateEvents(t *testing.T) {
	var log eventLog
	sw, surface := newLaidOut(t, 5, loopConfig(), log.options()...)

	sw.SetActiveItem(3, true)
	call, _ := surface.last()
	if call != (scrollCall{700, true}) {
		t.Fatalf("scroll = %+v, want {700 true}", call)
	}
	for _, off := range []float64{450, 500, 550, 600, 650, 700} {
		sw.OnScroll(off)
	}

	if len(log.changed) != 1 || log.changed[0] != 3 {
		t.Errorf("changed = %v, want [3]", log.changed)
	}
	// Events resume once the nearest item is the target.
	if len(log.changing) != 1 || log.changing[0] != 3 {
		t.Errorf("changing = %v, want [3]", log.changing)
	}
	if sw.ActiveIndex() != 3 {
		t.Errorf("ActiveIndex = %d, want 3", sw.ActiveIndex())
	}
}

func TestSwiperSetActiveItemOnCurrentItemKeepsEvents(t *testing.T) {
	var log eventLog
	sw, surface := newLaidOut(t, 5, swiper.DefaultConfig(), log.options()...)
	calls := len(surface.calls)

	// Already on real 0: nothing to scroll, so nothing to suppress.
	sw.SetActiveItem(0, true)
	if len(surface.calls) != calls {
		t.Fatalf("SetActiveItem on the current item scrolled: %+v", surface.calls[calls:])
	}

	sw.ScrollTo(1, true)
	sw.OnScroll(60)
	sw.OnScroll(100)
	sw.ScrollTo(2, true)
	sw.OnScroll(160)
	sw.OnScroll(200)

	if len(log.changed) != 2 || log.changed[0] != 1 || log.changed[1] != 2 {
		t.Errorf("changed = %v, want [1 2]", log.changed)
	}
}

func TestSwiperScrollToEndsSuppression(t *testing.T) {
	var log eventLog
	sw, _ := newLaidOut(t, 5, loopConfig(), log.options()...)

	sw.SetActiveItem(3, true)
	sw.OnScroll(450)
	// A new target before the old one was reached.
	sw.ScrollTo(5, true)
	sw.OnScroll(480)
	sw.OnScroll(500)

	if len(log.changed) != 1 || log.changed[0] != 1 {
		t.Errorf("changed = %v, want [1]", log.changed)
	}
}

func TestSwiperTouchReenablesEvents(t *testing.T) {
	var log eventLog
	sw, _ := newLaidOut(t, 5, loopConfig(), log.options()...)

	sw.SetActiveItem(3, true)
	sw.OnScroll(450)
	sw.OnTouchStart()
	sw.OnScroll(520)
	sw.OnScroll(600)

	if len(log.changed) != 1 || log.changed[0] != 2 {
		t.Errorf("changed = %v, want [2]", log.changed)
	}
}

func TestSwiperSetActiveItemOutOfRange(t *testing.T) {
	sw, surface := newLaidOut(t, 3, loopConfig())
	calls := len(surface.calls)
	sw.SetActiveItem(-1, true)
	sw.SetActiveItem(3, false)
	if len(surface.calls) != calls {
		t.Errorf("out-of-range SetActiveItem scrolled: %+v", surface.calls[calls:])
	}
}

func TestSwiperScrollToGuards(t *testing.T) {
	sw, surface := newLaidOut(t, 5, loopConfig())
	calls := len(surface.calls)

	sw.ScrollTo(4, true)  // Already there
	sw.ScrollTo(20, true) // Beyond the content
	sw.ScrollTo(-1, true)
	if len(surface.calls) != calls {
		t.Errorf("guarded scrolls reached the surface: %+v", surface.calls[calls:])
	}

	sw.ScrollTo(6, false)
	if call, _ := surface.last(); call != (scrollCall{600, false}) {
		t.Errorf("scroll = %+v, want {600 false}", call)
	}
}

func TestSwiperScrollToPastLastItem(t *testing.T) {
	var log eventLog
	sw, surface := newLaidOut(t, 5, swiper.DefaultConfig(), log.options()...)
	calls := len(surface.calls)

	// Offset 500 equals the content size but holds no item.
	sw.ScrollTo(5, false)
	sw.ScrollTo(5, true)
	if len(surface.calls) != calls {
		t.Errorf("scroll past the last item reached the surface: %+v", surface.calls[calls:])
	}

	sw.ScrollTo(4, false)
	if call, _ := surface.last(); call != (scrollCall{400, false}) {
		t.Errorf("scroll = %+v, want {400 false}", call)
	}
}

func TestSwiperRebuildKeepsRealIndex(t *testing.T) {
	sw, surface := newLaidOut(t, 5, loopConfig())
	sw.OnScroll(600) // real 2

	cfg := loopConfig()
	cfg.Loop = false
	if err := sw.SetConfig(cfg); err != nil {
		t.Fatalf("SetConfig() error: %v", err)
	}
	if sw.Sequence().Len() != 5 {
		t.Fatalf("len = %d, want 5", sw.Sequence().Len())
	}
	call, _ := surface.last()
	if call.offset != 200 {
		t.Fatalf("offset after disabling loop = %v, want 200", call.offset)
	}
	sw.OnScroll(call.offset)

	cfg.Loop = true
	_ = sw.SetConfig(cfg)
	call, _ = surface.last()
	if call.offset != 600 {
		t.Errorf("offset after enabling loop = %v, want 600", call.offset)
	}
	sw.OnScroll(call.offset)
	if sw.ActiveIndex() != 2 {
		t.Errorf("ActiveIndex = %d, want 2", sw.ActiveIndex())
	}
}

func TestSwiperStyleChangeDoesNotRebuild(t *testing.T) {
	sw, _ := newLaidOut(t, 5, loopConfig())
	seq := sw.Sequence()
	it, _ := seq.Item(5)
	key := it.UpdateKey()

	cfg := loopConfig()
	cfg.InactiveOpacity = 0.5
	_ = sw.SetConfig(cfg)

	if sw.Sequence() != seq {
		t.Fatal("opacity change rebuilt the sequence")
	}
	if it.UpdateKey() == key {
		t.Error("opacity change did not recompute items")
	}
	if v, ok := it.Value(swiper.ChannelOpacity, seq.Offset(4)); !ok || !approx(v, 0.5) {
		t.Errorf("neighbor opacity = %v, %v; want 0.5", v, ok)
	}
}

func TestSwiperSetConfigRejectsInvalid(t *testing.T) {
	sw, _ := newLaidOut(t, 3, loopConfig())
	cfg := loopConfig()
	cfg.ActiveOpacity = 2
	if err := sw.SetConfig(cfg); err == nil {
		t.Error("expected an error")
	}
	if sw.Config().ActiveOpacity != 1 {
		t.Error("invalid config was applied")
	}
}

func TestSwiperDeferredPlatformWaitsForContentSize(t *testing.T) {
	cfg := loopConfig()
	cfg.InactiveScale = 0.8
	surface := &recordingSurface{}
	sw := swiper.New(surface, swiper.WithConfig(cfg), swiper.WithPlatform(swiper.PlatformDeferred))
	sw.SetItems(items(5))
	sw.OnLayout(100)

	if len(surface.calls) != 0 {
		t.Fatalf("scrolled before the content size settled: %+v", surface.calls)
	}
	if !sw.Frame().Hidden {
		t.Error("frame should be hidden while waiting for the content size")
	}

	sw.OnContentSizeChanged(surface.contentSize)
	call, ok := surface.last()
	if !ok || call != (scrollCall{400, false}) {
		t.Fatalf("scroll = %+v, want {400 false}", call)
	}
	sw.OnScroll(400)
	if sw.Frame().Hidden {
		t.Error("frame still hidden")
	}
}

func TestSwiperDeferredPlatformQueuesScrolls(t *testing.T) {
	cfg := loopConfig()
	cfg.InactiveScale = 0.8
	sw, surface := newLaidOut(t, 5, cfg, swiper.WithPlatform(swiper.PlatformDeferred))

	sw.OnScroll(450)
	if !sw.Scrolling() {
		t.Fatal("expected a scroll in flight")
	}
	calls := len(surface.calls)
	sw.ScrollTo(7, true)
	if len(surface.calls) != calls {
		t.Fatal("scroll was not queued")
	}

	sw.OnScroll(500)
	if call, _ := surface.last(); call != (scrollCall{700, true}) {
		t.Errorf("queued scroll = %+v, want {700 true}", call)
	}
}

func TestSwiperDragDropsQueuedScroll(t *testing.T) {
	cfg := loopConfig()
	cfg.InactiveScale = 0.8
	sw, surface := newLaidOut(t, 5, cfg, swiper.WithPlatform(swiper.PlatformDeferred))

	sw.OnScroll(450)
	sw.ScrollTo(7, true)
	sw.OnTouchStart()
	sw.OnDragBegin()
	calls := len(surface.calls)
	sw.OnScroll(500)
	if len(surface.calls) != calls {
		t.Errorf("dropped scroll still ran: %+v", surface.calls[calls:])
	}
}

func TestSwiperModeSelection(t *testing.T) {
	scaled := loopConfig()
	scaled.InactiveScale = 0.9
	forced := loopConfig()
	forced.InputRange = "sequence"

	tests := []struct {
		name     string
		platform swiper.Platform
		cfg      swiper.Config
		n        int
		want     swiper.InputRangeMode
	}{
		{"immediate platform", swiper.PlatformImmediate, scaled, 5, swiper.InputRangeItem},
		{"deferred animated", swiper.PlatformDeferred, scaled, 5, swiper.InputRangeSequence},
		{"deferred identity", swiper.PlatformDeferred, loopConfig(), 5, swiper.InputRangeItem},
		{"deferred single item", swiper.PlatformDeferred, func() swiper.Config { c := scaled; c.Loop = false; return c }(), 1, swiper.InputRangeItem},
		{"forced", swiper.PlatformImmediate, forced, 5, swiper.InputRangeSequence},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sw, _ := newLaidOut(t, tt.n, tt.cfg, swiper.WithPlatform(tt.platform))
			if got := sw.Sequence().Mode(); got != tt.want {
				t.Errorf("mode = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSwiperEmptyItemsReset(t *testing.T) {
	sw, surface := newLaidOut(t, 5, loopConfig())
	sw.OnScroll(600)

	sw.SetItems(nil)
	if sw.Sequence() != nil {
		t.Error("sequence should be cleared")
	}
	if sw.Paginate().Total() != 0 || sw.ActiveIndex() != 0 || sw.Offset() != 0 {
		t.Errorf("total/active/offset = %d/%d/%v, want zeros", sw.Paginate().Total(), sw.ActiveIndex(), sw.Offset())
	}
	if surface.contentSize != 0 {
		t.Errorf("content size = %v, want 0", surface.contentSize)
	}
	if len(sw.Frame().Items) != 0 {
		t.Error("frame should be empty")
	}

	sw.SetItems(items(2))
	if sw.Sequence() == nil || sw.Sequence().SourceCount() != 2 {
		t.Error("items did not come back")
	}
}

func TestSwiperClose(t *testing.T) {
	var log eventLog
	cfg := loopConfig()
	cfg.Autoplay = true
	sw, surface := newLaidOut(t, 5, cfg, log.options()...)

	sw.Close()
	if sw.Pending(swiper.TaskAutoplay) {
		t.Error("autoplay still pending after Close")
	}
	calls := len(surface.calls)
	sw.Update(time.Minute)
	sw.OnScroll(500)
	sw.ScrollTo(6, true)
	if len(surface.calls) != calls || len(log.changed) != 0 {
		t.Errorf("closed swiper still active: calls %+v changed %v", surface.calls[calls:], log.changed)
	}
}

func TestSwiperPersistsActiveIndex(t *testing.T) {
	store := swiper.MapStateStore{}
	sw, _ := newLaidOut(t, 5, loopConfig(), swiper.WithStateStore(store), swiper.WithID("hero"))
	sw.OnScroll(700)

	st := swiper.GetState(store, "hero", swiper.ActiveState{})
	if st.Index != 3 || st.Total != 5 {
		t.Fatalf("stored state = %+v, want {3 5}", st)
	}

	_, surface := newLaidOut(t, 5, loopConfig(), swiper.WithStateStore(store), swiper.WithID("hero"))
	if call, _ := surface.last(); call.offset != 700 {
		t.Errorf("restored offset = %v, want 700", call.offset)
	}

	// A stored index past the new item count is ignored.
	_, surface = newLaidOut(t, 2, loopConfig(), swiper.WithStateStore(store), swiper.WithID("hero"))
	if call, _ := surface.last(); call.offset != 400 {
		t.Errorf("offset with stale state = %v, want 400", call.offset)
	}
}

func TestSwiperIndexAt(t *testing.T) {
	sw, _ := newLaidOut(t, 3, swiper.DefaultConfig())
	tests := []struct {
		offset float64
		want   float64
	}{
		{0, 0},
		{150, 1.5},
		{100.0000001, 1},
		{33.333333, 0.33333},
	}
	for _, tt := range tests {
		if got := sw.IndexAt(tt.offset); got != tt.want {
			t.Errorf("IndexAt(%v) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestSwiperNudgesRepeatedContentOffset(t *testing.T) {
	sw, surface := newLaidOut(t, 5, loopConfig())
	if call, _ := surface.last(); call.offset != 400 {
		t.Fatalf("initial offset = %v, want 400", call.offset)
	}

	// The right clone of real 0 snaps back to the offset last jumped to.
	sw.OnScroll(900)
	sw.Update(swiper.PlatformImmediate.SnapBackDelay)

	call, _ := surface.last()
	if call.animated || call.offset == 400 || call.offset-400 > 1e-9 {
		t.Errorf("snap-back call = %+v, want a non-animated jump just past 400", call)
	}
	if got := sw.IndexAt(call.offset); got != 4 {
		t.Errorf("IndexAt(nudged) = %v, want 4", got)
	}
}
