package swiper_test

import (
	"testing"

	"github.com/go-theft-auto/swiper"
)

func newTestHost(t *testing.T, cfg swiper.Config, opts ...swiper.Option) (*swiper.Host, *mockRenderer, *[]int) {
	t.Helper()
	changed := &[]int{}
	opts = append([]swiper.Option{
		swiper.WithConfig(cfg),
		swiper.WithOnIndexChanged(func(real int) { *changed = append(*changed, real) }),
	}, opts...)
	renderer := &mockRenderer{}
	host := swiper.NewHost(renderer, testBounds, items(5), opts...)
	host.Update(nil, 0)
	return host, renderer, changed
}

// runFrames advances the host until the surface stops animating.
func runFrames(host *swiper.Host, in *swiper.InputState) {
	for i := 0; i < 300; i++ {
		host.Update(in, frame)
		if in != nil {
			in.Reset()
		}
		if !host.Surface().Animating() && !host.Surface().Dragging() {
			return
		}
	}
}

func TestHostInitialLayout(t *testing.T) {
	host, renderer, _ := newTestHost(t, peekConfig())

	if host.Swiper().Width() != 400 {
		t.Errorf("width = %v, want 400", host.Swiper().Width())
	}
	if host.Surface().ContentSize() != 13*400 {
		t.Errorf("surface content = %v, want %v", host.Surface().ContentSize(), 13*400)
	}
	if host.Swiper().Offset() != 1600 || host.Surface().Offset() != 1600 {
		t.Errorf("offsets = %v/%v, want 1600", host.Swiper().Offset(), host.Surface().Offset())
	}

	if err := host.Frame(nil, frame); err != nil {
		t.Fatalf("Frame() error: %v", err)
	}
	if renderer.renderCalls != 1 || renderer.vertices == 0 {
		t.Errorf("render calls/vertices = %d/%d", renderer.renderCalls, renderer.vertices)
	}
}

func TestHostKeys(t *testing.T) {
	host, _, changed := newTestHost(t, peekConfig())
	in := swiper.NewInputState()

	in.PressKey(swiper.KeyRight)
	runFrames(host, in)
	if got := host.Swiper().ActiveIndex(); got != 1 {
		t.Fatalf("after Right: active = %d, want 1", got)
	}

	in.PressKey(swiper.KeyEnd)
	runFrames(host, in)
	if got := host.Swiper().ActiveIndex(); got != 4 {
		t.Errorf("after End: active = %d, want 4", got)
	}

	in.PressKey(swiper.KeyHome)
	runFrames(host, in)
	if got := host.Swiper().ActiveIndex(); got != 0 {
		t.Errorf("after Home: active = %d, want 0", got)
	}

	want := []int{1, 4, 0}
	if len(*changed) != len(want) {
		t.Fatalf("changed = %v, want %v", *changed, want)
	}
	for i := range want {
		if (*changed)[i] != want[i] {
			t.Errorf("changed = %v, want %v", *changed, want)
			break
		}
	}
}

func TestHostHomeOnFirstItemKeepsEvents(t *testing.T) {
	host, _, changed := newTestHost(t, peekConfig())
	in := swiper.NewInputState()

	in.PressKey(swiper.KeyHome)
	runFrames(host, in)
	in.PressKey(swiper.KeyRight)
	runFrames(host, in)

	if got := host.Swiper().ActiveIndex(); got != 1 {
		t.Errorf("active = %d, want 1", got)
	}
	if len(*changed) != 1 || (*changed)[0] != 1 {
		t.Errorf("changed = %v, want [1]", *changed)
	}
}

func TestHostLeftFromFirstItemLoops(t *testing.T) {
	host, _, changed := newTestHost(t, peekConfig())
	in := swiper.NewInputState()

	in.PressKey(swiper.KeyLeft)
	runFrames(host, in)
	// Let the snap-back timer fire and the jump report.
	host.Update(nil, swiper.PlatformImmediate.SnapBackDelay)
	host.Update(nil, frame)

	if got := host.Swiper().ActiveIndex(); got != 4 {
		t.Errorf("active = %d, want 4", got)
	}
	seq := host.Swiper().Sequence()
	if got, want := host.Swiper().Offset(), seq.Offset(seq.HomeIndex(4)); got != want {
		t.Errorf("offset after snap-back = %v, want %v", got, want)
	}
	if len(*changed) != 1 {
		t.Errorf("changed = %v, want one event", *changed)
	}
}

func TestHostPointerDrag(t *testing.T) {
	host, _, changed := newTestHost(t, peekConfig())
	in := swiper.NewInputState()

	in.SetPointerPos(300, 100)
	in.SetPointerDown(true)
	host.Update(in, frame)
	in.Reset()

	for _, x := range []float32{280, 240, 200} {
		in.SetPointerPos(x, 100)
		host.Update(in, frame)
		in.Reset()
	}
	if !host.Surface().Dragging() {
		t.Fatal("expected a drag")
	}

	in.SetPointerDown(false)
	runFrames(host, in)

	if got := host.Swiper().ActiveIndex(); got != 1 {
		t.Errorf("active = %d, want 1", got)
	}
	if len(*changed) != 1 || (*changed)[0] != 1 {
		t.Errorf("changed = %v, want [1]", *changed)
	}
}

func TestHostPointerOutsideItemsIgnored(t *testing.T) {
	host, _, _ := newTestHost(t, peekConfig())
	in := swiper.NewInputState()

	// The pagination strip is below the item area.
	in.SetPointerPos(300, 290)
	in.SetPointerDown(true)
	host.Update(in, frame)
	in.Reset()
	in.SetPointerPos(100, 290)
	host.Update(in, frame)

	if host.Surface().Dragging() {
		t.Error("drag started outside the item area")
	}
}

func TestHostToggleAutoplay(t *testing.T) {
	host, _, _ := newTestHost(t, peekConfig())
	in := swiper.NewInputState()

	in.PressKey(swiper.KeySpace)
	host.Update(in, frame)
	if !host.Swiper().Config().Autoplay || !host.Swiper().Pending(swiper.TaskAutoplay) {
		t.Fatal("Space should enable autoplay")
	}

	cfg := host.Swiper().Config()
	host.Update(nil, cfg.AutoplayDelay+cfg.AutoplayInterval)
	runFrames(host, nil)
	if got := host.Swiper().ActiveIndex(); got != 1 {
		t.Errorf("active after autoplay = %d, want 1", got)
	}
}

func TestHostResize(t *testing.T) {
	host, _, _ := newTestHost(t, peekConfig())
	in := swiper.NewInputState()
	in.PressKey(swiper.KeyRight)
	runFrames(host, in)

	host.Resize(swiper.Rect{W: 200, H: 150})
	sw := host.Swiper()
	// The rebuilt offset is only requested; it arrives with the next update,
	// after the new content size.
	if sw.Offset() != 2000 || host.Surface().Offset() != 1000 {
		t.Errorf("before update: swiper/surface offset = %v/%v, want 2000/1000", sw.Offset(), host.Surface().Offset())
	}
	host.Update(nil, 0)
	if sw.ContentSize() != 13*200 {
		t.Errorf("content size = %v, want 2600", sw.ContentSize())
	}

	if sw.Width() != 200 || sw.ItemWidth() != 160 {
		t.Errorf("width/item = %v/%v, want 200/160", sw.Width(), sw.ItemWidth())
	}
	if sw.ActiveIndex() != 1 {
		t.Errorf("active after resize = %d, want 1", sw.ActiveIndex())
	}
	if got := sw.Offset(); got != 5*200 {
		t.Errorf("offset after resize = %v, want 1000", got)
	}
}

func TestKeyName(t *testing.T) {
	for key, want := range map[swiper.Key]string{
		swiper.KeyLeft:  "Left",
		swiper.KeyHome:  "Home",
		swiper.KeySpace: "Space",
		swiper.KeyNone:  "--",
	} {
		if got := swiper.KeyName(key); got != want {
			t.Errorf("KeyName(%d) = %q, want %q", key, got, want)
		}
	}
}
