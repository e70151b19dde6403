package swiper_test

import (
	"math"
	"testing"

	"github.com/go-theft-auto/swiper"
)

func TestDrawListAddRect(t *testing.T) {
	dl := swiper.NewDrawList()
	dl.AddRect(10, 20, 30, 40, swiper.ColorWhite)
	dl.Finalize()

	if len(dl.VtxBuffer) != 4 || len(dl.IdxBuffer) != 6 {
		t.Fatalf("vertices/indices = %d/%d, want 4/6", len(dl.VtxBuffer), len(dl.IdxBuffer))
	}
	if len(dl.CmdBuffer) != 1 || dl.CmdBuffer[0].ElemCount != 6 {
		t.Fatalf("commands = %+v, want one with 6 elements", dl.CmdBuffer)
	}
	if got := dl.VtxBuffer[2].Pos; got != [2]float32{40, 60} {
		t.Errorf("third corner = %v, want [40 60]", got)
	}
}

func TestDrawListSkipsTransparent(t *testing.T) {
	dl := swiper.NewDrawList()
	dl.AddRect(0, 0, 10, 10, swiper.ColorTransparent)
	dl.AddLine(0, 0, 10, 10, swiper.ColorTransparent, 2)
	dl.AddCircle(5, 5, 5, swiper.ColorTransparent)
	dl.AddCircle(5, 5, 0, swiper.ColorWhite)
	dl.Finalize()

	if len(dl.VtxBuffer) != 0 || len(dl.CmdBuffer) != 0 {
		t.Errorf("expected nothing drawn, got %d vertices %d commands", len(dl.VtxBuffer), len(dl.CmdBuffer))
	}
}

func TestDrawListClipRects(t *testing.T) {
	dl := swiper.NewDrawList()
	dl.AddRect(0, 0, 10, 10, swiper.ColorWhite)
	dl.PushClipRect(5, 5, 50, 50)
	dl.AddRect(0, 0, 10, 10, swiper.ColorWhite)
	dl.AddRect(0, 0, 10, 10, swiper.ColorWhite)
	dl.PopClipRect()
	dl.AddRect(0, 0, 10, 10, swiper.ColorWhite)
	dl.Finalize()

	if len(dl.CmdBuffer) != 3 {
		t.Fatalf("commands = %d, want 3", len(dl.CmdBuffer))
	}
	if got := dl.CmdBuffer[1].ClipRect; got != [4]float32{5, 5, 50, 50} {
		t.Errorf("clip = %v, want [5 5 50 50]", got)
	}
	if dl.CmdBuffer[1].ElemCount != 12 {
		t.Errorf("clipped elements = %d, want 12", dl.CmdBuffer[1].ElemCount)
	}
	if dl.CmdBuffer[0].ClipRect != dl.CmdBuffer[2].ClipRect {
		t.Error("PopClipRect should restore the outer clip")
	}
}

func TestDrawListSplitsLargeCommands(t *testing.T) {
	dl := swiper.NewDrawList()
	const rects = 20000 // 80000 vertices
	for i := 0; i < rects; i++ {
		dl.AddRect(float32(i), 0, 1, 1, swiper.ColorWhite)
	}
	dl.Finalize()

	if len(dl.CmdBuffer) < 2 {
		t.Fatalf("commands = %d, want at least 2", len(dl.CmdBuffer))
	}
	var elems uint32
	for i, cmd := range dl.CmdBuffer {
		end := uint32(len(dl.VtxBuffer))
		if i+1 < len(dl.CmdBuffer) {
			end = dl.CmdBuffer[i+1].VertexOffset
		}
		if n := end - cmd.VertexOffset; n > math.MaxUint16 {
			t.Errorf("command %d has %d vertices", i, n)
		}
		for _, idx := range dl.IdxBuffer[cmd.IndexOffset : cmd.IndexOffset+cmd.ElemCount] {
			if uint32(idx) >= end-cmd.VertexOffset {
				t.Fatalf("command %d index %d out of range", i, idx)
			}
		}
		elems += cmd.ElemCount
	}
	if elems != rects*6 {
		t.Errorf("elements = %d, want %d", elems, rects*6)
	}
}

func TestDrawListCircle(t *testing.T) {
	dl := swiper.NewDrawList()
	dl.AddCircle(50, 50, 10, swiper.ColorWhite)
	dl.Finalize()

	if len(dl.VtxBuffer) != 17 || len(dl.IdxBuffer) != 48 {
		t.Fatalf("vertices/indices = %d/%d, want 17/48", len(dl.VtxBuffer), len(dl.IdxBuffer))
	}
	for i, v := range dl.VtxBuffer[1:] {
		dx, dy := v.Pos[0]-50, v.Pos[1]-50
		if r := math.Sqrt(float64(dx*dx + dy*dy)); math.Abs(r-10) > 1e-3 {
			t.Errorf("rim vertex %d at radius %v", i, r)
		}
	}
}

func TestDrawListPoolClears(t *testing.T) {
	dl := swiper.AcquireDrawList()
	dl.AddRect(0, 0, 1, 1, swiper.ColorWhite)
	swiper.ReleaseDrawList(dl)

	dl = swiper.AcquireDrawList()
	defer swiper.ReleaseDrawList(dl)
	if len(dl.VtxBuffer) != 0 || len(dl.CmdBuffer) != 0 {
		t.Errorf("acquired list not cleared: %d vertices", len(dl.VtxBuffer))
	}
}

func TestWithAlpha(t *testing.T) {
	c := swiper.RGBA(10, 20, 30, 200)
	_, _, _, a := swiper.UnpackRGBA(swiper.WithAlpha(c, 0.5))
	if a != 100 {
		t.Errorf("alpha = %d, want 100", a)
	}
	r, g, b, a := swiper.UnpackRGBA(swiper.WithAlpha(c, 2))
	if r != 10 || g != 20 || b != 30 || a != 200 {
		t.Errorf("WithAlpha(2) = %d %d %d %d, want unchanged", r, g, b, a)
	}
}
