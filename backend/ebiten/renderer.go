// Package ebiten provides an Ebitengine renderer, input adapter and game
// loop for the swiper package.
package ebiten

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-theft-auto/swiper"
)

// ErrNoTarget is returned when Render runs before SetTarget.
var ErrNoTarget = errors.New("ebiten renderer has no target image")

// whiteSubImage is the source for untextured triangles. Sampling the center
// of a 3×3 white image avoids bleeding from neighboring atlas pixels.
var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// Renderer draws swiper DrawLists onto an ebiten.Image.
type Renderer struct {
	target *ebiten.Image
	width  int
	height int

	vertices []ebiten.Vertex
	opts     ebiten.DrawTrianglesOptions
}

// NewRenderer creates a renderer. Call SetTarget every frame from Draw.
func NewRenderer() *Renderer {
	r := &Renderer{}
	r.opts.AntiAlias = true
	return r
}

// SetTarget sets the image the next Render paints into.
func (r *Renderer) SetTarget(target *ebiten.Image) {
	r.target = target
}

// Resize records the logical screen size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Render implements swiper.Renderer.
func (r *Renderer) Render(dl *swiper.DrawList) error {
	if r.target == nil {
		return ErrNoTarget
	}
	if dl == nil || len(dl.CmdBuffer) == 0 {
		return nil
	}

	r.vertices = r.vertices[:0]
	for _, v := range dl.VtxBuffer {
		cr, cg, cb, ca := swiper.UnpackRGBA(v.Color)
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX:   v.Pos[0],
			DstY:   v.Pos[1],
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(cr) / 255,
			ColorG: float32(cg) / 255,
			ColorB: float32(cb) / 255,
			ColorA: float32(ca) / 255,
		})
	}

	bounds := r.target.Bounds()
	for i, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}
		dst, ok := clipTarget(r.target, cmd.ClipRect, bounds)
		if !ok {
			continue
		}
		end := uint32(len(r.vertices))
		if i+1 < len(dl.CmdBuffer) {
			end = dl.CmdBuffer[i+1].VertexOffset
		}
		verts := r.vertices[cmd.VertexOffset:end]
		indices := dl.IdxBuffer[cmd.IndexOffset : cmd.IndexOffset+cmd.ElemCount]
		dst.DrawTriangles(verts, indices, whiteSubImage, &r.opts)
	}
	return nil
}

// clipTarget returns the part of target inside clip. SubImage keeps the
// parent's coordinate space, so vertices need no translation.
func clipTarget(target *ebiten.Image, clip [4]float32, bounds image.Rectangle) (*ebiten.Image, bool) {
	rect := image.Rect(int(clip[0]), int(clip[1]), int(clip[2]+0.5), int(clip[3]+0.5)).Intersect(bounds)
	if rect.Empty() {
		return nil, false
	}
	if rect == bounds {
		return target, true
	}
	return target.SubImage(rect).(*ebiten.Image), true
}
