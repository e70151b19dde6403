// Package terminal renders a swiper into a tcell screen.
//
// DrawLists are rasterized into a Canvas where every terminal cell holds two
// vertically stacked pixels, painted with the upper half block glyph.
package terminal

import (
	"github.com/go-theft-auto/swiper"
)

// Canvas is a software rasterizer for untextured swiper DrawLists.
type Canvas struct {
	width, height int // In pixels
	pixels        []uint32
	background    uint32
}

// NewCanvas creates a canvas of width×height pixels.
func NewCanvas(width, height int, background uint32) *Canvas {
	c := &Canvas{background: background}
	c.Resize(width, height)
	return c
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (int, int) { return c.width, c.height }

// Resize reallocates the canvas and clears it.
func (c *Canvas) Resize(width, height int) {
	c.width = max(width, 0)
	c.height = max(height, 0)
	if n := c.width * c.height; cap(c.pixels) >= n {
		c.pixels = c.pixels[:n]
	} else {
		c.pixels = make([]uint32, n)
	}
	c.Clear()
}

// Clear fills the canvas with the background color.
func (c *Canvas) Clear() {
	for i := range c.pixels {
		c.pixels[i] = c.background
	}
}

// At returns the packed color at (x, y), or the background when outside.
func (c *Canvas) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return c.background
	}
	return c.pixels[y*c.width+x]
}

// Render implements swiper.Renderer.
func (c *Canvas) Render(dl *swiper.DrawList) error {
	c.Clear()
	if dl == nil {
		return nil
	}
	for _, cmd := range dl.CmdBuffer {
		base := int(cmd.VertexOffset)
		idx := dl.IdxBuffer[cmd.IndexOffset : cmd.IndexOffset+cmd.ElemCount]
		for i := 0; i+2 < len(idx); i += 3 {
			a := dl.VtxBuffer[base+int(idx[i])]
			b := dl.VtxBuffer[base+int(idx[i+1])]
			d := dl.VtxBuffer[base+int(idx[i+2])]
			c.fillTriangle(a, b, d, cmd.ClipRect)
		}
	}
	return nil
}

// fillTriangle paints every pixel whose center lies inside the triangle and
// the clip rectangle, using the first vertex color.
func (c *Canvas) fillTriangle(a, b, d swiper.Vertex, clip [4]float32) {
	color := a.Color
	if color>>24 == 0 {
		return
	}
	ax, ay := a.Pos[0], a.Pos[1]
	bx, by := b.Pos[0], b.Pos[1]
	dx, dy := d.Pos[0], d.Pos[1]

	area := edge(ax, ay, bx, by, dx, dy)
	if area == 0 {
		return
	}

	minX := max(floor(min(ax, bx, dx)), floor(clip[0]), 0)
	minY := max(floor(min(ay, by, dy)), floor(clip[1]), 0)
	maxX := min(ceil(max(ax, bx, dx)), ceil(clip[2]), c.width)
	maxY := min(ceil(max(ay, by, dy)), ceil(clip[3]), c.height)

	for y := minY; y < maxY; y++ {
		py := float32(y) + 0.5
		if py < clip[1] || py >= clip[3] {
			continue
		}
		for x := minX; x < maxX; x++ {
			px := float32(x) + 0.5
			if px < clip[0] || px >= clip[2] {
				continue
			}
			w0 := edge(bx, by, dx, dy, px, py)
			w1 := edge(dx, dy, ax, ay, px, py)
			w2 := edge(ax, ay, bx, by, px, py)
			if area < 0 {
				w0, w1, w2 = -w0, -w1, -w2
			}
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			i := y*c.width + x
			c.pixels[i] = blend(c.pixels[i], color)
		}
	}
}

// edge is the signed doubled area of (a, b, p).
func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func floor(v float32) int {
	i := int(v)
	if float32(i) > v {
		i--
	}
	return i
}

func ceil(v float32) int {
	i := int(v)
	if float32(i) < v {
		i++
	}
	return i
}

// blend composites src over dst and returns an opaque color.
func blend(dst, src uint32) uint32 {
	sr, sg, sb, sa := swiper.UnpackRGBA(src)
	if sa == 255 {
		return src
	}
	dr, dg, db, _ := swiper.UnpackRGBA(dst)
	a := uint32(sa)
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(255-a) + 127) / 255)
	}
	return swiper.RGBA(mix(sr, dr), mix(sg, dg), mix(sb, db), 255)
}
