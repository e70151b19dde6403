package swiper

import "math"

// ItemClipper calculates the virtual index range near a scroll offset, so a
// long looped sequence is not scanned in full every frame.
//
// Usage:
//
//	clipper := NewItemClipper(seq.Len(), seq.Width(), offset, 3)
//	for v := clipper.StartIdx; v < clipper.EndIdx; v++ {
//	    x := clipper.ItemX(v, offset)
//	    // Resolve item v at x
//	}
type ItemClipper struct {
	StartIdx   int     // First candidate index (inclusive)
	EndIdx     int     // Last candidate index (exclusive)
	ItemWidth  float64 // Width of each item
	TotalItems int     // Sequence length
}

// NewItemClipper returns the indices within radius items of offset, plus
// one item of slack on each side for rounding.
func NewItemClipper(totalItems int, itemWidth, offset, radius float64) *ItemClipper {
	c := &ItemClipper{ItemWidth: itemWidth, TotalItems: totalItems}
	if totalItems <= 0 || itemWidth <= 0 {
		return c
	}

	pos := offset / itemWidth
	start := int(math.Floor(pos - radius))
	end := int(math.Ceil(pos+radius)) + 1

	c.StartIdx = min(max(start, 0), totalItems)
	c.EndIdx = min(max(end, c.StartIdx), totalItems)
	return c
}

// ItemX returns the left edge of item v relative to the viewport.
func (c *ItemClipper) ItemX(v int, offset float64) float64 {
	return float64(v)*c.ItemWidth - offset
}

// VisibleCount returns the number of candidate items.
func (c *ItemClipper) VisibleCount() int {
	return c.EndIdx - c.StartIdx
}
