package swiper

// Clone count policy bounds.
const (
	minLoopCloneCount      = 1
	sequenceModeCloneCount = 6
)

// CanLoop reports whether looping applies to n real items.
func CanLoop(loop, loopSingleItem bool, n int) bool {
	return loop && n > 0 && (loopSingleItem || n > 1)
}

// CloneCountFor applies the clone count policy. The shared sequence table
// needs enough clones that the 5-point window around any position never runs
// out of neighbors, so fewer than 3 real items force at least 6 clones.
func CloneCountFor(configured int, mode InputRangeMode, n int) int {
	if mode == InputRangeSequence && n < 3 {
		return max(configured, sequenceModeCloneCount)
	}
	return max(configured, minLoopCloneCount)
}

// SequenceParams describes the sequence to build.
type SequenceParams struct {
	Items          []any
	Loop           bool
	LoopSingleItem bool
	CloneCount     int // Configured clone count; 0 disables looping
	Width          float64
	Mode           InputRangeMode
}

// Sequence is the virtual item list: left clones, real items, right clones.
// It is immutable after construction apart from item animation curves.
type Sequence struct {
	items       []*Item
	realIndex   []int
	baseOffset  int
	cloneCount  int
	sourceCount int
	width       float64
	mode        InputRangeMode
}

// BuildSequence expands the real items into the virtual sequence and
// computes every item's curves from anim.
func BuildSequence(p SequenceParams, anim *Animation) *Sequence {
	n := len(p.Items)
	base := make([]*Item, n)
	for i, data := range p.Items {
		base[i] = newItem(ItemReal, data, n, i, anim)
	}

	cloneCount := 0
	if p.CloneCount > 0 && CanLoop(p.Loop, p.LoopSingleItem, n) {
		cloneCount = CloneCountFor(p.CloneCount, p.Mode, n)
	}

	items := make([]*Item, 0, n+2*cloneCount)
	left := make([]*Item, cloneCount)
	right := make([]*Item, cloneCount)
	for i := 0; i < cloneCount; i++ {
		l := base[n-1-i%n].clone(ItemLeftClone)
		l.EdgeDistance = -(i + 1)
		// Outermost clone ends up leftmost.
		left[cloneCount-1-i] = l

		r := base[i%n].clone(ItemRightClone)
		r.EdgeDistance = i + 1
		right[i] = r
	}
	items = append(items, left...)
	items = append(items, base...)
	items = append(items, right...)

	s := &Sequence{
		items:       items,
		realIndex:   make([]int, len(items)),
		baseOffset:  cloneCount,
		cloneCount:  cloneCount,
		sourceCount: n,
		width:       p.Width,
		mode:        p.Mode,
	}
	for i, it := range items {
		it.virtualIndex, it.hasIndex = i, true
		it.x, it.hasX = float64(i)*p.Width, true
		s.realIndex[i] = it.SourceIndex
	}

	var table InputRange
	if p.Mode == InputRangeSequence {
		table = sequenceTable(len(items), p.Width)
	}
	for _, it := range items {
		if p.Mode == InputRangeSequence {
			it.inputRange = table
		} else {
			it.inputRange = itemWindow(it.x, p.Width)
		}
		it.Recompute()
	}

	swiperLogger.Debug("sequence built",
		"real", n,
		"clones", cloneCount,
		"length", len(items),
		"mode", p.Mode)
	return s
}

// Len returns the number of virtual items.
func (s *Sequence) Len() int { return len(s.items) }

// Items returns the virtual items in order.
func (s *Sequence) Items() []*Item { return s.items }

// Item returns the item at a virtual index.
func (s *Sequence) Item(virtual int) (*Item, bool) {
	if !isIndexIn(virtual, len(s.items)) {
		return nil, false
	}
	return s.items[virtual], true
}

// BaseOffset returns the virtual index of the first real item.
func (s *Sequence) BaseOffset() int { return s.baseOffset }

// CloneCount returns the number of clones on each side.
func (s *Sequence) CloneCount() int { return s.cloneCount }

// SourceCount returns the number of real items.
func (s *Sequence) SourceCount() int { return s.sourceCount }

// Width returns the distance between neighboring item offsets.
func (s *Sequence) Width() float64 { return s.width }

// Mode returns the input range mode the curves were built with.
func (s *Sequence) Mode() InputRangeMode { return s.mode }

// Looping reports whether the sequence carries clones.
func (s *Sequence) Looping() bool { return s.cloneCount > 0 }

// RealIndex maps a virtual index to its real data index.
func (s *Sequence) RealIndex(virtual int) (int, bool) {
	if !isIndexIn(virtual, len(s.realIndex)) {
		return 0, false
	}
	return s.realIndex[virtual], true
}

// HomeIndex returns the virtual index of a real item inside the real range.
func (s *Sequence) HomeIndex(real int) int {
	return s.baseOffset + real
}

// Offset returns the scroll offset of a virtual index.
func (s *Sequence) Offset(virtual int) float64 {
	return float64(virtual) * s.width
}

// ContentSize returns the scrollable extent of the sequence.
func (s *Sequence) ContentSize() float64 {
	return float64(len(s.items)) * s.width
}

// Recompute recomputes the given channels (or all) of every item.
func (s *Sequence) Recompute(channels ...Channel) {
	for _, it := range s.items {
		it.Recompute(channels...)
	}
}
