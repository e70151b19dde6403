package swiper

// ItemKind tags an item slot as real data or a loop clone.
type ItemKind uint8

const (
	ItemReal ItemKind = iota
	ItemLeftClone
	ItemRightClone
)

// String returns the kind name.
func (k ItemKind) String() string {
	switch k {
	case ItemLeftClone:
		return "leftClone"
	case ItemRightClone:
		return "rightClone"
	default:
		return "real"
	}
}

// Item is one slot of the virtual sequence. Clones share Data with the real
// item they copy; only the animated outputs change after construction.
type Item struct {
	Kind        ItemKind
	Data        any
	SourceIndex int // Index into the real data
	SourceCount int // Number of real items
	// EdgeDistance is 0 for real items, -n for the n-th left clone and +n
	// for the n-th right clone.
	EdgeDistance int

	virtualIndex int
	hasIndex     bool
	x            float64
	hasX         bool

	animation  *Animation
	inputRange InputRange
	curves     [channelCount]curve
	updateKey  int
}

func newItem(kind ItemKind, data any, count, index int, anim *Animation) *Item {
	return &Item{
		Kind:        kind,
		Data:        data,
		SourceIndex: index,
		SourceCount: count,
		animation:   anim,
	}
}

// clone copies the item as another kind. Curves are copied by value; the
// input range slice is shared until the sequence assigns a new one.
func (it *Item) clone(kind ItemKind) *Item {
	c := *it
	c.Kind = kind
	c.updateKey = 0
	return &c
}

// IsClone reports whether the item is a loop clone.
func (it *Item) IsClone() bool { return it.Kind != ItemReal }

// VirtualIndex returns the item's position in the virtual sequence, or false
// before the sequence assigned one.
func (it *Item) VirtualIndex() (int, bool) { return it.virtualIndex, it.hasIndex }

// X returns the item's absolute scroll offset, or false before assignment.
func (it *Item) X() (float64, bool) { return it.x, it.hasX }

// InputRange returns the offsets the item interpolates over.
func (it *Item) InputRange() InputRange { return it.inputRange }

// UpdateKey increases every time the item's curves are recomputed. Hosts
// use it to skip re-rendering unchanged items.
func (it *Item) UpdateKey() int { return it.updateKey }

// Distance returns the signed distance, in item widths, between the item
// and the given scroll offset.
func (it *Item) Distance(offset, width float64) float64 {
	if width <= 0 {
		return 0
	}
	return (offset - it.x) / width
}

// Recompute snapshots the animation table for the given channels, or for
// every channel when none are given.
func (it *Item) Recompute(channels ...Channel) {
	if len(channels) == 0 {
		channels = Channels()
	}
	for _, ch := range channels {
		if ch >= channelCount {
			continue
		}
		it.curves[ch] = buildCurve(it.animation.OutputRange(ch), it.inputRange, it.virtualIndex)
	}
	it.updateKey++
}

// Value returns one channel's value at a scroll offset, or false when the
// channel was absent at the last recompute.
func (it *Item) Value(ch Channel, offset float64) (float64, bool) {
	if ch >= channelCount || !it.curves[ch].set {
		return 0, false
	}
	return interpolate(it.inputRange.Offsets, it.curves[ch].outputs, offset), true
}

// ItemStyle is the resolved animated style of an item. Channels that are
// absent hold identity values and are missing from Animated.
type ItemStyle struct {
	Opacity             float64
	Scale               float64
	InnerScale          float64
	TranslateX          float64
	TranslateXContainer float64
	TranslateY          float64
	ZIndex              float64
	Animated            ChannelSet
}

// IdentityStyle is the style of an item with no animated channel.
var IdentityStyle = ItemStyle{Opacity: 1, Scale: 1, InnerScale: 1}

// Resolve evaluates every channel at the scroll offset.
func (it *Item) Resolve(offset float64) ItemStyle {
	s := IdentityStyle
	for ch := Channel(0); ch < channelCount; ch++ {
		v, ok := it.Value(ch, offset)
		if !ok {
			continue
		}
		s.Animated = s.Animated.With(ch)
		switch ch {
		case ChannelOpacity:
			s.Opacity = v
		case ChannelScale:
			s.Scale = v
		case ChannelInnerScale:
			s.InnerScale = v
		case ChannelTranslateX:
			s.TranslateX = v
		case ChannelTranslateXContainer:
			s.TranslateXContainer = v
		case ChannelTranslateY:
			s.TranslateY = v
		case ChannelZIndex:
			s.ZIndex = v
		}
	}
	return s
}
