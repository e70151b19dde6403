package swiper

import "sort"

// Channel identifies one animated style output of an item.
type Channel uint8

const (
	ChannelOpacity Channel = iota
	ChannelScale
	ChannelInnerScale
	ChannelTranslateX
	ChannelTranslateXContainer
	ChannelTranslateY
	ChannelZIndex
	channelCount
)

var channelNames = [channelCount]string{
	ChannelOpacity:             "opacity",
	ChannelScale:               "scale",
	ChannelInnerScale:          "innerScale",
	ChannelTranslateX:          "translateX",
	ChannelTranslateXContainer: "translateXContainer",
	ChannelTranslateY:          "translateY",
	ChannelZIndex:              "zIndex",
}

// String returns the channel name.
func (c Channel) String() string {
	if c < channelCount {
		return channelNames[c]
	}
	return "unknown"
}

// Channels returns every animation channel in declaration order.
func Channels() []Channel {
	out := make([]Channel, channelCount)
	for i := range out {
		out[i] = Channel(i)
	}
	return out
}

// ChannelSet is a bit set of channels.
type ChannelSet uint8

// Has reports whether the set contains ch.
func (s ChannelSet) Has(ch Channel) bool {
	return s&(1<<ch) != 0
}

// With returns the set with ch added.
func (s ChannelSet) With(ch Channel) ChannelSet {
	return s | 1<<ch
}

// The output range window covers relative distances -2..2.
const (
	windowRadius = 2
	windowSize   = 2*windowRadius + 1
)

// windowDistances are the control point positions of every output range.
var windowDistances = []float64{-2, -1, 0, 1, 2}

// OutputRange is the 5-point output of a channel at relative distances
// -2, -1, 0, 1 and 2 from the active position. The zero value is absent:
// the channel is disabled and consumers use the identity value.
type OutputRange struct {
	values [windowSize]float64
	set    bool
}

// NoRange is the absent output range.
var NoRange = OutputRange{}

// NewOutputRange returns a present output range with the given control points.
func NewOutputRange(values [windowSize]float64) OutputRange {
	return OutputRange{values: values, set: true}
}

// Present reports whether the range is set.
func (r OutputRange) Present() bool { return r.set }

// Values returns the control points.
func (r OutputRange) Values() [windowSize]float64 { return r.values }

// At interpolates the range at a relative distance. Distances beyond ±2
// reuse the end control point.
func (r OutputRange) At(distance float64) float64 {
	return interpolate(windowDistances, r.values[:], distance)
}

// Animation is the shared interpolation table. It owns one output range per
// channel; items snapshot those ranges when recomputed, so changing a range
// only affects items after an explicit Item.Recompute.
type Animation struct {
	ranges [channelCount]OutputRange
}

// NewAnimation creates a table with every channel absent.
func NewAnimation() *Animation {
	return &Animation{}
}

// SetOutputRange sets or clears (with NoRange) a channel's output range.
func (a *Animation) SetOutputRange(ch Channel, r OutputRange) {
	if ch >= channelCount {
		return
	}
	a.ranges[ch] = r
}

// OutputRange returns the current range of a channel.
func (a *Animation) OutputRange(ch Channel) OutputRange {
	if ch >= channelCount {
		return NoRange
	}
	return a.ranges[ch]
}

// ValueAt returns the channel value at a relative distance, or false when the
// channel is absent.
func (a *Animation) ValueAt(ch Channel, distance float64) (float64, bool) {
	r := a.OutputRange(ch)
	if !r.Present() {
		return 0, false
	}
	return r.At(distance), true
}

// InputRangeMode selects how items key their interpolation inputs.
type InputRangeMode uint8

const (
	// InputRangeItem gives every item its own 5-point window of scroll
	// offsets centered on the item.
	InputRangeItem InputRangeMode = iota
	// InputRangeSequence shares one table of absolute scroll offsets, one
	// entry per virtual item, across the whole sequence.
	InputRangeSequence
)

// String returns the mode name.
func (m InputRangeMode) String() string {
	if m == InputRangeSequence {
		return "sequence"
	}
	return "item"
}

// InputRange holds the scroll offsets an item interpolates over.
type InputRange struct {
	Mode    InputRangeMode
	Offsets []float64
}

// itemWindow builds the per-item window centered on x.
func itemWindow(x, width float64) InputRange {
	return InputRange{
		Mode:    InputRangeItem,
		Offsets: []float64{x - 2*width, x - width, x, x + width, x + 2*width},
	}
}

// sequenceTable builds the shared table for n virtual items.
func sequenceTable(n int, width float64) InputRange {
	offsets := make([]float64, n)
	for i := range offsets {
		offsets[i] = float64(i) * width
	}
	return InputRange{Mode: InputRangeSequence, Offsets: offsets}
}

// curve is an item's snapshot of one channel: outputs aligned with the
// item's input offsets.
type curve struct {
	outputs []float64
	set     bool
}

// buildCurve expands an output range over an item's input range. In
// sequence mode each table entry takes the control point of its distance
// from the item, clamped to the window.
func buildCurve(r OutputRange, in InputRange, virtualIndex int) curve {
	if !r.Present() {
		return curve{}
	}
	if in.Mode == InputRangeItem {
		out := r.Values()
		return curve{outputs: out[:], set: true}
	}
	outputs := make([]float64, len(in.Offsets))
	for j := range outputs {
		d := j - virtualIndex
		if d < -windowRadius {
			d = -windowRadius
		} else if d > windowRadius {
			d = windowRadius
		}
		outputs[j] = r.values[d+windowRadius]
	}
	return curve{outputs: outputs, set: true}
}

// interpolate evaluates the piecewise-linear function through
// (inputs[i], outputs[i]) at x, clamping outside the input span.
// inputs must be ascending.
func interpolate(inputs, outputs []float64, x float64) float64 {
	n := len(inputs)
	if n == 0 || len(outputs) < n {
		return 0
	}
	if x <= inputs[0] {
		return outputs[0]
	}
	if x >= inputs[n-1] {
		return outputs[n-1]
	}
	i := sort.SearchFloat64s(inputs, x)
	if inputs[i] == x {
		return outputs[i]
	}
	x0, x1 := inputs[i-1], inputs[i]
	y0, y1 := outputs[i-1], outputs[i]
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}
