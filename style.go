package swiper

// Spacing constants for default item bodies.
const (
	SpaceXS float32 = 2
	SpaceSM float32 = 4
	SpaceMD float32 = 8
)

// Style defines how the DrawListPresenter paints default item bodies.
type Style struct {
	BackgroundColor   uint32
	ItemColors        []uint32 // Cycled by real index
	ItemBorderColor   uint32
	ActiveBorderColor uint32
	BorderSize        float32
	ItemPadding       float32 // Inset of the body inside the item rect
	MarkerColor       uint32  // Index marker bars drawn on each body
}

// DefaultStyle returns a dark style with a small palette.
func DefaultStyle() Style {
	return Style{
		BackgroundColor: RGBA(20, 20, 20, 255),
		ItemColors: []uint32{
			RGBA(50, 100, 150, 255),
			RGBA(50, 130, 80, 255),
			RGBA(180, 130, 40, 255),
			RGBA(180, 60, 60, 255),
			RGBA(110, 70, 160, 255),
		},
		ItemBorderColor:   ColorDarkGray,
		ActiveBorderColor: RGBA(5, 132, 242, 255),
		BorderSize:        1,
		ItemPadding:       SpaceSM,
		MarkerColor:       RGBA(255, 255, 255, 200),
	}
}

// LightStyle returns a light style matching the default pagination dots.
func LightStyle() Style {
	s := DefaultStyle()
	s.BackgroundColor = ColorWhite
	s.ItemBorderColor = ColorLightGray
	s.MarkerColor = RGBA(0, 0, 0, 160)
	return s
}

// itemColor returns the palette color for a real index.
func (s Style) itemColor(real int) uint32 {
	if len(s.ItemColors) == 0 {
		return ColorGray
	}
	return s.ItemColors[real%len(s.ItemColors)]
}
