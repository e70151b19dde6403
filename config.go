package swiper

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Align positions an item vertically inside its slot.
type Align string

const (
	AlignTop    Align = "top"
	AlignMiddle Align = "middle"
	AlignBottom Align = "bottom"
)

// valid reports whether the alignment is one of the known values.
func (a Align) valid() bool {
	return a == AlignTop || a == AlignMiddle || a == AlignBottom
}

// ItemWidth is the visual width of an item: fixed pixels or a percentage of
// the container. The zero value means 100% of the container.
type ItemWidth struct {
	Value   float64
	Percent bool
}

// Pixels returns a fixed item width.
func Pixels(v float64) ItemWidth { return ItemWidth{Value: v} }

// Percent returns an item width relative to the container.
func Percent(v float64) ItemWidth { return ItemWidth{Value: v, Percent: true} }

// Resolve returns the width in pixels for a container width.
func (w ItemWidth) Resolve(container float64) float64 {
	if w.Value <= 0 {
		return container
	}
	if w.Percent {
		return container * w.Value / 100
	}
	return w.Value
}

// String formats the width the way ParseItemWidth reads it.
func (w ItemWidth) String() string {
	s := strconv.FormatFloat(w.Value, 'f', -1, 64)
	if w.Percent {
		return s + "%"
	}
	return s
}

// ParseItemWidth parses "100%", "75.5%" or "320".
func ParseItemWidth(s string) (ItemWidth, error) {
	s = strings.TrimSpace(s)
	percent := strings.HasSuffix(s, "%")
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return ItemWidth{}, fmt.Errorf("invalid item width %q: %w", s, err)
	}
	return ItemWidth{Value: v, Percent: percent}, nil
}

// UnmarshalYAML accepts a number or a string.
func (w *ItemWidth) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseItemWidth(node.Value)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// MarshalYAML writes the width as a string.
func (w ItemWidth) MarshalYAML() (any, error) {
	return w.String(), nil
}

// Config holds every recognized swiper option.
type Config struct {
	InitialIndex int       `yaml:"initialIndex"`
	ItemWidth    ItemWidth `yaml:"itemWidth"`
	ItemAlign    Align     `yaml:"itemAlign"`
	ScaleAlign   Align     `yaml:"scaleAlign"`

	ActiveScale     float64 `yaml:"activeScale"`
	ActiveOpacity   float64 `yaml:"activeOpacity"`
	InactiveScale   float64 `yaml:"inactiveScale"`
	InactiveOpacity float64 `yaml:"inactiveOpacity"`
	InactiveOffset  float64 `yaml:"inactiveOffset"`

	Loop           bool `yaml:"loop"`
	LoopSingleItem bool `yaml:"loopSingleItem"`
	LoopCloneCount int  `yaml:"loopCloneCount"`

	Autoplay         bool          `yaml:"autoplay"`
	AutoplayDelay    time.Duration `yaml:"autoplayDelay"`
	AutoplayInterval time.Duration `yaml:"autoplayInterval"`

	// InputRange forces an input range mode; empty selects automatically.
	InputRange string `yaml:"inputRange"`

	ShowPaginate bool          `yaml:"showPaginate"`
	Paginate     PaginateStyle `yaml:"paginate"`
}

// DefaultConfig returns the default options.
func DefaultConfig() Config {
	return Config{
		InitialIndex:     0,
		ItemWidth:        Percent(100),
		ItemAlign:        AlignTop,
		ScaleAlign:       AlignMiddle,
		ActiveScale:      1,
		ActiveOpacity:    1,
		InactiveScale:    1,
		InactiveOpacity:  1,
		InactiveOffset:   0,
		Loop:             false,
		LoopSingleItem:   false,
		LoopCloneCount:   4,
		Autoplay:         false,
		AutoplayDelay:    1000 * time.Millisecond,
		AutoplayInterval: 3000 * time.Millisecond,
		ShowPaginate:     true,
		Paginate:         DefaultPaginateStyle(),
	}
}

// Validation errors.
var (
	ErrInvalidScale    = errors.New("scale must be positive")
	ErrInvalidOpacity  = errors.New("opacity must be within [0, 1]")
	ErrInvalidAlign    = errors.New("align must be top, middle or bottom")
	ErrInvalidInterval = errors.New("autoplay interval must be positive")
	ErrInvalidMode     = errors.New("input range must be empty, item or sequence")
)

// Validate checks option ranges.
func (c Config) Validate() error {
	if c.ActiveScale <= 0 || c.InactiveScale <= 0 {
		return ErrInvalidScale
	}
	if c.ActiveOpacity < 0 || c.ActiveOpacity > 1 || c.InactiveOpacity < 0 || c.InactiveOpacity > 1 {
		return ErrInvalidOpacity
	}
	if !c.ItemAlign.valid() || !c.ScaleAlign.valid() {
		return ErrInvalidAlign
	}
	if c.Autoplay && c.AutoplayInterval <= 0 {
		return ErrInvalidInterval
	}
	if c.AutoplayDelay < 0 {
		return fmt.Errorf("autoplay delay %v: %w", c.AutoplayDelay, ErrInvalidInterval)
	}
	if _, ok := parseInputRangeMode(c.InputRange); !ok && c.InputRange != "" {
		return ErrInvalidMode
	}
	if c.LoopCloneCount < 0 {
		return fmt.Errorf("loop clone count %d must not be negative", c.LoopCloneCount)
	}
	return nil
}

// identityAnimation reports whether the options animate nothing.
func (c Config) identityAnimation() bool {
	return c.ActiveScale == 1 && c.ActiveOpacity == 1 &&
		c.InactiveScale == 1 && c.InactiveOpacity == 1 &&
		c.InactiveOffset == 0
}

func parseInputRangeMode(s string) (InputRangeMode, bool) {
	switch s {
	case "item":
		return InputRangeItem, true
	case "sequence":
		return InputRangeSequence, true
	}
	return InputRangeItem, false
}

// ParseConfig decodes YAML over the defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse swiper config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid swiper config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("failed to read swiper config: %w", err)
	}
	return ParseConfig(data)
}

// SaveConfig writes the config as YAML.
func SaveConfig(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal swiper config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write swiper config: %w", err)
	}
	return nil
}
