package swiper

// Option configures a Swiper.
type Option func(*Swiper)

// WithConfig sets the initial configuration. Invalid configurations are
// logged and replaced by the defaults.
func WithConfig(cfg Config) Option {
	return func(s *Swiper) {
		if err := cfg.Validate(); err != nil {
			swiperLogger.Warn("invalid swiper config, using defaults", "error", err)
			cfg = DefaultConfig()
		}
		s.cfg = cfg
	}
}

// WithOnIndexChanging sets the callback for the item nearest the offset
// changing while scrolling.
func WithOnIndexChanging(fn func(real int)) Option {
	return func(s *Swiper) { s.onChanging = fn }
}

// WithOnIndexChanged sets the callback for a new settled item.
func WithOnIndexChanged(fn func(real int)) Option {
	return func(s *Swiper) { s.onChanged = fn }
}

// WithPlatform sets the host platform profile.
func WithPlatform(p Platform) Option {
	return func(s *Swiper) { s.platform = p }
}

// WithStateStore persists the active index under the swiper's ID.
func WithStateStore(store StateStore) Option {
	return func(s *Swiper) { s.store = store }
}

// WithID names the swiper for state persistence.
func WithID(id string) Option {
	return func(s *Swiper) { s.id = id }
}

// WithItems sets the initial real items.
func WithItems(items []any) Option {
	return func(s *Swiper) { s.items = items }
}

// DrawOption configures a single Draw call.
type DrawOption func(*drawOptions)

// drawOptions holds all draw configuration via the extensions map.
type drawOptions struct {
	extensions map[string]any
}

// OptKey is a typed key for draw options.
//
// Example:
//
//	var OptShadow = swiper.NewOptKey("shadow", false)
//	presenter.Draw(dl, frame, swiper.WithOpt(OptShadow, true))
//	shadow := swiper.GetOpt(opts, OptShadow)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name.
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) DrawOption {
	return func(o *drawOptions) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value, or the key's default if not set.
func GetOpt[T any](o drawOptions, key OptKey[T]) T {
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o drawOptions, key OptKey[T]) bool {
	_, ok := o.extensions[key.name]
	return ok
}

func applyDrawOptions(opts []DrawOption) drawOptions {
	var o drawOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in custom presenters.
func ApplyAndGet[T any](opts []DrawOption, key OptKey[T]) T {
	return GetOpt(applyDrawOptions(opts), key)
}

// Built-in draw option keys.
var (
	OptItemRenderer  = NewOptKey[ItemRenderer]("itemRenderer", nil)
	OptDotRenderer   = NewOptKey[DotRenderer]("dotRenderer", nil)
	OptPaginateStyle = NewOptKey("paginateStyle", PaginateStyle{})
	OptBackground    = NewOptKey[uint32]("background", 0)
	OptItemColors    = NewOptKey[[]uint32]("itemColors", nil)
)

// WithItemRenderer overrides how item bodies are painted.
func WithItemRenderer(r ItemRenderer) DrawOption { return WithOpt(OptItemRenderer, r) }

// WithDotRenderer overrides how pagination dots are painted.
func WithDotRenderer(r DotRenderer) DrawOption { return WithOpt(OptDotRenderer, r) }

// WithPaginateStyle replaces the configured pagination style.
func WithPaginateStyle(style PaginateStyle) DrawOption { return WithOpt(OptPaginateStyle, style) }

// WithBackground fills the viewport before drawing items.
func WithBackground(color uint32) DrawOption { return WithOpt(OptBackground, color) }

// WithItemColors colors default item bodies by real index, cycling.
func WithItemColors(colors ...uint32) DrawOption { return WithOpt(OptItemColors, colors) }
