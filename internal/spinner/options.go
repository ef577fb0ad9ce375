package spinner

import (
	"github.com/goliatone/go-loading/internal/params"
	"github.com/goliatone/go-loading/internal/render"
	"github.com/goliatone/go-loading/pkg/interfaces"
)

// Option configures a Widget at construction.
type Option func(*options)

type options struct {
	size       *float64
	color      *string
	background *string
	border     params.Dimension
	margin     params.Dimension
	extras     params.Bag
	ids        interfaces.IDGenerator
	logger     interfaces.Logger
	renderer   *render.Renderer
	palette    interfaces.Palette
	observers  []func(Change)
}

// WithSize sets the initial size. Defaults to the variant default (20).
func WithSize(size float64) Option {
	return func(o *options) {
		o.size = &size
	}
}

// WithColor sets the initial foreground color.
func WithColor(color string) Option {
	return func(o *options) {
		o.color = &color
	}
}

// WithBackgroundColor sets the initial background color.
func WithBackgroundColor(color string) Option {
	return func(o *options) {
		o.background = &color
	}
}

// WithBorder sets the initial border. Defaults to auto.
func WithBorder(border params.Dimension) Option {
	return func(o *options) {
		o.border = border
	}
}

// WithMargin sets the initial margin. Defaults to auto.
func WithMargin(margin params.Dimension) Option {
	return func(o *options) {
		o.margin = margin
	}
}

// WithExtra seeds a custom template parameter.
func WithExtra(key string, value any) Option {
	return func(o *options) {
		if o.extras == nil {
			o.extras = params.Bag{}
		}
		o.extras[key] = value
	}
}

// WithIDGenerator overrides the unique id source.
func WithIDGenerator(ids interfaces.IDGenerator) Option {
	return func(o *options) {
		o.ids = ids
	}
}

// WithLogger injects the widget logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRenderer overrides the renderer, e.g. to share one sanitizer.
func WithRenderer(renderer *render.Renderer) Option {
	return func(o *options) {
		o.renderer = renderer
	}
}

// WithSanitizer builds the widget renderer around s.
func WithSanitizer(s interfaces.MarkupSanitizer) Option {
	return func(o *options) {
		o.renderer = render.NewRenderer(render.WithSanitizer(s))
	}
}

// WithPalette resolves color defaults through p when no explicit color
// option is given.
func WithPalette(p interfaces.Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithObserver subscribes fn before the first render.
func WithObserver(fn func(Change)) Option {
	return func(o *options) {
		if fn != nil {
			o.observers = append(o.observers, fn)
		}
	}
}
