package spinner

import (
	"math"
	"sort"
	"sync"

	"github.com/goliatone/go-loading/internal/identity"
	"github.com/goliatone/go-loading/internal/logging"
	"github.com/goliatone/go-loading/internal/params"
	"github.com/goliatone/go-loading/internal/render"
	"github.com/goliatone/go-loading/pkg/interfaces"
)

// Change is delivered to subscribers after every successful render.
type Change struct {
	WidgetID string
	Variant  string
	Value    string
	Params   params.Bag
	Sequence int
}

// Widget owns one parameter bag, one variant and one unique id, and keeps
// Value in sync with the bag. Every setter runs compute, merge and render
// before returning, and notifies subscribers even when nothing changed.
type Widget struct {
	mu        sync.Mutex
	id        string
	variant   Variant
	templates render.Templates
	renderer  *render.Renderer
	logger    interfaces.Logger

	bag     params.Bag
	border  params.Dimension
	margin  params.Dimension
	value   string
	renders int

	observers    map[int]func(Change)
	nextObserver int
}

// New builds a widget for variant and renders it once. Parameters are
// applied in the order size, border, margin, color, background color.
func New(variant Variant, opts ...Option) (*Widget, error) {
	if variant == nil {
		return nil, validationError(ErrVariantRequired, textCodeVariantRequired, "spinner variant is required")
	}

	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	defaults := variant.Defaults()
	size := defaults.Size
	if o.size != nil {
		size = *o.size
	}
	color := defaults.Color
	background := defaults.BackgroundColor
	if o.palette != nil {
		color = o.palette.Color(color)
		background = o.palette.BackgroundColor(background)
	}
	if o.color != nil {
		color = *o.color
	}
	if o.background != nil {
		background = *o.background
	}

	ids := o.ids
	if ids == nil {
		ids = identity.Random(identity.DefaultPrefix)
	}
	renderer := o.renderer
	if renderer == nil {
		renderer = render.NewRenderer()
	}

	w := &Widget{
		id:        ids.NewID(variant.Name()),
		variant:   variant,
		templates: variant.Templates(),
		renderer:  renderer,
		observers: map[int]func(Change){},
	}
	w.logger = logging.WithWidgetContext(logging.Ensure(o.logger), w.id, variant.Name())
	w.bag = params.Bag{params.KeyCSSClass: w.id}

	for _, key := range o.extras.Keys() {
		if err := w.setExtraLocked(key, o.extras[key]); err != nil {
			return nil, err
		}
	}
	if err := w.setSizeLocked(size); err != nil {
		return nil, err
	}
	w.setBorderLocked(o.border)
	if err := w.setMarginLocked(o.margin); err != nil {
		return nil, err
	}
	if err := w.setColorLocked(color); err != nil {
		return nil, err
	}
	if err := w.setBackgroundColorLocked(background); err != nil {
		return nil, err
	}

	for _, fn := range o.observers {
		w.observers[w.nextObserver] = fn
		w.nextObserver++
	}

	change, err := w.renderLocked()
	if err != nil {
		return nil, err
	}
	w.notify(w.observerList(), change)
	return w, nil
}

// ID returns the unique scoping identifier.
func (w *Widget) ID() string { return w.id }

// VariantName returns the name of the widget's variant.
func (w *Widget) VariantName() string { return w.variant.Name() }

// Value returns the current markup.
func (w *Widget) Value() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.value
}

// Params returns a copy of the current parameter bag.
func (w *Widget) Params() params.Bag {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bag.Clone()
}

// Number returns a numeric parameter such as size or border.
func (w *Widget) Number(key string) (float64, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bag.Number(key)
}

// Subscribe registers fn as a change hook and returns a function removing it.
func (w *Widget) Subscribe(fn func(Change)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	w.mu.Lock()
	key := w.nextObserver
	w.nextObserver++
	w.observers[key] = fn
	w.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			w.mu.Lock()
			delete(w.observers, key)
			w.mu.Unlock()
		})
	}
}

// SetSize recomputes size derived values. size must be positive.
func (w *Widget) SetSize(size float64) error {
	return w.update(func() error { return w.setSizeLocked(size) })
}

// SetColor sets the foreground color. The value is passed through as given,
// but the default renderer rejects values containing markup or CSS
// delimiters such as ";", "\", "{" or "<"; use render.AllowAll to accept
// them.
func (w *Widget) SetColor(color string) error {
	return w.update(func() error { return w.setColorLocked(color) })
}

// SetBackgroundColor sets the background color. It is checked like
// SetColor.
func (w *Widget) SetBackgroundColor(color string) error {
	return w.update(func() error { return w.setBackgroundColorLocked(color) })
}

// SetBorder applies the variant border rule. Malformed input falls back to
// the auto value.
func (w *Widget) SetBorder(border params.Dimension) {
	_ = w.update(func() error {
		w.setBorderLocked(border)
		return nil
	})
}

// SetMargin applies the variant margin rule, growing the widget when the
// margin overflows. A margin the widget cannot grow to falls back to the
// auto value.
func (w *Widget) SetMargin(margin params.Dimension) {
	if err := w.update(func() error { return w.setMarginLocked(margin) }); err != nil {
		w.logger.Error("spinner.margin.failed", "margin", margin.String(), "error", err)
	}
}

// SetExtra sets a custom template parameter. Values must be numbers or
// strings; the built-in parameters must go through their own setters.
func (w *Widget) SetExtra(key string, value any) error {
	return w.update(func() error { return w.setExtraLocked(key, value) })
}

// Render re-runs substitution without changing parameters.
func (w *Widget) Render() error {
	return w.update(func() error { return nil })
}

func (w *Widget) update(apply func() error) error {
	w.mu.Lock()
	bag, border, margin := w.bag.Clone(), w.border, w.margin

	if err := apply(); err != nil {
		w.bag, w.border, w.margin = bag, border, margin
		w.mu.Unlock()
		return err
	}
	change, err := w.renderLocked()
	if err != nil {
		w.bag, w.border, w.margin = bag, border, margin
		w.mu.Unlock()
		return err
	}
	observers := w.observerList()
	w.mu.Unlock()

	w.notify(observers, change)
	return nil
}

func (w *Widget) setSizeLocked(size float64) error {
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return validationError(ErrSizeInvalid, textCodeSizeInvalid, "spinner size must be positive")
	}
	w.bag.Merge(w.variant.ComputeSize(w.bag.Clone(), size))
	return nil
}

func (w *Widget) setBorderLocked(border params.Dimension) {
	if border.Malformed {
		w.logger.Debug("spinner.dimension.malformed", "param", params.KeyBorder, "raw", border.Raw)
	}
	w.bag.Merge(w.variant.ComputeBorder(w.bag.Clone(), border))
	w.border = border
}

func (w *Widget) setMarginLocked(margin params.Dimension) error {
	if margin.Malformed {
		w.logger.Debug("spinner.dimension.malformed", "param", params.KeyMargin, "raw", margin.Raw)
	}
	computed, resize := w.variant.ComputeMargin(w.bag.Clone(), margin)
	if resize.Fallback() {
		w.logger.Warn("spinner.margin.fallback",
			"margin", margin.String(),
			"used", computed[params.KeyMargin],
			"reason", resize.Reason,
		)
	}
	if resize.Needed() {
		previous, _ := w.bag.Number(params.KeySize)
		w.logger.Warn("spinner.margin.overflow",
			"margin", computed[params.KeyMargin],
			"size", previous,
			"resized_to", resize.Size,
			"reason", resize.Reason,
		)
		if err := w.setSizeLocked(resize.Size); err != nil {
			return err
		}
	}
	w.bag.Merge(computed)
	w.margin = margin
	return nil
}

func (w *Widget) setColorLocked(color string) error {
	if err := w.sanitize(params.KeyColor, color); err != nil {
		return err
	}
	w.bag.Merge(w.variant.ComputeColor(w.bag.Clone(), color))
	return nil
}

func (w *Widget) setBackgroundColorLocked(color string) error {
	if err := w.sanitize(params.KeyBackgroundColor, color); err != nil {
		return err
	}
	w.bag.Merge(w.variant.ComputeBackgroundColor(w.bag.Clone(), color))
	return nil
}

func (w *Widget) setExtraLocked(key string, value any) error {
	if isReserved(key) {
		return validationError(ErrReservedKey, textCodeReservedKey, "parameter "+key+" has a dedicated setter")
	}
	switch v := value.(type) {
	case string:
		if err := w.sanitize(key, v); err != nil {
			return err
		}
		w.bag[key] = v
		return nil
	default:
		number, ok := toFloat(value)
		if !ok {
			return validationError(ErrValueType, textCodeValueType, "parameter "+key+" must be a number or string")
		}
		w.bag[key] = number
		return nil
	}
}

func (w *Widget) sanitize(key, value string) error {
	sanitizer := w.renderer.Sanitizer()
	if sanitizer == nil {
		return nil
	}
	if err := sanitizer.SanitizeValue(key, value); err != nil {
		w.logger.Warn("spinner.value.rejected", "param", key, "error", err)
		return validationError(ErrValueUnsafe, textCodeValueUnsafe, err.Error())
	}
	return nil
}

func (w *Widget) renderLocked() (Change, error) {
	value, err := w.renderer.Render(w.templates, w.bag, w.id)
	if err != nil {
		w.logger.Error("spinner.render.failed", "error", err)
		return Change{}, validationError(err, textCodeValueUnsafe, "spinner render rejected parameters")
	}
	w.value = value
	w.renders++
	w.logger.Trace("spinner.rendered", "render", w.renders, "bytes", len(value))

	return Change{
		WidgetID: w.id,
		Variant:  w.variant.Name(),
		Value:    value,
		Params:   w.bag.Clone(),
		Sequence: w.renders,
	}, nil
}

func (w *Widget) observerList() []func(Change) {
	keys := make([]int, 0, len(w.observers))
	for key := range w.observers {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	out := make([]func(Change), 0, len(keys))
	for _, key := range keys {
		out = append(out, w.observers[key])
	}
	return out
}

func (w *Widget) notify(observers []func(Change), change Change) {
	for _, fn := range observers {
		fn(change)
	}
}

var reservedKeys = map[string]struct{}{
	params.KeySize:            {},
	params.KeyColor:           {},
	params.KeyBackgroundColor: {},
	params.KeyBorder:          {},
	params.KeyMargin:          {},
	params.KeyCSSClass:        {},
}

func isReserved(key string) bool {
	_, ok := reservedKeys[key]
	return ok || key == ""
}
