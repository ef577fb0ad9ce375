// Package hub keeps the live widgets a host front-end addresses by id.
package hub

import (
	"context"
	"errors"
	"sort"
	"sync"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-loading/internal/logging"
	"github.com/goliatone/go-loading/internal/spinner"
	"github.com/goliatone/go-loading/internal/validation"
	"github.com/goliatone/go-loading/pkg/interfaces"
)

// ErrWidgetNotFound is returned for ids the hub does not hold.
var ErrWidgetNotFound = errors.New("hub: widget not found")

const (
	textCodeWidgetNotFound = "HUB_WIDGET_NOT_FOUND"
	textCodeStateInvalid   = "HUB_STATE_INVALID"
)

// Hub creates widgets from a variant registry and routes host state to
// them. Changes of every live widget are forwarded to hub subscribers.
type Hub struct {
	registry  *spinner.Registry
	validator *validation.StateValidator
	logger    interfaces.Logger
	options   []spinner.Option

	mu       sync.RWMutex
	widgets  map[string]*entry
	handlers map[int]func(spinner.Change)
	nextID   int
}

type entry struct {
	widget      *spinner.Widget
	unsubscribe func()
}

// Option configures a Hub.
type Option func(*Hub)

// WithLogger sets the hub logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(h *Hub) {
		h.logger = logging.Ensure(logger)
	}
}

// WithValidator validates state payloads before they reach a widget.
func WithValidator(v *validation.StateValidator) Option {
	return func(h *Hub) {
		h.validator = v
	}
}

// WithWidgetOptions adds options applied to every widget the hub creates.
func WithWidgetOptions(opts ...spinner.Option) Option {
	return func(h *Hub) {
		h.options = append(h.options, opts...)
	}
}

// New returns a hub backed by registry. A nil registry uses the built-in
// designs.
func New(registry *spinner.Registry, opts ...Option) *Hub {
	if registry == nil {
		registry = spinner.NewDefaultRegistry()
	}
	h := &Hub{
		registry: registry,
		logger:   logging.NoOp(),
		widgets:  map[string]*entry{},
		handlers: map[int]func(spinner.Change){},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// Registry exposes the variant registry.
func (h *Hub) Registry() *spinner.Registry { return h.registry }

// Create builds a widget of the named variant, applies state and tracks it.
func (h *Hub) Create(ctx context.Context, variantName string, state map[string]any) (*spinner.Widget, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := h.validate(state); err != nil {
		return nil, err
	}
	variant, err := h.registry.New(variantName)
	if err != nil {
		return nil, err
	}

	opts := append([]spinner.Option{}, h.options...)
	widget, err := spinner.New(variant, opts...)
	if err != nil {
		return nil, err
	}
	if len(state) > 0 {
		if err := widget.Apply(state); err != nil {
			return nil, err
		}
	}

	unsubscribe := widget.Subscribe(h.forward)

	h.mu.Lock()
	h.widgets[widget.ID()] = &entry{widget: widget, unsubscribe: unsubscribe}
	h.mu.Unlock()

	h.logger.WithContext(ctx).Info("hub.widget.created", "widget_id", widget.ID(), "variant", variant.Name())
	return widget, nil
}

// Get returns the live widget stored under id.
func (h *Hub) Get(id string) (*spinner.Widget, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	e, ok := h.widgets[id]
	if !ok {
		return nil, false
	}
	return e.widget, true
}

// Sync validates state and applies it to the widget stored under id.
func (h *Hub) Sync(ctx context.Context, id string, state map[string]any) (spinner.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return spinner.Snapshot{}, err
	}
	widget, ok := h.Get(id)
	if !ok {
		return spinner.Snapshot{}, notFound(id)
	}
	if err := h.validate(state); err != nil {
		return spinner.Snapshot{}, err
	}
	if err := widget.Apply(state); err != nil {
		h.logger.WithContext(ctx).Warn("hub.widget.sync_failed", "widget_id", id, "error", err)
		return spinner.Snapshot{}, err
	}
	h.logger.WithContext(ctx).Debug("hub.widget.synced", "widget_id", id, "keys", len(state))
	return widget.Snapshot(), nil
}

// Close stops forwarding changes of id and forgets it.
func (h *Hub) Close(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	h.mu.Lock()
	e, ok := h.widgets[id]
	if ok {
		delete(h.widgets, id)
	}
	h.mu.Unlock()

	if !ok {
		return notFound(id)
	}
	e.unsubscribe()
	h.logger.WithContext(ctx).Info("hub.widget.closed", "widget_id", id)
	return nil
}

// IDs returns the ids of all live widgets in order.
func (h *Hub) IDs() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]string, 0, len(h.widgets))
	for id := range h.widgets {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Subscribe registers fn for changes of every live widget.
func (h *Hub) Subscribe(fn func(spinner.Change)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	h.mu.Lock()
	key := h.nextID
	h.nextID++
	h.handlers[key] = fn
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.handlers, key)
			h.mu.Unlock()
		})
	}
}

func (h *Hub) forward(change spinner.Change) {
	h.mu.RLock()
	keys := make([]int, 0, len(h.handlers))
	for key := range h.handlers {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	handlers := make([]func(spinner.Change), 0, len(keys))
	for _, key := range keys {
		handlers = append(handlers, h.handlers[key])
	}
	h.mu.RUnlock()

	for _, fn := range handlers {
		fn(change)
	}
}

func (h *Hub) validate(state map[string]any) error {
	if h.validator == nil || len(state) == 0 {
		return nil
	}
	if err := h.validator.Validate(state); err != nil {
		h.logger.Warn("hub.state.invalid", "error", err)
		return goerrors.Wrap(err, goerrors.CategoryValidation, "widget state rejected").
			WithTextCode(textCodeStateInvalid)
	}
	return nil
}

func notFound(id string) error {
	return goerrors.Wrap(ErrWidgetNotFound, goerrors.CategoryNotFound, "widget "+id+" is not live").
		WithTextCode(textCodeWidgetNotFound)
}
