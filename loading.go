// Package loading renders parameterized CSS/HTML loading spinners as
// embeddable markup fragments and keeps them in sync with host state.
package loading

import (
	"context"

	spinnerscmd "github.com/goliatone/go-loading/internal/commands/spinners"
	"github.com/goliatone/go-loading/internal/di"
	"github.com/goliatone/go-loading/internal/hub"
	"github.com/goliatone/go-loading/internal/params"
	"github.com/goliatone/go-loading/internal/render"
	"github.com/goliatone/go-loading/internal/spinner"
)

// Widget exports the spinner widget.
type Widget = spinner.Widget

// Variant exports the variant contract.
type Variant = spinner.Variant

// Option exports widget construction options.
type Option = spinner.Option

// Change exports the change notification payload.
type Change = spinner.Change

// Snapshot exports the host-facing widget state.
type Snapshot = spinner.Snapshot

// Rules exports the scaling ratios of Scaled variants.
type Rules = spinner.Rules

// Dimension exports the border/margin input type.
type Dimension = params.Dimension

// Params exports the parameter bag.
type Params = params.Bag

// Templates exports a variant's CSS/HTML pair.
type Templates = render.Templates

// Hub exports the live widget registry.
type Hub = *hub.Hub

// Command messages understood by the host bridge.
type (
	SyncStateCommand    = spinnerscmd.SyncStateCommand
	CreateWidgetCommand = spinnerscmd.CreateWidgetCommand
	CloseWidgetCommand  = spinnerscmd.CloseWidgetCommand
)

// Built-in variant names.
const (
	Ring     = spinner.RingName
	DualRing = spinner.DualRingName
)

// Widget options.
var (
	WithSize            = spinner.WithSize
	WithColor           = spinner.WithColor
	WithBackgroundColor = spinner.WithBackgroundColor
	WithBorder          = spinner.WithBorder
	WithMargin          = spinner.WithMargin
	WithExtra           = spinner.WithExtra
	WithIDGenerator     = spinner.WithIDGenerator
	WithLogger          = spinner.WithLogger
	WithSanitizer       = spinner.WithSanitizer
	WithPalette         = spinner.WithPalette
	WithObserver        = spinner.WithObserver
)

// Dimension constructors.
var (
	Auto           = params.AutoDimension
	Px             = params.Px
	Pct            = params.Pct
	ParseDimension = params.ParseDimension
)

// NewRing returns the four segment ring variant.
func NewRing() Variant { return spinner.NewRing() }

// NewDualRing returns the dual ring variant.
func NewDualRing() Variant { return spinner.NewDualRing() }

// NewCustom returns a passthrough variant for caller supplied templates.
func NewCustom(name, css, html string) Variant { return spinner.NewCustom(name, css, html) }

// NewScaled returns a variant whose dimensions scale with size.
func NewScaled(name, css, html string, rules Rules) Variant {
	return spinner.NewScaled(name, css, html, rules)
}

// NewWidget builds a standalone widget without a Module.
func NewWidget(variant Variant, opts ...Option) (*Widget, error) {
	return spinner.New(variant, opts...)
}

// Module represents the top level runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// NewWidget builds a widget of the named variant using the module's
// defaults. opts override them.
func (m *Module) NewWidget(variant string, opts ...Option) (*Widget, error) {
	v, err := m.container.Registry().New(variant)
	if err != nil {
		return nil, err
	}
	all := append(m.container.WidgetOptions(), opts...)
	return spinner.New(v, all...)
}

// Register adds a variant factory under name.
func (m *Module) Register(name string, factory func() Variant) {
	m.container.Registry().Register(name, factory)
}

// Variants lists the registered variant names.
func (m *Module) Variants() []string {
	return m.container.Registry().Names()
}

// Hub returns the live widget hub used by the host bridge.
func (m *Module) Hub() Hub {
	return m.container.Hub()
}

// Create registers a live widget, as the spinners.widget.create command does.
func (m *Module) Create(ctx context.Context, variant string, state map[string]any) (*Widget, error) {
	return m.container.Hub().Create(ctx, variant, state)
}

// Sync applies host state to a live widget, as the spinners.state.sync
// command does.
func (m *Module) Sync(ctx context.Context, widgetID string, state map[string]any) (Snapshot, error) {
	return m.container.Hub().Sync(ctx, widgetID, state)
}

// Close releases module resources such as dispatcher subscriptions.
func (m *Module) Close() {
	if m == nil || m.container == nil {
		return
	}
	m.container.Close()
}
