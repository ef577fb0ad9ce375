package spinner

import (
	"github.com/goliatone/go-loading/internal/params"
	"github.com/goliatone/go-loading/internal/render"
)

// Variant supplies a spinner design: its templates, its defaults and the
// compute transforms that derive template values from each parameter.
// Compute methods receive a snapshot of the current bag and return the
// entries to merge; they must not mutate the snapshot.
type Variant interface {
	Name() string
	Templates() render.Templates
	Defaults() Defaults
	ComputeSize(bag params.Bag, size float64) params.Bag
	ComputeBorder(bag params.Bag, border params.Dimension) params.Bag
	ComputeMargin(bag params.Bag, margin params.Dimension) (params.Bag, Resize)
	ComputeColor(bag params.Bag, color string) params.Bag
	ComputeBackgroundColor(bag params.Bag, color string) params.Bag
}

// Defaults are the constructor values used when an option is not given.
type Defaults struct {
	Size            float64
	Color           string
	BackgroundColor string
}

// Resize asks the widget to recompute its size before the margin is
// merged. A zero Size means no resize; a Reason without a Size reports that
// the requested margin was replaced.
type Resize struct {
	Size   float64
	Reason string
}

// Needed reports whether a resize was requested.
func (r Resize) Needed() bool { return r.Size > 0 }

// Fallback reports whether the margin was replaced instead of honored.
func (r Resize) Fallback() bool { return r.Size <= 0 && r.Reason != "" }

// DefaultSize is the size used when neither options nor variant set one.
const DefaultSize = 20

// DefaultColor is the foreground color used when nothing else is set.
const DefaultColor = "black"

// Base implements Variant with passthrough transforms. Embed it to inherit
// passthrough behavior and override only the rules a design needs.
type Base struct {
	VariantName string
	CSS         string
	HTML        string
	Default     Defaults
}

// NewCustom returns a passthrough variant rendering the given templates.
func NewCustom(name, css, html string) *Base {
	return &Base{VariantName: name, CSS: css, HTML: html}
}

func (b *Base) Name() string { return b.VariantName }

func (b *Base) Templates() render.Templates {
	return render.Templates{CSS: b.CSS, HTML: b.HTML}
}

func (b *Base) Defaults() Defaults {
	d := b.Default
	if d.Size <= 0 {
		d.Size = DefaultSize
	}
	if d.Color == "" {
		d.Color = DefaultColor
	}
	return d
}

func (b *Base) ComputeSize(_ params.Bag, size float64) params.Bag {
	return params.Bag{params.KeySize: size}
}

// ComputeBorder resolves percentages against the reference dimension and
// leaves auto at zero.
func (b *Base) ComputeBorder(bag params.Bag, border params.Dimension) params.Bag {
	return params.Bag{params.KeyBorder: finiteOrZero(border.Resolve(bag.ReferenceDimension()))}
}

func (b *Base) ComputeMargin(bag params.Bag, margin params.Dimension) (params.Bag, Resize) {
	size, _ := bag.Number(params.KeySize)
	return params.Bag{params.KeyMargin: finiteOrZero(margin.Resolve(size))}, Resize{}
}

func (b *Base) ComputeColor(_ params.Bag, color string) params.Bag {
	return params.Bag{params.KeyColor: color}
}

func (b *Base) ComputeBackgroundColor(_ params.Bag, color string) params.Bag {
	return params.Bag{params.KeyBackgroundColor: color}
}

func finiteOrZero(v float64) float64 {
	if !finite(v) {
		return 0
	}
	return v
}

var _ Variant = (*Base)(nil)
