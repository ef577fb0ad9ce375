package spinner

import (
	"fmt"
	"math"

	"github.com/goliatone/go-loading/internal/params"
)

// Rules are the ratios a Scaled variant derives its dimensions from.
type Rules struct {
	// InnerRatio sizes the inner elements relative to size.
	InnerRatio float64 `yaml:"inner_ratio" json:"inner_ratio"`
	// BorderRatio is the auto border relative to the reference dimension.
	BorderRatio float64 `yaml:"border_ratio" json:"border_ratio"`
	// BorderMaxRatio caps the border relative to the reference dimension.
	BorderMaxRatio float64 `yaml:"border_max_ratio" json:"border_max_ratio"`
	// MarginRatio is both the auto margin and the overflow threshold,
	// relative to size.
	MarginRatio float64 `yaml:"margin_ratio" json:"margin_ratio"`
}

// DefaultRules are the ratios used by the ring designs.
func DefaultRules() Rules {
	return Rules{
		InnerRatio:     0.8,
		BorderRatio:    0.1,
		BorderMaxRatio: 0.5,
		MarginRatio:    0.1,
	}
}

// WithDefaults fills zero ratios from DefaultRules.
func (r Rules) WithDefaults() Rules {
	d := DefaultRules()
	if r.InnerRatio <= 0 {
		r.InnerRatio = d.InnerRatio
	}
	if r.BorderRatio <= 0 {
		r.BorderRatio = d.BorderRatio
	}
	if r.BorderMaxRatio <= 0 {
		r.BorderMaxRatio = d.BorderMaxRatio
	}
	if r.MarginRatio <= 0 {
		r.MarginRatio = d.MarginRatio
	}
	return r
}

// Scaled is a variant whose inner box, border and margin scale with size.
//
// Border: auto is BorderRatio x reference, percentages are taken of the
// reference, pixels are absolute, and the result is capped at
// BorderMaxRatio x reference. The reference is inner_height, or size
// before one was computed.
//
// Margin: auto is MarginRatio x size. A larger margin is kept as given and
// the widget grows to inner_height + 2*margin.
type Scaled struct {
	Base
	Rules Rules
}

// NewScaled builds a scaled variant from templates and rules.
func NewScaled(name, css, html string, rules Rules) *Scaled {
	return &Scaled{
		Base:  Base{VariantName: name, CSS: css, HTML: html},
		Rules: rules.WithDefaults(),
	}
}

func (s *Scaled) ComputeSize(_ params.Bag, size float64) params.Bag {
	inner := size * s.Rules.InnerRatio
	return params.Bag{
		params.KeySize:        size,
		params.KeyWidth:       size,
		params.KeyHeight:      size,
		params.KeyInnerWidth:  inner,
		params.KeyInnerHeight: inner,
	}
}

func (s *Scaled) ComputeBorder(bag params.Bag, border params.Dimension) params.Bag {
	reference := bag.ReferenceDimension()

	value := reference * s.Rules.BorderRatio
	if !border.IsAuto() {
		value = border.Resolve(reference)
	}
	if limit := reference * s.Rules.BorderMaxRatio; value > limit {
		value = limit
	}
	if value < 0 {
		value = 0
	}
	return params.Bag{params.KeyBorder: value}
}

func (s *Scaled) ComputeMargin(bag params.Bag, margin params.Dimension) (params.Bag, Resize) {
	size, _ := bag.Number(params.KeySize)
	limit := size * s.Rules.MarginRatio

	value := limit
	if !margin.IsAuto() {
		value = margin.Resolve(size)
	}
	if value < 0 {
		value = 0
	}
	if value <= limit {
		return params.Bag{params.KeyMargin: value}, Resize{}
	}

	inner, ok := bag.Number(params.KeyInnerHeight)
	if !ok {
		inner = size * s.Rules.InnerRatio
	}
	grown := inner + 2*value
	if !finite(value) || !finite(grown) {
		return params.Bag{params.KeyMargin: limit}, Resize{
			Reason: fmt.Sprintf("margin %s cannot be laid out, using %s", margin, params.FormatNumber(limit)),
		}
	}
	return params.Bag{params.KeyMargin: value}, Resize{
		Size: grown,
		Reason: fmt.Sprintf("margin %s exceeds %s (%.2f x size)",
			params.FormatNumber(value), params.FormatNumber(limit), s.Rules.MarginRatio),
	}
}

var _ Variant = (*Scaled)(nil)

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
