package render

import (
	"github.com/goliatone/go-loading/internal/params"
	"github.com/goliatone/go-loading/pkg/interfaces"
)

// Templates is the pair of fragments a variant renders.
type Templates struct {
	CSS  string
	HTML string
}

// Renderer runs the two-stage substitution and wraps the result.
type Renderer struct {
	sanitizer interfaces.MarkupSanitizer
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithSanitizer overrides the default value sanitizer. Nil disables checks.
func WithSanitizer(s interfaces.MarkupSanitizer) RendererOption {
	return func(r *Renderer) {
		r.sanitizer = s
	}
}

// NewRenderer constructs a renderer using NewSanitizer unless overridden.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{sanitizer: NewSanitizer()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Sanitizer returns the configured sanitizer, which may be nil.
func (r *Renderer) Sanitizer() interfaces.MarkupSanitizer {
	return r.sanitizer
}

// Check runs the sanitizer over every string in bag except the scoping id.
func (r *Renderer) Check(bag params.Bag) error {
	if r.sanitizer == nil {
		return nil
	}
	for _, key := range bag.Keys() {
		if key == params.KeyCSSClass {
			continue
		}
		value, ok := bag.String(key)
		if !ok {
			continue
		}
		if err := r.sanitizer.SanitizeValue(key, value); err != nil {
			return err
		}
	}
	return nil
}

// Render substitutes bag into the CSS fragment, then the HTML fragment, and
// wraps both with RenderDocument. uid is exposed to both fragments as
// ${css_class}.
func (r *Renderer) Render(tpl Templates, bag params.Bag, uid string) (string, error) {
	if err := r.Check(bag); err != nil {
		return "", err
	}
	scoped := bag.Clone()
	scoped[params.KeyCSSClass] = uid

	css := RenderFragment(tpl.CSS, scoped)
	html := RenderFragment(tpl.HTML, scoped)
	return RenderDocument(css, html, uid), nil
}
