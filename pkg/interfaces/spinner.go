package interfaces

// IDGenerator produces the identifier used to scope a widget's CSS class
// names. Identifiers must be valid CSS class names.
type IDGenerator interface {
	NewID(seed string) string
}

// IDGeneratorFunc adapts a function to IDGenerator.
type IDGeneratorFunc func(seed string) string

// NewID implements IDGenerator.
func (f IDGeneratorFunc) NewID(seed string) string { return f(seed) }

// MarkupSanitizer checks parameter values before they are substituted into
// a style block.
type MarkupSanitizer interface {
	SanitizeValue(key string, value string) error
}

// Palette resolves color defaults for new widgets, usually from a theme.
type Palette interface {
	Color(fallback string) string
	BackgroundColor(fallback string) string
}
