package render

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-loading/pkg/interfaces"
)

// Sanitizer rejects string parameters that could close the style block or
// start a new CSS rule. Values are substituted into CSS declarations, so a
// color like "red;}</style><script>" must never reach the template.
type Sanitizer struct {
	forbidden []string
}

// NewSanitizer returns the default sanitizer.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{
		forbidden: []string{"<", ">", "{", "}", ";", "\\", "/*", "*/", "\n", "\r"},
	}
}

// SanitizeValue implements interfaces.MarkupSanitizer.
func (s *Sanitizer) SanitizeValue(key, value string) error {
	lower := strings.ToLower(value)
	for _, token := range s.forbidden {
		if strings.Contains(lower, token) {
			return fmt.Errorf("render: %s value %q contains %q", key, value, token)
		}
	}
	if strings.Contains(lower, "expression(") || strings.Contains(lower, "javascript:") {
		return fmt.Errorf("render: %s value %q is not a plain CSS value", key, value)
	}
	return nil
}

// AllowAll is a sanitizer that accepts every value.
type AllowAll struct{}

// SanitizeValue implements interfaces.MarkupSanitizer.
func (AllowAll) SanitizeValue(string, string) error { return nil }

var (
	_ interfaces.MarkupSanitizer = (*Sanitizer)(nil)
	_ interfaces.MarkupSanitizer = AllowAll{}
)
