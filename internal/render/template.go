// Package render performs the placeholder substitution and document
// wrapping that turns a variant's templates into displayable markup.
package render

import (
	"strings"

	"github.com/goliatone/go-loading/internal/params"
)

// RenderFragment replaces ${name} and $name placeholders with values from
// bag. "$$" produces a literal "$". Placeholders without a matching key,
// and any "$" that does not start a placeholder, are copied verbatim.
// Substituted values are not scanned again.
func RenderFragment(template string, bag params.Bag) string {
	if !strings.Contains(template, "$") {
		return template
	}

	var b strings.Builder
	b.Grow(len(template) + 64)

	for i := 0; i < len(template); {
		c := template[i]
		if c != '$' || i+1 >= len(template) {
			b.WriteByte(c)
			i++
			continue
		}

		next := template[i+1]
		switch {
		case next == '$':
			b.WriteByte('$')
			i += 2
		case next == '{':
			end := strings.IndexByte(template[i+2:], '}')
			if end < 0 {
				b.WriteByte(c)
				i++
				continue
			}
			name := template[i+2 : i+2+end]
			if !isIdentifier(name) {
				b.WriteByte(c)
				i++
				continue
			}
			token := template[i : i+3+end]
			if value, ok := bag.Lookup(name); ok {
				b.WriteString(value)
			} else {
				b.WriteString(token)
			}
			i += len(token)
		case isIdentStart(next):
			j := i + 2
			for j < len(template) && isIdentPart(template[j]) {
				j++
			}
			name := template[i+1 : j]
			if value, ok := bag.Lookup(name); ok {
				b.WriteString(value)
			} else {
				b.WriteString(template[i:j])
			}
			i = j
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

func isIdentifier(name string) bool {
	if name == "" || !isIdentStart(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isIdentPart(name[i]) {
			return false
		}
	}
	return true
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
