package render

import (
	"github.com/goliatone/go-loading/internal/params"
)

const documentTemplate = `<style>
${css}
</style>
<div class="${css_class}">
${html}
</div>
`

// RenderDocument wraps a rendered CSS fragment in a style block and the HTML
// fragment in a container whose class is uid.
func RenderDocument(css, html, uid string) string {
	return RenderFragment(documentTemplate, params.Bag{
		"css":              css,
		params.KeyCSSClass: uid,
		"html":             html,
	})
}
