package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang  string
	Loc   Localizer
	Title string
}

const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

const stylesheet = `
body{margin:0;min-height:100vh;display:flex;align-items:center;justify-content:center;font-family:system-ui,sans-serif;background:#f8fafc;color:#0f172a}
.card{width:380px;border:1px solid #e2e8f0;border-radius:12px;background:#fff;overflow:hidden}
.card-header{padding:24px 24px 0}
.card-title{margin:0;font-size:1.25rem}
.card-description{margin:6px 0 0;color:#64748b;font-size:.875rem}
.panels{position:relative;overflow:hidden}
.panel{padding:24px;display:flex;flex-direction:column;gap:14px;transition:transform .3s ease-in-out}
.panel-credentials{position:absolute;top:0;left:0;right:0}
.field{display:flex;flex-direction:column;gap:6px}
.field label{font-size:.875rem;font-weight:500}
.field input,.field select{padding:8px 10px;border:1px solid #cbd5e1;border-radius:6px;font:inherit}
.field-error{margin:0;min-height:1em;color:#dc2626;font-size:.8rem}
.actions{display:flex;gap:8px}
.actions button{padding:8px 14px;border-radius:6px;border:1px solid #0f172a;background:#0f172a;color:#fff;font:inherit;cursor:pointer}
.actions button.secondary{background:#fff;color:#0f172a}
.toast{position:fixed;bottom:24px;right:24px;padding:14px 18px;border-radius:8px;background:#0f172a;color:#fff}
.toast-destructive{background:#dc2626}
.toast-warning{background:#d97706}
`

// Layout wraps body in the HTML document. The body is rendered inside
// <main id="app">, which is what htmx swaps replace.
func Layout(page PageContext, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{w: w}
		m.raw("<!DOCTYPE html><html")
		m.attr("lang", page.Lang)
		m.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.raw("<title>")
		m.text(page.Title)
		m.raw("</title>")
		m.raw("<script")
		m.attr("src", htmxScript)
		m.raw("></script><style>")
		m.raw(stylesheet)
		m.raw(`</style></head><body><main id="app">`)
		if m.err != nil {
			return m.err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		m.raw("</main></body></html>")
		return m.err
	})
}
