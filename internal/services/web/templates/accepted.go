package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// SummaryRow is one labeled value of an accepted submission.
type SummaryRow struct {
	Label string
	Value string
}

// AcceptedPage renders the confirmation shown after a submission is accepted.
func AcceptedPage(page PageContext, rows []SummaryRow) templ.Component {
	return Layout(page, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := &markup{w: w}
		m.raw(`<div class="card" data-step="accepted"><div class="card-header"><h1 class="card-title">`)
		m.text(T(page.Loc, "signup.title"))
		m.raw(`</h1><p class="card-description">`)
		m.text(T(page.Loc, "signup.accepted"))
		m.raw(`</p></div><dl class="panel">`)
		for _, row := range rows {
			m.raw("<dt>")
			m.text(row.Label)
			m.raw("</dt><dd>")
			m.text(row.Value)
			m.raw("</dd>")
		}
		m.raw("</dl></div>")
		return m.err
	}))
}
