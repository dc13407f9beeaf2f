package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Option is one entry of a select input.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// FieldView is the render state of one form input.
type FieldView struct {
	Name        string
	Label       string
	Placeholder string
	// InputType is an <input> type, or "select" for Options.
	InputType  string
	Value      string
	Error      string
	Options    []Option
	UpdatePath string
}

// Toast is a transient notification rendered over the card.
type Toast struct {
	Title   string
	Variant string
}

// SignupParams holds the data for the signup card.
type SignupParams struct {
	Step              string
	IdentityOffset    int
	CredentialsOffset int
	Identity          []FieldView
	Credentials       []FieldView
	NextPath          string
	BackPath          string
	SubmitPath        string
	Toast             *Toast
}

// SignupPage renders the full signup document.
func SignupPage(page PageContext, params SignupParams) templ.Component {
	return Layout(page, SignupCard(page, params))
}

// SignupCard renders the two-panel form card. Panels slide horizontally by
// their offsets; the inactive panel is inert.
func SignupCard(page PageContext, params SignupParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{w: w}
		m.raw(`<div class="card"`)
		m.attr("data-step", params.Step)
		m.raw(`><div class="card-header"><h1 class="card-title">`)
		m.text(T(page.Loc, "signup.title"))
		m.raw(`</h1><p class="card-description">`)
		m.text(T(page.Loc, "signup.description"))
		m.raw(`</p></div>`)

		m.raw(`<form id="signup-form" method="post"`)
		m.attr("action", params.NextPath)
		m.attr("hx-target", "#app")
		m.attr("hx-swap", "innerHTML")
		m.raw(`><div class="panels">`)

		identityActive := params.IdentityOffset == 0
		m.raw(`<section class="panel panel-identity"`)
		m.attr("style", translateX(params.IdentityOffset))
		m.flag("inert", !identityActive)
		m.raw(">")
		for _, field := range params.Identity {
			writeField(m, field)
		}
		m.raw(`<div class="actions">`)
		writeButton(m, T(page.Loc, "signup.action.next"), params.NextPath, "")
		m.raw(`</div></section>`)

		m.raw(`<section class="panel panel-credentials"`)
		m.attr("style", translateX(params.CredentialsOffset))
		m.flag("inert", identityActive)
		m.raw(">")
		for _, field := range params.Credentials {
			writeField(m, field)
		}
		m.raw(`<div class="actions">`)
		writeButton(m, T(page.Loc, "signup.action.submit"), params.SubmitPath, "")
		writeButton(m, T(page.Loc, "signup.action.back"), params.BackPath, "secondary")
		m.raw(`</div></section>`)

		m.raw(`</div></form></div>`)
		if m.err != nil {
			return m.err
		}
		if params.Toast != nil {
			return ToastMessage(*params.Toast).Render(ctx, w)
		}
		return nil
	})
}

// FieldError renders the error slot of one field. Field updates swap it in
// place so the input keeps focus.
func FieldError(name string, message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := &markup{w: w}
		writeFieldError(m, name, message)
		return m.err
	})
}

// ToastMessage renders a notification banner.
func ToastMessage(toast Toast) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := &markup{w: w}
		class := "toast"
		if toast.Variant != "" {
			class += " toast-" + toast.Variant
		}
		m.raw("<div")
		m.attr("class", class)
		m.attr("role", "alert")
		m.raw(">")
		m.text(toast.Title)
		m.raw("</div>")
		return m.err
	})
}

func writeField(m *markup, field FieldView) {
	id := "input-" + field.Name
	m.raw(`<div class="field"><label`)
	m.attr("for", id)
	m.raw(">")
	m.text(field.Label)
	m.raw("</label>")

	if field.InputType == "select" {
		m.raw("<select")
		writeInputAttrs(m, id, field)
		m.raw(`><option value="" disabled`)
		m.flag("selected", field.Value == "")
		m.raw(">")
		m.text(field.Placeholder)
		m.raw("</option>")
		for _, opt := range field.Options {
			m.raw("<option")
			m.attr("value", opt.Value)
			m.flag("selected", opt.Selected)
			m.raw(">")
			m.text(opt.Label)
			m.raw("</option>")
		}
		m.raw("</select>")
	} else {
		m.raw("<input")
		m.attr("type", field.InputType)
		writeInputAttrs(m, id, field)
		m.attr("placeholder", field.Placeholder)
		m.attr("value", field.Value)
		m.raw(">")
	}
	writeFieldError(m, field.Name, field.Error)
	m.raw("</div>")
}

func writeInputAttrs(m *markup, id string, field FieldView) {
	m.attr("id", id)
	m.attr("name", field.Name)
	m.attr("hx-post", field.UpdatePath)
	m.attr("hx-trigger", "input changed delay:300ms, change")
	m.attr("hx-target", "#error-"+field.Name)
	m.attr("hx-swap", "outerHTML")
	m.attr("hx-include", "this")
}

func writeFieldError(m *markup, name string, message string) {
	m.raw(`<p class="field-error"`)
	m.attr("id", "error-"+name)
	if message != "" {
		m.attr("role", "alert")
	}
	m.raw(">")
	m.text(message)
	m.raw("</p>")
}

func writeButton(m *markup, label string, path string, class string) {
	m.raw(`<button type="submit"`)
	if class != "" {
		m.attr("class", class)
	}
	m.attr("formaction", path)
	m.attr("hx-post", path)
	m.raw(">")
	m.text(label)
	m.raw("</button>")
}
