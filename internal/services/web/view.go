package web

import (
	"github.com/louisbranch/accountform/internal/services/web/platform/flash"
	"github.com/louisbranch/accountform/internal/services/web/routepath"
	"github.com/louisbranch/accountform/internal/services/web/templates"
	"github.com/louisbranch/accountform/internal/signup/schema"
	"github.com/louisbranch/accountform/internal/signup/wizard"
)

var inputTypes = map[schema.Field]string{
	schema.FieldUsername:        "text",
	schema.FieldEmail:           "text",
	schema.FieldPhone:           "tel",
	schema.FieldRole:            "select",
	schema.FieldPassword:        "password",
	schema.FieldConfirmPassword: "password",
}

func signupParams(loc templates.Localizer, sess *wizard.Session) templates.SignupParams {
	identityOffset, credentialsOffset := sess.Offsets()
	params := templates.SignupParams{
		Step:              sess.Step().String(),
		IdentityOffset:    identityOffset,
		CredentialsOffset: credentialsOffset,
		NextPath:          routepath.SignupNext,
		BackPath:          routepath.SignupBack,
		SubmitPath:        routepath.SignupSubmit,
	}
	for _, field := range schema.IdentityFields() {
		params.Identity = append(params.Identity, fieldView(loc, sess.Field(field)))
	}
	for _, field := range schema.CredentialFields() {
		params.Credentials = append(params.Credentials, fieldView(loc, sess.Field(field)))
	}
	return params
}

func fieldView(loc templates.Localizer, state wizard.FieldState) templates.FieldView {
	view := templates.FieldView{
		Name:       state.Field.String(),
		Label:      templates.T(loc, state.Field.LabelKey()),
		InputType:  inputTypes[state.Field],
		Value:      state.Value,
		Error:      state.Error,
		UpdatePath: routepath.FieldUpdate(state.Field.String()),
	}
	if key, ok := state.Field.PlaceholderKey(); ok {
		view.Placeholder = templates.T(loc, key)
	}
	if state.Field.Secret() {
		view.Value = ""
	}
	if state.Field == schema.FieldRole {
		for _, opt := range schema.RoleOptions() {
			view.Options = append(view.Options, templates.Option{
				Value:    opt.Value,
				Label:    templates.T(loc, opt.LabelKey),
				Selected: opt.Value == state.Value,
			})
		}
	}
	return view
}

// summaryRows lists the identity values of an accepted submission. Password
// fields are never echoed back.
func summaryRows(loc templates.Localizer, values schema.Values) []templates.SummaryRow {
	rows := make([]templates.SummaryRow, 0, len(schema.IdentityFields()))
	for _, field := range schema.IdentityFields() {
		rows = append(rows, templates.SummaryRow{
			Label: templates.T(loc, field.LabelKey()),
			Value: values.Get(field),
		})
	}
	return rows
}

func toastFromNotification(n wizard.Notification) templates.Toast {
	return templates.Toast{Title: n.Title, Variant: string(n.Severity)}
}

func noticeFromNotification(n wizard.Notification) flash.Notice {
	kind := flash.KindInfo
	if n.Severity == wizard.SeverityDestructive {
		kind = flash.KindError
	}
	return flash.Notice{Kind: kind, Title: n.Title}
}

func toastFromNotice(notice flash.Notice) templates.Toast {
	variant := string(wizard.SeverityDefault)
	switch notice.Kind {
	case flash.KindError:
		variant = string(wizard.SeverityDestructive)
	case flash.KindWarning:
		variant = "warning"
	}
	return templates.Toast{Title: notice.Title, Variant: variant}
}
