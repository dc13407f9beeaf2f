// Package routepath stores canonical HTTP paths for the signup surface.
package routepath

import "net/url"

const (
	Root          = "/"
	Health        = "/healthz"
	Signup        = "/signup"
	SignupPrefix  = "/signup/"
	SignupNext    = "/signup/next"
	SignupBack    = "/signup/back"
	SignupSubmit  = "/signup/submit"
	SignupFields  = "/signup/fields/"
	SignupField   = SignupFields + "{field}"
	FieldVariable = "field"
)

// FieldUpdate returns the htmx update path for one form field.
func FieldUpdate(field string) string {
	return SignupFields + url.PathEscape(field)
}
