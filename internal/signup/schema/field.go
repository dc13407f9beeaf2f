// Package schema validates account form values field by field against a
// fixed rule table.
package schema

import "strings"

// Field names one input of the account form.
type Field string

const (
	FieldUsername        Field = "username"
	FieldEmail           Field = "email"
	FieldPhone           Field = "phone"
	FieldRole            Field = "role"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

var (
	identityFields   = []Field{FieldUsername, FieldEmail, FieldPhone, FieldRole}
	credentialFields = []Field{FieldPassword, FieldConfirmPassword}
)

// Fields returns all form fields in display order.
func Fields() []Field {
	out := make([]Field, 0, len(identityFields)+len(credentialFields))
	out = append(out, identityFields...)
	return append(out, credentialFields...)
}

// IdentityFields returns the fields collected on the first step.
func IdentityFields() []Field {
	return append([]Field(nil), identityFields...)
}

// CredentialFields returns the fields collected on the second step.
func CredentialFields() []Field {
	return append([]Field(nil), credentialFields...)
}

// ParseField resolves a wire name to a Field.
func ParseField(name string) (Field, bool) {
	candidate := Field(strings.TrimSpace(name))
	for _, field := range Fields() {
		if field == candidate {
			return field, true
		}
	}
	return "", false
}

// String returns the wire name of the field.
func (f Field) String() string {
	return string(f)
}

// IsIdentity reports whether the field belongs to the first step.
func (f Field) IsIdentity() bool {
	for _, field := range identityFields {
		if field == f {
			return true
		}
	}
	return false
}

// Secret reports whether the field value must never be echoed back.
func (f Field) Secret() bool {
	return f == FieldPassword || f == FieldConfirmPassword
}

var labelKeys = map[Field]string{
	FieldUsername:        "signup.label.username",
	FieldEmail:           "signup.label.email",
	FieldPhone:           "signup.label.phone",
	FieldRole:            "signup.label.role",
	FieldPassword:        "signup.label.password",
	FieldConfirmPassword: "signup.label.confirm_password",
}

// LabelKey returns the catalog key of the field label.
func (f Field) LabelKey() string {
	return labelKeys[f]
}

// PlaceholderKey returns the catalog key of the field placeholder. Password
// fields have none.
func (f Field) PlaceholderKey() (string, bool) {
	if !f.IsIdentity() {
		return "", false
	}
	return "signup.placeholder." + string(f), true
}
