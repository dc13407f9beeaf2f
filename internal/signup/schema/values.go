package schema

// Role selector values, in selector order.
const (
	RoleAdmin = "관리자"
	RoleUser  = "일반사용자"
)

// RoleOption is one entry of the role selector.
type RoleOption struct {
	Value    string
	LabelKey string
}

// RoleOptions returns the role selector entries. The rule table checks role
// by length only; the selector is what restricts input to these values.
func RoleOptions() []RoleOption {
	return []RoleOption{
		{Value: RoleAdmin, LabelKey: "signup.role.admin"},
		{Value: RoleUser, LabelKey: "signup.role.user"},
	}
}

// Values is one snapshot of the account form.
type Values struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Role            string `json:"role"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Get returns the current text of field.
func (v Values) Get(field Field) string {
	switch field {
	case FieldUsername:
		return v.Username
	case FieldEmail:
		return v.Email
	case FieldPhone:
		return v.Phone
	case FieldRole:
		return v.Role
	case FieldPassword:
		return v.Password
	case FieldConfirmPassword:
		return v.ConfirmPassword
	default:
		return ""
	}
}

// Set replaces the text of field. It reports false for unknown fields.
func (v *Values) Set(field Field, value string) bool {
	switch field {
	case FieldUsername:
		v.Username = value
	case FieldEmail:
		v.Email = value
	case FieldPhone:
		v.Phone = value
	case FieldRole:
		v.Role = value
	case FieldPassword:
		v.Password = value
	case FieldConfirmPassword:
		v.ConfirmPassword = value
	default:
		return false
	}
	return true
}

// Redacted returns a copy with both password fields masked.
func (v Values) Redacted() Values {
	const mask = "********"
	if v.Password != "" {
		v.Password = mask
	}
	if v.ConfirmPassword != "" {
		v.ConfirmPassword = mask
	}
	return v
}
