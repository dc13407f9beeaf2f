package schema

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/louisbranch/accountform/internal/platform/errors"
)

// Custom validator tags registered by New.
const (
	TagPhone010        = "phone010"
	TagPasswordPattern = "passwordpattern"
)

// PasswordSymbols is the symbol set a password must draw at least one
// character from.
const PasswordSymbols = "@$!%*?&"

var (
	phonePattern = regexp.MustCompile(`^010\d{8}$`)

	passwordCharset = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]{8,}$`)
	passwordLetter  = regexp.MustCompile(`[A-Za-z]`)
	passwordDigit   = regexp.MustCompile(`\d`)
	passwordSymbol  = regexp.MustCompile(`[@$!%*?&]`)
)

// Rule is one predicate of a field: a validator tag, the error kind it
// reports and the catalog key of its message.
type Rule struct {
	Tag        string
	Kind       apperrors.Code
	MessageKey string
}

// ruleTable lists the rules of every field in evaluation order.
var ruleTable = map[Field][]Rule{
	FieldUsername: {
		{Tag: "min=2", Kind: apperrors.CodeFieldLength, MessageKey: "validation.username.min"},
		{Tag: "max=50", Kind: apperrors.CodeFieldLength, MessageKey: "validation.username.max"},
	},
	FieldEmail: {
		{Tag: "email", Kind: apperrors.CodeFieldFormat, MessageKey: "validation.email.format"},
	},
	FieldPhone: {
		{Tag: "min=11", Kind: apperrors.CodeFieldLength, MessageKey: "validation.phone.length"},
		{Tag: "max=11", Kind: apperrors.CodeFieldLength, MessageKey: "validation.phone.length"},
		{Tag: TagPhone010, Kind: apperrors.CodeFieldPattern, MessageKey: "validation.phone.pattern"},
	},
	FieldRole: {
		{Tag: "min=2", Kind: apperrors.CodeFieldRequired, MessageKey: "validation.role.required"},
	},
	FieldPassword:        passwordRules(),
	FieldConfirmPassword: passwordRules(),
}

// passwordRules is shared by both password fields. The pattern's length-8
// floor subsumes the length-6 rule.
func passwordRules() []Rule {
	return []Rule{
		{Tag: "min=6", Kind: apperrors.CodeFieldLength, MessageKey: "validation.password.min"},
		{Tag: TagPasswordPattern, Kind: apperrors.CodeFieldPattern, MessageKey: "validation.password.pattern"},
	}
}

// MatchesPhone reports whether value is 010 followed by eight ASCII digits.
func MatchesPhone(value string) bool {
	return phonePattern.MatchString(value)
}

// MatchesPasswordPattern reports whether value is at least eight characters
// drawn from letters, digits and PasswordSymbols, with at least one of each.
func MatchesPasswordPattern(value string) bool {
	return passwordCharset.MatchString(value) &&
		passwordLetter.MatchString(value) &&
		passwordDigit.MatchString(value) &&
		passwordSymbol.MatchString(value)
}

func registerCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation(TagPhone010, func(fl validator.FieldLevel) bool {
		return MatchesPhone(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation(TagPasswordPattern, func(fl validator.FieldLevel) bool {
		return MatchesPasswordPattern(fl.Field().String())
	})
}
