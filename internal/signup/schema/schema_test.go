package schema

import (
	"strings"
	"testing"

	apperrors "github.com/louisbranch/accountform/internal/platform/errors"
)

func validValues() Values {
	return Values{
		Username:        "홍길동",
		Email:           "hello@sparta-devcamp.com",
		Phone:           "01012345678",
		Role:            RoleAdmin,
		Password:        "Abcdef1!",
		ConfirmPassword: "Abcdef1!",
	}
}

func TestValidateAcceptsValidValues(t *testing.T) {
	t.Parallel()

	result := Default().Validate(validValues())
	if !result.Valid() {
		t.Fatalf("Validate() errors = %v, want none", result.Errors())
	}
	if got := len(result.Fields()); got != 6 {
		t.Fatalf("len(Fields()) = %d, want 6", got)
	}
}

func TestValidateFieldMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		field   Field
		value   string
		kind    apperrors.Code
		message string
	}{
		{"username empty", FieldUsername, "", apperrors.CodeFieldLength, "이름은 2글자 이상이어야 합니다."},
		{"username one rune", FieldUsername, "홍", apperrors.CodeFieldLength, "이름은 2글자 이상이어야 합니다."},
		{"username too long", FieldUsername, strings.Repeat("a", 51), apperrors.CodeFieldLength, "이름은 50글자 이하이어야 합니다."},
		{"email malformed", FieldEmail, "not-an-email", apperrors.CodeFieldFormat, "올바른 이메일을 입력해주세요."},
		{"email empty", FieldEmail, "", apperrors.CodeFieldFormat, "올바른 이메일을 입력해주세요."},
		{"phone short", FieldPhone, "0101234567", apperrors.CodeFieldLength, "연락처는 11자리어야 합니다."},
		{"phone long", FieldPhone, "010123456789", apperrors.CodeFieldLength, "연락처는 11자리어야 합니다."},
		{"phone wrong prefix", FieldPhone, "02012345678", apperrors.CodeFieldPattern, "전화번호 앞자리는 010으로 시작해야합니다."},
		{"phone letters", FieldPhone, "010abcdefgh", apperrors.CodeFieldPattern, "전화번호 앞자리는 010으로 시작해야합니다."},
		{"role empty", FieldRole, "", apperrors.CodeFieldRequired, "역할을 선택해주세요."},
		{"password short", FieldPassword, "Ab1!", apperrors.CodeFieldLength, "비밀번호는 6자리 이상이어야 합니다."},
		{"password seven", FieldPassword, "Abcde1!", apperrors.CodeFieldPattern, "비밀번호는 특수문자, 숫자를 포함해야합니다."},
		{"password no symbol", FieldPassword, "Abcdefg1", apperrors.CodeFieldPattern, "비밀번호는 특수문자, 숫자를 포함해야합니다."},
		{"confirm no digit", FieldConfirmPassword, "Abcdefg!", apperrors.CodeFieldPattern, "비밀번호는 특수문자, 숫자를 포함해야합니다."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Default().ValidateField(tc.field, tc.value)
			if got.Valid {
				t.Fatalf("ValidateField(%s, %q).Valid = true, want false", tc.field, tc.value)
			}
			if got.Kind != tc.kind {
				t.Fatalf("Kind = %q, want %q", got.Kind, tc.kind)
			}
			if got.Message != tc.message {
				t.Fatalf("Message = %q, want %q", got.Message, tc.message)
			}
		})
	}
}

func TestValidateFieldCollectsEveryIssue(t *testing.T) {
	t.Parallel()

	got := Default().ValidateField(FieldPassword, "abc")
	if len(got.Issues) != 2 {
		t.Fatalf("len(Issues) = %d, want 2", len(got.Issues))
	}
	if got.Issues[0].Kind != apperrors.CodeFieldLength || got.Issues[1].Kind != apperrors.CodeFieldPattern {
		t.Fatalf("Issues kinds = %q, %q, want length then pattern", got.Issues[0].Kind, got.Issues[1].Kind)
	}
}

func TestPhoneValidIffElevenDigitsWith010Prefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{"01012345678", true},
		{"01000000000", true},
		{"02012345678", false},
		{"0101234567", false},
		{"010123456789", false},
		{"010-1234-56", false},
		{"０1012345678", false},
		{"", false},
	}
	for _, tc := range tests {
		got := Default().ValidateField(FieldPhone, tc.value).Valid
		want := len([]rune(tc.value)) == 11 && MatchesPhone(tc.value)
		if got != want || got != tc.want {
			t.Fatalf("phone %q valid = %t, want %t", tc.value, got, tc.want)
		}
	}
}

func TestPasswordValidity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{"Abcdef1!", true},
		{"aaaaaa1@", true},
		{"Z9$Z9$Z9", true},
		{"Abcdef1", false},
		{"Abcde1!", false},
		{"abcdefgh", false},
		{"12345678", false},
		{"!!!!!!!!", false},
		{"Abcdefg1", false},
		{"Abcdef1!#", false},
		{"Abcdef1! ", false},
		{"비밀번호Ab1!xy", false},
	}
	for _, tc := range tests {
		for _, field := range CredentialFields() {
			if got := Default().ValidateField(field, tc.value).Valid; got != tc.want {
				t.Fatalf("%s %q valid = %t, want %t", field, tc.value, got, tc.want)
			}
		}
	}
}

func TestRoleRuleIsLengthOnly(t *testing.T) {
	t.Parallel()

	for _, option := range RoleOptions() {
		if !Default().ValidateField(FieldRole, option.Value).Valid {
			t.Fatalf("role %q should be valid", option.Value)
		}
	}
	if !Default().ValidateField(FieldRole, "guest").Valid {
		t.Fatal("expected any role of length >= 2 to pass the length rule")
	}
	if Default().ValidateField(FieldRole, "x").Valid {
		t.Fatal("expected single-character role to fail")
	}
}

func TestValidateFieldsEvaluatesSubsetIndependently(t *testing.T) {
	t.Parallel()

	values := validValues()
	values.Password = ""
	result := Default().ValidateFields(values, IdentityFields()...)
	if !result.Valid() {
		t.Fatalf("identity subset errors = %v, want none", result.Errors())
	}
	if _, ok := result.Field(FieldPassword); ok {
		t.Fatal("expected password to be outside the evaluated subset")
	}

	full := Default().Validate(values)
	if full.Valid() {
		t.Fatal("expected full validation to fail on empty password")
	}
	errs := full.Errors()
	if len(errs) != 1 || errs[FieldPassword] == "" {
		t.Fatalf("Errors() = %v, want only password", errs)
	}
}

func TestConfirmPasswordIsNotComparedToPassword(t *testing.T) {
	t.Parallel()

	values := validValues()
	values.ConfirmPassword = "Abcdef2!"
	if result := Default().Validate(values); !result.Valid() {
		t.Fatalf("Validate() errors = %v, want none", result.Errors())
	}
}

func TestNewFallsBackToBaseLocaleMessages(t *testing.T) {
	t.Parallel()

	s, err := New(WithLocale("en-US"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := s.ValidateField(FieldRole, "").Message; got != "역할을 선택해주세요." {
		t.Fatalf("Message = %q, want base locale copy", got)
	}
}

func TestRulesReturnsCopy(t *testing.T) {
	t.Parallel()

	rules := Default().Rules(FieldPhone)
	if len(rules) != 3 {
		t.Fatalf("len(Rules(phone)) = %d, want 3", len(rules))
	}
	rules[0].Tag = "mutated"
	if Default().Rules(FieldPhone)[0].Tag == "mutated" {
		t.Fatal("expected Rules to return a copy")
	}
}
