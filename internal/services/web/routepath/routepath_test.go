package routepath

import "testing"

func TestFieldUpdate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		field string
		want  string
	}{
		{field: "username", want: "/signup/fields/username"},
		{field: "confirmPassword", want: "/signup/fields/confirmPassword"},
		{field: "a b", want: "/signup/fields/a%20b"},
	}
	for _, tc := range tests {
		if got := FieldUpdate(tc.field); got != tc.want {
			t.Fatalf("FieldUpdate(%q) = %q, want %q", tc.field, got, tc.want)
		}
	}
}

func TestSignupRoutesShareSignupPrefix(t *testing.T) {
	t.Parallel()

	for _, path := range []string{SignupNext, SignupBack, SignupSubmit, SignupFields} {
		if len(path) <= len(SignupPrefix) || path[:len(SignupPrefix)] != SignupPrefix {
			t.Fatalf("%q does not start with %q", path, SignupPrefix)
		}
	}
}
