package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	t.Parallel()

	err := WithMetadata(CodePasswordMismatch, "password mismatch", map[string]string{"Field": "confirmPassword"})
	if !stderrors.Is(err, New(CodePasswordMismatch, "other message")) {
		t.Fatal("expected errors.Is to match by code")
	}
	if stderrors.Is(err, New(CodeFieldLength, "password mismatch")) {
		t.Fatal("expected errors.Is to reject different code")
	}
}

func TestWrapUnwrapsCause(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("sink unavailable")
	err := Wrap(CodeUnknown, "accept submission", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable")
	}
}

func TestCodeOf(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("submit: %w", New(CodeFieldsInvalid, "fields invalid"))
	if got := CodeOf(wrapped); got != CodeFieldsInvalid {
		t.Fatalf("CodeOf() = %q, want %q", got, CodeFieldsInvalid)
	}
	if got := CodeOf(stderrors.New("plain")); got != CodeUnknown {
		t.Fatalf("CodeOf() = %q, want %q", got, CodeUnknown)
	}
}

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code Code
		want int
	}{
		{CodeFieldLength, http.StatusUnprocessableEntity},
		{CodeFieldFormat, http.StatusUnprocessableEntity},
		{CodeFieldPattern, http.StatusUnprocessableEntity},
		{CodeFieldRequired, http.StatusUnprocessableEntity},
		{CodePasswordMismatch, http.StatusUnprocessableEntity},
		{CodeFieldsInvalid, http.StatusUnprocessableEntity},
		{CodeUnknownField, http.StatusBadRequest},
		{CodeSessionNotFound, http.StatusNotFound},
		{CodeFormSubmitted, http.StatusConflict},
		{CodeUnknown, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := tc.code.HTTPStatus(); got != tc.want {
			t.Fatalf("%s.HTTPStatus() = %d, want %d", tc.code, got, tc.want)
		}
	}
	if got := HTTPStatus(stderrors.New("boom")); got != http.StatusInternalServerError {
		t.Fatalf("HTTPStatus(plain) = %d, want %d", got, http.StatusInternalServerError)
	}
}
