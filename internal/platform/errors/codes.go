// Package errors provides structured error handling with i18n support.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Field errors
	CodeFieldLength   Code = "FIELD_LENGTH"
	CodeFieldFormat   Code = "FIELD_FORMAT"
	CodeFieldPattern  Code = "FIELD_PATTERN"
	CodeFieldRequired Code = "FIELD_REQUIRED"

	// Form errors
	CodePasswordMismatch Code = "PASSWORD_MISMATCH"
	CodeFieldsInvalid    Code = "FIELDS_INVALID"
	CodeUnknownField     Code = "UNKNOWN_FIELD"
	CodeFormSubmitted    Code = "FORM_SUBMITTED"

	// Session errors
	CodeSessionNotFound Code = "SESSION_NOT_FOUND"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	// Unprocessable - the user can correct the input and retry
	case CodeFieldLength,
		CodeFieldFormat,
		CodeFieldPattern,
		CodeFieldRequired,
		CodePasswordMismatch,
		CodeFieldsInvalid:
		return http.StatusUnprocessableEntity

	// BadRequest - the request names something the form does not have
	case CodeUnknownField:
		return http.StatusBadRequest

	case CodeSessionNotFound:
		return http.StatusNotFound

	case CodeFormSubmitted:
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}
