package i18n

// Error codes rendered outside a domain error value. They must match the
// codes in internal/platform/errors/codes.go and are duplicated as strings to
// avoid an import cycle.
const (
	CodePasswordMismatch = "PASSWORD_MISMATCH"
	CodeSessionNotFound  = "SESSION_NOT_FOUND"
)
