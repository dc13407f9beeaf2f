package schema

import (
	apperrors "github.com/louisbranch/accountform/internal/platform/errors"
)

// Issue is one failed rule of a field.
type Issue struct {
	Tag     string
	Kind    apperrors.Code
	Message string
}

// FieldResult is the outcome of evaluating one field.
type FieldResult struct {
	Field Field
	Valid bool
	// Kind and Message describe the first failing rule; both are empty when
	// the field is valid.
	Kind    apperrors.Code
	Message string
	Issues  []Issue
}

// Result is the outcome of evaluating a set of fields.
type Result struct {
	order  []Field
	fields map[Field]FieldResult
}

func newResult(capacity int) Result {
	return Result{
		order:  make([]Field, 0, capacity),
		fields: make(map[Field]FieldResult, capacity),
	}
}

func (r *Result) add(fr FieldResult) {
	if _, exists := r.fields[fr.Field]; !exists {
		r.order = append(r.order, fr.Field)
	}
	r.fields[fr.Field] = fr
}

// Valid reports whether every evaluated field passed.
func (r Result) Valid() bool {
	for _, fr := range r.fields {
		if !fr.Valid {
			return false
		}
	}
	return true
}

// Field returns the result of one evaluated field.
func (r Result) Field(field Field) (FieldResult, bool) {
	fr, ok := r.fields[field]
	return fr, ok
}

// Fields returns every evaluated field result in evaluation order.
func (r Result) Fields() []FieldResult {
	out := make([]FieldResult, 0, len(r.order))
	for _, field := range r.order {
		out = append(out, r.fields[field])
	}
	return out
}

// Errors maps each invalid field to the message a form shows for it.
func (r Result) Errors() map[Field]string {
	out := map[Field]string{}
	for field, fr := range r.fields {
		if !fr.Valid {
			out[field] = fr.Message
		}
	}
	return out
}
