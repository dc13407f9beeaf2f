package wizard

import (
	"context"
	"strconv"

	apperrors "github.com/louisbranch/accountform/internal/platform/errors"
	errori18n "github.com/louisbranch/accountform/internal/platform/errors/i18n"
	"github.com/louisbranch/accountform/internal/platform/i18n/catalog"
	"github.com/louisbranch/accountform/internal/signup/schema"
)

var (
	// ErrFieldsInvalid blocks a submission while any field fails its rules.
	ErrFieldsInvalid = apperrors.New(apperrors.CodeFieldsInvalid, "form fields are invalid")
	// ErrUnknownField rejects updates to a field the form does not have.
	ErrUnknownField = apperrors.New(apperrors.CodeUnknownField, "unknown form field")
	// ErrPasswordMismatch is returned when password and confirmation differ.
	ErrPasswordMismatch = apperrors.New(apperrors.CodePasswordMismatch, "password confirmation does not match")
	// ErrAlreadySubmitted rejects any submission after one was accepted.
	ErrAlreadySubmitted = apperrors.New(apperrors.CodeFormSubmitted, "form already submitted")
)

// FieldState is what a renderer needs to draw one field.
type FieldState struct {
	Field   schema.Field
	Value   string
	Touched bool
	// Error is the message to show, empty unless the field has been part of
	// an advance or submit attempt and currently fails.
	Error string
}

// Session is one form instance from mount to submission.
type Session struct {
	schema   *schema.Schema
	notifier Notifier
	sink     Sink
	locale   string

	values    schema.Values
	step      Step
	touched   map[schema.Field]bool
	revealed  map[schema.Field]bool
	results   map[schema.Field]schema.FieldResult
	completed bool
}

// Option configures a Session.
type Option func(*Session)

// WithSchema overrides the validation schema.
func WithSchema(s *schema.Schema) Option {
	return func(sess *Session) {
		if s != nil {
			sess.schema = s
		}
	}
}

// WithNotifier sets the notification receiver.
func WithNotifier(n Notifier) Option {
	return func(sess *Session) {
		if n != nil {
			sess.notifier = n
		}
	}
}

// WithSink sets the receiver of accepted submissions.
func WithSink(s Sink) Option {
	return func(sess *Session) {
		if s != nil {
			sess.sink = s
		}
	}
}

// WithLocale selects the catalog locale for notification titles.
func WithLocale(locale string) Option {
	return func(sess *Session) {
		sess.locale = locale
	}
}

// New mounts a fresh form: empty values, identity step, nothing touched.
func New(opts ...Option) *Session {
	sess := &Session{
		schema:   schema.Default(),
		notifier: discardNotifier{},
		sink:     discardSink{},
		locale:   catalog.BaseLocale,
		step:     StepIdentity,
		touched:  map[schema.Field]bool{},
		revealed: map[schema.Field]bool{},
		results:  map[schema.Field]schema.FieldResult{},
	}
	for _, opt := range opts {
		opt(sess)
	}
	return sess
}

// Step returns the current step.
func (s *Session) Step() Step {
	return s.step
}

// Values returns a copy of the current values.
func (s *Session) Values() schema.Values {
	return s.values
}

// Completed reports whether a submission was accepted.
func (s *Session) Completed() bool {
	return s.completed
}

// Touched reports whether the user has interacted with field.
func (s *Session) Touched(field schema.Field) bool {
	return s.touched[field]
}

// Result returns the latest evaluation of field.
func (s *Session) Result(field schema.Field) (schema.FieldResult, bool) {
	fr, ok := s.results[field]
	return fr, ok
}

// Field returns the render state of field.
func (s *Session) Field(field schema.Field) FieldState {
	state := FieldState{
		Field:   field,
		Value:   s.values.Get(field),
		Touched: s.touched[field],
	}
	if fr, ok := s.results[field]; ok && s.revealed[field] && !fr.Valid {
		state.Error = fr.Message
	}
	return state
}

// Errors maps each revealed, currently invalid field to its message.
func (s *Session) Errors() map[schema.Field]string {
	out := map[schema.Field]string{}
	for _, field := range schema.Fields() {
		if msg := s.Field(field).Error; msg != "" {
			out[field] = msg
		}
	}
	return out
}

// Offsets returns the panel translate percentages for the current step.
func (s *Session) Offsets() (identity int, credentials int) {
	return s.step.Offsets()
}

// SetField records user input for field, marks it touched and re-evaluates
// it so no stale error survives a correction.
func (s *Session) SetField(field schema.Field, value string) error {
	if !s.values.Set(field, value) {
		return apperrors.WithMetadata(ErrUnknownField.Code, ErrUnknownField.Message, map[string]string{"Field": field.String()})
	}
	s.touched[field] = true
	s.results[field] = s.schema.ValidateField(field, value)
	return nil
}

// Advance moves to the credentials step when every identity field is both
// touched and valid. Otherwise nothing changes and it reports false; the
// identity field errors become visible either way.
func (s *Session) Advance() bool {
	result := s.schema.ValidateFields(s.values, schema.IdentityFields()...)
	s.record(result)

	for _, field := range schema.IdentityFields() {
		fr, _ := result.Field(field)
		if !s.touched[field] || !fr.Valid {
			return false
		}
	}
	s.step = StepCredentials
	return true
}

// Retreat returns to the identity step without validating anything.
func (s *Session) Retreat() {
	s.step = StepIdentity
}

// SubmitForm is the input layer in front of Submit: it validates all six
// fields and only calls Submit when they all pass.
func (s *Session) SubmitForm(ctx context.Context) error {
	if s.completed {
		return ErrAlreadySubmitted
	}
	result := s.schema.Validate(s.values)
	s.record(result)
	if !result.Valid() {
		return apperrors.WithMetadata(ErrFieldsInvalid.Code, ErrFieldsInvalid.Message, map[string]string{
			"Count": strconv.Itoa(len(result.Errors())),
		})
	}
	return s.Submit(ctx, s.values)
}

// Submit cross-checks the password fields and hands values to the sink.
// It expects field validity to be established already. On mismatch it emits
// one destructive notification and changes nothing. Values reach the sink
// at most once per session.
func (s *Session) Submit(ctx context.Context, values schema.Values) error {
	if s.completed {
		return ErrAlreadySubmitted
	}
	if values.Password != values.ConfirmPassword {
		s.notifier.Notify(Notification{
			Title:    errori18n.GetCatalog(s.locale).Format(errori18n.CodePasswordMismatch, nil),
			Severity: SeverityDestructive,
		})
		return ErrPasswordMismatch
	}
	if err := s.sink.Accept(ctx, values); err != nil {
		return apperrors.Wrap(apperrors.CodeUnknown, "accept submission", err)
	}
	s.completed = true
	return nil
}

func (s *Session) record(result schema.Result) {
	for _, fr := range result.Fields() {
		s.results[fr.Field] = fr
		s.revealed[fr.Field] = true
	}
}
