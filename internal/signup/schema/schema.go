package schema

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/louisbranch/accountform/internal/platform/i18n/catalog"
)

// Schema evaluates form fields against the rule table. A Schema is
// immutable after construction and safe for concurrent use.
type Schema struct {
	validate *validator.Validate
	rules    map[Field][]Rule
	messages map[string]string
}

// Option configures a Schema.
type Option func(*options)

type options struct {
	bundle *catalog.Bundle
	locale string
}

// WithLocale selects the catalog locale used for messages.
func WithLocale(locale string) Option {
	return func(o *options) {
		o.locale = locale
	}
}

// WithBundle overrides the catalog bundle used for messages.
func WithBundle(bundle *catalog.Bundle) Option {
	return func(o *options) {
		if bundle != nil {
			o.bundle = bundle
		}
	}
}

// New builds a Schema, registering the custom validations and resolving
// every rule message up front.
func New(opts ...Option) (*Schema, error) {
	cfg := options{bundle: catalog.Default(), locale: catalog.BaseLocale}
	for _, opt := range opts {
		opt(&cfg)
	}

	validate := validator.New()
	if err := registerCustomValidations(validate); err != nil {
		return nil, fmt.Errorf("register validations: %w", err)
	}

	messages := map[string]string{}
	for field, rules := range ruleTable {
		for _, rule := range rules {
			message, ok := cfg.bundle.Message(cfg.locale, rule.MessageKey)
			if !ok {
				return nil, fmt.Errorf("field %s: missing message %q", field, rule.MessageKey)
			}
			messages[rule.MessageKey] = message
		}
	}

	return &Schema{
		validate: validate,
		rules:    ruleTable,
		messages: messages,
	}, nil
}

var defaultSchema = sync.OnceValue(func() *Schema {
	s, err := New()
	if err != nil {
		panic(fmt.Sprintf("schema: build default: %v", err))
	}
	return s
})

// Default returns the process-wide schema for the base locale.
func Default() *Schema {
	return defaultSchema()
}

// Rules returns a copy of the rules evaluated for field.
func (s *Schema) Rules(field Field) []Rule {
	return append([]Rule(nil), s.rules[field]...)
}

// ValidateField evaluates every rule of field against value, in order.
// The first failing rule decides the reported kind and message.
func (s *Schema) ValidateField(field Field, value string) FieldResult {
	result := FieldResult{Field: field, Valid: true}
	for _, rule := range s.rules[field] {
		if err := s.validate.Var(value, rule.Tag); err == nil {
			continue
		}
		issue := Issue{Tag: rule.Tag, Kind: rule.Kind, Message: s.messages[rule.MessageKey]}
		if result.Valid {
			result.Valid = false
			result.Kind = issue.Kind
			result.Message = issue.Message
		}
		result.Issues = append(result.Issues, issue)
	}
	return result
}

// Validate evaluates all six fields independently.
func (s *Schema) Validate(values Values) Result {
	return s.ValidateFields(values, Fields()...)
}

// ValidateFields evaluates only the given fields.
func (s *Schema) ValidateFields(values Values, fields ...Field) Result {
	result := newResult(len(fields))
	for _, field := range fields {
		result.add(s.ValidateField(field, values.Get(field)))
	}
	return result
}
