package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/louisbranch/accountform/internal/signup/schema"
)

// Severity classifies notification presentation.
type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

// Notification is a one-shot message for the user, outside any field.
type Notification struct {
	Title    string
	Severity Severity
}

// Notifier receives notifications emitted by a Session.
type Notifier interface {
	Notify(Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) {
	f(n)
}

// Sink receives the values of an accepted submission.
type Sink interface {
	Accept(ctx context.Context, values schema.Values) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(context.Context, schema.Values) error

// Accept calls f(ctx, values).
func (f SinkFunc) Accept(ctx context.Context, values schema.Values) error {
	return f(ctx, values)
}

// LogSink logs accepted submissions with both password fields masked.
type LogSink struct {
	Logger *log.Logger
}

// Accept writes one log line holding the redacted values as JSON.
func (s LogSink) Accept(_ context.Context, values schema.Values) error {
	payload, err := json.Marshal(values.Redacted())
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf("account form accepted: %s", payload)
	return nil
}

type discardNotifier struct{}

func (discardNotifier) Notify(Notification) {}

type discardSink struct{}

func (discardSink) Accept(context.Context, schema.Values) error { return nil }
