package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/louisbranch/accountform/internal/platform/i18n/catalog"
	"github.com/louisbranch/accountform/internal/signup/schema"
	"github.com/louisbranch/accountform/internal/signup/wizard"
)

// Config defines the inputs for a terminal form run.
type Config struct {
	Locale string
	Input  io.Reader
	Output io.Writer
	Sink   wizard.Sink
}

// Run shows the form until it is submitted or cancelled. An accepted
// submission is summarised on Output with passwords masked.
func Run(ctx context.Context, cfg Config) error {
	locale := cfg.Locale
	if locale == "" {
		locale = catalog.BaseLocale
	}
	sch, err := schema.New(schema.WithLocale(locale))
	if err != nil {
		return fmt.Errorf("build schema: %w", err)
	}
	loc := catalog.Printer(locale)
	model := NewModel(ctx, loc,
		wizard.WithSchema(sch),
		wizard.WithLocale(locale),
		wizard.WithSink(cfg.Sink),
	)

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.Input != nil {
		opts = append(opts, tea.WithInput(cfg.Input))
	}
	if cfg.Output != nil {
		opts = append(opts, tea.WithOutput(cfg.Output))
	}
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return fmt.Errorf("run form: %w", err)
	}

	result, ok := final.(Model)
	if !ok || !result.Accepted() || cfg.Output == nil {
		return nil
	}
	return writeSummary(cfg.Output, loc, result.Values())
}

func writeSummary(w io.Writer, loc Localizer, values schema.Values) error {
	redacted := values.Redacted()
	if _, err := fmt.Fprintln(w, loc.Sprintf("signup.accepted")); err != nil {
		return err
	}
	for _, field := range schema.Fields() {
		if _, err := fmt.Fprintf(w, "  %s: %s\n", loc.Sprintf(field.LabelKey()), redacted.Get(field)); err != nil {
			return err
		}
	}
	return nil
}
