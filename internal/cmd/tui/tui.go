// Package tui parses terminal command flags and runs the form in a terminal.
package tui

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	entrypoint "github.com/louisbranch/accountform/internal/platform/cmd"
	"github.com/louisbranch/accountform/internal/services/tui"
	"github.com/louisbranch/accountform/internal/signup/wizard"
)

// Config holds the terminal command configuration.
type Config struct {
	Locale string `env:"ACCOUNTFORM_LOCALE"   envDefault:"ko-KR"`
	// LogFile receives log output while the terminal is taken over. Logs are
	// discarded when empty.
	LogFile string `env:"ACCOUNTFORM_TUI_LOG"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "catalog locale for form copy")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "file receiving logs while the form is open")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run opens the form on the controlling terminal.
func Run(ctx context.Context, cfg Config) error {
	closeLog, err := redirectLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceTUI, func(ctx context.Context) error {
		if err := tui.Run(ctx, tui.Config{
			Locale: cfg.Locale,
			Input:  os.Stdin,
			Output: os.Stdout,
			Sink:   wizard.LogSink{Logger: log.Default()},
		}); err != nil {
			return fmt.Errorf("run terminal form: %w", err)
		}
		return nil
	})
}

// redirectLog keeps log lines off the terminal the form is drawn on.
func redirectLog(path string) (func(), error) {
	prev := log.Writer()
	restore := func() { log.SetOutput(prev) }
	if path == "" {
		log.SetOutput(io.Discard)
		return restore, nil
	}
	f, err := tea.LogToFile(path, log.Prefix())
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() {
		restore()
		_ = f.Close()
	}, nil
}
