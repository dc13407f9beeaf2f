package tui

import (
	"flag"
	"log"
	"path/filepath"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Locale != "ko-KR" {
		t.Fatalf("Locale = %q, want %q", cfg.Locale, "ko-KR")
	}
	if cfg.LogFile != "" {
		t.Fatalf("LogFile = %q, want empty", cfg.LogFile)
	}
}

func TestParseConfigEnvThenFlags(t *testing.T) {
	t.Setenv("ACCOUNTFORM_LOCALE", "en-US")
	t.Setenv("ACCOUNTFORM_TUI_LOG", "env.log")

	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-log-file", "flag.log"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Locale != "en-US" {
		t.Fatalf("Locale = %q, want env value", cfg.Locale)
	}
	if cfg.LogFile != "flag.log" {
		t.Fatalf("LogFile = %q, want flag value", cfg.LogFile)
	}
}

func TestRedirectLogRestoresWriter(t *testing.T) {
	prev := log.Writer()
	restore, err := redirectLog(filepath.Join(t.TempDir(), "tui.log"))
	if err != nil {
		t.Fatalf("redirectLog() error = %v", err)
	}
	if log.Writer() == prev {
		t.Fatal("log writer not redirected")
	}
	restore()
	if log.Writer() != prev {
		t.Fatal("log writer not restored")
	}
}
