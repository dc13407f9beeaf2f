package config

import (
	"strings"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
)

type envTestConfig struct {
	Addr string        `env:"ACCOUNTFORM_TEST_ADDR" envDefault:"localhost:1234"`
	TTL  time.Duration `env:"ACCOUNTFORM_TEST_TTL" envDefault:"30m"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "localhost:1234" {
		t.Fatalf("Addr = %q, want %q", cfg.Addr, "localhost:1234")
	}
	if cfg.TTL != 30*time.Minute {
		t.Fatalf("TTL = %v, want %v", cfg.TTL, 30*time.Minute)
	}
}

func TestParseEnvWithOptionsUsesEnvironmentMap(t *testing.T) {
	t.Parallel()

	var cfg envTestConfig
	err := ParseEnvWithOptions(&cfg, env.Options{Environment: map[string]string{
		"ACCOUNTFORM_TEST_ADDR": "0.0.0.0:9000",
		"ACCOUNTFORM_TEST_TTL":  "5m",
	}})
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "0.0.0.0:9000" {
		t.Fatalf("Addr = %q, want %q", cfg.Addr, "0.0.0.0:9000")
	}
	if cfg.TTL != 5*time.Minute {
		t.Fatalf("TTL = %v, want %v", cfg.TTL, 5*time.Minute)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("ACCOUNTFORM_TEST_TTL", "not-a-duration")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
