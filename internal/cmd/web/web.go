// Package web parses web command flags and composes the signup server.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/accountform/internal/platform/cmd"
	"github.com/louisbranch/accountform/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"ACCOUNTFORM_WEB_HTTP_ADDR"             envDefault:"localhost:8086"`
	SessionTTL          time.Duration `env:"ACCOUNTFORM_WEB_SESSION_TTL"           envDefault:"30m"`
	SessionSecret       string        `env:"ACCOUNTFORM_WEB_SESSION_SECRET"`
	TrustForwardedProto bool          `env:"ACCOUNTFORM_WEB_TRUST_FORWARDED_PROTO" envDefault:"false"`
	Locale              string        `env:"ACCOUNTFORM_LOCALE"                    envDefault:"ko-KR"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "idle lifetime of a form session")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "honor X-Forwarded-Proto for secure cookies")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "catalog locale for form copy")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("session ttl must be positive, got %s", cfg.SessionTTL)
	}
	return cfg, nil
}

// Run starts the signup web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			SessionTTL:          cfg.SessionTTL,
			SessionSecret:       []byte(cfg.SessionSecret),
			TrustForwardedProto: cfg.TrustForwardedProto,
			Locale:              cfg.Locale,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
