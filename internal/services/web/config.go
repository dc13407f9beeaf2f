package web

import (
	"crypto/rand"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/accountform/internal/platform/i18n/catalog"
	"github.com/louisbranch/accountform/internal/platform/timeouts"
	"github.com/louisbranch/accountform/internal/signup/wizard"
)

// Config defines the inputs for the signup web server.
type Config struct {
	HTTPAddr string
	// SessionTTL bounds how long an idle form survives.
	SessionTTL time.Duration
	// SessionSecret signs form session cookies. A random secret is generated
	// when empty, which invalidates forms on restart.
	SessionSecret       []byte
	TrustForwardedProto bool
	Locale              string
	// Sink receives accepted submissions. Defaults to a redacting log sink.
	Sink wizard.Sink
}

func (c Config) withDefaults() Config {
	c.HTTPAddr = strings.TrimSpace(c.HTTPAddr)
	if c.SessionTTL <= 0 {
		c.SessionTTL = timeouts.FormSession
	}
	if len(c.SessionSecret) == 0 {
		c.SessionSecret = make([]byte, 32)
		_, _ = rand.Read(c.SessionSecret)
	}
	if strings.TrimSpace(c.Locale) == "" {
		c.Locale = catalog.BaseLocale
	}
	if c.Sink == nil {
		c.Sink = wizard.LogSink{Logger: log.Default()}
	}
	return c
}
