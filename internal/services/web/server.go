package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/louisbranch/accountform/internal/platform/timeouts"
)

// Server hosts the signup HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	handler    *handler
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	config = config.withDefaults()
	if config.HTTPAddr == "" {
		return nil, errors.New("http address is required")
	}
	h, err := newHandler(config)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	return &Server{
		httpAddr: config.HTTPAddr,
		httpServer: &http.Server{
			Addr:              config.HTTPAddr,
			Handler:           h.routes(),
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		handler: h,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go s.handler.forms.runSweeper(sweepCtx, timeouts.SessionSweep)

	serveErr := make(chan error, 1)
	log.Printf("signup form listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close drops every live form.
func (s *Server) Close() {
	if s == nil || s.handler == nil {
		return
	}
	if n := s.handler.forms.clear(); n > 0 {
		log.Printf("discarding %d open form sessions", n)
	}
}
