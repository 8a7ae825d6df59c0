// Package storybook hosts the documentation harness: an HTTP surface that
// renders every component story with editable controls, and a static export
// of the same pages.
package storybook

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/vtnds/internal/platform/httpx"
	"github.com/louisbranch/vtnds/internal/platform/i18n/catalog"
	"github.com/louisbranch/vtnds/internal/platform/observability"
	"github.com/louisbranch/vtnds/internal/platform/timeouts"
	"github.com/louisbranch/vtnds/internal/services/storybook/stories"
	"github.com/louisbranch/vtnds/internal/services/storybook/templates"
)

// Config defines startup inputs for the harness.
type Config struct {
	HTTPAddr string
	// DefaultTheme is used when neither the query nor a cookie selects one.
	DefaultTheme string
	// Registry defaults to stories.Default().
	Registry *stories.Registry
	// Catalog defaults to catalog.Default().
	Catalog *catalog.Bundle
	// Logger defaults to log.Default().
	Logger *log.Logger
}

func (c Config) withDefaults() Config {
	if c.Registry == nil {
		c.Registry = stories.Default()
	}
	if c.Catalog == nil {
		c.Catalog = catalog.Default()
	}
	if c.Logger == nil {
		c.Logger = log.Default()
	}
	c.DefaultTheme = normalizeTheme(c.DefaultTheme, templates.ThemeLight)
	return c
}

// Server hosts the harness HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root harness handler.
func NewHandler(cfg Config) (http.Handler, error) {
	cfg = cfg.withDefaults()
	h := newHandler(cfg)
	mux := http.NewServeMux()
	mux.Handle("/{$}", httpx.RequireMethod(http.MethodGet)(http.HandlerFunc(h.index)))
	mux.Handle("/stories/{component}/{story}", httpx.RequireMethod(http.MethodGet)(http.HandlerFunc(h.story)))
	mux.Handle("/stories/{component}/{story}/toggle", httpx.RequireMethod(http.MethodPost)(http.HandlerFunc(h.toggle)))
	mux.Handle("/static/", httpx.RequireMethod(http.MethodGet)(http.StripPrefix("/static/", httpx.WithStaticMime(staticHandler()))))
	mux.Handle("/healthz", httpx.RequireMethod(http.MethodGet)(http.HandlerFunc(healthz)))
	mux.Handle("/", http.HandlerFunc(h.notFound))
	return httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID("sb"),
		observability.RequestLogger(cfg.Logger),
	), nil
}

// NewServer validates config and constructs a harness server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose storybook handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("storybook server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown storybook http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve storybook http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
