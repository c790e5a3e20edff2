// Package httpapi serves the read-only HTTP surface of the archiver: health,
// Prometheus metrics, the info snapshot and archived blocks.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gabapcia/blockarchive/internal/archiveinfo"
	"github.com/gabapcia/blockarchive/internal/pkg/logger"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

// shutdownTimeout bounds how long in-flight requests may run after Run's context ends.
const shutdownTimeout = 10 * time.Second

type config struct {
	health   archiveinfo.StatusReader
	registry *prometheus.Registry
}

// Option configures the HTTP surface.
type Option func(*config)

// WithHealth makes /healthz fail while a stream is halted.
func WithHealth(status archiveinfo.StatusReader) Option {
	return func(c *config) {
		c.health = status
	}
}

// WithRegistry serves reg on /metrics so that collectors registered elsewhere,
// such as the OpenTelemetry Prometheus reader, are exposed next to the HTTP ones.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(c *config) {
		c.registry = reg
	}
}

// NewHandler returns the router with every route and the metrics middleware.
func NewHandler(info archiveinfo.Service, opts ...Option) http.Handler {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	m := newMetrics(cfg.registry)
	h := &handler{info: info, health: cfg.health}

	r := mux.NewRouter()
	r.Use(m.instrument)
	r.HandleFunc("/healthz", h.healthz).Methods(http.MethodGet)
	r.Handle("/metrics", m.handler()).Methods(http.MethodGet)
	r.HandleFunc("/v1/info", h.snapshot).Methods(http.MethodGet)
	r.HandleFunc("/v1/blocks/{stream}/{height}", h.archivedBlock).Methods(http.MethodGet)

	return r
}

// Server runs the HTTP surface until its context is canceled.
type Server struct {
	srv *http.Server
}

// NewServer returns a Server listening on addr.
func NewServer(addr string, info archiveinfo.Service, opts ...Option) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewHandler(info, opts...),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Run serves requests until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}

	return s.serve(ctx, ln)
}

func (s *Server) serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.Serve(ln)
	}()

	logger.Info(ctx, "http server listening", "http.addr", ln.Addr().String())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	logger.Info(ctx, "http server stopped")
	return nil
}
