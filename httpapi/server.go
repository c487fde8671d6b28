// SPDX-License-Identifier: MIT

package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/eegmst/channels"
	"github.com/katalvlaran/eegmst/pipeline"
	"github.com/katalvlaran/eegmst/signal"
)

// DefaultMaxBodyBytes caps an uploaded recording.
const DefaultMaxBodyBytes = 64 << 20

// ErrNoPipeline is returned by New without a pipeline.
var ErrNoPipeline = errors.New("httpapi: pipeline is required")

// Config holds server dependencies.
type Config struct {
	Pipeline     *pipeline.Pipeline
	Layout       channels.Layout
	CSV          *signal.CSVOptions // nil means signal.DefaultCSVOptions()
	Logger       *slog.Logger       // nil means slog.Default()
	MaxBodyBytes int64              // 0 means DefaultMaxBodyBytes
}

// Server routes HTTP requests to the pipeline.
type Server struct {
	router *chi.Mux
	cfg    Config
	log    *slog.Logger
}

// New builds the router.
func New(cfg Config) (*Server, error) {
	if cfg.Pipeline == nil {
		return nil, ErrNoPipeline
	}
	if cfg.CSV == nil {
		cfg.CSV = signal.DefaultCSVOptions()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}

	s := &Server{router: chi.NewRouter(), cfg: cfg, log: cfg.Logger}
	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)
	s.router.Route("/v1", func(r chi.Router) {
		r.Get("/channels", s.handleChannels)
		r.Post("/analyze", s.handleAnalyze)
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// requestLogger logs one line per request through slog.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
