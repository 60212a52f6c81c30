// Package server exposes resume parsing and scoring over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spigell/resume-relevance/internal/ai"
	"github.com/spigell/resume-relevance/internal/resume"
	"github.com/spigell/resume-relevance/internal/scoring"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const (
	defaultListen         = ":9000"
	defaultMaxUploadBytes = 16 << 20
	defaultReadTimeout    = 30 * time.Second
	defaultWriteTimeout   = 120 * time.Second

	shutdownTimeout = 10 * time.Second
)

type Config struct {
	Listen         string        `mapstructure:"listen"`
	MaxUploadBytes int64         `mapstructure:"max-upload-bytes"`
	ReadTimeout    time.Duration `mapstructure:"read-timeout"`
	WriteTimeout   time.Duration `mapstructure:"write-timeout"`
}

func (c Config) withDefaults() Config {
	if c.Listen == "" {
		c.Listen = defaultListen
	}
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = defaultMaxUploadBytes
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = defaultReadTimeout
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = defaultWriteTimeout
	}
	return c
}

// Deps are the components the handlers delegate to. Extractor may be nil, in
// which case job description uploads are refused.
type Deps struct {
	Segmenter *resume.Segmenter
	Engine    *scoring.Engine
	Extractor ai.JDExtractor
}

type Server struct {
	cfg       Config
	segmenter *resume.Segmenter
	engine    *scoring.Engine
	extractor ai.JDExtractor
	metrics   *metrics
	logger    *zap.Logger
	router    chi.Router
}

func New(cfg Config, deps Deps, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if deps.Segmenter == nil {
		deps.Segmenter = resume.NewSegmenter(nil)
	}
	if deps.Engine == nil {
		deps.Engine = scoring.NewEngine(nil, logger, 0)
	}

	s := &Server{
		cfg:       cfg.withDefaults(),
		segmenter: deps.Segmenter,
		engine:    deps.Engine,
		extractor: deps.Extractor,
		metrics:   newMetrics(),
		logger:    logger,
	}
	s.router = s.routes()

	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors)

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Post("/upload/resume", s.handleUploadResume)
	r.Post("/upload/jd", s.handleUploadJD)
	r.Post("/analyze", s.handleAnalyze)
	r.Method(http.MethodGet, "/metrics", s.metrics.handler())

	return r
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves the API until ctx is canceled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         s.cfg.Listen,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("address", s.cfg.Listen))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", zap.Duration("timeout", shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving http: %w", err)
	}

	return nil
}
