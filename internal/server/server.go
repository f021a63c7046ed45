// Package server exposes the fretboard model as a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mouse-blink/fretmap/internal/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Server serves one fretboard. Handlers only read it, so no locking is needed.
type Server struct {
	fb     *domain.Fretboard
	logger *slog.Logger
	engine *gin.Engine
}

// New builds the router for fb.
func New(fb *domain.Fretboard, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{fb: fb, logger: logger, engine: gin.New()}

	s.engine.Use(gin.Recovery(), requestID(), observe(logger))

	s.engine.GET("/health", HealthCheck)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.engine.Group("/api/v1")
	v1.GET("/fretboard", s.getFretboard)
	v1.GET("/notes/:string/:fret", s.getNote)
	v1.GET("/scales/:note", s.getScale)
	v1.GET("/chords", s.listChords)
	v1.GET("/chords/:spec", s.getChord)

	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("Starting fretmap server", slog.String("address", addr))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		s.logger.Info("Shutting down fretmap server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
