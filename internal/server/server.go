// Package server is the HTTP surface around the analysis core: thin handlers
// that fetch a series from the data provider, run the pure analysis and
// render the result as JSON or an HTML report.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"stockanalyzer/config"
	"stockanalyzer/models"
)

// MarketData is the price data provider consumed by the handlers
type MarketData interface {
	GetDailySeries(ctx context.Context, symbol string) (string, []models.Candle, error)
	SearchSymbols(ctx context.Context, keywords string) ([]models.SymbolMatch, error)
}

// Server represents the HTTP server
type Server struct {
	router *chi.Mux
	server *http.Server
	logger zerolog.Logger
	data   MarketData
	cfg    *config.Config
}

// New creates a new HTTP server
func New(cfg *config.Config, data MarketData) *Server {
	s := &Server{
		router: chi.NewRouter(),
		logger: log.With().Str("component", "server").Logger(),
		data:   data,
		cfg:    cfg,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures the middleware stack
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Timeout(60 * time.Second))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
}

// setupRoutes wires the endpoints
func (s *Server) setupRoutes() {
	s.router.Get("/", s.handleRoot)
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/stock/{symbol}", s.handleStock)
	s.router.Get("/search/{keywords}", s.handleSearch)
	s.router.Get("/analyze/{symbol}", s.handleAnalyze)
	s.router.Get("/analyze/{symbol}/report", s.handleAnalyzeReport)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins serving and blocks until the server stops
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.server.Addr).Msg("HTTP server listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
