// internal/api/server.go
package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jstrand/tradelog/internal/api/handler"
	"github.com/jstrand/tradelog/internal/api/middleware"
	"github.com/jstrand/tradelog/internal/api/response"
	"github.com/jstrand/tradelog/internal/core"
	"github.com/jstrand/tradelog/internal/metrics"
	"github.com/jstrand/tradelog/internal/storage/archive"
	"github.com/jstrand/tradelog/internal/storage/trade"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server is the HTTP front end of the journal.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	mux        *http.ServeMux

	trades    *handler.TradesHandler
	analytics *handler.AnalyticsHandler
	export    *handler.ExportHandler
	images    *handler.ImagesHandler
}

// Config holds server configuration.
type Config struct {
	Host        string
	Port        int
	APIKey      string
	MetricsPath string // empty disables the metrics endpoint
}

// NewServer creates a new HTTP server around the store and archive.
func NewServer(cfg Config, store trade.Store, arch archive.Storage, reg *metrics.Registry, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      metrics.HTTPMiddleware(reg)(mux),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger:    logger,
		mux:       mux,
		trades:    handler.NewTradesHandler(store, reg),
		analytics: handler.NewAnalyticsHandler(store, reg),
		export:    handler.NewExportHandler(store, reg),
		images:    handler.NewImagesHandler(store, arch),
	}

	s.setupRoutes(cfg, reg)
	return s
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes(cfg Config, reg *metrics.Registry) {
	auth := middleware.APIKeyAuth(cfg.APIKey)
	protect := func(h http.HandlerFunc) http.Handler {
		return auth(h)
	}

	s.mux.HandleFunc("/api/health", s.handleHealth)

	s.mux.Handle("/api/v1/trades", protect(s.handleTrades))
	s.mux.Handle("/api/v1/trades/", protect(s.handleTradeImage))
	s.mux.Handle("/api/v1/stats", protect(s.analytics.Stats))
	s.mux.Handle("/api/v1/series/daily", protect(s.analytics.DailySeries))
	s.mux.Handle("/api/v1/series/cumulative", protect(s.analytics.CumulativeSeries))
	s.mux.Handle("/api/v1/periods", protect(s.analytics.Periods))
	s.mux.Handle("/api/v1/export", protect(s.export.CSV))

	if cfg.MetricsPath != "" {
		s.mux.Handle(cfg.MetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}
}

// handleTrades dispatches the collection endpoint by method.
func (s *Server) handleTrades(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.trades.List(w, r)
	case http.MethodPost:
		s.trades.Create(w, r)
	case http.MethodDelete:
		s.trades.Clear(w, r)
	default:
		w.Header().Set("Allow", "GET, POST, DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleTradeImage routes /api/v1/trades/{id}/image.
func (s *Server) handleTradeImage(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/trades/")
	id, ok := strings.CutSuffix(rest, "/image")
	if !ok || id == "" || strings.Contains(id, "/") {
		response.Error(w, http.StatusNotFound, core.ErrTradeNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.images.Get(w, r, id)
	case http.MethodPut:
		s.images.Upload(w, r, id)
	default:
		w.Header().Set("Allow", "GET, PUT")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// Handler exposes the full middleware-wrapped handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
