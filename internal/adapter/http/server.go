// Package http serves the dashboard page, its JSON aggregates, and the
// operational endpoints.
package http

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cityaq/aq-dashboard/internal/dashboard"
	"github.com/cityaq/aq-dashboard/internal/domain"
	"github.com/cityaq/aq-dashboard/internal/observability"
)

//go:embed templates/*.html
var templateFS embed.FS

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes the dashboard, its JSON API, and health/metrics routes.
type Server struct {
	httpServer *http.Server
	service    *dashboard.Service
	logger     *slog.Logger
	metrics    *observability.Metrics
	tmpl       *template.Template
}

// NewServer creates the dashboard HTTP server.
func NewServer(addr string, svc *dashboard.Service, ready ReadinessChecker, metrics *observability.Metrics, logger *slog.Logger) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		service: svc,
		logger:  logger,
		metrics: metrics,
		tmpl:    tmpl,
	}

	mux.Handle("GET /{$}", s.instrument("/", s.handleIndex))
	mux.Handle("GET /api/overview", s.instrument("/api/overview", s.handleOverview))
	mux.Handle("GET /api/countries", s.instrument("/api/countries", s.handleCountries))
	mux.Handle("GET /api/rankings", s.instrument("/api/rankings", s.handleRankings))
	mux.Handle("GET /api/distribution", s.instrument("/api/distribution", s.handleDistribution))
	mux.Handle("GET /api/profile", s.instrument("/api/profile", s.handleProfile))
	mux.Handle("GET /api/narrative", s.instrument("/api/narrative", s.handleNarrative))
	mux.Handle("GET /api/map", s.instrument("/api/map", s.handleMap))
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s, nil
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// indexData is the view model for the server-rendered dashboard shell.
type indexData struct {
	Overview  dashboard.Overview
	Countries []string
	Ranking   dashboard.RankingView
	Summaries []dashboard.CountrySummary
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexData{
		Overview:  s.service.Overview(),
		Countries: s.service.CountryOptions(),
		Ranking:   s.service.Ranking(domain.PollutantAQI, 0),
		Summaries: s.service.Countries(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "dashboard.html", data); err != nil {
		s.logger.Error("render dashboard", "error", err)
	}
}

func (s *Server) handleOverview(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.service.Overview())
}

func (s *Server) handleCountries(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.service.Countries())
}

func (s *Server) handleRankings(w http.ResponseWriter, r *http.Request) {
	p, err := domain.ParsePollutant(r.URL.Query().Get("pollutant"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be a positive integer"})
			return
		}
	}

	writeJSON(w, http.StatusOK, s.service.Ranking(p, limit))
}

func (s *Server) handleDistribution(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.Distribution(r.URL.Query().Get("country")))
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.Profile(r.URL.Query().Get("country")))
}

func (s *Server) handleNarrative(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.Narrative(r.URL.Query().Get("country")))
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.service.MapMarkers(r.Context()))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
