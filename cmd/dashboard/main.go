// Command dashboard serves the air quality dashboard over HTTP: the page
// itself, read-only JSON aggregates derived from the embedded dataset, and
// health/metrics endpoints.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/cityaq/aq-dashboard/internal/adapter/geo"
	httpadapter "github.com/cityaq/aq-dashboard/internal/adapter/http"
	"github.com/cityaq/aq-dashboard/internal/config"
	"github.com/cityaq/aq-dashboard/internal/dashboard"
	"github.com/cityaq/aq-dashboard/internal/dataset"
	"github.com/cityaq/aq-dashboard/internal/observability"
)

func main() {
	_ = godotenv.Load() // optional .env for local development

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	data := dataset.Load()
	metrics.DatasetRows.Set(float64(data.Rows()))
	metrics.DatasetSkipped.Set(float64(data.Skipped()))
	logger.Info("dataset loaded", "rows", data.Rows(), "skipped", data.Skipped())

	// Coordinates come from the embedded table; Mapbox is a fallback for
	// cities it does not cover (feature-flagged via MAPBOX_TOKEN).
	var locator geo.Locator = geo.NewStaticLocator()
	if cfg.MapboxEnabled {
		client := geo.NewClient(cfg.MapboxToken, cfg.MapboxTimeout, logger)
		locator = geo.Fallback{locator, geo.NewCachedLocator(client, cfg.MapboxCacheSize)}
		metrics.GeocodeEnabled.Set(1)
		logger.Info("mapbox locator enabled", "cache_size", cfg.MapboxCacheSize, "timeout", cfg.MapboxTimeout)
	}
	instrumented := geo.NewInstrumentedLocator(locator, metrics.GeocodeLookups)

	service := dashboard.NewService(data.Records(), instrumented, cfg.RankingSize, logger)

	srv, err := httpadapter.NewServer(cfg.HTTPAddr, service, data, metrics, logger)
	if err != nil {
		logger.Error("failed to build http server", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
