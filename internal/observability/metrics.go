package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus gauges, counters, and histograms for the
// dashboard service.
type Metrics struct {
	DatasetRows    prometheus.Gauge
	DatasetSkipped prometheus.Gauge

	HTTPRequests *prometheus.CounterVec   // labels: path, status
	HTTPDuration *prometheus.HistogramVec // labels: path

	GeocodeLookups *prometheus.CounterVec // labels: outcome={found,miss,error}
	GeocodeEnabled prometheus.Gauge
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		DatasetRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "aq_dashboard",
			Name:      "dataset_rows",
			Help:      "Well-formed records parsed from the embedded dataset.",
		}),
		DatasetSkipped: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "aq_dashboard",
			Name:      "dataset_skipped_rows",
			Help:      "Malformed rows dropped while parsing the embedded dataset.",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aq_dashboard",
			Name:      "http_requests_total",
			Help:      "Dashboard HTTP requests by path and status code.",
		}, []string{"path", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "aq_dashboard",
			Name:      "http_request_duration_seconds",
			Help:      "Dashboard HTTP request duration.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}, []string{"path"}),
		GeocodeLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aq_dashboard",
			Name:      "geocode_lookups_total",
			Help:      "Coordinate lookups for map markers by outcome.",
		}, []string{"outcome"}),
		GeocodeEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "aq_dashboard",
			Name:      "geocode_enabled",
			Help:      "1 when the Mapbox locator is enabled, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.DatasetRows,
		m.DatasetSkipped,
		m.HTTPRequests,
		m.HTTPDuration,
		m.GeocodeLookups,
		m.GeocodeEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		DatasetRows:    prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "aq_dashboard", Name: "dataset_rows"}),
		DatasetSkipped: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "aq_dashboard", Name: "dataset_skipped_rows"}),
		HTTPRequests:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "aq_dashboard", Name: "http_requests_total"}, []string{"path", "status"}),
		HTTPDuration:   prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "aq_dashboard", Name: "http_request_duration_seconds"}, []string{"path"}),
		GeocodeLookups: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "aq_dashboard", Name: "geocode_lookups_total"}, []string{"outcome"}),
		GeocodeEnabled: prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "aq_dashboard", Name: "geocode_enabled"}),
	}
}
