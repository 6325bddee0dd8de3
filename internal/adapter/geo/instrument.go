package geo

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentedLocator counts lookup outcomes on a Prometheus counter.
type InstrumentedLocator struct {
	inner   Locator
	lookups *prometheus.CounterVec // label: outcome
}

// NewInstrumentedLocator wraps a locator with outcome counting.
func NewInstrumentedLocator(inner Locator, lookups *prometheus.CounterVec) *InstrumentedLocator {
	return &InstrumentedLocator{inner: inner, lookups: lookups}
}

func (l *InstrumentedLocator) Locate(ctx context.Context, city, country string) (Coordinates, error) {
	coords, err := l.inner.Locate(ctx, city, country)
	switch {
	case err == nil:
		l.lookups.WithLabelValues("found").Inc()
	case errors.Is(err, ErrNotFound):
		l.lookups.WithLabelValues("miss").Inc()
	default:
		l.lookups.WithLabelValues("error").Inc()
	}
	return coords, err
}
