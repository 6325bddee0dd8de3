// Package geo supplies map-marker coordinates for monitored cities.
//
// The dataset has no latitude or longitude columns, so the dashboard's map
// needs a separate source. The default is an embedded static table, which
// keeps the binary self-contained and offline. A Mapbox client can be
// enabled by configuration for cities the table does not cover.
package geo

import (
	"context"
	"errors"
)

// ErrNotFound reports that no coordinates are known for a city.
var ErrNotFound = errors.New("no coordinates for city")

// Coordinates is a WGS-84 latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Locator resolves a city and country to coordinates.
type Locator interface {
	Locate(ctx context.Context, city, country string) (Coordinates, error)
}

// Fallback tries each locator in order, moving on only when the previous
// one had no answer. Other errors stop the chain.
type Fallback []Locator

func (f Fallback) Locate(ctx context.Context, city, country string) (Coordinates, error) {
	for _, l := range f {
		coords, err := l.Locate(ctx, city, country)
		if err == nil {
			return coords, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return Coordinates{}, err
		}
	}
	return Coordinates{}, ErrNotFound
}
