package geo

import (
	"context"
	_ "embed"
	"strconv"
	"strings"
)

//go:embed data/city_coords.csv
var coordsCSV string

// StaticLocator answers lookups from an embedded city coordinate table.
// It covers every city in the embedded dataset; anything else returns
// ErrNotFound so a fallback locator can take over.
type StaticLocator struct {
	coords map[string]Coordinates
}

// NewStaticLocator parses the embedded coordinate table.
func NewStaticLocator() *StaticLocator {
	return newStaticLocator(coordsCSV)
}

func newStaticLocator(text string) *StaticLocator {
	coords := make(map[string]Coordinates)
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for _, line := range lines[1:] { // skip header
		fields := strings.Split(strings.TrimRight(line, "\r"), ",")
		if len(fields) != 4 {
			continue
		}
		lat, errLat := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		lon, errLon := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
		if errLat != nil || errLon != nil {
			continue
		}
		coords[coordKey(fields[1], fields[0])] = Coordinates{Lat: lat, Lon: lon}
	}
	return &StaticLocator{coords: coords}
}

// Locate returns the table entry for the city, or ErrNotFound.
func (s *StaticLocator) Locate(_ context.Context, city, country string) (Coordinates, error) {
	if c, ok := s.coords[coordKey(city, country)]; ok {
		return c, nil
	}
	return Coordinates{}, ErrNotFound
}

// Size is the number of cities in the table.
func (s *StaticLocator) Size() int { return len(s.coords) }

func coordKey(city, country string) string {
	return strings.ToLower(strings.TrimSpace(city)) + "|" + strings.ToLower(strings.TrimSpace(country))
}
