// Package dashboard composes aggregates into the view models the dashboard
// renders: chart configurations, map markers, and narrative text.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/cityaq/aq-dashboard/internal/adapter/geo"
	"github.com/cityaq/aq-dashboard/internal/aggregate"
	"github.com/cityaq/aq-dashboard/internal/domain"
)

// Service answers dashboard queries over the loaded record set. All methods
// recompute from the records on every call; the dataset is small enough
// that derived views are never cached.
type Service struct {
	records     []domain.Record
	locator     geo.Locator
	logger      *slog.Logger
	rankingSize int
}

// NewService creates a dashboard service over an immutable record set.
func NewService(records []domain.Record, locator geo.Locator, rankingSize int, logger *slog.Logger) *Service {
	return &Service{
		records:     records,
		locator:     locator,
		logger:      logger,
		rankingSize: rankingSize,
	}
}

// Overview is the headline summary for the whole dataset.
type Overview struct {
	Cities       int                       `json:"cities"`
	Countries    int                       `json:"countries"`
	AverageAQI   int                       `json:"averageAqi"`
	Category     string                    `json:"category"`
	Color        string                    `json:"color"`
	Health       domain.HealthImplications `json:"health"`
	Distribution map[string]int            `json:"distribution"`
}

// Overview summarizes all records: global mean AQI, its derived bucket and
// health text, and the stored-category distribution.
func (s *Service) Overview() Overview {
	mean := domain.AverageAQI(s.records)
	level := domain.LevelForAQI(mean)
	return Overview{
		Cities:       len(s.records),
		Countries:    len(aggregate.Countries(s.records)),
		AverageAQI:   mean,
		Category:     level.Label(),
		Color:        level.Color(),
		Health:       level.Health(),
		Distribution: aggregate.CategoryDistribution(s.records),
	}
}

// CountryOptions lists country names for the selection dropdown.
func (s *Service) CountryOptions() []string {
	return aggregate.Countries(s.records)
}

// RankedCity is one row of a pollutant ranking table.
type RankedCity struct {
	Rank     int    `json:"rank"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Value    int    `json:"value"`
	Category string `json:"category"`
	Color    string `json:"color"`
}

// RankingView is the top-N most polluted cities for one pollutant.
type RankingView struct {
	Pollutant string       `json:"pollutant"`
	Rows      []RankedCity `json:"rows"`
	Chart     ChartConfig  `json:"chart"`
}

// Ranking returns the cities with the highest value for the pollutant.
// A limit of 0 uses the configured ranking size.
func (s *Service) Ranking(p domain.Pollutant, limit int) RankingView {
	if limit <= 0 {
		limit = s.rankingSize
	}
	top := aggregate.TopN(s.records, p, limit)

	rows := make([]RankedCity, 0, len(top))
	points := make([]ChartPoint, 0, len(top))
	for i, r := range top {
		v := p.ValueOf(r)
		level := domain.LevelForAQI(v)
		rows = append(rows, RankedCity{
			Rank:     i + 1,
			City:     r.City,
			Country:  r.Country,
			Value:    v,
			Category: level.Label(),
			Color:    level.Color(),
		})
		points = append(points, aqiPoint(r.City, v))
	}

	title := fmt.Sprintf("Most polluted cities by %s", p.Label())
	return RankingView{
		Pollutant: p.Label(),
		Rows:      rows,
		Chart:     barChart(title, "City", p.Label(), p.Label(), points),
	}
}

// CountrySummary is one country's aggregate row.
type CountrySummary struct {
	Country string          `json:"country"`
	Count   int             `json:"count"`
	Mean    int             `json:"mean"`
	Color   string          `json:"color"`
	Top     []domain.Record `json:"top"`
}

// Countries returns per-country aggregates, colored by each country's mean
// AQI bucket, ordered worst mean first.
func (s *Service) Countries() []CountrySummary {
	stats := aggregate.ByCountry(s.records)
	summaries := make([]CountrySummary, 0, len(stats))
	for _, st := range stats {
		summaries = append(summaries, CountrySummary{
			Country: st.Country,
			Count:   st.Count,
			Mean:    st.Mean,
			Color:   domain.LevelForAQI(st.Mean).Color(),
			Top:     st.Top,
		})
	}
	// Worst air first; ByCountry order is stable for ties.
	sort.SliceStable(summaries, func(i, j int) bool { return summaries[i].Mean > summaries[j].Mean })
	return summaries
}

// Distribution returns a pie chart of stored category labels for a country,
// or for all records when country is empty. Only categories present in the
// subset appear.
func (s *Service) Distribution(country string) ChartConfig {
	subset := aggregate.FilterByCountry(s.records, country)
	dist := aggregate.CategoryDistribution(subset)

	// Fixed severity order keeps pie slices deterministic.
	var points []ChartPoint
	for _, l := range domain.Levels() {
		if n, ok := dist[l.Label()]; ok {
			points = append(points, ChartPoint{Label: l.Label(), Value: n, Color: l.Color()})
			delete(dist, l.Label())
		}
	}
	for label, n := range dist { // labels outside the closed set, if any
		points = append(points, ChartPoint{Label: label, Value: n, Color: domain.CategoryColor(label)})
	}

	title := "AQI category distribution"
	if country != "" {
		title += " in " + country
	}
	return pieChart(title, "Cities", points)
}

// Profile returns a bar chart of the five pollutant averages for a country,
// or for all records when country is empty.
func (s *Service) Profile(country string) ChartConfig {
	subset := aggregate.FilterByCountry(s.records, country)
	profile := aggregate.PollutantProfile(subset)

	points := make([]ChartPoint, 0, len(profile))
	for _, pa := range profile {
		points = append(points, aqiPoint(pa.Label, pa.Value))
	}

	title := "Average pollutant levels"
	if country != "" {
		title += " in " + country
	}
	return barChart(title, "Pollutant", "AQI", "Average", points)
}

// Narrative is the prose summary shown beside the charts.
type Narrative struct {
	Country    string                    `json:"country,omitempty"`
	Cities     int                       `json:"cities"`
	AverageAQI int                       `json:"averageAqi"`
	Category   string                    `json:"category"`
	Color      string                    `json:"color"`
	Health     domain.HealthImplications `json:"health"`
}

// Narrative summarizes a country's air quality with health implication
// text. The derived bucket, not the stored labels, drives the text. An
// unknown country yields the LevelUnknown narrative.
func (s *Service) Narrative(country string) Narrative {
	subset := aggregate.FilterByCountry(s.records, country)

	level := domain.LevelUnknown
	mean := 0
	if len(subset) > 0 {
		mean = domain.AverageAQI(subset)
		level = domain.LevelForAQI(mean)
	}
	return Narrative{
		Country:    country,
		Cities:     len(subset),
		AverageAQI: mean,
		Category:   level.Label(),
		Color:      level.Color(),
		Health:     level.Health(),
	}
}

// Marker is one city on the dashboard map.
type Marker struct {
	City     string  `json:"city"`
	Country  string  `json:"country"`
	AQI      int     `json:"aqi"`
	Category string  `json:"category"`
	Color    string  `json:"color"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

// MapMarkers resolves coordinates for every record. Cities the locator
// cannot place are left off the map rather than failing the whole view.
func (s *Service) MapMarkers(ctx context.Context) []Marker {
	markers := make([]Marker, 0, len(s.records))
	for _, r := range s.records {
		coords, err := s.locator.Locate(ctx, r.City, r.Country)
		if err != nil {
			s.logger.Debug("skipping map marker", "city", r.City, "country", r.Country, "error", err)
			continue
		}
		level := domain.LevelForAQI(r.AQI)
		markers = append(markers, Marker{
			City:     r.City,
			Country:  r.Country,
			AQI:      r.AQI,
			Category: level.Label(),
			Color:    level.Color(),
			Lat:      coords.Lat,
			Lon:      coords.Lon,
		})
	}
	return markers
}
