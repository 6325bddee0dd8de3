// Package aggregate derives dashboard statistics from air quality records.
//
// Every function is pure: it takes the record slice explicitly, computes a
// fresh result, and keeps no state between calls. The dataset is a few
// hundred rows, so recomputation per request is cheaper than any cache
// would be worth.
package aggregate

import (
	"math"
	"sort"

	"github.com/cityaq/aq-dashboard/internal/domain"
)

// TopPerCountry is how many worst cities each CountryStats carries.
const TopPerCountry = 3

// CountryStats summarizes all records for one country.
type CountryStats struct {
	Country string          `json:"country"`
	Count   int             `json:"count"`
	Sum     int             `json:"sum"`
	Mean    int             `json:"mean"`
	Top     []domain.Record `json:"top"`
}

// ByCountry groups records by country, in first-appearance order, and
// computes count, sum, rounded mean, and the top cities by descending AQI.
// Ties keep original input order. Missing AQI values are excluded from sum
// and mean but still counted.
func ByCountry(records []domain.Record) []CountryStats {
	groups := make(map[string][]domain.Record)
	var order []string
	for _, r := range records {
		if _, seen := groups[r.Country]; !seen {
			order = append(order, r.Country)
		}
		groups[r.Country] = append(groups[r.Country], r)
	}

	stats := make([]CountryStats, 0, len(order))
	for _, country := range order {
		group := groups[country]
		sum := 0
		for _, r := range group {
			if r.AQI != domain.Missing {
				sum += r.AQI
			}
		}
		stats = append(stats, CountryStats{
			Country: country,
			Count:   len(group),
			Sum:     sum,
			Mean:    domain.AverageAQI(group),
			Top:     TopN(group, domain.PollutantAQI, TopPerCountry),
		})
	}
	return stats
}

// TopN returns the n records with the highest value for the selected
// pollutant, descending. The sort is stable, so tied records keep their
// original input order. Records whose field holds the Missing sentinel are
// excluded from the ranking.
func TopN(records []domain.Record, p domain.Pollutant, n int) []domain.Record {
	ranked := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if p.ValueOf(r) != domain.Missing {
			ranked = append(ranked, r)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return p.ValueOf(ranked[i]) > p.ValueOf(ranked[j])
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// CategoryDistribution counts records per stored "AQI Category" label.
// Only labels present in the input appear; nothing is zero-filled. Counts
// use the stored text as-is, even where it disagrees with the level derived
// from the numeric AQI.
func CategoryDistribution(records []domain.Record) map[string]int {
	dist := make(map[string]int)
	for _, r := range records {
		dist[r.Category]++
	}
	return dist
}

// PollutantAverage is one (label, value) pair of a pollutant profile.
type PollutantAverage struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// PollutantProfile computes rounded means for the overall AQI and the four
// pollutant sub-indices in a single pass, returned in fixed display order.
// Missing values are excluded per field; an empty input returns an empty
// profile.
func PollutantProfile(records []domain.Record) []PollutantAverage {
	if len(records) == 0 {
		return nil
	}

	pollutants := domain.Pollutants()
	sums := make([]int, len(pollutants))
	counts := make([]int, len(pollutants))
	for _, r := range records {
		for i, p := range pollutants {
			if v := p.ValueOf(r); v != domain.Missing {
				sums[i] += v
				counts[i]++
			}
		}
	}

	profile := make([]PollutantAverage, len(pollutants))
	for i, p := range pollutants {
		mean := 0
		if counts[i] > 0 {
			mean = int(math.Round(float64(sums[i]) / float64(counts[i])))
		}
		profile[i] = PollutantAverage{Label: p.Label(), Value: mean}
	}
	return profile
}

// FilterByCountry returns the subset of records for one country, preserving
// input order. An empty country returns the full input.
func FilterByCountry(records []domain.Record, country string) []domain.Record {
	if country == "" {
		return records
	}
	var subset []domain.Record
	for _, r := range records {
		if r.Country == country {
			subset = append(subset, r)
		}
	}
	return subset
}

// Countries lists distinct country names in first-appearance order.
func Countries(records []domain.Record) []string {
	seen := make(map[string]bool)
	var countries []string
	for _, r := range records {
		if !seen[r.Country] {
			seen[r.Country] = true
			countries = append(countries, r.Country)
		}
	}
	return countries
}
