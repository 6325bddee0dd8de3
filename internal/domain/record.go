package domain

import "fmt"

// Missing is the sentinel stored when an integer CSV field fails to parse.
// AQI values are semantically non-negative, so a negative sentinel cannot
// collide with real data.
const Missing = -1

// SubIndex is a per-pollutant AQI sub-index with its stored category label.
type SubIndex struct {
	Value    int    `json:"value"`
	Category string `json:"category"`
}

// Record is one monitored city at one point in time.
// Records are parsed once at startup and never mutated.
type Record struct {
	Country  string   `json:"country"`
	City     string   `json:"city"`
	AQI      int      `json:"aqi"`
	Category string   `json:"category"`
	CO       SubIndex `json:"co"`
	Ozone    SubIndex `json:"ozone"`
	NO2      SubIndex `json:"no2"`
	PM25     SubIndex `json:"pm25"`
}

// Pollutant selects which field of a Record a ranking or average reads.
type Pollutant int

const (
	PollutantAQI Pollutant = iota
	PollutantPM25
	PollutantCO
	PollutantNO2
	PollutantOzone
)

// Pollutants lists all pollutant selectors in display order.
func Pollutants() []Pollutant {
	return []Pollutant{PollutantAQI, PollutantPM25, PollutantCO, PollutantNO2, PollutantOzone}
}

// Label returns the human-readable name for the pollutant.
func (p Pollutant) Label() string {
	switch p {
	case PollutantAQI:
		return "AQI"
	case PollutantPM25:
		return "PM2.5"
	case PollutantCO:
		return "CO"
	case PollutantNO2:
		return "NO2"
	case PollutantOzone:
		return "Ozone"
	default:
		return "AQI"
	}
}

// ValueOf reads the pollutant's sub-index (or the overall AQI) from a record.
func (p Pollutant) ValueOf(r Record) int {
	switch p {
	case PollutantAQI:
		return r.AQI
	case PollutantPM25:
		return r.PM25.Value
	case PollutantCO:
		return r.CO.Value
	case PollutantNO2:
		return r.NO2.Value
	case PollutantOzone:
		return r.Ozone.Value
	default:
		return r.AQI
	}
}

// ParsePollutant maps an API query value to a Pollutant.
// Accepts the short lowercase forms used in request parameters.
func ParsePollutant(s string) (Pollutant, error) {
	switch s {
	case "", "aqi":
		return PollutantAQI, nil
	case "pm25", "pm2.5":
		return PollutantPM25, nil
	case "co":
		return PollutantCO, nil
	case "no2":
		return PollutantNO2, nil
	case "ozone", "o3":
		return PollutantOzone, nil
	default:
		return PollutantAQI, fmt.Errorf("unknown pollutant %q", s)
	}
}
