package domain

import "math"

// Level is one of the six AQI severity buckets, plus LevelUnknown for
// category labels outside the closed set.
type Level int

const (
	LevelUnknown Level = iota
	LevelGood
	LevelModerate
	LevelSensitive // Unhealthy for Sensitive Groups
	LevelUnhealthy
	LevelVeryUnhealthy
	LevelHazardous
)

// levelBounds is the single source of bucket boundaries. Both colors and
// health implications derive from the Level selected here, so the cutoffs
// cannot drift apart.
var levelBounds = []struct {
	max   int
	level Level
}{
	{50, LevelGood},
	{100, LevelModerate},
	{150, LevelSensitive},
	{200, LevelUnhealthy},
	{300, LevelVeryUnhealthy},
}

// LevelForAQI buckets a numeric AQI using inclusive upper bounds.
// The Missing sentinel (or any negative value) maps to LevelUnknown.
func LevelForAQI(aqi int) Level {
	if aqi < 0 {
		return LevelUnknown
	}
	for _, b := range levelBounds {
		if aqi <= b.max {
			return b.level
		}
	}
	return LevelHazardous
}

// Levels lists the six buckets in ascending severity order.
func Levels() []Level {
	return []Level{LevelGood, LevelModerate, LevelSensitive, LevelUnhealthy, LevelVeryUnhealthy, LevelHazardous}
}

// Label returns the category text for the level, matching the labels stored
// in the dataset's "AQI Category" columns.
func (l Level) Label() string {
	switch l {
	case LevelGood:
		return "Good"
	case LevelModerate:
		return "Moderate"
	case LevelSensitive:
		return "Unhealthy for Sensitive Groups"
	case LevelUnhealthy:
		return "Unhealthy"
	case LevelVeryUnhealthy:
		return "Very Unhealthy"
	case LevelHazardous:
		return "Hazardous"
	default:
		return "Unknown"
	}
}

// Color returns the display color token for the level (US EPA palette).
// LevelUnknown maps to a neutral gray.
func (l Level) Color() string {
	switch l {
	case LevelGood:
		return "#00e400"
	case LevelModerate:
		return "#ffde33"
	case LevelSensitive:
		return "#ff9933"
	case LevelUnhealthy:
		return "#cc0033"
	case LevelVeryUnhealthy:
		return "#660099"
	case LevelHazardous:
		return "#7e0023"
	default:
		return "#9e9e9e"
	}
}

// HealthImplications is the narrative pair shown for an AQI level.
type HealthImplications struct {
	Impact string `json:"impact"`
	Advice string `json:"advice"`
}

// Health returns the health impact and cautionary advice for the level.
func (l Level) Health() HealthImplications {
	switch l {
	case LevelGood:
		return HealthImplications{
			Impact: "Air quality is satisfactory, and air pollution poses little or no risk.",
			Advice: "Enjoy your usual outdoor activities.",
		}
	case LevelModerate:
		return HealthImplications{
			Impact: "Air quality is acceptable; some pollutants may be a moderate concern for a small number of unusually sensitive people.",
			Advice: "Unusually sensitive people should consider reducing prolonged outdoor exertion.",
		}
	case LevelSensitive:
		return HealthImplications{
			Impact: "Members of sensitive groups may experience health effects; the general public is less likely to be affected.",
			Advice: "People with respiratory or heart conditions, children, and older adults should limit prolonged outdoor exertion.",
		}
	case LevelUnhealthy:
		return HealthImplications{
			Impact: "Everyone may begin to experience health effects; sensitive groups may experience more serious effects.",
			Advice: "Everyone should limit prolonged outdoor exertion; sensitive groups should avoid it.",
		}
	case LevelVeryUnhealthy:
		return HealthImplications{
			Impact: "Health alert: the risk of health effects is increased for everyone.",
			Advice: "Everyone should avoid prolonged outdoor exertion and move activities indoors.",
		}
	case LevelHazardous:
		return HealthImplications{
			Impact: "Health warning of emergency conditions: everyone is more likely to be affected.",
			Advice: "Everyone should avoid all outdoor activity and stay indoors with filtered air.",
		}
	default:
		return HealthImplications{
			Impact: "No air quality information is available.",
			Advice: "Check back once data is available for this location.",
		}
	}
}

// LevelForCategory maps a stored category label to its Level.
// Labels outside the closed six-value set map to LevelUnknown.
func LevelForCategory(label string) Level {
	for _, l := range Levels() {
		if l.Label() == label {
			return l
		}
	}
	return LevelUnknown
}

// CategoryColor is the label-to-color contract shared with renderers.
// Unrecognized labels get the neutral gray of LevelUnknown.
func CategoryColor(label string) string {
	return LevelForCategory(label).Color()
}

// AverageAQI returns the rounded arithmetic mean of the overall AQI across
// the records. Missing values are excluded; an empty or all-missing input
// returns 0.
func AverageAQI(records []Record) int {
	sum, n := 0, 0
	for _, r := range records {
		if r.AQI == Missing {
			continue
		}
		sum += r.AQI
		n++
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}
