package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForAQI(t *testing.T) {
	tests := []struct {
		name     string
		aqi      int
		expected Level
	}{
		{"zero", 0, LevelGood},
		{"good upper bound", 50, LevelGood},
		{"moderate lower bound", 51, LevelModerate},
		{"moderate upper bound", 100, LevelModerate},
		{"sensitive upper bound", 150, LevelSensitive},
		{"unhealthy upper bound", 200, LevelUnhealthy},
		{"very unhealthy upper bound", 300, LevelVeryUnhealthy},
		{"hazardous", 301, LevelHazardous},
		{"extreme", 500, LevelHazardous},
		{"missing sentinel", Missing, LevelUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LevelForAQI(tt.aqi))
		})
	}
}

// Colors and health text must bucket identically for every AQI in range,
// since both derive from the same Level.
func TestBucketConsistency(t *testing.T) {
	for aqi := 0; aqi <= 500; aqi++ {
		level := LevelForAQI(aqi)
		assert.Equal(t, level.Color(), LevelForAQI(aqi).Color(), "aqi %d", aqi)
		assert.Equal(t, level.Health(), LevelForAQI(aqi).Health(), "aqi %d", aqi)
		assert.NotEqual(t, LevelUnknown, level, "aqi %d", aqi)
		assert.NotEmpty(t, level.Health().Impact, "aqi %d", aqi)
		assert.NotEmpty(t, level.Health().Advice, "aqi %d", aqi)
	}
}

func TestLevelForCategory(t *testing.T) {
	for _, l := range Levels() {
		assert.Equal(t, l, LevelForCategory(l.Label()))
	}
	assert.Equal(t, LevelUnknown, LevelForCategory("Apocalyptic"))
	assert.Equal(t, LevelUnknown, LevelForCategory(""))
}

func TestCategoryColor(t *testing.T) {
	assert.Equal(t, "#00e400", CategoryColor("Good"))
	assert.Equal(t, "#7e0023", CategoryColor("Hazardous"))
	assert.Equal(t, "#9e9e9e", CategoryColor("not a category"))
}

func TestAverageAQI(t *testing.T) {
	tests := []struct {
		name     string
		records  []Record
		expected int
	}{
		{"empty", nil, 0},
		{"two records", []Record{{AQI: 10}, {AQI: 20}}, 15},
		{"rounds to nearest", []Record{{AQI: 10}, {AQI: 21}}, 16},
		{"single record", []Record{{AQI: 42}}, 42},
		{"missing excluded", []Record{{AQI: 10}, {AQI: Missing}, {AQI: 20}}, 15},
		{"all missing", []Record{{AQI: Missing}, {AQI: Missing}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AverageAQI(tt.records))
		})
	}
}

func TestPollutantValueOf(t *testing.T) {
	r := Record{
		AQI:   100,
		CO:    SubIndex{Value: 1},
		Ozone: SubIndex{Value: 2},
		NO2:   SubIndex{Value: 3},
		PM25:  SubIndex{Value: 4},
	}

	assert.Equal(t, 100, PollutantAQI.ValueOf(r))
	assert.Equal(t, 1, PollutantCO.ValueOf(r))
	assert.Equal(t, 2, PollutantOzone.ValueOf(r))
	assert.Equal(t, 3, PollutantNO2.ValueOf(r))
	assert.Equal(t, 4, PollutantPM25.ValueOf(r))
}

func TestParsePollutant(t *testing.T) {
	tests := []struct {
		input    string
		expected Pollutant
		wantErr  bool
	}{
		{"", PollutantAQI, false},
		{"aqi", PollutantAQI, false},
		{"pm25", PollutantPM25, false},
		{"pm2.5", PollutantPM25, false},
		{"co", PollutantCO, false},
		{"no2", PollutantNO2, false},
		{"ozone", PollutantOzone, false},
		{"o3", PollutantOzone, false},
		{"lead", PollutantAQI, true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			p, err := ParsePollutant(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}
}
