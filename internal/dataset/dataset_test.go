package dataset

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityaq/aq-dashboard/internal/domain"
)

func TestLoad_EmbeddedDataset(t *testing.T) {
	frozen := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(frozen))
	t.Cleanup(func() { SetClock(nil) })

	d := Load()

	assert.Zero(t, d.Skipped(), "embedded dataset must be well-formed")
	require.Greater(t, d.Rows(), 50)
	assert.Equal(t, frozen, d.LoadedAt())

	for _, r := range d.Records() {
		assert.NotEmpty(t, r.Country)
		assert.NotEmpty(t, r.City)
		assert.GreaterOrEqual(t, r.AQI, 0)
		assert.NotEqual(t, domain.LevelUnknown, domain.LevelForCategory(r.Category),
			"stored category %q for %s is outside the closed set", r.Category, r.City)
	}
}

func TestNew_CountsSkippedRows(t *testing.T) {
	text := "Country,City,AQI Value,AQI Category,CO AQI Value,CO AQI Category,Ozone AQI Value,Ozone AQI Category,NO2 AQI Value,NO2 AQI Category,PM2.5 AQI Value,PM2.5 AQI Category\n" +
		"Peru,Lima,83,Moderate,2,Good,32,Good,9,Good,83,Moderate\n" +
		"short,row\n"

	d := New(text)

	assert.Equal(t, 1, d.Rows())
	assert.Equal(t, 1, d.Skipped())
	assert.Equal(t, "Lima", d.Records()[0].City)
}
