// Package dataset owns the embedded air quality CSV and its one-time load.
//
// The CSV is compiled into the binary; Load parses it once at startup and
// the resulting records stay immutable for the life of the process. All
// aggregation takes the records as an explicit argument, so the embedded
// source is an injection point rather than hidden global state.
package dataset

import (
	"context"
	_ "embed"
	"errors"
	"time"

	"github.com/cityaq/aq-dashboard/internal/domain"
)

//go:embed data/air_quality.csv
var rawCSV string

// Dataset is the parsed, read-only record table.
type Dataset struct {
	records  []domain.Record
	skipped  int
	loadedAt time.Time
}

// Load parses the embedded CSV. Malformed rows are dropped and counted.
func Load() *Dataset {
	return New(rawCSV)
}

// New parses arbitrary CSV text into a Dataset. Tests use this to avoid
// depending on the embedded data.
func New(text string) *Dataset {
	records, skipped := domain.ParseRecords(text)
	return &Dataset{
		records:  records,
		skipped:  skipped,
		loadedAt: clock.Now(),
	}
}

// Records returns the parsed rows in input order. Callers treat the slice
// as read-only.
func (d *Dataset) Records() []domain.Record { return d.records }

// Rows is the number of well-formed records.
func (d *Dataset) Rows() int { return len(d.records) }

// Skipped is the number of malformed rows dropped during parsing.
func (d *Dataset) Skipped() int { return d.skipped }

// LoadedAt is when the dataset was parsed.
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }

// CheckReadiness returns nil once the dataset holds at least one record,
// or an error describing why the service cannot serve traffic.
func (d *Dataset) CheckReadiness(_ context.Context) error {
	if len(d.records) == 0 {
		return errors.New("dataset is empty")
	}
	return nil
}
