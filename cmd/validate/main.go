// Command validate performs integrity checks over the embedded dataset:
// parse completeness, closed-set category labels, sane value ranges, and
// map coordinate coverage. Stored-vs-derived bucket disagreements are
// reported but tolerated, since the source data never promised agreement.
//
// Usage:
//
//	go run ./cmd/validate
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cityaq/aq-dashboard/internal/adapter/geo"
	"github.com/cityaq/aq-dashboard/internal/dataset"
	"github.com/cityaq/aq-dashboard/internal/domain"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "FAIL:", err)
		os.Exit(1)
	}
}

func run() error {
	d := dataset.Load()
	if d.Rows() == 0 {
		return fmt.Errorf("embedded dataset parsed to zero records")
	}
	if d.Skipped() > 0 {
		return fmt.Errorf("embedded dataset has %d malformed rows", d.Skipped())
	}

	locator := geo.NewStaticLocator()
	ctx := context.Background()

	labelMismatches := 0
	for _, r := range d.Records() {
		where := fmt.Sprintf("%s, %s", r.City, r.Country)

		if r.Country == "" || r.City == "" {
			return fmt.Errorf("record with empty country or city: %+v", r)
		}
		if domain.LevelForCategory(r.Category) == domain.LevelUnknown {
			return fmt.Errorf("%s: category %q outside the closed set", where, r.Category)
		}
		for _, p := range domain.Pollutants() {
			if v := p.ValueOf(r); v < 0 && v != domain.Missing {
				return fmt.Errorf("%s: negative %s value %d", where, p.Label(), v)
			}
		}
		if _, err := locator.Locate(ctx, r.City, r.Country); err != nil {
			return fmt.Errorf("%s: no coordinates in the embedded table", where)
		}
		if domain.LevelForAQI(r.AQI).Label() != r.Category {
			labelMismatches++
			fmt.Printf("note: %s stores %q but AQI %d derives %q\n",
				where, r.Category, r.AQI, domain.LevelForAQI(r.AQI).Label())
		}
	}

	fmt.Printf("OK: %d records, %d coordinate entries, %d stored/derived label disagreements\n",
		d.Rows(), locator.Size(), labelMismatches)
	return nil
}
