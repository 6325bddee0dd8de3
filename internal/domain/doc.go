// Package domain models city-level air quality index (AQI) records.
//
// # Data Source
//
// Records originate from a fixed global air-pollution CSV export with one
// row per monitored city. The dataset is embedded into the binary at build
// time (see the dataset package); nothing is ingested at runtime.
//
// # CSV Conventions
//
// Twelve columns, comma separated, header row first:
//
//	Country, City,
//	AQI Value, AQI Category,
//	CO AQI Value, CO AQI Category,
//	Ozone AQI Value, Ozone AQI Category,
//	NO2 AQI Value, NO2 AQI Category,
//	PM2.5 AQI Value, PM2.5 AQI Category
//
// Columns are matched by header name, not position. Any header containing
// "Value" is integer typed; everything else stays text. Rows whose field
// count differs from the header are dropped silently — the dataset is fixed
// and trusted, so lenient ingestion is preferred over per-row diagnostics.
// An integer field that fails to parse yields the [Missing] sentinel instead
// of an error; aggregation excludes the sentinel from means and rankings.
//
// # AQI Buckets
//
// The numeric AQI maps to one of six severity levels via inclusive upper
// bounds (US EPA breakpoints):
//
//	  0–50  Good
//	 51–100 Moderate
//	101–150 Unhealthy for Sensitive Groups
//	151–200 Unhealthy
//	201–300 Very Unhealthy
//	  >300  Hazardous
//
// [LevelForAQI] is the single source of these boundaries; colors and health
// implication text are methods on the resulting [Level], so the three can
// never disagree. The stored "AQI Category" text is not guaranteed to match
// the derived level — display surfaces trust the derived level, and the
// stored label is used only for category distribution counts.
package domain
