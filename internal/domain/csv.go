package domain

import (
	"strconv"
	"strings"
)

// Column names as they appear in the dataset header.
const (
	colCountry       = "Country"
	colCity          = "City"
	colAQIValue      = "AQI Value"
	colAQICategory   = "AQI Category"
	colCOValue       = "CO AQI Value"
	colCOCategory    = "CO AQI Category"
	colOzoneValue    = "Ozone AQI Value"
	colOzoneCategory = "Ozone AQI Category"
	colNO2Value      = "NO2 AQI Value"
	colNO2Category   = "NO2 AQI Category"
	colPM25Value     = "PM2.5 AQI Value"
	colPM25Category  = "PM2.5 AQI Category"
)

// ParseRecords converts raw CSV text into records, preserving row order.
// The first line is the header and defines field positions by name. Rows
// whose field count differs from the header are dropped; the second return
// value counts them. The schema has no quoted or embedded-comma fields, so
// rows split on plain commas.
func ParseRecords(text string) ([]Record, int) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		return nil, 0
	}

	header := splitRow(lines[0])
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[h] = i
	}

	records := make([]Record, 0, len(lines)-1)
	skipped := 0
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitRow(line)
		if len(fields) != len(header) {
			skipped++
			continue
		}
		records = append(records, Record{
			Country:  textField(fields, cols, colCountry),
			City:     textField(fields, cols, colCity),
			AQI:      intField(fields, cols, colAQIValue),
			Category: textField(fields, cols, colAQICategory),
			CO: SubIndex{
				Value:    intField(fields, cols, colCOValue),
				Category: textField(fields, cols, colCOCategory),
			},
			Ozone: SubIndex{
				Value:    intField(fields, cols, colOzoneValue),
				Category: textField(fields, cols, colOzoneCategory),
			},
			NO2: SubIndex{
				Value:    intField(fields, cols, colNO2Value),
				Category: textField(fields, cols, colNO2Category),
			},
			PM25: SubIndex{
				Value:    intField(fields, cols, colPM25Value),
				Category: textField(fields, cols, colPM25Category),
			},
		})
	}
	return records, skipped
}

func splitRow(line string) []string {
	fields := strings.Split(strings.TrimRight(line, "\r"), ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

func textField(fields []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(fields) {
		return ""
	}
	return fields[i]
}

// intField parses a "... Value" column as base-10 integer, returning the
// Missing sentinel on failure rather than an error.
func intField(fields []string, cols map[string]int, name string) int {
	v, err := strconv.Atoi(textField(fields, cols, name))
	if err != nil {
		return Missing
	}
	return v
}
