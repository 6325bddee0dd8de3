package dashboard

import "github.com/cityaq/aq-dashboard/internal/domain"

// ChartConfig is a render-ready chart description. The browser consumes it
// unchanged, so field names match what the chart layer expects.
type ChartConfig struct {
	ChartType  string        `json:"chartType"`
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// ChartSeries is one data series in a chart.
type ChartSeries struct {
	Name string       `json:"name"`
	Data []ChartPoint `json:"data"`
}

// ChartPoint is a single labeled value with its display color.
type ChartPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// aqiPoint builds a chart point colored by the AQI bucket of its value.
func aqiPoint(label string, value int) ChartPoint {
	return ChartPoint{
		Label: label,
		Value: value,
		Color: domain.LevelForAQI(value).Color(),
	}
}

func barChart(title, xAxis, yAxis, series string, points []ChartPoint) ChartConfig {
	return ChartConfig{
		ChartType: "bar",
		Title:     title,
		XAxis:     xAxis,
		YAxis:     yAxis,
		Series:    []ChartSeries{{Name: series, Data: points}},
		ShowGrid:  true,
	}
}

func pieChart(title, series string, points []ChartPoint) ChartConfig {
	return ChartConfig{
		ChartType:  "pie",
		Title:      title,
		Series:     []ChartSeries{{Name: series, Data: points}},
		ShowLegend: true,
	}
}
