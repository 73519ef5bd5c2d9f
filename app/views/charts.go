package views

import (
	"paylens/app/agg"
)

// Render-ready chart shapes consumed by the presentation layer. The
// backend never renders; it hands these to the frontend as JSON.

// ChartPoint is a single labeled value.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartSeries is one data series in a chart.
type ChartSeries struct {
	Name string       `json:"name"`
	Data []ChartPoint `json:"data"`
}

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType  string        `json:"chartType"` // "bar", "line", "pie"
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	ShowLegend bool          `json:"showLegend"`
}

// barFromGroupMeans renders group mean salaries as a single-series bar.
func barFromGroupMeans(title, xAxis string, stats []agg.GroupStat) *ChartConfig {
	data := make([]ChartPoint, 0, len(stats))
	for _, s := range stats {
		data = append(data, ChartPoint{Label: s.Category, Value: s.Mean})
	}
	return &ChartConfig{
		ChartType: "bar",
		Title:     title,
		XAxis:     xAxis,
		YAxis:     "Average Salary",
		Series:    []ChartSeries{{Name: "Average Salary", Data: data}},
	}
}

// barFromCounts renders category counts as a single-series bar.
func barFromCounts(title, xAxis string, counts []agg.CategoryCount) *ChartConfig {
	data := make([]ChartPoint, 0, len(counts))
	for _, c := range counts {
		data = append(data, ChartPoint{Label: c.Category, Value: float64(c.Count)})
	}
	return &ChartConfig{
		ChartType: "bar",
		Title:     title,
		XAxis:     xAxis,
		YAxis:     "Employees",
		Series:    []ChartSeries{{Name: "Employees", Data: data}},
	}
}

// pieFromCounts renders category counts as a pie.
func pieFromCounts(title string, counts []agg.CategoryCount) *ChartConfig {
	data := make([]ChartPoint, 0, len(counts))
	for _, c := range counts {
		data = append(data, ChartPoint{Label: c.Category, Value: float64(c.Count)})
	}
	return &ChartConfig{
		ChartType:  "pie",
		Title:      title,
		Series:     []ChartSeries{{Name: "Employees", Data: data}},
		ShowLegend: true,
	}
}

// lineFromBands renders per-band mean salaries as a line.
func lineFromBands(title, xAxis string, stats []agg.BandStat) *ChartConfig {
	data := make([]ChartPoint, 0, len(stats))
	for _, s := range stats {
		data = append(data, ChartPoint{Label: s.Label, Value: s.Mean})
	}
	return &ChartConfig{
		ChartType: "line",
		Title:     title,
		XAxis:     xAxis,
		YAxis:     "Average Salary",
		Series:    []ChartSeries{{Name: "Average Salary", Data: data}},
	}
}
