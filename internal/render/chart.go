package render

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/22kromerky/agdash/internal/engine"
)

var seriesColors = []drawing.Color{
	chart.ColorBlue,
	chart.ColorGreen,
	chart.ColorRed,
	chart.ColorOrange,
	chart.ColorCyan,
}

// LineChart renders the view as a PNG line chart, one line per series.
// Missing observations are skipped. go-chart needs at least two X values per
// series, so a single-point series is padded with a duplicate point.
func LineChart(v *engine.View, title string, width, height int) ([]byte, error) {
	if v.Len() == 0 {
		return nil, fmt.Errorf("no rows to chart")
	}

	var series []chart.Series
	for i, name := range v.Series() {
		var xs, ys []float64
		for _, row := range v.Rows() {
			cell := row.Values[name]
			if !cell.Valid {
				continue
			}
			xs = append(xs, float64(row.Year))
			ys = append(ys, cell.Float)
		}
		if len(xs) == 0 {
			continue
		}
		st := chart.Style{
			StrokeColor: seriesColors[i%len(seriesColors)],
			StrokeWidth: 2,
		}
		if len(xs) == 1 {
			// Pad to at least two X values for go-chart
			xs = append(xs, xs[0]+1)
			ys = append(ys, ys[0])
		}
		series = append(series, chart.ContinuousSeries{Name: name, XValues: xs, YValues: ys, Style: st})
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("no non-missing points to chart")
	}

	ch := chart.Chart{
		Title:      title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           "Year",
			ValueFormatter: func(v interface{}) string { return fmt.Sprintf("%.0f", v.(float64)) },
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}
