package chart

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"sipsa-dashboard/internal/analysis"
)

// ErrNoData is returned when the filtered subset has nothing to plot.
var ErrNoData = errors.New("no observations to chart")

const (
	width  = 960
	height = 420
)

// Timeseries renders the per-market price lines to a PNG: one line per
// market, dates on the X axis, price per kilogram on the Y axis.
func Timeseries(series []analysis.MarketSeries, product string) ([]byte, error) {
	if len(series) == 0 {
		return nil, ErrNoData
	}

	chartSeries := make([]chart.Series, 0, len(series))
	for i, s := range series {
		if len(s.Points) == 0 {
			continue
		}

		times := make([]time.Time, 0, len(s.Points))
		values := make([]float64, 0, len(s.Points))
		for _, p := range s.Points {
			times = append(times, p.Date)
			values = append(values, p.AvgPricePerKg)
		}

		// go-chart needs at least two X values per series.
		if len(times) == 1 {
			times = append(times, times[0].Add(24*time.Hour))
			values = append(values, values[0])
		}

		chartSeries = append(chartSeries, chart.TimeSeries{
			Name:    s.Market,
			XValues: times,
			YValues: values,
			Style: chart.Style{
				StrokeColor: chart.GetDefaultColor(i),
				StrokeWidth: 2,
			},
		})
	}

	if len(chartSeries) == 0 {
		return nil, ErrNoData
	}

	title := "Precio promedio por kilogramo"
	if product != "" {
		title = fmt.Sprintf("%s — %s", title, product)
	}

	graph := chart.Chart{
		Title:  title,
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0f", f)
				}
				return ""
			},
		},
		Series: chartSeries,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.Bytes(), nil
}
