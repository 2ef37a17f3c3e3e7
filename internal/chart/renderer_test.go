package chart

import (
	"bytes"
	"errors"
	"image/png"
	"testing"
	"time"

	"sipsa-dashboard/internal/analysis"
)

func point(date string, price float64) analysis.SeriesPoint {
	t, _ := time.Parse("2006-01-02", date)
	return analysis.SeriesPoint{Date: t, AvgPricePerKg: price}
}

func TestTimeseries_RendersPNG(t *testing.T) {
	series := []analysis.MarketSeries{
		{Market: "BOGOTA", Points: []analysis.SeriesPoint{
			point("2024-01-01", 2000),
			point("2024-01-02", 2200),
		}},
		{Market: "MEDELLIN", Points: []analysis.SeriesPoint{
			point("2024-01-01", 1800),
			point("2024-01-02", 1850),
		}},
	}

	data, err := Timeseries(series, "MANGO TOMMY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != width || img.Bounds().Dy() != height {
		t.Errorf("unexpected image size: %v", img.Bounds())
	}
}

func TestTimeseries_SinglePointSeries(t *testing.T) {
	series := []analysis.MarketSeries{
		{Market: "BOGOTA", Points: []analysis.SeriesPoint{
			point("2024-01-01", 2000),
		}},
	}

	if _, err := Timeseries(series, ""); err != nil {
		t.Fatalf("single-point series should render, got %v", err)
	}
}

func TestTimeseries_NoData(t *testing.T) {
	if _, err := Timeseries(nil, "MANGO"); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}

	empty := []analysis.MarketSeries{{Market: "BOGOTA"}}
	if _, err := Timeseries(empty, ""); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData for pointless series, got %v", err)
	}
}
