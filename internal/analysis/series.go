package analysis

import (
	"sort"
	"time"

	"sipsa-dashboard/internal/dataset"
)

// SeriesPoint is one charted observation.
type SeriesPoint struct {
	Date          time.Time `json:"date"`
	AvgPricePerKg float64   `json:"avg_price_per_kg"`
}

// MarketSeries is the price line of one market, date-ascending.
type MarketSeries struct {
	Market string        `json:"market"`
	Points []SeriesPoint `json:"points"`
}

// Series builds one line per market from a filtered subset. Multiple
// observations of a market on the same date are averaged into a single
// point. Missing dates are not interpolated. Series come back sorted
// by market name so chart colors stay stable across recomputations.
func Series(rows []dataset.PriceObservation) []MarketSeries {
	type acc struct {
		sum float64
		n   int
	}

	byMarket := make(map[string]map[time.Time]*acc)
	for _, row := range rows {
		dates, ok := byMarket[row.Market]
		if !ok {
			dates = make(map[time.Time]*acc)
			byMarket[row.Market] = dates
		}
		a, ok := dates[row.Date]
		if !ok {
			a = &acc{}
			dates[row.Date] = a
		}
		a.sum += row.AvgPricePerKg
		a.n++
	}

	markets := make([]string, 0, len(byMarket))
	for m := range byMarket {
		markets = append(markets, m)
	}
	sort.Strings(markets)

	series := make([]MarketSeries, 0, len(markets))
	for _, m := range markets {
		dates := byMarket[m]
		points := make([]SeriesPoint, 0, len(dates))
		for d, a := range dates {
			points = append(points, SeriesPoint{
				Date:          d,
				AvgPricePerKg: a.sum / float64(a.n),
			})
		}
		sort.Slice(points, func(i, j int) bool {
			return points[i].Date.Before(points[j].Date)
		})
		series = append(series, MarketSeries{Market: m, Points: points})
	}

	return series
}
