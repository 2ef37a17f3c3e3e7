package analysis

import (
	"time"

	"sipsa-dashboard/internal/dataset"
)

// KPISet holds the three headline indicators for a filtered subset.
// When several markets report on the earliest or latest date, the
// price for that date is the mean across those markets; the same rule
// is applied at both ends so PercentChange compares like with like.
type KPISet struct {
	Valid bool `json:"valid"`

	CurrentPrice  float64 `json:"current_price"`
	PeriodAverage float64 `json:"period_average"`

	// PercentChange is nil when it cannot be computed (first price 0).
	PercentChange *float64 `json:"percent_change,omitempty"`

	FirstDate time.Time `json:"first_date"`
	LastDate  time.Time `json:"last_date"`
}

// KPIs computes the indicators over a filtered subset. An empty subset
// yields Valid=false and no values.
func KPIs(rows []dataset.PriceObservation) KPISet {
	if len(rows) == 0 {
		return KPISet{}
	}

	first := rows[0].Date
	last := rows[0].Date
	for _, row := range rows[1:] {
		if row.Date.Before(first) {
			first = row.Date
		}
		if row.Date.After(last) {
			last = row.Date
		}
	}

	firstPrice := meanOnDate(rows, first)
	currentPrice := meanOnDate(rows, last)

	kpis := KPISet{
		Valid:         true,
		CurrentPrice:  currentPrice,
		PeriodAverage: meanPrice(rows),
		FirstDate:     first,
		LastDate:      last,
	}

	if firstPrice > 0 {
		pct := (currentPrice - firstPrice) / firstPrice * 100
		kpis.PercentChange = &pct
	}

	return kpis
}

func meanPrice(rows []dataset.PriceObservation) float64 {
	if len(rows) == 0 {
		return 0
	}
	sum := 0.0
	for _, row := range rows {
		sum += row.AvgPricePerKg
	}
	return sum / float64(len(rows))
}

func meanOnDate(rows []dataset.PriceObservation, date time.Time) float64 {
	sum := 0.0
	n := 0
	for _, row := range rows {
		if row.Date.Equal(date) {
			sum += row.AvgPricePerKg
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
