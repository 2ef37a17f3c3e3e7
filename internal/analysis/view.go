package analysis

import (
	"sort"
	"time"

	"sipsa-dashboard/internal/dataset"
)

// View is everything the dashboard page renders for one filter
// selection: KPIs, the per-market time series, the market rankings,
// and the filtered rows for the inspection table.
type View struct {
	HasData bool      `json:"has_data"`
	Product string    `json:"product,omitempty"`
	From    time.Time `json:"from"`
	To      time.Time `json:"to"`

	KPIs     KPISet         `json:"kpis"`
	Series   []MarketSeries `json:"series"`
	Rankings Rankings       `json:"rankings"`

	Rows []dataset.PriceObservation `json:"rows"`
}

// Compute derives a full View from the immutable base table and a
// filter selection. It is a pure function: every filter change
// recomputes everything, no incremental state survives between calls.
func Compute(rows []dataset.PriceObservation, f Filter, topN int) View {
	subset := Apply(rows, f)

	view := View{
		Product: f.Product,
		From:    f.From,
		To:      f.To,
	}
	if len(subset) == 0 {
		return view
	}

	sort.SliceStable(subset, func(i, j int) bool {
		if !subset[i].Date.Equal(subset[j].Date) {
			return subset[i].Date.Before(subset[j].Date)
		}
		return subset[i].Market < subset[j].Market
	})

	view.HasData = true
	view.KPIs = KPIs(subset)
	view.Series = Series(subset)
	view.Rankings = Rank(subset, topN)
	view.Rows = subset
	return view
}
